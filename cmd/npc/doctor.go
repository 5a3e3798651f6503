package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KirkDiggler/npc-tracker/internal/errors"
	libraryrepo "github.com/KirkDiggler/npc-tracker/internal/repositories/library"
	"github.com/KirkDiggler/npc-tracker/internal/rules"
)

func newDoctorCmd(a *app) *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the stored library for damage",
		Long: `Check the stored library for unreadable data, null entries, records with
unreadable fields, missing or duplicate ids, missing example characters and a
stale active id. With --fix the library is loaded and saved again, which
seeds, migrates and repairs it. Anything that repair would drop is first
copied to the backup key.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			ctx := cmd.Context()

			e, cleanup, err := a.openEnv(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := cleanup(); err == nil {
					err = cerr
				}
			}()

			catalog, err := rules.Load()
			if err != nil {
				return err
			}
			examples := catalog.SampleNames()

			report, err := libraryrepo.Audit(ctx, e.repoConfig(), examples)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report)
			if report.Healthy() {
				return nil
			}

			if !fix {
				return errors.FailedPrecondition("library needs repair; run npc doctor --fix").
					WithMeta("problems", report.Problems())
			}

			e.logger.Info("repairing library", zap.Strings("problems", report.Problems()))
			store, err := a.newStore(ctx, e)
			if err != nil {
				return err
			}
			if err := store.Close(ctx); err != nil {
				return err
			}

			report, err = libraryrepo.Audit(ctx, e.repoConfig(), examples)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "After repair:")
			printReport(cmd.OutOrStdout(), report)
			if !report.Healthy() {
				return errors.DataLoss("library could not be repaired").WithMeta("problems", report.Problems())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&fix, "fix", false, "repair the library")
	return cmd
}

func printReport(w io.Writer, r *libraryrepo.AuditReport) {
	fmt.Fprintf(w, "Records: %d  Active: %s\n", r.Records, r.ActiveID)
	if r.LegacyPresent {
		fmt.Fprintln(w, "Legacy record present")
	}
	if r.BackupPresent {
		fmt.Fprintln(w, "Backup of an earlier unreadable library present")
	}

	problems := r.Problems()
	if len(problems) == 0 {
		fmt.Fprintln(w, "✅ No problems found")
		return
	}
	for _, p := range problems {
		fmt.Fprintf(w, "✗ %s\n", p)
	}
}
