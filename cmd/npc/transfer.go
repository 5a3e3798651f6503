package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/npc-tracker/internal/errors"
	"github.com/KirkDiggler/npc-tracker/internal/orchestrators/library"
)

func newExportCmd(a *app) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active NPC to a JSON file",
		Long: `Write the active NPC to character_<name>_<date>.json in the output
directory. Use --out - to print the document instead.`,
		Args: exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(cmd, func(_ context.Context, store *library.Orchestrator) error {
				doc, err := store.Export()
				if err != nil {
					return err
				}

				if outDir == "-" {
					_, err := cmd.OutOrStdout().Write(append(doc.Data, '\n'))
					return err
				}

				path := filepath.Join(outDir, doc.Filename)
				if err := os.WriteFile(path, doc.Data, 0o644); err != nil { // nolint:gosec // exports are meant to be shared
					return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to write %s", path)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✅ Exported to %s\n", path)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory, or - for stdout")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Add an NPC from an exported JSON file and make it active",
		Long: `Add an NPC from an exported JSON file and make it active. A record with
the same id replaces the existing one. Use - to read from stdin.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			return a.withStore(cmd, func(ctx context.Context, store *library.Orchestrator) error {
				ok, err := store.Import(ctx, data)
				if err != nil {
					return err
				}
				if !ok {
					return errors.InvalidArgumentf("%s is not a valid NPC file", args[0])
				}
				active := store.Active()
				fmt.Fprintf(cmd.OutOrStdout(), "✅ Imported %s (%s)\n", active.Name, active.ID)
				return nil
			})
		},
	}
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read stdin")
		}
		return data, nil
	}

	data, err := os.ReadFile(path) // nolint:gosec // path comes from the user on purpose
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("file %s does not exist", path)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to read %s", path)
	}
	return data, nil
}
