package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/npc-tracker/internal/errors"
	"github.com/KirkDiggler/npc-tracker/internal/orchestrators/library"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the NPCs in the library",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(cmd, func(_ context.Context, store *library.Orchestrator) error {
				printList(cmd.OutOrStdout(), store.Records(), store.ActiveID())
				return nil
			})
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show an NPC sheet, the active one by default",
		Args:  rangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(_ context.Context, store *library.Orchestrator) error {
				record := store.Active()
				if len(args) == 1 {
					var ok bool
					if record, ok = store.Record(args[0]); !ok {
						return errors.NotFoundf("no NPC with id %s", args[0]).WithMeta("record_id", args[0])
					}
				}

				if asJSON {
					data, err := json.MarshalIndent(record, "", "  ")
					if err != nil {
						return errors.Wrap(err, "failed to encode record")
					}
					fmt.Fprintln(cmd.OutOrStdout(), string(data))
					return nil
				}
				printSheet(cmd.OutOrStdout(), record, record.ID == store.ActiveID())
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full record as JSON")
	return cmd
}

func newCreateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new NPC and make it active",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, store *library.Orchestrator) error {
				record, err := store.Create(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✅ Created %s (%s)\n", record.Name, record.ID)
				return nil
			})
		},
	}
}

func newDuplicateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "duplicate <id>",
		Short: "Copy an NPC under a new id and make the copy active",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, store *library.Orchestrator) error {
				record, ok, err := store.Duplicate(ctx, args[0])
				if err != nil {
					return err
				}
				if !ok {
					return errors.NotFoundf("no NPC with id %s", args[0]).WithMeta("record_id", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✅ Created %s (%s)\n", record.Name, record.ID)
				return nil
			})
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove an NPC from the library",
		Long:  `Remove an NPC from the library. The last remaining NPC cannot be deleted.`,
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, store *library.Orchestrator) error {
				id := args[0]
				if _, ok := store.Record(id); !ok {
					return errors.NotFoundf("no NPC with id %s", id).WithMeta("record_id", id)
				}

				ok, err := store.Delete(ctx, id)
				if err != nil {
					return err
				}
				if !ok {
					return errors.FailedPrecondition("the last NPC in the library cannot be deleted").
						WithMeta("record_id", id)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✅ Deleted %s\n", id)
				return nil
			})
		},
	}
}

func newSwitchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "switch <id>",
		Short: "Make an NPC the active one",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, store *library.Orchestrator) error {
				ok, err := store.SwitchActive(ctx, args[0])
				if err != nil {
					return err
				}
				if !ok {
					return errors.NotFoundf("no NPC with id %s", args[0]).WithMeta("record_id", args[0])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✅ Active NPC is now %s\n", store.Active().Name)
				return nil
			})
		},
	}
}
