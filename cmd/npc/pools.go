package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/npc-tracker/internal/entities"
	"github.com/KirkDiggler/npc-tracker/internal/errors"
	"github.com/KirkDiggler/npc-tracker/internal/orchestrators/library"
	"github.com/KirkDiggler/npc-tracker/internal/sheet"
)

func newPoolCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Change the vitality, focus or will pool of the active NPC",
	}

	poolOp := func(use, short string, build func(kind entities.PoolKind, raw string) (sheet.Mutation, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <pool> <value>",
			Short: short,
			Args:  exactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				kind, err := parsePoolKind(args[0])
				if err != nil {
					return err
				}
				m, err := build(kind, args[1])
				if err != nil {
					return err
				}
				return a.withStore(cmd, func(ctx context.Context, store *library.Orchestrator) error {
					record, err := store.Apply(ctx, m)
					if err != nil {
						return err
					}
					printPool(cmd.OutOrStdout(), kind, record.Pool(kind))
					return nil
				})
			},
		}
	}

	cmd.AddCommand(
		poolOp("adjust", "Add to or subtract from the current value", func(kind entities.PoolKind, raw string) (sheet.Mutation, error) {
			delta, err := parseInt("delta", raw)
			if err != nil {
				return nil, err
			}
			return func(c *entities.Character) *entities.Character { return sheet.AdjustPool(c, kind, delta) }, nil
		}),
		poolOp("set", "Set the current value", func(kind entities.PoolKind, raw string) (sheet.Mutation, error) {
			value, err := parseInt("value", raw)
			if err != nil {
				return nil, err
			}
			return func(c *entities.Character) *entities.Character { return sheet.SetPoolCurrent(c, kind, value) }, nil
		}),
		poolOp("max", "Set the maximum; the current value is left as is", func(kind entities.PoolKind, raw string) (sheet.Mutation, error) {
			return func(c *entities.Character) *entities.Character { return sheet.SetPoolMax(c, kind, raw) }, nil
		}),
		poolOp("level", "Click a severity level; repeating the current level lowers it", func(kind entities.PoolKind, raw string) (sheet.Mutation, error) {
			level, err := parseInt("level", raw)
			if err != nil {
				return nil, err
			}
			return func(c *entities.Character) *entities.Character { return sheet.SetPoolLevel(c, kind, level) }, nil
		}),
	)
	return cmd
}

func newConsumeCmd(a *app) *cobra.Command {
	var costs entities.Costs

	cmd := &cobra.Command{
		Use:   "consume",
		Short: "Spend resources from the active NPC, all or nothing",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(cmd, func(ctx context.Context, store *library.Orchestrator) error {
				result, err := store.ConsumeResources(ctx, costs)
				if err != nil {
					return err
				}
				return reportConsume(cmd, store, result)
			})
		},
	}
	cmd.Flags().IntVar(&costs.Vitality, "vitality", 0, "vitality to spend")
	cmd.Flags().IntVar(&costs.Focus, "focus", 0, "focus to spend")
	cmd.Flags().IntVar(&costs.Will, "will", 0, "will to spend")
	return cmd
}

func newActivateCmd(a *app) *cobra.Command {
	var selected []int

	cmd := &cobra.Command{
		Use:   "activate <talent-id>",
		Short: "Pay the activation cost of a talent",
		Long: `Pay the activation cost of a talent on the active NPC. Each --pot adds
the potencializacao at that index to the cost.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, store *library.Orchestrator) error {
				result, found, err := store.ActivateTalent(ctx, args[0], selected)
				if err != nil {
					return err
				}
				if !found {
					return errors.NotFoundf("no talent with id %s", args[0]).WithMeta("talent_id", args[0])
				}
				return reportConsume(cmd, store, result)
			})
		},
	}
	cmd.Flags().IntSliceVar(&selected, "pot", nil, "index of a potencializacao to include (repeatable)")
	return cmd
}

func reportConsume(cmd *cobra.Command, store *library.Orchestrator, result sheet.ConsumeResult) error {
	if !result.Success {
		return errors.FailedPreconditionf("not enough %s", strings.Join(result.Missing, ", ")).
			WithMeta("missing", result.Missing)
	}

	record := store.Active()
	fmt.Fprintln(cmd.OutOrStdout(), "✅ Resources spent")
	for _, kind := range entities.PoolKinds {
		printPool(cmd.OutOrStdout(), kind, record.Pool(kind))
	}
	return nil
}
