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

// applyAndShow commits m to the active record and prints the result
func (a *app) applyAndShow(cmd *cobra.Command, check func(*entities.Character) error, m sheet.Mutation) error {
	return a.withStore(cmd, func(ctx context.Context, store *library.Orchestrator) error {
		if check != nil {
			if err := check(store.Active()); err != nil {
				return err
			}
		}
		record, err := store.Apply(ctx, m)
		if err != nil {
			return err
		}
		printSheet(cmd.OutOrStdout(), record, true)
		return nil
	})
}

func newAttributeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "attribute <name> <value>",
		Short: "Set an attribute of the active NPC",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, raw := args[0], args[1]
			check := func(c *entities.Character) error {
				for _, attr := range c.Attributes {
					if attr.Name == name {
						return nil
					}
				}
				return errors.NotFoundf("no attribute named %s", name)
			}
			return a.applyAndShow(cmd, check, func(c *entities.Character) *entities.Character {
				return sheet.UpdateAttribute(c, name, raw)
			})
		},
	}
}

func newDefenseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "defense <fortitude|reflex|tenacity> <value>",
		Short: "Set a defense of the active NPC",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := entities.DefenseKind(strings.ToLower(args[0]))
			switch kind {
			case entities.DefenseFortitude, entities.DefenseReflex, entities.DefenseTenacity:
			default:
				return errors.InvalidArgumentf("unknown defense %q", args[0])
			}
			raw := args[1]
			return a.applyAndShow(cmd, nil, func(c *entities.Character) *entities.Character {
				return sheet.UpdateDefense(c, kind, raw)
			})
		},
	}
}

func newResistanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resistance <damage-type> <value|immunity|vulnerable> <value>",
		Short: "Edit a damage resistance of the active NPC",
		Args:  exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			damageType, raw := args[0], args[2]
			field := sheet.ResistanceField(strings.ToLower(args[1]))
			switch field {
			case sheet.ResistanceValue, sheet.ResistanceImmunity, sheet.ResistanceVulnerable:
			default:
				return errors.InvalidArgumentf("unknown resistance field %q", args[1])
			}
			return a.applyAndShow(cmd, nil, func(c *entities.Character) *entities.Character {
				return sheet.UpdateResistance(c, damageType, field, raw)
			})
		},
	}
}

func newConditionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "condition <key> <active|level> <value>",
		Short: "Edit a condition of the active NPC",
		Args:  exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, raw := args[0], args[2]
			field := sheet.ConditionField(strings.ToLower(args[1]))
			switch field {
			case sheet.ConditionActive, sheet.ConditionLevel:
			default:
				return errors.InvalidArgumentf("unknown condition field %q", args[1])
			}
			return a.applyAndShow(cmd, nil, func(c *entities.Character) *entities.Character {
				return sheet.UpdateActiveCondition(c, key, field, raw)
			})
		},
	}
}

func newProfileCmd(a *app) *cobra.Command {
	fields := map[string]func(c *entities.Character, raw string, editMode bool) *entities.Character{
		"name":       sheet.UpdateName,
		"level":      sheet.UpdateLevel,
		"xp":         sheet.UpdateXP,
		"next-level": sheet.UpdateNextLevel,
		"speed":      sheet.UpdateSpeed,
		"perception": sheet.UpdatePerception,
	}

	return &cobra.Command{
		Use:   "profile <name|level|xp|next-level|speed|perception> <value>",
		Short: "Edit the profile of the active NPC (needs --edit)",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			update, ok := fields[strings.ToLower(args[0])]
			if !ok {
				return errors.InvalidArgumentf("unknown profile field %q", args[0])
			}
			if err := a.requireEdit("the profile"); err != nil {
				return err
			}
			raw := args[1]
			return a.withStore(cmd, func(ctx context.Context, store *library.Orchestrator) error {
				record, err := store.ApplyGated(ctx, func(c *entities.Character, editMode bool) *entities.Character {
					return update(c, raw, editMode)
				})
				if err != nil {
					return err
				}
				printSheet(cmd.OutOrStdout(), record, true)
				return nil
			})
		},
	}
}

func newSkillCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skill",
		Short: "Edit the skills of the active NPC (needs --edit)",
	}

	skillOp := func(use, short string, nargs int, build func(args []string) (library.GatedMutation, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  exactArgs(nargs),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.requireEdit("skills"); err != nil {
					return err
				}
				m, err := build(args)
				if err != nil {
					return err
				}
				return a.withStore(cmd, func(ctx context.Context, store *library.Orchestrator) error {
					if err := checkSkill(store.Active(), args[0], args[1]); err != nil {
						return err
					}
					record, err := store.ApplyGated(ctx, m)
					if err != nil {
						return err
					}
					printSkills(cmd.OutOrStdout(), record)
					return nil
				})
			},
		}
	}

	cmd.AddCommand(
		skillOp("level <category> <skill> <level>", "Set a skill level", 3, func(args []string) (library.GatedMutation, error) {
			level, err := parseInt("level", args[2])
			if err != nil {
				return nil, err
			}
			return func(c *entities.Character, editMode bool) *entities.Character {
				return sheet.UpdateSkillLevel(c, args[0], args[1], level, editMode)
			}, nil
		}),
		skillOp("toggle <category> <skill>", "Show or hide a skill on the sheet", 2, func(args []string) (library.GatedMutation, error) {
			return func(c *entities.Character, editMode bool) *entities.Character {
				return sheet.ToggleSkillVisibility(c, args[0], args[1], editMode)
			}, nil
		}),
	)
	return cmd
}

func checkSkill(c *entities.Character, category, skill string) error {
	cat, ok := c.SkillCategories[category]
	if !ok {
		return errors.NotFoundf("no skill category %s", category)
	}
	if cat.FindSkill(skill) < 0 {
		return errors.NotFoundf("no skill %s in %s", skill, category)
	}
	return nil
}

func newAttackCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attack",
		Short: "Manage the attacks of the active NPC",
	}

	var attack entities.Attack
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an attack",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			attack.Name = args[0]
			return a.withStore(cmd, func(ctx context.Context, store *library.Orchestrator) error {
				id := store.NewID()
				record, err := store.Apply(ctx, func(c *entities.Character) *entities.Character {
					return sheet.AddAttack(c, id, attack)
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✅ Added attack %s (%s)\n", attack.Name, id)
				printAttacks(cmd.OutOrStdout(), record)
				return nil
			})
		},
	}
	add.Flags().IntVar(&attack.Damage, "damage", 0, "base damage")
	add.Flags().IntVar(&attack.AP, "ap", 0, "action points")
	add.Flags().StringVar(&attack.Range, "range", "", "range")
	add.Flags().StringVar(&attack.Skill, "skill", "", "related skill")
	add.Flags().StringVar(&attack.DamageType, "damage-type", "", "damage type")
	add.Flags().StringVar(&attack.Properties, "properties", "", "free text properties")
	add.Flags().IntVar(&attack.Costs.Vitality, "vitality", 0, "vitality cost")
	add.Flags().IntVar(&attack.Costs.Focus, "focus", 0, "focus cost")
	add.Flags().IntVar(&attack.Costs.Will, "will", 0, "will cost")

	wear := &cobra.Command{
		Use:   "wear <attack-id> <level>",
		Short: "Click a wear level; repeating the current level lowers it",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseInt("level", args[1])
			if err != nil {
				return err
			}
			return a.withStore(cmd, func(ctx context.Context, store *library.Orchestrator) error {
				if store.Active().FindAttack(args[0]) < 0 {
					return errors.NotFoundf("no attack with id %s", args[0])
				}
				record, err := store.Apply(ctx, func(c *entities.Character) *entities.Character {
					return sheet.UpdateAttackWear(c, args[0], level)
				})
				if err != nil {
					return err
				}
				printAttacks(cmd.OutOrStdout(), record)
				return nil
			})
		},
	}

	remove := &cobra.Command{
		Use:   "delete <attack-id>",
		Short: "Remove an attack",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, store *library.Orchestrator) error {
				if store.Active().FindAttack(args[0]) < 0 {
					return errors.NotFoundf("no attack with id %s", args[0])
				}
				record, err := store.Apply(ctx, func(c *entities.Character) *entities.Character {
					return sheet.DeleteAttack(c, args[0])
				})
				if err != nil {
					return err
				}
				printAttacks(cmd.OutOrStdout(), record)
				return nil
			})
		},
	}

	cmd.AddCommand(add, wear, remove)
	return cmd
}

func newArmorCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "armor",
		Short: "Manage the armor of the active NPC",
	}

	var armor entities.Armor
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a piece of armor at full protection",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			armor.Name = args[0]
			return a.withStore(cmd, func(ctx context.Context, store *library.Orchestrator) error {
				id := store.NewID()
				record, err := store.Apply(ctx, func(c *entities.Character) *entities.Character {
					return sheet.AddArmor(c, id, armor)
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✅ Added armor %s (%s)\n", armor.Name, id)
				printArmors(cmd.OutOrStdout(), record)
				return nil
			})
		},
	}
	add.Flags().IntVar(&armor.Max, "max", 0, "protection pips")
	add.Flags().StringVar(&armor.Type, "type", "", "armor type")
	add.Flags().IntVar(&armor.ReflexBonus, "reflex-bonus", 0, "reflex bonus")
	add.Flags().StringVar(&armor.Properties, "properties", "", "free text properties")
	add.Flags().StringVar(&armor.Notes, "notes", "", "notes")

	current := &cobra.Command{
		Use:   "current <armor-id> <level>",
		Short: "Click a protection pip; repeating the current pip lowers it",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseInt("level", args[1])
			if err != nil {
				return err
			}
			return a.withStore(cmd, func(ctx context.Context, store *library.Orchestrator) error {
				if store.Active().FindArmor(args[0]) < 0 {
					return errors.NotFoundf("no armor with id %s", args[0])
				}
				record, err := store.Apply(ctx, func(c *entities.Character) *entities.Character {
					return sheet.UpdateArmorCurrent(c, args[0], level)
				})
				if err != nil {
					return err
				}
				printArmors(cmd.OutOrStdout(), record)
				return nil
			})
		},
	}

	remove := &cobra.Command{
		Use:   "delete <armor-id>",
		Short: "Remove a piece of armor",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(cmd, func(ctx context.Context, store *library.Orchestrator) error {
				if store.Active().FindArmor(args[0]) < 0 {
					return errors.NotFoundf("no armor with id %s", args[0])
				}
				record, err := store.Apply(ctx, func(c *entities.Character) *entities.Character {
					return sheet.DeleteArmor(c, args[0])
				})
				if err != nil {
					return err
				}
				printArmors(cmd.OutOrStdout(), record)
				return nil
			})
		},
	}

	cmd.AddCommand(add, current, remove)
	return cmd
}
