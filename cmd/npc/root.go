package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/npc-tracker/internal/errors"
)

// settings binds a command line flag to a configuration key
var settings = []struct {
	flag  string
	key   string
	usage string
}{
	{"backend", "storage.backend", "storage backend: sqlite, redis or memory"},
	{"sqlite-path", "storage.sqlite_path", "SQLite database file"},
	{"redis-addr", "storage.redis.addr", "Redis address"},
	{"key-prefix", "storage.redis.key_prefix", "prefix for every Redis key"},
	{"library-key", "keys.library", "storage key of the library"},
	{"log-level", "logging.level", "log level: debug, info, warn or error"},
	{"log-format", "logging.format", "log format: json or console"},
	{"id-scheme", "ids.scheme", "id scheme for new records: uuid or timestamp"},
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(&app{v: viper.New()})
}

func buildRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "npc",
		Short: "Track NPC sheets during play",
		Long: `npc keeps a library of NPC sheets for a game master: resource pools,
attributes, skills, attacks, armor, resistances, conditions and talents.
Every change is saved as soon as it is made.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid flags")
	})

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (YAML)")
	flags.BoolVar(&a.edit, "edit", false, "enable edit mode for this invocation")
	for _, s := range settings {
		flags.String(s.flag, "", s.usage)
		_ = a.v.BindPFlag(s.key, flags.Lookup(s.flag)) // nolint:errcheck // flag was just registered
	}

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newCreateCmd(a),
		newDuplicateCmd(a),
		newDeleteCmd(a),
		newSwitchCmd(a),
		newExportCmd(a),
		newImportCmd(a),
		newPoolCmd(a),
		newConsumeCmd(a),
		newActivateCmd(a),
		newAttributeCmd(a),
		newDefenseCmd(a),
		newResistanceCmd(a),
		newConditionCmd(a),
		newProfileCmd(a),
		newSkillCmd(a),
		newAttackCmd(a),
		newArmorCmd(a),
		newDoctorCmd(a),
	)
	return root
}

// exactArgs is cobra.ExactArgs with an InvalidArgument code
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid arguments")
		}
		return nil
	}
}

// rangeArgs is cobra.RangeArgs with an InvalidArgument code
func rangeArgs(lo, hi int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.RangeArgs(lo, hi)(cmd, args); err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid arguments")
		}
		return nil
	}
}
