package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ericogr/guessdex/internal/constants"
	"github.com/ericogr/guessdex/internal/logging"
	"github.com/ericogr/guessdex/internal/version"
)

// cliConfig holds the flags shared by every subcommand. Values can come
// from flags or from GUESSDEX_* environment variables; flags win.
type cliConfig struct {
	configPath string
	dbPath     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("GUESSDEX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfg := &cliConfig{}

	cmd := &cobra.Command{
		Use:           "guessdex",
		Short:         "A creature guessing game that narrows a catalog down with yes/no questions.",
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetDebug(cfg.verbose)
		},
	}

	fs := cmd.PersistentFlags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.configPath, "config", "c", constants.DefaultConfigPath, "path to the catalog config file (env: "+constants.EnvConfigPath+")")
	fs.StringVar(&cfg.dbPath, "db", constants.DefaultDBPath, "path to the sqlite stats database (env: "+constants.EnvDBPath+")")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "log question selection details (env: GUESSDEX_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.AddCommand(newServeCmd(cfg))
	cmd.AddCommand(newPlayCmd(cfg))

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("guessdex {{.Version}}\n")

	return cmd
}
