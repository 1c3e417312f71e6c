package main

import (
	"strings"

	"github.com/milden6/louds/internal/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var Version string

const (
	configF    = "config"
	verbosityF = "verbosity"
	strictF    = "strict"

	defaultConfig    = ""
	defaultVerbosity = "info"
	defaultStrict    = false

	configFlagUsage    = "The yaml configuration file."
	verbosityFlagUsage = "Verbosity of the logs. Options: debug, info, warn, error."
	strictUsage        = "Reject word lists that are not sorted instead of building a malformed trie."

	envPrefix = "LOUDS"
)

// Config holds the settings shared by all subcommands. Values come from
// flags, then LOUDS_* environment variables, then the config file.
type Config struct {
	Verbosity string `mapstructure:"verbosity"`
	Strict    bool   `mapstructure:"strict"`
}

// env is what a subcommand runs with once flags and config are resolved.
type env struct {
	cfg Config
	log *zap.SugaredLogger
}

func NewCmd() *cobra.Command {
	var cfgFile string
	e := new(env)

	rootCmd := &cobra.Command{
		Use:           "louds",
		Short:         "Build and query succinct tries.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v := viper.New()
			if cfgFile != "" {
				v.SetConfigType("yaml")
				v.SetConfigFile(cfgFile)
				if err := v.ReadInConfig(); err != nil {
					return err
				}
			}

			v.SetEnvPrefix(envPrefix)
			v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			v.AutomaticEnv()
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			if err := v.Unmarshal(&e.cfg); err != nil {
				return err
			}

			logger, err := log.New(e.cfg.Verbosity, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			e.log = logger
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if e.log != nil {
				_ = e.log.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, configF, defaultConfig, configFlagUsage)
	rootCmd.PersistentFlags().String(verbosityF, defaultVerbosity, verbosityFlagUsage)
	rootCmd.AddCommand(BuildCmd(e), LookupCmd(e), TraverseCmd(e))
	return rootCmd
}

// usage prints the command's usage when too few arguments are given and
// reports whether it did. Missing arguments are not an error, but failing
// to print the usage is.
func usage(cmd *cobra.Command, args []string, n int) (bool, error) {
	if len(args) >= n {
		return false, nil
	}
	return true, cmd.Usage()
}
