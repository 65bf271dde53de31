// Package cli implements the knneval command line.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree with its own configuration.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:   "knneval",
		Short: "Evaluate KNN imputation on a dataset",
		Long: `knneval hides a random fraction of a dataset's feature values,
fills them back with K-nearest-neighbours imputation and reports
how many were recovered exactly and the RMSE of the rest.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}
			initLogging(v)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is ./knneval.yaml or $HOME/.knneval/knneval.yaml)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default off)")
	_ = v.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newEvaluateCommand(v), newEncodeCommand(v))
	return root
}

// initConfig reads the config file and KNNEVAL_* environment variables.
func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".knneval"))
		}
		v.SetConfigType("yaml")
		v.SetConfigName("knneval")
	}

	v.SetEnvPrefix("KNNEVAL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// initLogging configures the global logger.
func initLogging(v *viper.Viper) {
	switch v.GetString("log-level") {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
