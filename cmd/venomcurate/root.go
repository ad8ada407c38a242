package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	cfgFile string
	verbose bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "venomcurate",
		Short: "Curate the hymenopteran venom protein dataset",
		Long: `venomcurate curates a semicolon-delimited venom protein dataset:
it detects duplicate mature/full sequences, filters records based on
review-log annotations, and updates sequences using SignalP and
DeepPeptide predictions.`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initConfig()
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.venomcurate.yaml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newDedupeCmd())
	cmd.AddCommand(newFilterCmd())
	cmd.AddCommand(newUpdateCmd())
	cmd.AddCommand(newPredictionsCmd())
	cmd.AddCommand(newFetchCmd())
	cmd.AddCommand(newToFastaCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig reads the config file and sets defaults.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".venomcurate")
			viper.SetConfigType("yaml")
		}
	}

	viper.SetDefault("output.dir", ".")
	viper.SetDefault("predictions.db", "")
	viper.SetEnvPrefix("VENOMCURATE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// buildLogger creates the CLI logger. Debug output requires --verbose.
func buildLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// outputPath joins the configured output directory with a filename unless
// the name is already a path.
func outputPath(name string) string {
	if name == "" || name == "-" || filepath.Dir(name) != "." {
		return name
	}
	return filepath.Join(viper.GetString("output.dir"), name)
}
