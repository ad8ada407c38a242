package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AndreasWz/hymenopteran-venom-protein-dataset-curation/internal/duckdb"
	"github.com/AndreasWz/hymenopteran-venom-protein-dataset-curation/internal/predict"
)

func newPredictionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "predictions",
		Short: "Manage the peptide prediction store",
		Long: `Import SignalP and DeepPeptide results into a DuckDB prediction store
so they are parsed once and looked up by identifier across runs.`,
	}

	cmd.AddCommand(newPredictionsImportCmd())
	cmd.AddCommand(newPredictionsStatsCmd())

	return cmd
}

func newPredictionsImportCmd() *cobra.Command {
	var (
		signalpPath     string
		deeppeptidePath string
		dbPath          string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import prediction JSON files into the store",
		Example: `  venomcurate predictions import --signalp signalp6_out.json --db predictions.duckdb
  venomcurate predictions import --deeppeptide deeppeptide_out.json --db predictions.duckdb`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				dbPath = viper.GetString("predictions.db")
			}
			if dbPath == "" {
				return errors.New("--db is required (or set predictions.db in config)")
			}
			if signalpPath == "" && deeppeptidePath == "" {
				return errors.New("at least one of --signalp or --deeppeptide is required")
			}
			return runPredictionsImport(signalpPath, deeppeptidePath, dbPath)
		},
	}

	cmd.Flags().StringVar(&signalpPath, "signalp", "", "SignalP 6.0 JSON output file")
	cmd.Flags().StringVar(&deeppeptidePath, "deeppeptide", "", "DeepPeptide JSON output file")
	cmd.Flags().StringVar(&dbPath, "db", "", "prediction store path")

	return cmd
}

func runPredictionsImport(signalpPath, deeppeptidePath, dbPath string) error {
	store, err := duckdb.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if signalpPath != "" {
		sites, err := predict.LoadSignalP(signalpPath)
		if err != nil {
			return err
		}
		if err := store.LoadCleavageSites(sites); err != nil {
			return err
		}
		fmt.Printf("Imported %d cleavage sites from %s\n", len(sites), signalpPath)
	}

	if deeppeptidePath != "" {
		preds, err := predict.LoadDeepPeptide(deeppeptidePath)
		if err != nil {
			return err
		}
		if err := store.LoadPeptides(preds); err != nil {
			return err
		}
		n, err := store.PeptideCount()
		if err != nil {
			return err
		}
		fmt.Printf("Imported %d peptide spans from %s\n", n, deeppeptidePath)
	}

	return nil
}

func newPredictionsStatsCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show prediction store contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				dbPath = viper.GetString("predictions.db")
			}
			if dbPath == "" {
				return errors.New("--db is required (or set predictions.db in config)")
			}

			store, err := duckdb.Open(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			cleavage, err := store.CleavageCount()
			if err != nil {
				return err
			}
			peptides, err := store.PeptideCount()
			if err != nil {
				return err
			}

			fmt.Printf("Cleavage sites: %d\n", cleavage)
			fmt.Printf("Peptide spans: %d\n", peptides)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "prediction store path")

	return cmd
}
