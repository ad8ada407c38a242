package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/AndreasWz/hymenopteran-venom-protein-dataset-curation/internal/curate"
	"github.com/AndreasWz/hymenopteran-venom-protein-dataset-curation/internal/dataset"
	"github.com/AndreasWz/hymenopteran-venom-protein-dataset-curation/internal/duckdb"
	"github.com/AndreasWz/hymenopteran-venom-protein-dataset-curation/internal/predict"
)

func newUpdateCmd() *cobra.Command {
	var (
		signalpPath     string
		deeppeptidePath string
		predDB          string
		output          string
		changelogPath   string
		workers         int
	)

	cmd := &cobra.Command{
		Use:   "update <dataset.csv>",
		Short: "Update sequences using peptide predictions",
		Long: `Apply signal peptide trimming and propeptide excision to the dataset
using SignalP 6.0 and DeepPeptide results. Predictions come either from
the JSON output files directly or from a prediction store created with
"venomcurate predictions import". When a record's full sequence is
absent and its mature sequence changes, the pre-edit mature sequence is
promoted to the full sequence first. Every record's outcome is written
to the change log.`,
		Example: `  venomcurate update --signalp signalp6_out.json Dataset.csv
  venomcurate update --deeppeptide deeppeptide_out.json Dataset.csv
  venomcurate update --pred-db predictions.duckdb -o curated.csv Dataset.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if predDB == "" {
				predDB = viper.GetString("predictions.db")
			}
			if signalpPath == "" && deeppeptidePath == "" && predDB == "" {
				return errors.New("at least one of --signalp, --deeppeptide or --pred-db is required")
			}
			if changelogPath == "" {
				changelogPath = strings.TrimSuffix(output, ".csv") + "_logfile.log"
			}
			return runUpdate(args[0], signalpPath, deeppeptidePath, predDB,
				outputPath(output), outputPath(changelogPath), workers)
		},
	}

	cmd.Flags().StringVar(&signalpPath, "signalp", "", "SignalP 6.0 JSON output file")
	cmd.Flags().StringVar(&deeppeptidePath, "deeppeptide", "", "DeepPeptide JSON output file")
	cmd.Flags().StringVar(&predDB, "pred-db", "", "prediction store (enables both stages)")
	cmd.Flags().StringVarP(&output, "output", "o", "curated.csv", "curated dataset output path")
	cmd.Flags().StringVar(&changelogPath, "changelog", "", "change log path (default: derived from output)")
	cmd.Flags().IntVar(&workers, "workers", 0, "number of edit workers (default: number of CPUs)")

	return cmd
}

func runUpdate(inputPath, signalpPath, deeppeptidePath, predDB, output, changelogPath string, workers int) error {
	logger, err := buildLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	var (
		cleavage curate.CleavageLookup
		peptides curate.PeptideLookup
	)

	if predDB != "" {
		store, err := duckdb.Open(predDB)
		if err != nil {
			return err
		}
		defer store.Close()
		cleavage = store
		peptides = store
	}
	if signalpPath != "" {
		sites, err := predict.LoadSignalP(signalpPath)
		if err != nil {
			return err
		}
		logger.Info("loaded signal peptide predictions", zap.Int("count", len(sites)))
		cleavage = sites
	}
	if deeppeptidePath != "" {
		preds, err := predict.LoadDeepPeptide(deeppeptidePath)
		if err != nil {
			return err
		}
		logger.Info("loaded peptide predictions", zap.Int("count", len(preds)))
		peptides = preds
	}

	p, err := dataset.NewParser(inputPath)
	if err != nil {
		return err
	}
	defer p.Close()
	p.SetLogger(logger)

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create curated dataset: %w", err)
	}
	defer out.Close()

	w := dataset.NewWriter(out, p.Header())
	if err := w.WriteHeader(); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	editor := curate.NewEditor(cleavage, peptides)
	editor.SetLogger(logger)

	changeLog := curate.NewChangeLog()
	if err := editor.EditAll(p, w, changeLog, workers); err != nil {
		return err
	}

	if err := changeLog.FlushFile(changelogPath); err != nil {
		return err
	}

	fmt.Printf("Curated dataset saved to %s\n", output)
	fmt.Printf("Change log saved to %s\n", changelogPath)

	return nil
}
