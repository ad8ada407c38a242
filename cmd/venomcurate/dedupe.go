package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/AndreasWz/hymenopteran-venom-protein-dataset-curation/internal/dataset"
	"github.com/AndreasWz/hymenopteran-venom-protein-dataset-curation/internal/dedupe"
)

func newDedupeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "dedupe <dataset.csv>",
		Short: "Detect duplicate sequences and write a report",
		Long: `Scan the dataset for records sharing identical mature or full
sequences and write a report grouping them into both-duplicated,
mature-only and full-only categories.`,
		Example: `  venomcurate dedupe Dataset.csv
  venomcurate dedupe -o duplicate_log_file.txt Dataset.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDedupe(args[0], outputPath(output))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "duplicate_log_file.txt", "report output path")

	return cmd
}

func runDedupe(inputPath, reportPath string) error {
	logger, err := buildLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	p, err := dataset.NewParser(inputPath)
	if err != nil {
		return err
	}
	defer p.Close()
	p.SetLogger(logger)

	ix, err := dedupe.BuildIndexes(p)
	if err != nil {
		return err
	}
	c := dedupe.Classify(ix)

	out, err := os.Create(reportPath)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer out.Close()

	if err := dedupe.WriteReport(out, c, time.Now()); err != nil {
		return err
	}

	fmt.Printf("Total sequences processed: %d\n", c.Total)
	fmt.Printf("Duplicate mature sequences: %d\n", c.MatureDupe)
	fmt.Printf("Duplicate full sequences: %d\n", c.FullDupe)
	fmt.Printf("Both sequences duplicated: %d\n", len(c.Both))
	fmt.Printf("Report written to %s\n", reportPath)

	return nil
}
