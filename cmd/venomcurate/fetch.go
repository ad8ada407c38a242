package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AndreasWz/hymenopteran-venom-protein-dataset-curation/internal/dataset"
	"github.com/AndreasWz/hymenopteran-venom-protein-dataset-curation/internal/uniprot"
)

func newFetchCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "fetch <dataset.csv>",
		Short: "Fetch missing sequences from UniProt",
		Long: `For records where both the mature and full sequences are missing but a
UniProt accession is present, fetch the precursor sequence from UniProt
and store it as the full sequence. Only such records are written to the
output.`,
		Example: `  venomcurate fetch -o fetched_sequences.csv Dataset.csv`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(args[0], outputPath(output))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "fetched_sequences.csv", "output path")

	return cmd
}

func runFetch(inputPath, output string) error {
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

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer out.Close()

	client := uniprot.NewClient()
	client.SetLogger(logger)

	stats, err := client.FillMissingSequences(p, dataset.NewWriter(out, p.Header()))
	if err != nil {
		return err
	}

	fmt.Printf("Rows processed: %d\n", stats.Processed)
	fmt.Printf("Rows with missing sequences: %d\n", stats.Missing)
	fmt.Printf("Successful fetches: %d\n", stats.Fetched)
	fmt.Printf("Output saved to %s\n", output)

	return nil
}
