package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AndreasWz/hymenopteran-venom-protein-dataset-curation/internal/dataset"
)

func newToFastaCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "tofasta <dataset.csv>",
		Short: "Convert dataset mature sequences to FASTA",
		Long: `Write one FASTA entry per record with a non-empty mature sequence,
using the Unique_ID as the header.`,
		Example: `  venomcurate tofasta Dataset.csv > mature.fasta
  venomcurate tofasta -o mature.fasta Dataset.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToFasta(args[0], outputPath(output))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "FASTA output path (default: stdout)")

	return cmd
}

func runToFasta(inputPath, output string) error {
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

	out := os.Stdout
	if output != "" && output != "-" {
		out, err = os.Create(output)
		if err != nil {
			return fmt.Errorf("create fasta output: %w", err)
		}
		defer out.Close()
	}

	count, err := dataset.WriteFASTA(p, out)
	if err != nil {
		return err
	}

	if out != os.Stdout {
		fmt.Printf("Wrote %d FASTA entries to %s\n", count, output)
	}

	return nil
}
