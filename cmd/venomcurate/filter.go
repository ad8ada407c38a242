package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/AndreasWz/hymenopteran-venom-protein-dataset-curation/internal/annotlog"
	"github.com/AndreasWz/hymenopteran-venom-protein-dataset-curation/internal/filter"
)

func newFilterCmd() *cobra.Command {
	var (
		logPath string
		outDir  string
	)

	cmd := &cobra.Command{
		Use:   "filter <dataset.csv>",
		Short: "Filter the dataset based on review-log annotations",
		Long: `Apply the keep (+), remove (-) and uncertain (?) decisions from a
review log to the dataset. Two output variants are produced: one
treating uncertain lines as keep, one treating them as remove. Lines
not mentioned in the log are always kept.`,
		Example: `  venomcurate filter --log duplicate_log_file.txt Dataset.csv`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				outDir = viper.GetString("output.dir")
			}
			return runFilter(args[0], logPath, outDir)
		},
	}

	cmd.Flags().StringVar(&logPath, "log", "", "annotated review log (required)")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "output directory (default: configured output dir)")
	cmd.MarkFlagRequired("log")

	return cmd
}

func runFilter(inputPath, logPath, outDir string) error {
	logger, err := buildLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	sets, err := annotlog.ParseFile(logPath, logger)
	if err != nil {
		return err
	}

	keepOut := filepath.Join(outDir, "Dataset_filtered_keep_uncertain.csv")
	removeOut := filepath.Join(outDir, "Dataset_filtered_remove_uncertain.csv")

	if _, err := filter.ApplyFile(inputPath, keepOut, sets, true); err != nil {
		return err
	}
	if _, err := filter.ApplyFile(inputPath, removeOut, sets, false); err != nil {
		return err
	}

	fmt.Printf("Lines marked with +: %d\n", len(sets.Keep))
	fmt.Printf("Lines marked with -: %d\n", len(sets.Remove))
	fmt.Printf("Lines marked with ?: %d\n", len(sets.Uncertain))
	if sets.Malformed > 0 {
		fmt.Printf("Malformed line references skipped: %d\n", sets.Malformed)
	}
	fmt.Printf("Created %s (uncertain kept)\n", keepOut)
	fmt.Printf("Created %s (uncertain removed)\n", removeOut)

	return nil
}
