package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hvaclab/mchxclean/pkg/mchxclean"
)

var (
	outputPath  string
	previewRows int
)

var cleanCmd = &cobra.Command{
	Use:   "clean [input.xlsx]",
	Short: "Consolidate a result workbook into a cleaned single-sheet workbook",
	Args:  cobra.ExactArgs(1),
	RunE:  runClean,
}

func init() {
	cleanCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: configured output filename)")
	cleanCmd.Flags().IntVar(&previewRows, "preview", 0, "Print the first N consolidated rows")
}

func runClean(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "file not found: %s\n", inputPath)
		return err
	}

	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer in.Close()

	opts := mchxclean.DefaultOptions()
	opts.Progress = func(p mchxclean.ProgressEvent) {
		fmt.Fprintf(os.Stderr, "\r%3d%% %s", p.Percent, p.Sheet)
	}

	res, err := mchxclean.Clean(in, opts)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		msg, hint := mchxclean.UserMessage(err)
		fmt.Fprintln(os.Stderr, msg)
		fmt.Fprintln(os.Stderr, hint)
		return err
	}

	out := outputPath
	if out == "" {
		out = viper.GetString("output_filename")
	}
	if err := os.WriteFile(out, res.Workbook.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Extracted %d records into %s\n", len(res.Table.Records), out)

	if previewRows > 0 {
		printPreview(res, previewRows)
	}
	return nil
}

func printPreview(res *mchxclean.Result, n int) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, label := range res.Table.Fields {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, label)
	}
	fmt.Fprintln(w)
	for _, row := range res.Table.Preview(n) {
		for i, v := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			if v != nil {
				fmt.Fprintf(w, "%v", v)
			}
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}
