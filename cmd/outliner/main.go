// Command outliner extracts a PDF's heading structure using font-size
// analysis and writes the result as JSON.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/tsawler/outliner"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/report"
)

const version = "1.0.0"

var (
	minSize      float64
	outputPath   string
	analyzeFonts bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:     "outliner [pdf]",
	Short:   "Extract headings from PDF documents using font analysis",
	Version: version,
	Long: `Outliner detects the heading structure of a PDF document by analyzing
its font-size distribution: it discovers the body-text size, clusters the
remaining sizes into hierarchy levels, and emits the detected headings as a
page-ordered JSON array.

When --min-size is omitted, the header threshold is auto-detected.`,
	Example: `  outliner document.pdf
  outliner document.pdf --min-size 14
  outliner document.pdf --output headers.json --verbose
  outliner document.pdf --analyze-fonts`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().Float64Var(&minSize, "min-size", 0, "minimum font size for headers (auto-detected if not set)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "detected_headers.json", "output JSON file path")
	rootCmd.Flags().BoolVar(&analyzeFonts, "analyze-fonts", false, "show font analysis without detecting headers")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the full JSON output")
}

func run(cmd *cobra.Command, args []string) error {
	detector := outliner.Open(args[0])
	if minSize > 0 {
		detector = detector.MinFontSize(minSize)
	}

	if analyzeFonts {
		return runAnalysis(cmd, detector)
	}
	return runDetect(cmd, detector)
}

func runAnalysis(cmd *cobra.Command, detector *outliner.Detector) error {
	analysis, err := detector.FontAnalysis()
	if err != nil {
		return err
	}

	cmd.Printf("Unique font sizes:  %d\n", len(analysis.AllSizes))
	cmd.Printf("All sizes:          %v\n", head(analysis.AllSizes, 10))
	cmd.Printf("Header sizes:       %v\n", analysis.HeaderSizes)
	cmd.Printf("Body text size:     %.1fpt\n", analysis.BodyTextSize)
	cmd.Printf("Hierarchy levels:   %d\n", analysis.TotalLevels)
	cmd.Println("Most frequent sizes:")
	for _, p := range analysis.FontFrequency {
		cmd.Printf("  %6.1fpt  ×%d\n", p.Size, p.Count)
	}

	if verbose {
		data, err := report.MarshalAnalysis(analysis)
		if err != nil {
			return err
		}
		cmd.Println()
		cmd.Print(string(data))
	}
	return nil
}

func runDetect(cmd *cobra.Command, detector *outliner.Detector) error {
	headers, err := detector.SaveHeaders(outputPath)
	if err != nil {
		return err
	}

	if len(headers) == 0 {
		cmd.PrintErrln("No headers detected. Try a lower threshold with --min-size.")
		os.Exit(1)
	}

	cmd.Printf("Detected %d headers, saved to %s\n\n", len(headers), outputPath)
	printByLevel(cmd, headers)

	if verbose {
		data, err := report.MarshalHeaders(headers)
		if err != nil {
			return err
		}
		cmd.Println()
		cmd.Print(string(data))
	}
	return nil
}

// printByLevel groups the records by hierarchy level for display.
func printByLevel(cmd *cobra.Command, headers []model.HeaderRecord) {
	byLevel := make(map[int][]model.HeaderRecord)
	for _, h := range headers {
		byLevel[h.HeaderLevel] = append(byLevel[h.HeaderLevel], h)
	}

	levels := make([]int, 0, len(byLevel))
	for level := range byLevel {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	for _, level := range levels {
		records := byLevel[level]
		cmd.Printf("%s: %d headers\n", model.LevelName(level), len(records))
		for _, h := range records {
			cmd.Printf("  page %2d: %s\n", h.Page, h.Header)
		}
	}
}

func head(sizes []float64, n int) []float64 {
	if len(sizes) > n {
		return sizes[:n]
	}
	return sizes
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
