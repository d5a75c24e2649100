package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/davetashner/gptresearch/internal/output"
)

// Research-specific flag values.
var (
	researchRaw         bool
	researchFormat      string
	researchConcurrency int
)

// researchCmd runs one or more research queries and prints the results.
var researchCmd = &cobra.Command{
	Use:   "research <query>...",
	Short: "Research one or more queries and print the findings",
	Long: `Run each query through the search-augmented model and print the answer
followed by its cited sources. Multiple queries run concurrently; results are
printed in argument order.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResearch,
}

func init() {
	researchCmd.Flags().BoolVar(&researchRaw, "raw", false, "print the exact result strings without headings (same as --format raw)")
	researchCmd.Flags().StringVarP(&researchFormat, "format", "f", "markdown", "output format: "+strings.Join(output.Names(), ", "))
	researchCmd.Flags().IntVarP(&researchConcurrency, "concurrency", "c", 4, "maximum queries in flight")
}

func runResearch(cmd *cobra.Command, args []string) error {
	if researchConcurrency < 1 {
		return exitError(ExitFailure, "gptresearch: --concurrency must be at least 1, got %d", researchConcurrency)
	}
	format := researchFormat
	if researchRaw {
		format = "raw"
	}
	formatter, err := output.GetFormatter(format)
	if err != nil {
		return exitError(ExitFailure, "gptresearch: %v", err)
	}

	ctx := cmd.Context()
	a, err := buildApp(ctx, cmd.Flags())
	if err != nil {
		return err
	}
	defer a.close(ctx)

	results := make([]string, len(args))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(researchConcurrency)
	for i, q := range args {
		g.Go(func() error {
			res, err := a.researcher.Research(gctx, q)
			if err != nil {
				return fmt.Errorf("query %q: %w", q, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return exitError(ExitFailure, "gptresearch: %v", err)
	}

	report := output.Report{
		Results:           make([]output.Result, len(args)),
		Model:             a.researcher.Model(),
		SearchContextSize: string(a.researcher.SearchContextSize()),
	}
	for i, q := range args {
		report.Results[i] = output.Result{Query: q, Result: results[i]}
	}
	return formatter.Format(report, cmd.OutOrStdout())
}
