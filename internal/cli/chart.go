package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Evgya/anime-analysis/pkg/chart"
	"github.com/Evgya/anime-analysis/pkg/chart/sink"
	"github.com/Evgya/anime-analysis/pkg/dataset"
	apperrors "github.com/Evgya/anime-analysis/pkg/errors"
)

// chartCommand creates the chart command with one subcommand per chart kind.
func (c *CLI) chartCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render dataset charts",
		Long: `Render a dataset column (or the whole dataset) as a chart.

All chart subcommands read a CSV dataset and write an SVG or PNG file.
Column-based charts prompt interactively for a column when --column is not
given and the terminal is interactive.`,
	}

	cmd.AddCommand(c.chartKindCommand("donut", "Missing-value donut for a column",
		`Render a donut chart contrasting missing and present values of a column.

The missing slice is pulled out of the ring and the percentages are computed
over the column's total row count.`))
	cmd.AddCommand(c.chartKindCommand("bar", "Top categories as vertical bars",
		`Render the most frequent values of a column as vertical bars.

Only the top N values are shown (default `+fmt.Sprint(chart.DefaultLimit)+`); the remainder is collapsed
into an "Other" bar. Percentages are relative to the displayed total.`))
	cmd.AddCommand(c.chartKindCommand("hbar", "Top categories as horizontal bars",
		`Render the most frequent values of a column as horizontal bars.

Only the top N values are shown (default `+fmt.Sprint(chart.DefaultLimit)+`); the remainder is collapsed
into an "Other" bar. Percentages are relative to the displayed total.`))
	cmd.AddCommand(c.chartKindCommand("heatmap", "Correlation heatmap over numeric columns",
		`Render a Pearson correlation heatmap over all numeric columns.

Cells are annotated with the coefficient to two decimals. Columns with no
variance produce blank cells.`))
	cmd.AddCommand(c.chartKindCommand("wordcloud", "Word cloud of column values",
		`Render the values of a column as a word cloud sized by frequency.

Word clouds are raster-only; the --format flag must be png.`))

	return cmd
}

// chartOptions collects the flags shared by all chart subcommands.
type chartOptions struct {
	input  string
	column string
	title  string
	limit  int
	format string
	output string
}

// chartKindCommand builds the cobra command for a single chart kind.
func (c *CLI) chartKindCommand(kind, short, long string) *cobra.Command {
	var opts chartOptions

	cmd := &cobra.Command{
		Use:   kind + " [dataset.csv]",
		Short: short,
		Long:  long,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.input = args[0]
			if err := apperrors.ValidateOutputFormat(opts.format); err != nil {
				return err
			}
			return c.runChart(cmd.Context(), kind, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <kind>.<format>)")
	cmd.Flags().StringVar(&opts.title, "title", "", "chart title")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "png", "output format: png (default), svg")
	if kind != "heatmap" {
		cmd.Flags().StringVarP(&opts.column, "column", "c", "", "dataset column (interactive prompt when omitted)")
	}
	if kind == "bar" || kind == "hbar" {
		cmd.Flags().IntVar(&opts.limit, "limit", chart.DefaultLimit, "number of categories before collapsing into Other")
	}

	return cmd
}

// runChart loads the dataset, builds the figure, and writes the artifact.
func (c *CLI) runChart(ctx context.Context, kind string, opts chartOptions) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	d, err := dataset.ReadCSVFile(opts.input)
	if err != nil {
		return fmt.Errorf("load dataset %s: %w", opts.input, err)
	}
	logger.Debug("dataset loaded", "rows", d.NumRows(), "columns", len(d.Columns()))

	fig, err := c.buildFigure(kind, d, &opts)
	if err != nil {
		return err
	}

	spinner := newSpinner(fmt.Sprintf("Rendering %s...", kind))
	spinner.Start()

	var data []byte
	switch opts.format {
	case "svg":
		data, err = sink.RenderSVG(fig)
	default:
		data, err = sink.RenderPNG(fig)
	}
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return fmt.Errorf("render %s: %w", kind, err)
	}
	spinner.Stop()

	output := opts.output
	if output == "" {
		output = kind + "." + opts.format
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	prog.done(fmt.Sprintf("Rendered %s chart", kind))

	printSuccess("Rendered %s chart", kind)
	printFile(output)
	return nil
}

// buildFigure resolves the column (prompting if necessary) and constructs
// the figure description.
func (c *CLI) buildFigure(kind string, d *dataset.Dataset, opts *chartOptions) (chart.Figure, error) {
	if kind == "heatmap" {
		return chart.CorrelationHeatmap(d, opts.title), nil
	}

	if opts.column == "" {
		name, err := pickColumn(d)
		if err != nil {
			return nil, err
		}
		opts.column = name
	}

	col, ok := d.Column(opts.column)
	if !ok {
		return nil, apperrors.New(apperrors.ErrCodeInvalidColumn,
			"no such column: %s (available: %s)", opts.column, strings.Join(d.Columns(), ", "))
	}

	switch kind {
	case "donut":
		return chart.MissingValueDonut(col), nil
	case "bar":
		return chart.CategoryBar(col, opts.title, opts.limit), nil
	case "hbar":
		return chart.CategoryBarH(col, opts.title, opts.limit), nil
	case "wordcloud":
		return chart.WordCloud(col, opts.title), nil
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidChart, "unknown chart kind: %q", kind)
	}
}

// pickColumn runs the interactive column picker.
func pickColumn(d *dataset.Dataset) (string, error) {
	if len(d.Columns()) == 0 {
		return "", apperrors.New(apperrors.ErrCodeInvalidDataset, "dataset has no columns")
	}

	model := NewColumnListModel(d)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", fmt.Errorf("column picker: %w", err)
	}

	result, ok := final.(ColumnListModel)
	if !ok || result.Selected == "" {
		return "", apperrors.New(apperrors.ErrCodeInvalidColumn, "no column selected")
	}
	return result.Selected, nil
}
