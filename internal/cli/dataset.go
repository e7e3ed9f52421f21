package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Evgya/anime-analysis/pkg/dataset"
)

// datasetCommand creates the dataset command group.
func (c *CLI) datasetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Inspect CSV datasets",
	}

	cmd.AddCommand(c.datasetInfoCommand())

	return cmd
}

// datasetInfoCommand creates the dataset info command.
func (c *CLI) datasetInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info [dataset.csv]",
		Short: "Summarize a dataset's columns and missing values",
		Long: `Print a per-column summary of a CSV dataset: the inferred type
(numeric or text), the number of present values, the number of missing
values, and the count of distinct values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDatasetInfo(args[0])
		},
	}
}

func runDatasetInfo(path string) error {
	d, err := dataset.ReadCSVFile(path)
	if err != nil {
		return fmt.Errorf("load dataset %s: %w", path, err)
	}

	names := d.Columns()
	if len(names) == 0 {
		printWarning("Dataset is empty")
		return nil
	}

	printInfo("%s", path)
	printStats(d.NumRows(), len(names))
	printNewline()

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		col, _ := d.Column(name)
		missing, present := col.Missing()

		kind := "text"
		if col.IsNumeric() {
			kind = "numeric"
		}

		missingStr := "—"
		if missing > 0 {
			missingStr = strconv.Itoa(missing)
		}

		rows = append(rows, []string{
			name,
			kind,
			strconv.Itoa(present),
			missingStr,
			strconv.Itoa(len(col.Counts())),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Column", "Type", "Present", "Missing", "Distinct").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleValue
			}
			return StyleDim
		})

	fmt.Println(t.Render())

	numeric := d.NumericColumns()
	if len(numeric) > 0 {
		printDetail("numeric columns: %s", strings.Join(numeric, ", "))
	}
	return nil
}
