package cli

import (
	"bytes"
	"context"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func writeSampleCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "anime.csv")
	csv := "title,type,episodes,score\nBebop,tv,26,8.8\nAkira,movie,1,8.1\nFLCL,ova,6,\nMononoke,movie,1,8.4\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testCLI() *CLI {
	return New(io.Discard, log.InfoLevel)
}

func TestRunChart_DonutPNG(t *testing.T) {
	input := writeSampleCSV(t)
	output := filepath.Join(t.TempDir(), "out.png")

	err := testCLI().runChart(context.Background(), "donut", chartOptions{
		input:  input,
		column: "score",
		format: "png",
		output: output,
	})
	if err != nil {
		t.Fatalf("runChart() error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("output is not valid PNG: %v", err)
	}
}

func TestRunChart_BarSVG(t *testing.T) {
	input := writeSampleCSV(t)
	output := filepath.Join(t.TempDir(), "out.svg")

	err := testCLI().runChart(context.Background(), "bar", chartOptions{
		input:  input,
		column: "type",
		title:  "Media types",
		limit:  10,
		format: "svg",
		output: output,
	})
	if err != nil {
		t.Fatalf("runChart() error: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	svg := string(data)
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "Media types") {
		t.Errorf("unexpected SVG output: %.80s", svg)
	}
}

func TestRunChart_HeatmapNeedsNoColumn(t *testing.T) {
	input := writeSampleCSV(t)
	output := filepath.Join(t.TempDir(), "out.svg")

	err := testCLI().runChart(context.Background(), "heatmap", chartOptions{
		input:  input,
		format: "svg",
		output: output,
	})
	if err != nil {
		t.Fatalf("runChart() error: %v", err)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestRunChart_UnknownColumn(t *testing.T) {
	input := writeSampleCSV(t)

	err := testCLI().runChart(context.Background(), "donut", chartOptions{
		input:  input,
		column: "nope",
		format: "png",
		output: filepath.Join(t.TempDir(), "out.png"),
	})
	if err == nil {
		t.Fatal("runChart() with unknown column should fail")
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Errorf("error should name the column: %v", err)
	}
}

func TestRunChart_WordCloudSVGUnsupported(t *testing.T) {
	input := writeSampleCSV(t)

	err := testCLI().runChart(context.Background(), "wordcloud", chartOptions{
		input:  input,
		column: "type",
		format: "svg",
		output: filepath.Join(t.TempDir(), "out.svg"),
	})
	if err == nil {
		t.Fatal("wordcloud with svg format should fail")
	}
}

func TestRunChart_MissingInput(t *testing.T) {
	err := testCLI().runChart(context.Background(), "donut", chartOptions{
		input:  filepath.Join(t.TempDir(), "missing.csv"),
		column: "score",
		format: "png",
	})
	if err == nil {
		t.Fatal("runChart() with missing input should fail")
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := testCLI().RootCommand()

	want := []string{"lookup", "chart", "dataset", "serve", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestRootCommand_ContextLogger(t *testing.T) {
	c := testCLI()
	root := c.RootCommand()
	root.SetContext(context.Background())

	if err := root.PersistentPreRunE(root, nil); err != nil {
		t.Fatalf("PersistentPreRunE failed: %v", err)
	}
	if got := loggerFromContext(root.Context()); got != c.Logger {
		t.Error("command context should carry the CLI logger")
	}
}

func TestChartCommand_Kinds(t *testing.T) {
	chartCmd := testCLI().chartCommand()

	want := []string{"donut", "bar", "hbar", "heatmap", "wordcloud"}
	if got := len(chartCmd.Commands()); got != len(want) {
		t.Errorf("chart has %d subcommands, want %d", got, len(want))
	}
	for _, name := range want {
		found := false
		for _, cmd := range chartCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("chart command missing kind %q", name)
		}
	}
}
