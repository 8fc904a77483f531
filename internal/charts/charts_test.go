package charts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderDonutChart(t *testing.T) {
	data := []DataPoint{
		{Label: "W", Value: 4},
		{Label: "U", Value: 8},
		{Label: "C", Value: 1},
	}

	config := DefaultChartConfig()
	config.Title = "Color distribution"
	config.Colors = ManaColors(data)

	path := filepath.Join(t.TempDir(), "colors.html")
	if err := RenderDonutChart(data, config, path); err != nil {
		t.Fatalf("RenderDonutChart() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read chart file: %v", err)
	}
	if !strings.Contains(string(content), "echarts") {
		t.Error("rendered file does not look like an echarts page")
	}
}

func TestRenderBarChart(t *testing.T) {
	data := []DataPoint{
		{Label: "Creatures", Value: 24},
		{Label: "Lands", Value: 22},
	}

	path := filepath.Join(t.TempDir(), "types.html")
	if err := RenderBarChart(data, DefaultChartConfig(), path); err != nil {
		t.Fatalf("RenderBarChart() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat chart file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}
}

func TestManaColors(t *testing.T) {
	data := []DataPoint{{Label: "G"}, {Label: "Creatures"}}
	colors := ManaColors(data)

	if colors[0] != ManaColorHex["G"] {
		t.Errorf("G color = %s", colors[0])
	}
	if colors[1] == "" {
		t.Error("unknown label got no fallback color")
	}
}
