package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/colorbars/pkg/errors"
	"github.com/matzehuels/colorbars/pkg/pipeline"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derived from input", "", "data/colors.json", "data/colors"},
		{"input without extension", "", "colors", "colors"},
		{"stdin input", "", "-", appName},
		{"url input", "", "https://example.com/colors.json", appName},
		{"output with format extension", "out/chart.svg", "colors.json", "out/chart"},
		{"output with html extension", "chart.html", "colors.json", "chart"},
		{"output without extension", "out/chart", "colors.json", "out/chart"},
		{"output with foreign extension", "chart.v2", "colors.json", "chart.v2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestOutputPaths(t *testing.T) {
	single := outputPaths([]string{"png"}, "colors.json", "picture.out")
	if single["png"] != "picture.out" {
		t.Errorf("single format should use output as-is, got %q", single["png"])
	}

	multi := outputPaths([]string{"svg", "json"}, "colors.json", "chart.svg")
	if multi["svg"] != "chart.svg" || multi["json"] != "chart.json" {
		t.Errorf("multiple formats = %v", multi)
	}

	derived := outputPaths([]string{"svg", "json"}, "dir/colors.json", "")
	if derived["svg"] != "dir/colors.svg" {
		t.Errorf("derived path = %q, want dir/colors.svg", derived["svg"])
	}
	if derived["json"] != "dir/colors.ranked.json" {
		t.Errorf("derived json path = %q, want dir/colors.ranked.json", derived["json"])
	}
}

func TestWriteArtifactsKeepsInputTable(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "colors.json")
	original := `{"ff0000":10,"00ff00":30,"0000ff":20}`
	if err := os.WriteFile(input, []byte(original), 0o644); err != nil {
		t.Fatal(err)
	}

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"json": []byte(`{"00ff00":30}`)},
		formats:   []string{"json"},
		input:     input,
	})
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}
	ranked, err := os.ReadFile(filepath.Join(dir, "colors.ranked.json"))
	if err != nil {
		t.Fatalf("read ranked table: %v", err)
	}
	if string(ranked) != `{"00ff00":30}` {
		t.Errorf("ranked table = %s", ranked)
	}

	err = writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"json": []byte(`{"00ff00":30}`)},
		formats:   []string{"json"},
		input:     input,
		output:    input,
	})
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("explicit output onto the input: err = %v, want INVALID_PATH", err)
	}

	got, err := os.ReadFile(input)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != original {
		t.Errorf("input table changed to %s", got)
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"svg": []byte("<svg/>"), "json": []byte("{}")},
		formats:   []string{"svg", "json"},
		input:     "colors.json",
		output:    filepath.Join(dir, "chart"),
	})
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}

	for name, want := range map[string]string{"chart.svg": "<svg/>", "chart.json": "{}"} {
		got, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if string(got) != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}
}

func TestWriteArtifactsStdoutNeedsOneFormat(t *testing.T) {
	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"svg": nil, "png": nil},
		formats:   []string{"svg", "png"},
		output:    "-",
	})
	if err == nil {
		t.Error("expected error for two formats on stdout")
	}
}

func TestDefaultConstants(t *testing.T) {
	if pipeline.DefaultWidth != 960 {
		t.Errorf("pipeline.DefaultWidth = %v, want 960", pipeline.DefaultWidth)
	}
	if pipeline.DefaultHeight != 500 {
		t.Errorf("pipeline.DefaultHeight = %v, want 500", pipeline.DefaultHeight)
	}
	if pipeline.DefaultLimit != 200 {
		t.Errorf("pipeline.DefaultLimit = %v, want 200", pipeline.DefaultLimit)
	}
}
