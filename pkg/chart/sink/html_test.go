package sink

import (
	"strings"
	"testing"
)

func TestRenderHTML(t *testing.T) {
	data, err := RenderHTML(testFrame(), WithHTMLTitle("My colours"), WithHTMLBackground("#111111"))
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	html := string(data)

	for _, want := range []string{"<html", "echarts", "My colours", "#00ff00", "#0000ff", "#ff0000", "Frequency"} {
		if !strings.Contains(html, want) {
			t.Errorf("html missing %q", want)
		}
	}
	if strings.Index(html, "#00ff00") > strings.Index(html, "#ff0000") {
		t.Error("bars should appear in ranked order")
	}
}
