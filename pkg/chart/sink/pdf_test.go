package sink

import (
	"bytes"
	"testing"

	"github.com/matzehuels/colorbars/pkg/errors"
)

func TestRenderPDF(t *testing.T) {
	data, err := RenderPDF(testFrame(), WithPDFSVGOptions(WithTitle("pdf")))
	if !RSVGAvailable() {
		if !errors.Is(err, errors.ErrCodeUnsupported) {
			t.Fatalf("RenderPDF without rsvg-convert: err = %v, want UNSUPPORTED", err)
		}
		t.Skip("rsvg-convert not installed")
	}
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF")
	}
}
