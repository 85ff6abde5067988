package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	h := NewLogHooks(logger)
	ctx := context.Background()

	h.OnLoadComplete(ctx, "data.json", 3, time.Millisecond, nil)
	h.OnRankComplete(ctx, 3, 200, 3, time.Microsecond)
	h.OnCacheHit(ctx, "artifact")
	h.OnRenderComplete(ctx, []string{"png"}, time.Millisecond, errors.New("boom"))

	out := buf.String()
	for _, want := range []string{"load complete", "entries=3", "ranked", "cache hit", "render failed", "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogHooksInstall(t *testing.T) {
	defer Reset()

	h := NewLogHooks(log.New(&bytes.Buffer{}))
	h.Install()

	if Pipeline() != h || Cache() != h || HTTP() != h {
		t.Error("Install should register the hooks for every category")
	}
}
