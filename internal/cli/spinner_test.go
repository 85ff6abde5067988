package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

func newTestSpinner(ctx context.Context, message string) (*Spinner, *bytes.Buffer) {
	var buf bytes.Buffer
	s := newSpinnerWithContext(ctx, message)
	s.out = &buf
	return s, &buf
}

func TestSpinnerDrawsToWriter(t *testing.T) {
	s, buf := newTestSpinner(context.Background(), "Rendering colors.json...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "Rendering colors.json...") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, spinnerFrames[0]) {
		t.Errorf("output missing first frame: %q", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Errorf("Stop should leave a cleared line, got %q", out)
	}
	if !s.Cancelled() {
		t.Error("Stop should release the spinner context")
	}
}

func TestSpinnerStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s, buf := newTestSpinner(ctx, "Waiting")
	s.Start()

	select {
	case <-s.stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("spinner did not exit after its context expired")
	}
	if !s.Cancelled() {
		t.Error("Cancelled() = false after context timeout")
	}
	s.Stop()
	if !strings.HasSuffix(buf.String(), "\r") {
		t.Errorf("line not cleared: %q", buf.String())
	}
}

func TestSpinnerStopConcurrent(t *testing.T) {
	s, _ := newTestSpinner(context.Background(), "Stopping")
	s.Start()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Stop()
		}()
	}
	wg.Wait()
	s.Stop()
}

func TestSpinnerStopBeforeStart(t *testing.T) {
	s, buf := newTestSpinner(context.Background(), "never shown")

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop without Start blocked")
	}
	if strings.Contains(buf.String(), spinnerFrames[0]) {
		t.Error("a spinner that never started should not draw frames")
	}

	s.Start()
	s.Stop()
}

func TestSpinnerStopWithMessages(t *testing.T) {
	status := captureUI(t)

	ok, _ := newTestSpinner(context.Background(), "working")
	ok.Start()
	ok.StopWithSuccess("Rendered 3 bars")

	failed, _ := newTestSpinner(context.Background(), "working")
	failed.Start()
	failed.StopWithError("Render failed")

	out := status.String()
	for _, want := range []string{"✓", "Rendered 3 bars", "✗", "Render failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("status output missing %q:\n%s", want, out)
		}
	}
}
