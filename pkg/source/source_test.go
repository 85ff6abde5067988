package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/matzehuels/colorbars/pkg/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"-", KindStdin},
		{"data.json", KindFile},
		{"/tmp/data.json", KindFile},
		{"http://example.com/a.json", KindURL},
		{"https://example.com/a.json", KindURL},
		{"ftp://example.com/a.json", KindFile},
	}
	for _, tt := range tests {
		if got := Classify(tt.in); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img_data.json")
	if err := os.WriteFile(path, []byte(`{"ff0000": 10, "00ff00": 30}`), 0o644); err != nil {
		t.Fatal(err)
	}

	tbl, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := strings.Join(tbl.Keys(), ","); got != "ff0000,00ff00" {
		t.Errorf("keys = %s, want document order", got)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadStdin(t *testing.T) {
	l := NewLoader(WithStdin(strings.NewReader(`{"abc": 2}`)))
	tbl, err := l.Load(context.Background(), Stdin)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if v, _ := tbl.Get("abc"); v != 2 {
		t.Errorf("abc = %v, want 2", v)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	l := NewLoader(WithStdin(strings.NewReader(`[1, 2]`)))
	_, err := l.Load(context.Background(), Stdin)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

func TestLoadURL(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"0000ff": 5}`))
	}))
	defer srv.Close()

	tbl, err := Load(context.Background(), srv.URL+"/data.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tbl.Len())
	}
	if !strings.HasPrefix(gotUA, "colorbars/") {
		t.Errorf("User-Agent = %q", gotUA)
	}
}

func TestLoadURLStatus(t *testing.T) {
	tests := []struct {
		status int
		want   errors.Code
	}{
		{http.StatusNotFound, errors.ErrCodeNotFound},
		{http.StatusInternalServerError, errors.ErrCodeNetwork},
		{http.StatusForbidden, errors.ErrCodeNetwork},
	}
	for _, tt := range tests {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(tt.status)
		}))

		_, err := Load(context.Background(), srv.URL)
		srv.Close()

		if !errors.Is(err, tt.want) {
			t.Errorf("status %d: err = %v, want %s", tt.status, err, tt.want)
		}
		if calls.Load() != 1 {
			t.Errorf("status %d: %d requests, want exactly 1", tt.status, calls.Load())
		}
	}
}

func TestLoadURLCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, srv.URL)
	if !errors.Is(err, errors.ErrCodeTimeout) {
		t.Errorf("err = %v, want TIMEOUT", err)
	}
}

func TestDescribe(t *testing.T) {
	if got := Describe("-"); got != "stdin" {
		t.Errorf("Describe(-) = %q", got)
	}
	if got := Describe("a.json"); got != "file a.json" {
		t.Errorf("Describe(a.json) = %q", got)
	}
}
