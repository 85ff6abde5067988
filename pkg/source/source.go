package source

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/matzehuels/colorbars/pkg/buildinfo"
	"github.com/matzehuels/colorbars/pkg/errors"
	"github.com/matzehuels/colorbars/pkg/freq"
	"github.com/matzehuels/colorbars/pkg/observability"
)

// Stdin is the location that reads from standard input.
const Stdin = "-"

const (
	httpTimeout = 30 * time.Second

	// MaxBodySize bounds how much of a remote document is read.
	MaxBodySize = 64 << 20
)

// Kind classifies a location.
type Kind int

const (
	KindFile Kind = iota
	KindStdin
	KindURL
)

func (k Kind) String() string {
	switch k {
	case KindStdin:
		return "stdin"
	case KindURL:
		return "url"
	default:
		return "file"
	}
}

// Classify reports which kind of location s is.
func Classify(location string) Kind {
	switch {
	case location == Stdin:
		return KindStdin
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return KindURL
	default:
		return KindFile
	}
}

// Loader fetches tables. The zero value is not usable; use NewLoader.
type Loader struct {
	http    *http.Client
	stdin   io.Reader
	headers map[string]string
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) { l.http = c }
}

// WithStdin sets the reader used for the "-" location.
func WithStdin(r io.Reader) Option {
	return func(l *Loader) { l.stdin = r }
}

// WithHeader adds a request header sent with every URL fetch.
func WithHeader(key, value string) Option {
	return func(l *Loader) { l.headers[key] = value }
}

// NewLoader returns a loader reading stdin from os.Stdin and fetching URLs
// with a 30 second timeout.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		http:    &http.Client{Timeout: httpTimeout},
		stdin:   os.Stdin,
		headers: map[string]string{"User-Agent": buildinfo.UserAgent(), "Accept": "application/json"},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the table at location with a default loader.
func Load(ctx context.Context, location string) (*freq.Table, error) {
	return NewLoader().Load(ctx, location)
}

// Load reads and decodes the table at location.
func (l *Loader) Load(ctx context.Context, location string) (*freq.Table, error) {
	data, err := l.Fetch(ctx, location)
	if err != nil {
		return nil, err
	}
	t, err := freq.Read(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", location)
	}
	return t, nil
}

// Fetch returns the raw bytes at location.
func (l *Loader) Fetch(ctx context.Context, location string) ([]byte, error) {
	switch Classify(location) {
	case KindStdin:
		data, err := io.ReadAll(l.stdin)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
		}
		return data, nil
	case KindURL:
		if err := errors.ValidateURL(location); err != nil {
			return nil, err
		}
		return l.fetchURL(ctx, location)
	default:
		return readFile(location)
	}
}

func readFile(path string) ([]byte, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "%s does not exist", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}
	return data, nil
}

func (l *Loader) fetchURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "build request for %s", url)
	}
	for k, v := range l.headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := l.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		if ctx.Err() != nil || isTimeout(err) {
			return nil, errors.Wrap(errors.ErrCodeTimeout, err, "fetch %s", url)
		}
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "fetch %s", url)
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "fetch %s", url)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "read %s", url)
	}
	if len(data) > MaxBodySize {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s is larger than %d bytes", url, MaxBodySize)
	}
	return data, nil
}

func checkStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "status %d", code)
	default:
		return errors.New(errors.ErrCodeNetwork, "status %d", code)
	}
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return stderrors.As(err, &t) && t.Timeout()
}

// Describe returns a short human-readable form of location for logs.
func Describe(location string) string {
	k := Classify(location)
	if k == KindStdin {
		return "stdin"
	}
	return fmt.Sprintf("%s %s", k, location)
}
