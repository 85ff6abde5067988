package server

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"github.com/matzehuels/colorbars/pkg/buildinfo"
	"github.com/matzehuels/colorbars/pkg/errors"
	"github.com/matzehuels/colorbars/pkg/freq"
	"github.com/matzehuels/colorbars/pkg/pipeline"
)

// Response headers describing a rendered chart.
const (
	RunIDHeader = "X-Run-Id"
	CacheHeader = "X-Cache"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font: 10px sans-serif; }
.bar:hover { opacity: 0.8; }
</style>
</head>
<body>
{{.SVG}}
</body>
</html>
`))

type indexPage struct {
	Title string
	SVG   template.HTML
}

type healthResponse struct {
	Status  string `json:"status"`
	Entries int    `json:"entries"`
	Source  string `json:"source,omitempty"`
	Version string `json:"version"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	opts, err := s.requestOptions(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	opts.Formats = []string{pipeline.FormatSVG}
	opts.Tooltips = true

	res, err := s.runner.RenderTable(r.Context(), s.table, opts)
	if err != nil {
		renderError(w, r, err)
		return
	}

	title := opts.Title
	if title == "" {
		title = "colorbars"
	}
	var buf bytes.Buffer
	page := indexPage{Title: title, SVG: template.HTML(res.Artifacts[pipeline.FormatSVG])}
	if err := indexTemplate.Execute(&buf, page); err != nil {
		renderError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "render index"))
		return
	}
	writeResult(w, res)
	writeBody(w, pipeline.ContentTypes[pipeline.FormatHTML], buf.Bytes())
}

func (s *Server) handleChart(format string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := s.requestOptions(r)
		if err != nil {
			renderError(w, r, err)
			return
		}
		opts.Formats = []string{format}

		res, err := s.runner.RenderTable(r.Context(), s.table, opts)
		if err != nil {
			renderError(w, r, err)
			return
		}
		writeResult(w, res)
		writeBody(w, pipeline.ContentTypes[format], res.Artifacts[format])
	}
}

func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	data, err := s.table.MarshalJSON()
	if err != nil {
		renderError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "encode table"))
		return
	}
	writeBody(w, pipeline.ContentTypes[pipeline.FormatJSON], data)
}

func (s *Server) handleRanked(w http.ResponseWriter, r *http.Request) {
	opts, err := s.requestOptions(r)
	if err != nil {
		renderError(w, r, err)
		return
	}
	if err := opts.ValidateForRender(); err != nil {
		renderError(w, r, err)
		return
	}
	data, err := freq.Rank(s.table, opts.Limit).MarshalJSON()
	if err != nil {
		renderError(w, r, errors.Wrap(errors.ErrCodeInternal, err, "encode ranked table"))
		return
	}
	writeBody(w, pipeline.ContentTypes[pipeline.FormatJSON], data)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, healthResponse{
		Status:  "ok",
		Entries: s.table.Len(),
		Source:  s.source,
		Version: buildinfo.Version,
	})
}

// requestOptions overlays the limit, width and height query parameters on
// the server defaults.
func (s *Server) requestOptions(r *http.Request) (pipeline.Options, error) {
	opts := s.defaults
	opts.Source = ""
	opts.Formats = nil

	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "limit must be an integer, got %q", v)
		}
		if err := errors.ValidateLimit(n); err != nil {
			return opts, err
		}
		opts.Limit = n
	}
	for _, p := range []struct {
		name string
		dst  *float64
	}{{"width", &opts.Width}, {"height", &opts.Height}} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidSize, err, "%s must be a number, got %q", p.name, v)
		}
		if f <= 0 {
			return opts, errors.New(errors.ErrCodeInvalidSize, "%s must be positive, got %g", p.name, f)
		}
		*p.dst = f
	}
	return opts, nil
}

func writeResult(w http.ResponseWriter, res *pipeline.Result) {
	w.Header().Set(RunIDHeader, res.RunID.String())
	if res.CacheInfo.RenderHit {
		w.Header().Set(CacheHeader, "hit")
	} else {
		w.Header().Set(CacheHeader, "miss")
	}
}

func writeBody(w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
