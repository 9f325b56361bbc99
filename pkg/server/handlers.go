package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/matzehuels/fontroute/pkg/catalog"
	"github.com/matzehuels/fontroute/pkg/errors"
	"github.com/matzehuels/fontroute/pkg/fallback"
	"github.com/matzehuels/fontroute/pkg/observability"
	"github.com/matzehuels/fontroute/pkg/render/nodelink"
)

type healthResponse struct {
	Status   string `json:"status"`
	Revision string `json:"revision"`
	Fonts    int    `json:"fonts"`
}

type fontResponse struct {
	Name     string   `json:"name"`
	ID       int      `json:"id"`
	Tags     []string `json:"tags"`
	Attached []string `json:"attached"`
}

type fallbacksResponse struct {
	Font      string   `json:"font"`
	Tag       string   `json:"tag"`
	Fallbacks []string `json:"fallbacks"`
	Revision  string   `json:"revision"`
}

type routeRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Tag  string `json:"tag"`
}

type routeResponse struct {
	Result   string `json:"result"`
	Revision string `json:"revision"`
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resp := healthResponse{Status: "ok", Revision: s.revision, Fonts: s.cat.Len()}
	status := http.StatusOK
	if s.corrupted {
		resp.Status = "corrupted"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

func (s *Service) handleFonts(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fonts := s.cat.Fonts()
	out := make([]fontResponse, len(fonts))
	for i, f := range fonts {
		out[i] = s.fontResponse(f)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Service) handleFont(w http.ResponseWriter, r *http.Request) {
	name := fontParam(r)

	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.cat.Font(name)
	if !ok {
		writeError(w, errors.New(errors.ErrCodeFontNotFound, "font %q not found", name))
		return
	}
	writeJSON(w, http.StatusOK, s.fontResponse(f))
}

func (s *Service) handleFallbacks(w http.ResponseWriter, r *http.Request) {
	name := fontParam(r)
	q := r.URL.Query()

	tag, err := catalog.CanonicalTag(q.Get("tag"))
	if err != nil {
		writeError(w, err)
		return
	}
	limit, err := parseLimit(q.Get("limit"), s.limit)
	if err != nil {
		writeError(w, err)
		return
	}
	chain := q.Get("chain") == "true" || q.Get("chain") == "1"

	s.mu.RLock()
	defer s.mu.RUnlock()

	var names []string
	if chain {
		names, err = s.cat.Chain(name, tag)
		if err == nil && len(names) > limit {
			names = names[:limit]
		}
	} else {
		names, err = s.cat.Fallbacks(name, tag, limit)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, fallbacksResponse{Font: name, Tag: tag, Fallbacks: names, Revision: s.revision})
}

func (s *Service) handleAddRoute(w http.ResponseWriter, r *http.Request) {
	var req routeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode route"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.corrupted {
		writeError(w, errors.New(errors.ErrCodeCorrupted, "catalog is corrupted; restart the service"))
		return
	}

	ctx := r.Context()
	res, err := s.cat.AddRoute(req.From, req.To, req.Tag)
	if err != nil {
		observability.Route().OnRouteRejected(ctx, req.From, req.To, req.Tag, res.String())
		if res == fallback.ResultCorrupted {
			s.corrupted = true
			s.logger.Error("catalog corrupted", "from", req.From, "to", req.To, "tag", req.Tag)
		}
		writeError(w, err)
		return
	}

	observability.Route().OnRouteAdded(ctx, req.From, req.To, req.Tag)
	s.revision = uuid.NewString()
	s.logger.Info("route added", "from", req.From, "to", req.To, "tag", req.Tag, "revision", s.revision)
	writeJSON(w, http.StatusCreated, routeResponse{Result: res.String(), Revision: s.revision})
}

func (s *Service) handleRender(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = nodelink.FormatSVG
	}

	s.mu.RLock()
	dot, err := nodelink.ToDOT(s.cat, nodelink.Options{Tag: q.Get("tag"), Detailed: q.Get("detailed") == "true"})
	s.mu.RUnlock()
	if err != nil {
		writeError(w, err)
		return
	}

	out, err := nodelink.Render(r.Context(), s.cache, dot, format)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", contentType(format))
	_, _ = w.Write(out)
}

func (s *Service) fontResponse(f catalog.Font) fontResponse {
	return fontResponse{
		Name:     f.Name,
		ID:       int(f.ID),
		Tags:     f.Tags,
		Attached: s.cat.AttachedTags(f.Name),
	}
}

func fontParam(r *http.Request) string {
	raw := chi.URLParam(r, "font")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

func parseLimit(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "limit must be a positive integer, got %q", s)
	}
	return n, nil
}

func contentType(format string) string {
	switch format {
	case nodelink.FormatSVG:
		return "image/svg+xml"
	case nodelink.FormatPNG:
		return "image/png"
	default:
		return "text/vnd.graphviz; charset=utf-8"
	}
}
