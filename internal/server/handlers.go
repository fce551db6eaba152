package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/colgrid/colgrid/pkg/cache"
	"github.com/colgrid/colgrid/pkg/errors"
	"github.com/colgrid/colgrid/pkg/grid"
	"github.com/colgrid/colgrid/pkg/layout"
	"github.com/colgrid/colgrid/pkg/preset"
	"github.com/colgrid/colgrid/pkg/stylesheet"
)

// handleStylesheet serves the rendered CSS. The artifact is cached by
// configuration hash plus rendering options.
func (s *Server) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	minified := r.URL.Query().Get("minified") == "true"

	key := s.keyer.StylesheetKey(s.cfgHash, cache.StylesheetKeyOpts{
		Minified:     minified,
		RowUtilities: true,
	})
	css, hit, err := s.cache.Get(r.Context(), key)
	if err != nil {
		s.logger.Warn("stylesheet cache read failed", "err", err)
	}
	if !hit {
		var opts []stylesheet.CSSOption
		if minified {
			opts = append(opts, stylesheet.WithCSSMinified())
		}
		css = stylesheet.RenderCSS(s.reg, opts...)
		if err := s.cache.Set(r.Context(), key, css, artifactTTL); err != nil {
			s.logger.Warn("stylesheet cache write failed", "err", err)
		}
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write(css)
}

// handleRules serves the JSON rule dump.
func (s *Server) handleRules(w http.ResponseWriter, r *http.Request) {
	key := s.keyer.RulesKey(s.cfgHash)
	data, hit, err := s.cache.Get(r.Context(), key)
	if err != nil {
		s.logger.Warn("rules cache read failed", "err", err)
	}
	if !hit {
		data, err = stylesheet.RenderJSON(s.reg)
		if err != nil {
			s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "render rules"))
			return
		}
		if err := s.cache.Set(r.Context(), key, data, artifactTTL); err != nil {
			s.logger.Warn("rules cache write failed", "err", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

// colRequest is the wire form of a column intent. Order travels as its
// token string ("first", "last", or a number).
type colRequest struct {
	Span         int                   `json:"span,omitempty"`
	Offset       int                   `json:"offset,omitempty"`
	Order        string                `json:"order,omitempty"`
	Auto         bool                  `json:"auto,omitempty"`
	Flex         bool                  `json:"flex,omitempty"`
	Proportional bool                  `json:"proportional,omitempty"`
	At           map[string]colRequest `json:"at,omitempty"`
}

// intent converts the wire form to a layout intent.
func (cr colRequest) intent() (layout.Intent, error) {
	in := layout.Intent{
		Span:         cr.Span,
		Offset:       cr.Offset,
		Auto:         cr.Auto,
		Flex:         cr.Flex,
		Proportional: cr.Proportional,
	}
	if cr.Order != "" {
		order, err := grid.ParseOrder(cr.Order)
		if err != nil {
			return layout.Intent{}, err
		}
		in.Order = order
	}
	if len(cr.At) > 0 {
		in.At = make(map[string]layout.Intent, len(cr.At))
		for name, sub := range cr.At {
			subIntent, err := sub.intent()
			if err != nil {
				return layout.Intent{}, err
			}
			in.At[name] = subIntent
		}
	}
	return in, nil
}

type resolveRequest struct {
	Col *colRequest `json:"col,omitempty"`
	Row *layout.Row `json:"row,omitempty"`
}

type resolveResponse struct {
	Classes []string `json:"classes,omitempty"`
	Element string   `json:"element,omitempty"`
	Row     []string `json:"row,omitempty"`
}

// handleResolve resolves a column and/or row intent to class lists.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}
	if req.Col == nil && req.Row == nil {
		s.writeError(w, errors.New(errors.ErrCodeInvalidInput, "request must contain a col or row intent"))
		return
	}

	var resp resolveResponse
	if req.Col != nil {
		in, err := req.Col.intent()
		if err != nil {
			s.writeError(w, err)
			return
		}
		classes, err := s.resolver.Col(in)
		if err != nil {
			s.writeError(w, err)
			return
		}
		resp.Classes = classes
	}
	if req.Row != nil {
		row, err := layout.ResolveRow(*req.Row)
		if err != nil {
			s.writeError(w, err)
			return
		}
		resp.Element = row.Element
		resp.Row = row.Classes
	}

	s.writeJSON(w, http.StatusOK, resp)
}

type presetRequest struct {
	Name        string            `json:"name"`
	Columns     int               `json:"columns"`
	Breakpoints []grid.Breakpoint `json:"breakpoints"`
}

// handleCreatePreset stores a named grid configuration.
func (s *Server) handleCreatePreset(w http.ResponseWriter, r *http.Request) {
	var req presetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}

	cfg := grid.Config{Columns: req.Columns, Breakpoints: req.Breakpoints}
	if cfg.Columns == 0 && len(cfg.Breakpoints) == 0 {
		cfg = grid.Default()
	}

	p, err := preset.New(req.Name, cfg)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.presets.Put(r.Context(), p); err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, p)
}

// handleListPresets lists all stored presets.
func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	list, err := s.presets.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, list)
}

// handleGetPreset retrieves a preset by ID.
func (s *Server) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	p, err := s.presets.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

// handleDeletePreset removes a preset by ID.
func (s *Server) handleDeletePreset(w http.ResponseWriter, r *http.Request) {
	if err := s.presets.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// writeError maps structured errors to HTTP status codes: domain and
// input errors are the client's fault, missing resources are 404,
// everything else is 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.IsDomain(err),
		errors.Is(err, errors.ErrCodeInvalidPreset),
		errors.Is(err, errors.ErrCodeInvalidConfig),
		errors.Is(err, errors.ErrCodeInvalidColumns):
		status = http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeNotFound), errors.Is(err, errors.ErrCodePresetNotFound):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}

	var resp errorResponse
	resp.Error.Code = string(errors.GetCode(err))
	resp.Error.Message = errors.UserMessage(err)
	s.writeJSON(w, status, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}
