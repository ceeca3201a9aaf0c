package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/musecli/muse/pkg/errors"
	"github.com/musecli/muse/pkg/observability"
	"github.com/musecli/muse/pkg/poster"
)

// handlePoster renders a poster from query parameters and streams it back
// as PNG. Unset parameters fall back to DefaultParams, so a bare
// GET /api/poster returns a fresh unseeded composition.
func (s *Server) handlePoster(w http.ResponseWriter, r *http.Request) {
	p, err := posterParams(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	observability.Generate().OnGenerateStart(r.Context(), p.Width, p.Height, p.Layers)
	start := time.Now()
	buf, err := poster.Generate(p)
	observability.Generate().OnGenerateComplete(r.Context(), p.Width, p.Height, p.Layers, time.Since(start), err)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if p.Seed != nil {
		w.Header().Set("X-Poster-Seed", strconv.FormatInt(*p.Seed, 10))
	}
	if err := buf.EncodePNG(w); err != nil {
		s.logger.Error("poster encode failed", "request_id", idFromContext(r.Context()), "err", err)
	}
}

func posterParams(r *http.Request) (poster.Params, error) {
	q := r.URL.Query()
	p := poster.DefaultParams()

	if v, ok := intParam(q.Get("width")); ok {
		p.Width = v
	}
	if v, ok := intParam(q.Get("height")); ok {
		p.Height = v
	}
	if v, ok := intParam(q.Get("layers")); ok {
		p.Layers = v
	}
	if v, ok, err := floatParam(q.Get("wobble")); err != nil {
		return p, err
	} else if ok {
		p.Wobble = v
	}
	if v, ok, err := floatParam(q.Get("radius")); err != nil {
		return p, err
	} else if ok {
		p.BaseRadius = v
	}
	if s := q.Get("seed"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return p, errors.New(errors.ErrCodeInvalidInput, "seed must be an integer, got %q", s)
		}
		p.Seed = &seed
	}
	if s := q.Get("bg"); s != "" {
		bg, err := poster.ParseColor(s)
		if err != nil {
			return p, err
		}
		p.Background = bg
	}
	p.Stroke = q.Get("stroke") == "true"
	if v, ok, err := floatParam(q.Get("strokeAlpha")); err != nil {
		return p, err
	} else if ok {
		p.StrokeAlpha = v
	}
	return p, nil
}

// floatParam parses an optional float query parameter, distinguishing
// "absent" from "malformed".
func floatParam(s string) (float64, bool, error) {
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, errors.New(errors.ErrCodeInvalidInput, "expected a number, got %q", s)
	}
	return v, true, nil
}
