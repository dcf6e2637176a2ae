package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/matzehuels/pagen/pkg/buildinfo"
	"github.com/matzehuels/pagen/pkg/errors"
	"github.com/matzehuels/pagen/pkg/pipeline"
	"github.com/matzehuels/pagen/pkg/render"
)

// maxBodyBytes bounds POST /generate bodies.
const maxBodyBytes = 64 << 10

var imageTypes = map[string]string{
	pipeline.ImageSVG: "image/svg+xml",
	pipeline.ImagePDF: "application/pdf",
	pipeline.ImagePNG: "image/png",
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	res, ok := s.run(w, r)
	if !ok {
		return
	}
	ct := render.Format(res.Primary).ContentType()
	if t, ok := imageTypes[res.Primary]; ok {
		ct = t
	}
	w.Header().Set("Content-Type", ct)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Output())
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	res, ok := s.run(w, r)
	if !ok {
		return
	}
	s.respondJSON(w, http.StatusOK, res.Stats)
}

// run builds options from the request, executes the pipeline and sets the
// run headers. On failure it writes the error response and reports false.
func (s *Server) run(w http.ResponseWriter, r *http.Request) (*pipeline.Result, bool) {
	opts := s.cfg.Base
	opts.Logger = nil
	if r.Method == http.MethodPost {
		if err := decodeBody(w, r, &opts); err != nil {
			s.respondError(w, err)
			return nil, false
		}
	}
	if err := applyQuery(r.URL.Query(), &opts); err != nil {
		s.respondError(w, err)
		return nil, false
	}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.respondError(w, err)
		return nil, false
	}
	w.Header().Set(HeaderRun, res.Page.ID.String())
	w.Header().Set(HeaderSeed, strconv.FormatUint(res.Seed, 10))
	return res, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, opts *pipeline.Options) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch ct {
	case "application/toml":
		return pipeline.DecodeProfile(body, opts)
	case "application/json", "":
		dec := json.NewDecoder(body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(opts); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
		}
		return nil
	}
	return errors.New(errors.ErrCodeUnsupported, "unsupported content type %q", ct)
}

// applyQuery overlays query parameters on opts.
func applyQuery(q url.Values, opts *pipeline.Options) error {
	ints := map[string]*int{
		"min_depth": &opts.MinDepth,
		"max_depth": &opts.MaxDepth,
	}
	floats := map[string]*float64{
		"degree":   &opts.Degree,
		"misalign": &opts.Misalign,
		"overlap":  &opts.Overlap,
		"overflow": &opts.Overflow,
		"scale":    &opts.Scale,
	}

	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidInput, "seed must be an integer, got %q", v)
		}
		opts.Seed = seed
	}
	for name, dst := range ints {
		if v := q.Get(name); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return errors.New(errors.ErrCodeInvalidInput, "%s must be an integer, got %q", name, v)
			}
			*dst = n
		}
	}
	for name, dst := range floats {
		if v := q.Get(name); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return errors.New(errors.ErrCodeInvalidInput, "%s must be a number, got %q", name, v)
			}
			*dst = f
		}
	}
	if q.Has("format") {
		opts.Format = q.Get("format")
	}
	if q.Has("image") {
		opts.Image = q.Get("image")
	}
	return nil
}

type errorResponse struct {
	Code  errors.Code `json:"code,omitempty"`
	Error string      `json:"error"`
}

func (s *Server) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.IsClientError(err):
		status = http.StatusBadRequest
	case stderrors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
		s.logger.Warn("request timed out", "error", err)
	default:
		s.logger.Error("request failed", "error", err)
	}
	s.respondJSON(w, status, errorResponse{
		Code:  errors.GetCode(err),
		Error: errors.UserMessage(err),
	})
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", fmt.Sprint(err))
	}
}
