package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/fpgroup/coset"
	"github.com/katalvlaran/fpgroup/freegroup"
	"github.com/katalvlaran/fpgroup/group"
	"github.com/katalvlaran/fpgroup/relator"
)

// Media types understood by the API.
const (
	ContentTypeJSON    = "application/json"
	ContentTypeMsgpack = "application/msgpack"
	// RunIDHeader carries the identifier of an enumeration run.
	RunIDHeader = "X-Run-ID"
)

var errBadRequest = errors.New("server: bad request")

// EnumerateRequest is the body of POST /api/v1/enumerate.
type EnumerateRequest struct {
	Generators []string `json:"generators" msgpack:"generators"`
	Relators   []string `json:"relators" msgpack:"relators"`
	// MaxCosets overrides the configured limit; zero keeps it.
	MaxCosets int `json:"max_cosets,omitempty" msgpack:"max_cosets,omitempty"`
}

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error" msgpack:"error"`
	RunID string `json:"run_id,omitempty" msgpack:"run_id,omitempty"`
}

func (s *Server) handleEnumerate(w http.ResponseWriter, r *http.Request) {
	runID := uuid.NewString()
	w.Header().Set(RunIDHeader, runID)
	log := s.logger.With("run_id", runID)

	req, err := decodeRequest(w, r, s.cfg.Server.MaxBodyBytes)
	if err != nil {
		s.fail(w, r, runID, err)
		return
	}

	opts := s.cfg.CosetOptions()
	if req.MaxCosets != 0 {
		if req.MaxCosets < 0 || req.MaxCosets > s.cfg.Server.MaxCosetsCap {
			s.fail(w, r, runID, fmt.Errorf("%w: max_cosets must be in [1, %d], got %d",
				coset.ErrOptionViolation, s.cfg.Server.MaxCosetsCap, req.MaxCosets))
			return
		}
		opts = append(opts, coset.WithMaxCosets(req.MaxCosets))
	}

	ctx := r.Context()
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	start := time.Now()
	g, err := group.Enumerate(ctx, req.Generators, req.Relators, opts...)
	if err != nil {
		log.Debug("enumeration failed", "error", err, "duration", time.Since(start))
		s.fail(w, r, runID, err)
		return
	}

	st := g.Stats()
	withTable := g.Order() <= s.cfg.Server.MaxTableOrder
	log.Info("enumerated",
		"generators", len(req.Generators),
		"relators", len(req.Relators),
		"order", g.Order(),
		"defined", st.Defined,
		"coincidences", st.Coincidences,
		"table", withTable,
		"duration", time.Since(start),
	)
	if !withTable {
		writeBody(w, r, http.StatusOK, g.Brief())
		return
	}
	writeBody(w, r, http.StatusOK, g.Summary())
}

// decodeRequest reads a JSON or MessagePack body, chosen by Content-Type.
func decodeRequest(w http.ResponseWriter, r *http.Request, limit int64) (*EnumerateRequest, error) {
	body := http.MaxBytesReader(w, r.Body, limit)
	defer func() { _ = body.Close() }()

	var req EnumerateRequest
	switch mediaType(r.Header.Get("Content-Type")) {
	case ContentTypeMsgpack:
		if err := msgpack.NewDecoder(body).Decode(&req); err != nil {
			return nil, fmt.Errorf("%w: %v", errBadRequest, err)
		}
	case ContentTypeJSON, "":
		dec := json.NewDecoder(body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			return nil, fmt.Errorf("%w: %v", errBadRequest, err)
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: trailing data after JSON body", errBadRequest)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported content type %q", errBadRequest, r.Header.Get("Content-Type"))
	}

	return &req, nil
}

// statusFor maps enumeration errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, relator.ErrParse),
		errors.Is(err, freegroup.ErrNoGenerators),
		errors.Is(err, freegroup.ErrInvalidGenerator),
		errors.Is(err, freegroup.ErrDuplicateGenerator),
		errors.Is(err, coset.ErrOptionViolation),
		errors.Is(err, coset.ErrTooManyCosets),
		errors.Is(err, coset.ErrBudgetExceeded):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, runID string, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("enumeration failed", "run_id", runID, "error", err)
	}
	writeBody(w, r, status, ErrorResponse{Error: err.Error(), RunID: runID})
}

// writeBody encodes v as MessagePack when the client accepts it, JSON otherwise.
func writeBody(w http.ResponseWriter, r *http.Request, status int, v any) {
	if acceptsMsgpack(r) {
		b, err := msgpack.Marshal(v)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", ContentTypeMsgpack)
		w.WriteHeader(status)
		_, _ = w.Write(b)
		return
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func acceptsMsgpack(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		if mediaType(part) == ContentTypeMsgpack {
			return true
		}
	}
	return false
}

func mediaType(v string) string {
	if v == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(v)
	if err != nil {
		return strings.TrimSpace(strings.ToLower(v))
	}
	return mt
}
