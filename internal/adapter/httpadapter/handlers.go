package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/couchcryptid/ferry-risk-service/internal/domain"
)

// defaultDepartTime is used when the time query parameter is omitted.
const defaultDepartTime = "06:10"

type periodsResponse struct {
	Zone    string                  `json:"zone"`
	Periods []domain.ForecastPeriod `json:"periods"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handlePeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := s.svc.Periods(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, periodsResponse{Zone: s.svc.Zone(), Periods: periods})
}

func (s *Server) handleAssessment(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRequest(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	a, err := s.svc.Assess(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// parseRequest reads date, time and period from the query string. A missing
// date means today in the server timezone.
func (s *Server) parseRequest(r *http.Request) (domain.Request, error) {
	q := r.URL.Query()

	date := domain.Today(s.loc)
	if v := q.Get("date"); v != "" {
		d, err := domain.ParseDepartDate(v, s.loc)
		if err != nil {
			return domain.Request{}, err
		}
		date = d
	}

	tod := defaultDepartTime
	if v := q.Get("time"); v != "" {
		tod = v
	}
	minutes, err := domain.ParseDepartTime(tod)
	if err != nil {
		return domain.Request{}, err
	}

	return domain.Request{Date: date, DepartMinutes: minutes, PeriodLabel: q.Get("period")}, nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "status", status, "error", err)
	} else {
		s.logger.Warn("request rejected", "path", r.URL.Path, "status", status, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// statusFor maps pipeline error kinds to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrUnknownPeriod):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRegionNotFound), errors.Is(err, domain.ErrNoPeriodsParsed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrDocumentUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // client may have gone away
}
