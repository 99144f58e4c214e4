package httpapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/gardenkeeper/internal/common"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/validation"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
)

const maxBodyBytes = 1 << 20

var errInternal = common.NewStatusError(http.StatusInternalServerError, "Internal server error")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fail is the single place where errors become responses. Anything it does
// not recognize is logged and answered with a generic 500.
func (s *HTTPServer) fail(w http.ResponseWriter, r *http.Request, err error) {
	var se *common.StatusError
	switch {
	case errors.As(err, &se):
		writeJSON(w, se.Status, se)
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		writeJSON(w, http.StatusUnauthorized, common.Unauthorized())
	case errors.Is(err, common.ErrorAlreadyExists):
		writeJSON(w, http.StatusUnprocessableEntity, common.Unprocessable("username already exists"))
	default:
		s.logger.Error(r.Context(), "request failed",
			"error", err.Error(),
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", chimiddleware.GetReqID(r.Context()))
		writeJSON(w, http.StatusInternalServerError, errInternal)
	}
}

// readRequest decodes the JSON object body and collects what the validators
// need: the {id} path parameter and the authenticated user, if any.
func readRequest(w http.ResponseWriter, r *http.Request) (*validation.Request, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, common.BadRequest("Malformed request body")
	}

	body, err := validation.DecodeBody(data)
	if err != nil {
		return nil, err
	}

	req := &validation.Request{Body: body, PathID: chi.URLParam(r, "id")}
	if user, ok := userFromContext(r.Context()); ok {
		req.UserID = user.ID
	}
	return req, nil
}

func (s *HTTPServer) tooManyRequests(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusTooManyRequests, common.NewStatusError(http.StatusTooManyRequests, "Too Many Requests"))
}
