package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/gardenkeeper/internal/common"
)

type tokenResponse struct {
	AuthToken string `json:"authToken"`
}

// login answers every credential problem, including a malformed body, with
// the same 401 so callers cannot tell which part was wrong.
func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	req, err := readRequest(w, r)
	if err != nil {
		s.fail(w, r, common.ErrorUnauthorized)
		return
	}

	username, okU := req.Body.String("username")
	password, okP := req.Body.String("password")
	if !okU || !okP || username == "" || password == "" {
		s.fail(w, r, common.ErrorUnauthorized)
		return
	}

	token, err := s.svc.Auth.Login(r.Context(), username, password)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Logged in", "username", username)
	writeJSON(w, http.StatusOK, tokenResponse{AuthToken: token})
}

func (s *HTTPServer) refresh(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	token, err := s.svc.Auth.Refresh(r.Context(), user)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AuthToken: token})
}
