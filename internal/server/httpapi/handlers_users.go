package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/gardenkeeper/internal/server/models"
)

func (s *HTTPServer) signup(w http.ResponseWriter, r *http.Request) {
	req, err := readRequest(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.signupRules(r.Context(), req); err != nil {
		s.fail(w, r, err)
		return
	}

	// The rules guarantee all three are strings.
	username, _ := req.Body.String("username")
	email, _ := req.Body.String("email")
	password, _ := req.Body.String("password")

	user, err := s.svc.Users.Register(r.Context(), username, email, password)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Registered", "username", user.Username, "user_id", user.ID)
	writeJSON(w, http.StatusCreated, user.Serialize())
}

type profileResponse struct {
	Users *models.Profile `json:"users"`
}

func (s *HTTPServer) profile(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	p, err := s.svc.Users.Profile(r.Context(), user.ID)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profileResponse{Users: p})
}
