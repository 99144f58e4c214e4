package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/gardenkeeper/internal/server/models"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/validation"
	"github.com/go-chi/chi/v5"
)

type journalResponse struct {
	Journal []models.JournalView `json:"journal"`
}

func serializeJournal(entries []*models.JournalEntry) journalResponse {
	out := journalResponse{Journal: make([]models.JournalView, 0, len(entries))}
	for _, e := range entries {
		out.Journal = append(out.Journal, e.Serialize())
	}
	return out
}

func (s *HTTPServer) listJournal(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	entries, err := s.svc.Journal.List(r.Context(), user.ID)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, serializeJournal(entries))
}

func (s *HTTPServer) getJournal(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	entries, err := s.svc.Journal.Get(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, serializeJournal(entries))
}

func (s *HTTPServer) createJournal(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	req, err := readRequest(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.journalCreateRules(r.Context(), req); err != nil {
		s.fail(w, r, err)
		return
	}

	var in models.JournalPatch
	if err := validation.UpdateDocument(req.Body, models.JournalFields...).Decode(&in); err != nil {
		s.fail(w, r, err)
		return
	}

	entry, err := s.svc.Journal.Create(r.Context(), user.ID, &in)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry.Serialize())
}

func (s *HTTPServer) updateJournal(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	req, err := readRequest(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.journalUpdateRules(r.Context(), req); err != nil {
		s.fail(w, r, err)
		return
	}

	var patch models.JournalPatch
	if err := validation.UpdateDocument(req.Body, models.JournalFields...).Decode(&patch); err != nil {
		s.fail(w, r, err)
		return
	}

	if err := s.svc.Journal.Update(r.Context(), user.ID, req.PathID, &patch); err != nil {
		s.fail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *HTTPServer) deleteJournal(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	if err := s.svc.Journal.Delete(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
