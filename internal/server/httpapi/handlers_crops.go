package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/gardenkeeper/internal/server/models"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/validation"
	"github.com/go-chi/chi/v5"
)

type cropsResponse struct {
	Crops []models.CropView `json:"crops"`
}

func serializeCrops(crops []*models.Crop) cropsResponse {
	out := cropsResponse{Crops: make([]models.CropView, 0, len(crops))}
	for _, c := range crops {
		out.Crops = append(out.Crops, c.Serialize())
	}
	return out
}

func (s *HTTPServer) listCrops(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	crops, err := s.svc.Crops.List(r.Context(), user.ID)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, serializeCrops(crops))
}

func (s *HTTPServer) getCrop(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	crops, err := s.svc.Crops.Get(r.Context(), user.ID, chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, serializeCrops(crops))
}

func (s *HTTPServer) createCrop(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	req, err := readRequest(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.cropCreateRules(r.Context(), req); err != nil {
		s.fail(w, r, err)
		return
	}

	var in models.CropPatch
	if err := validation.UpdateDocument(req.Body, models.CropFields...).Decode(&in); err != nil {
		s.fail(w, r, err)
		return
	}

	crop, err := s.svc.Crops.Create(r.Context(), user.ID, &in)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, crop.Serialize())
}

func (s *HTTPServer) updateCrop(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	req, err := readRequest(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.cropUpdateRules(r.Context(), req); err != nil {
		s.fail(w, r, err)
		return
	}

	var patch models.CropPatch
	if err := validation.UpdateDocument(req.Body, models.CropFields...).Decode(&patch); err != nil {
		s.fail(w, r, err)
		return
	}

	if err := s.svc.Crops.Update(r.Context(), user.ID, req.PathID, &patch); err != nil {
		s.fail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *HTTPServer) deleteCrop(w http.ResponseWriter, r *http.Request) {
	user, _ := userFromContext(r.Context())

	if err := s.svc.Crops.Delete(r.Context(), user.ID, chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
