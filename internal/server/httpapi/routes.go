package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/gardenkeeper/internal/common"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/models"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/validation"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// routes assembles middleware and endpoints. Order matters: the request id
// must exist before logging, and recovery must sit inside the logger so a
// panic is still logged with its 500.
func (s *HTTPServer) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.opts.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", common.AuthorizationHeaderName},
		MaxAge:         86400,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, common.NewStatusError(http.StatusNotFound, "Not Found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, common.NewStatusError(http.StatusMethodNotAllowed, "Method Not Allowed"))
	})

	r.Get("/healthz", s.health)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			if s.opts.AuthRateLimit > 0 {
				r.Use(httprate.Limit(s.opts.AuthRateLimit, time.Minute,
					httprate.WithKeyFuncs(httprate.KeyByIP),
					httprate.WithLimitHandler(s.tooManyRequests),
				))
			}
			r.Post("/login", s.login)
			r.With(s.bearerAuth).Post("/refresh", s.refresh)
		})

		r.Route("/users", func(r chi.Router) {
			r.Post("/", s.signup)
			r.With(s.bearerAuth).Get("/", s.profile)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.bearerAuth)

			r.Route("/crops", func(r chi.Router) {
				r.Get("/", s.listCrops)
				r.Post("/", s.createCrop)
				r.Get("/{id}", s.getCrop)
				r.Put("/{id}", s.updateCrop)
				r.Delete("/{id}", s.deleteCrop)
			})

			r.Route("/journal", func(r chi.Router) {
				r.Get("/", s.listJournal)
				r.Post("/", s.createJournal)
				r.Get("/{id}", s.getJournal)
				r.Put("/{id}", s.updateJournal)
				r.Delete("/{id}", s.deleteJournal)
			})
		})
	})

	return r
}

var (
	cropStringFields = []string{"name", "variety", "plant_date"}
	cropNumberFields = []string{"germination_days", "harvest_days", "planting_depth", "row_spacing", "seed_spacing"}
)

// buildRules declares the validator chain of every write route.
func (s *HTTPServer) buildRules() {
	s.signupRules = validation.Chain(
		validation.RequiredFields("username", "email", "password"),
		validation.FieldTypes(validation.Fields(validation.TypeString, "username", "email", "password")...),
		validation.NoSurroundingWhitespace("username", "password"),
		validation.DoesNotExist("username", s.svc.Users.UsernameExists),
	)

	cropTypes := validation.FieldTypes(append(
		validation.Fields(validation.TypeString, cropStringFields...),
		validation.Fields(validation.TypeNumber, cropNumberFields...)...,
	)...)

	s.cropCreateRules = validation.Chain(
		validation.RequiredFields("name", "variety", "plant_date", "germination_days", "harvest_days"),
		cropTypes,
	)
	s.cropUpdateRules = validation.Chain(
		validation.MatchingIDs(),
		cropTypes,
	)

	journalTypes := validation.FieldTypes(validation.Fields(validation.TypeString, models.JournalFields...)...)
	ownedScope := validation.OwnedReference("scope", s.svc.Crops.Owned)

	s.journalCreateRules = validation.Chain(
		validation.RequiredFields(models.JournalFields...),
		journalTypes,
		ownedScope,
	)
	s.journalUpdateRules = validation.Chain(
		validation.MatchingIDs(),
		journalTypes,
		ownedScope,
	)
}
