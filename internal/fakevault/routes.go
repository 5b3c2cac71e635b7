package fakevault

import (
	"net/http"

	"github.com/MKhiriev/patient-vault-example/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router serving the PatientVault routes.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID, h.withLogging)

	// routes without session
	router.Group(func(r chi.Router) {
		r.Post("/api/user/authentication", h.authenticate)
	})

	// routes with session
	router.Group(func(r chi.Router) {
		r.Use(h.session)
		r.Post("/api/patient/retrievelist", h.retrievePatientList)
		r.Post("/api/user/activity/retrieve", h.retrieveUserActivities)
		r.Post("/api/patient/category", h.retrievePatientCategory)
	})

	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	})

	return router
}
