package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"inv-go/internal/inv"
)

// DefaultMaxUpload bounds multipart evidence uploads when no limit is given.
const DefaultMaxUpload = 25 << 20

// Server exposes InvService over JSON. Every /api route requires a bearer
// token; the identity it carries is passed to the core unchanged.
type Server struct {
	svc       *inv.InvService
	auth      *Authenticator
	logger    *slog.Logger
	maxUpload int64
}

func NewServer(svc *inv.InvService, auth *Authenticator, logger *slog.Logger, maxUpload int64) *Server {
	if maxUpload <= 0 {
		maxUpload = DefaultMaxUpload
	}
	return &Server{svc: svc, auth: auth, logger: logger, maxUpload: maxUpload}
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(withRequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Route("/api", func(api chi.Router) {
		api.Use(s.authenticate)

		api.Route("/assets", func(ar chi.Router) {
			ar.Get("/", s.listAssets)
			ar.Post("/", s.createAsset)
			ar.Route("/{asset_id}", func(one chi.Router) {
				one.Get("/", s.getAsset)
				one.Patch("/", s.editAsset)
				one.Delete("/", s.deleteAsset)
				one.Post("/activate", s.activateAsset)
				one.Get("/movements", s.listMovements)
				one.Get("/custody", s.listCustody)
				one.Post("/custody", s.reassignCustody)
			})
		})

		api.Route("/assessments", func(ar chi.Router) {
			ar.Get("/", s.listAssessments)
			ar.Post("/", s.createAssessment)
			ar.Route("/{assessment_id}", func(one chi.Router) {
				one.Get("/", s.getAssessment)
				one.Patch("/", s.editAssessment)
				one.Post("/sign", s.signAssessment)
				one.Post("/cancel", s.cancelAssessment)
			})
		})

		api.Route("/evidence", func(er chi.Router) {
			er.Get("/", s.listEvidence)
			er.Post("/", s.attachEvidence)
			er.Get("/{evidence_id}/content", s.evidenceContent)
		})

		api.Get("/people", s.listPeople)
		api.Post("/people", s.savePerson)
		api.Put("/people/{person_id}", s.savePerson)

		api.Route("/locations", func(lr chi.Router) {
			lr.Get("/", s.listLocations)
			lr.Post("/", s.saveLocation)
			lr.Put("/{location_id}", s.saveLocation)
			lr.Delete("/{location_id}", s.deleteLocation)
		})

		api.Route("/suppliers", func(sr chi.Router) {
			sr.Get("/", s.listSuppliers)
			sr.Post("/", s.saveSupplier)
			sr.Get("/{supplier_id}", s.getSupplier)
			sr.Put("/{supplier_id}", s.saveSupplier)
			sr.Delete("/{supplier_id}", s.deleteSupplier)
		})

		api.Get("/signers", s.listSigners)
		api.Put("/signers/{coordination}", s.setSigner)
	})

	return r
}
