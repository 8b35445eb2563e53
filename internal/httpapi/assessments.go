package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"inv-go/internal/inv"
)

type createAssessmentRequest struct {
	AssetID            string `json:"asset_id"`
	Body               string `json:"body"`
	AdministrativeUnit string `json:"administrative_unit"`
	PhysicalLocation   string `json:"physical_location"`
	Coordination       string `json:"coordination"`
}

type editAssessmentRequest struct {
	Body               *string `json:"body"`
	AdministrativeUnit *string `json:"administrative_unit"`
	PhysicalLocation   *string `json:"physical_location"`
}

func (s *Server) listAssessments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := inv.AssessmentFilter{AssetID: q.Get("asset_id"), CreatedBy: q.Get("created_by")}
	var err error
	if raw := q.Get("state"); raw != "" {
		if filter.State, err = inv.ParseAssessmentState(raw); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	if filter.Limit, err = queryInt(r, "limit"); err != nil {
		s.writeError(w, r, err)
		return
	}

	records, err := s.svc.ListAssessments(r.Context(), identity(r), filter)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, "assessments", mapViews(records, newAssessmentView))
}

func (s *Server) createAssessment(w http.ResponseWriter, r *http.Request) {
	var req createAssessmentRequest
	if err := readJSON(r, &req); err != nil {
		s.badRequest(w, r, "BAD_JSON", err.Error())
		return
	}
	record, err := s.svc.CreateAssessment(r.Context(), identity(r), inv.CreateAssessment{
		AssetID:            req.AssetID,
		Body:               req.Body,
		AdministrativeUnit: req.AdministrativeUnit,
		PhysicalLocation:   req.PhysicalLocation,
		Coordination:       req.Coordination,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, "assessment", newAssessmentView(record))
}

func (s *Server) getAssessment(w http.ResponseWriter, r *http.Request) {
	detail, err := s.svc.GetAssessment(r.Context(), identity(r), chi.URLParam(r, "assessment_id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"request_id": requestID(r),
		"assessment": newAssessmentView(detail.Assessment),
		"asset":      newAssetView(detail.Asset),
		"evidence":   mapViews(detail.Evidence, newEvidenceView),
	})
}

func (s *Server) editAssessment(w http.ResponseWriter, r *http.Request) {
	var req editAssessmentRequest
	if err := readJSON(r, &req); err != nil {
		s.badRequest(w, r, "BAD_JSON", err.Error())
		return
	}
	record, err := s.svc.EditAssessment(r.Context(), identity(r), inv.EditAssessment{
		AssessmentID:       chi.URLParam(r, "assessment_id"),
		Body:               req.Body,
		AdministrativeUnit: req.AdministrativeUnit,
		PhysicalLocation:   req.PhysicalLocation,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, "assessment", newAssessmentView(record))
}

func (s *Server) signAssessment(w http.ResponseWriter, r *http.Request) {
	record, err := s.svc.SignAssessment(r.Context(), identity(r), chi.URLParam(r, "assessment_id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, "assessment", newAssessmentView(record))
}

func (s *Server) cancelAssessment(w http.ResponseWriter, r *http.Request) {
	record, err := s.svc.CancelAssessment(r.Context(), identity(r), chi.URLParam(r, "assessment_id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, "assessment", newAssessmentView(record))
}
