package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"inv-go/internal/inv"
)

type personRequest struct {
	Name     string `json:"name"`
	TaxID    string `json:"tax_id"`
	Position string `json:"position"`
	Active   *bool  `json:"active"`
}

type locationRequest struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Order *int   `json:"order"`
}

type supplierRequest struct {
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type signerRequest struct {
	Title       string `json:"title"`
	SignerName  string `json:"signer_name"`
	SignerTitle string `json:"signer_title"`
	Active      *bool  `json:"active"`
}

// boolOr returns *b, or def when b is nil.
func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

func (s *Server) listPeople(w http.ResponseWriter, r *http.Request) {
	includeInactive, _ := strconv.ParseBool(r.URL.Query().Get("inactive"))
	people, err := s.svc.ListPeople(r.Context(), identity(r), includeInactive)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, "people", mapViews(people, newPersonView))
}

// savePerson serves both POST /people (create) and PUT /people/{person_id}.
func (s *Server) savePerson(w http.ResponseWriter, r *http.Request) {
	var req personRequest
	if err := readJSON(r, &req); err != nil {
		s.badRequest(w, r, "BAD_JSON", err.Error())
		return
	}
	personID := chi.URLParam(r, "person_id")
	p, err := s.svc.SavePerson(r.Context(), identity(r), inv.SavePerson{
		ID:       personID,
		Name:     req.Name,
		TaxID:    req.TaxID,
		Position: req.Position,
		Active:   boolOr(req.Active, true),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	status := http.StatusOK
	if personID == "" {
		status = http.StatusCreated
	}
	respond(w, r, status, "person", newPersonView(p))
}

func (s *Server) listSigners(w http.ResponseWriter, r *http.Request) {
	cfgs, err := s.svc.ListSigners(r.Context(), identity(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, "signers", mapViews(cfgs, newSignerView))
}

func (s *Server) setSigner(w http.ResponseWriter, r *http.Request) {
	var req signerRequest
	if err := readJSON(r, &req); err != nil {
		s.badRequest(w, r, "BAD_JSON", err.Error())
		return
	}
	cfg, err := s.svc.SetSigner(r.Context(), identity(r), inv.SetSigner{
		Coordination: chi.URLParam(r, "coordination"),
		Title:        req.Title,
		SignerName:   req.SignerName,
		SignerTitle:  req.SignerTitle,
		Active:       boolOr(req.Active, true),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, "signer", newSignerView(cfg))
}

func (s *Server) listLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := s.svc.ListLocations(r.Context(), identity(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, "locations", mapViews(locations, newLocationView))
}

// saveLocation serves both POST /locations and PUT /locations/{location_id}.
func (s *Server) saveLocation(w http.ResponseWriter, r *http.Request) {
	var req locationRequest
	if err := readJSON(r, &req); err != nil {
		s.badRequest(w, r, "BAD_JSON", err.Error())
		return
	}
	locationID := chi.URLParam(r, "location_id")
	l, err := s.svc.SaveLocation(r.Context(), identity(r), inv.SaveLocation{
		ID:    locationID,
		Code:  req.Code,
		Name:  req.Name,
		Order: req.Order,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	status := http.StatusOK
	if locationID == "" {
		status = http.StatusCreated
	}
	respond(w, r, status, "location", newLocationView(l))
}

func (s *Server) deleteLocation(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteLocation(r.Context(), identity(r), chi.URLParam(r, "location_id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers, err := s.svc.ListSuppliers(r.Context(), identity(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, "suppliers", mapViews(suppliers, newSupplierView))
}

func (s *Server) getSupplier(w http.ResponseWriter, r *http.Request) {
	sup, err := s.svc.GetSupplier(r.Context(), identity(r), chi.URLParam(r, "supplier_id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, "supplier", newSupplierView(sup))
}

// saveSupplier serves both POST /suppliers and PUT /suppliers/{supplier_id}.
// A PUT replaces every field.
func (s *Server) saveSupplier(w http.ResponseWriter, r *http.Request) {
	var req supplierRequest
	if err := readJSON(r, &req); err != nil {
		s.badRequest(w, r, "BAD_JSON", err.Error())
		return
	}
	supplierID := chi.URLParam(r, "supplier_id")
	sup, err := s.svc.SaveSupplier(r.Context(), identity(r), inv.SaveSupplier{
		ID:      supplierID,
		Name:    req.Name,
		TaxID:   req.TaxID,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	status := http.StatusOK
	if supplierID == "" {
		status = http.StatusCreated
	}
	respond(w, r, status, "supplier", newSupplierView(sup))
}

func (s *Server) deleteSupplier(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteSupplier(r.Context(), identity(r), chi.URLParam(r, "supplier_id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
