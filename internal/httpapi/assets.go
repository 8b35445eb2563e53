package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"inv-go/internal/inv"
)

type partyRequest struct {
	Name     string `json:"name"`
	TaxID    string `json:"tax_id"`
	Position string `json:"position"`
}

func (p *partyRequest) party() inv.ResponsibleParty {
	if p == nil {
		return inv.ResponsibleParty{}
	}
	return inv.ResponsibleParty{Name: p.Name, TaxID: p.TaxID, Position: p.Position}
}

type createAssetRequest struct {
	Tag                 string        `json:"tag"`
	Description         string        `json:"description"`
	Classification      string        `json:"classification"`
	Brand               string        `json:"brand"`
	Model               string        `json:"model"`
	SerialNumber        string        `json:"serial_number"`
	InvoiceNumber       string        `json:"invoice_number"`
	Notes               string        `json:"notes"`
	Location            string        `json:"location"`
	LocationID          string        `json:"location_id"`
	SupplierID          string        `json:"supplier_id"`
	Condition           string        `json:"condition"`
	AcquisitionCost     string        `json:"acquisition_cost"`
	ResponsiblePersonID string        `json:"responsible_person_id"`
	Responsible         *partyRequest `json:"responsible"`
}

// Edit requests are patches: absent fields are left unchanged. An empty
// acquisition_cost clears the cost, and an empty location_id or supplier_id
// unlinks the catalog entry.
type editAssetRequest struct {
	Tag                 *string       `json:"tag"`
	Description         *string       `json:"description"`
	Classification      *string       `json:"classification"`
	Brand               *string       `json:"brand"`
	Model               *string       `json:"model"`
	SerialNumber        *string       `json:"serial_number"`
	InvoiceNumber       *string       `json:"invoice_number"`
	Notes               *string       `json:"notes"`
	Location            *string       `json:"location"`
	LocationID          *string       `json:"location_id"`
	SupplierID          *string       `json:"supplier_id"`
	Condition           *string       `json:"condition"`
	AcquisitionCost     *string       `json:"acquisition_cost"`
	ResponsiblePersonID *string       `json:"responsible_person_id"`
	Responsible         *partyRequest `json:"responsible"`
	Reason              string        `json:"reason"`
}

type reassignRequest struct {
	ResponsiblePersonID string        `json:"responsible_person_id"`
	Responsible         *partyRequest `json:"responsible"`
	Location            *string       `json:"location"`
	LocationID          string        `json:"location_id"`
	Reason              string        `json:"reason"`
}

func parseCost(raw string) (decimal.NullDecimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}, inv.ValidationError(inv.CodeInvalidField, "invalid acquisition cost: %q", raw)
	}
	return decimal.NewNullDecimal(d), nil
}

func (req *createAssetRequest) command() (inv.CreateAsset, error) {
	cmd := inv.CreateAsset{
		Tag:                 req.Tag,
		Description:         req.Description,
		Brand:               req.Brand,
		Model:               req.Model,
		SerialNumber:        req.SerialNumber,
		InvoiceNumber:       req.InvoiceNumber,
		Notes:               req.Notes,
		Location:            req.Location,
		LocationID:          req.LocationID,
		SupplierID:          req.SupplierID,
		ResponsiblePersonID: req.ResponsiblePersonID,
		Responsible:         req.Responsible.party(),
	}
	var err error
	if req.Classification != "" {
		if cmd.Classification, err = inv.ParseClassification(req.Classification); err != nil {
			return cmd, err
		}
	}
	if req.Condition != "" {
		if cmd.Condition, err = inv.ParseCondition(req.Condition); err != nil {
			return cmd, err
		}
	}
	if cmd.AcquisitionCost, err = parseCost(req.AcquisitionCost); err != nil {
		return cmd, err
	}
	return cmd, nil
}

func (req *editAssetRequest) command(assetID string) (inv.EditAsset, error) {
	cmd := inv.EditAsset{
		AssetID:             assetID,
		Tag:                 req.Tag,
		Description:         req.Description,
		Brand:               req.Brand,
		Model:               req.Model,
		SerialNumber:        req.SerialNumber,
		InvoiceNumber:       req.InvoiceNumber,
		Notes:               req.Notes,
		Location:            req.Location,
		LocationID:          req.LocationID,
		SupplierID:          req.SupplierID,
		ResponsiblePersonID: req.ResponsiblePersonID,
		Reason:              req.Reason,
	}
	if req.Classification != nil {
		c, err := inv.ParseClassification(*req.Classification)
		if err != nil {
			return cmd, err
		}
		cmd.Classification = &c
	}
	if req.Condition != nil {
		c, err := inv.ParseCondition(*req.Condition)
		if err != nil {
			return cmd, err
		}
		cmd.Condition = &c
	}
	if req.AcquisitionCost != nil {
		cost, err := parseCost(*req.AcquisitionCost)
		if err != nil {
			return cmd, err
		}
		cmd.AcquisitionCost = &cost
	}
	if req.Responsible != nil {
		p := req.Responsible.party()
		cmd.Responsible = &p
	}
	return cmd, nil
}

// queryInt reads a non-negative integer query parameter; absent means 0.
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, inv.ValidationError(inv.CodeInvalidField, "invalid %s: %q", name, raw)
	}
	return n, nil
}

func (s *Server) listAssets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := inv.AssetFilter{Query: q.Get("q"), LocationID: q.Get("location_id")}
	var err error
	if raw := q.Get("state"); raw != "" {
		if filter.State, err = inv.ParseAssetState(raw); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	if raw := q.Get("classification"); raw != "" {
		if filter.Classification, err = inv.ParseClassification(raw); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	if filter.Limit, err = queryInt(r, "limit"); err != nil {
		s.writeError(w, r, err)
		return
	}
	if filter.Offset, err = queryInt(r, "offset"); err != nil {
		s.writeError(w, r, err)
		return
	}

	assets, err := s.svc.ListAssets(r.Context(), identity(r), filter)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, "assets", mapViews(assets, newAssetView))
}

func (s *Server) createAsset(w http.ResponseWriter, r *http.Request) {
	var req createAssetRequest
	if err := readJSON(r, &req); err != nil {
		s.badRequest(w, r, "BAD_JSON", err.Error())
		return
	}
	cmd, err := req.command()
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	asset, err := s.svc.CreateAsset(r.Context(), identity(r), cmd)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, "asset", newAssetView(asset))
}

func (s *Server) getAsset(w http.ResponseWriter, r *http.Request) {
	detail, err := s.svc.GetAsset(r.Context(), identity(r), chi.URLParam(r, "asset_id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"request_id":  requestID(r),
		"asset":       newAssetView(detail.Asset),
		"custody":     mapViews(detail.Custody, newCustodyView),
		"assessments": mapViews(detail.Assessments, newAssessmentView),
		"evidence":    mapViews(detail.Evidence, newEvidenceView),
		"movements":   mapViews(detail.Movements, newMovementView),
	})
}

func (s *Server) editAsset(w http.ResponseWriter, r *http.Request) {
	var req editAssetRequest
	if err := readJSON(r, &req); err != nil {
		s.badRequest(w, r, "BAD_JSON", err.Error())
		return
	}
	cmd, err := req.command(chi.URLParam(r, "asset_id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	asset, err := s.svc.EditAsset(r.Context(), identity(r), cmd)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, "asset", newAssetView(asset))
}

func (s *Server) deleteAsset(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteAsset(r.Context(), identity(r), chi.URLParam(r, "asset_id")); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) activateAsset(w http.ResponseWriter, r *http.Request) {
	asset, err := s.svc.ActivateAsset(r.Context(), identity(r), chi.URLParam(r, "asset_id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, "asset", newAssetView(asset))
}

func (s *Server) listMovements(w http.ResponseWriter, r *http.Request) {
	entries, err := s.svc.ListMovements(r.Context(), identity(r), chi.URLParam(r, "asset_id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, "movements", mapViews(entries, newMovementView))
}

func (s *Server) listCustody(w http.ResponseWriter, r *http.Request) {
	records, err := s.svc.ListCustody(r.Context(), identity(r), chi.URLParam(r, "asset_id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, "custody", mapViews(records, newCustodyView))
}

func (s *Server) reassignCustody(w http.ResponseWriter, r *http.Request) {
	var req reassignRequest
	if err := readJSON(r, &req); err != nil {
		s.badRequest(w, r, "BAD_JSON", err.Error())
		return
	}
	record, err := s.svc.ReassignCustody(r.Context(), identity(r), inv.ReassignCustody{
		AssetID:             chi.URLParam(r, "asset_id"),
		ResponsiblePersonID: req.ResponsiblePersonID,
		Responsible:         req.Responsible.party(),
		Location:            req.Location,
		LocationID:          req.LocationID,
		Reason:              req.Reason,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, "custody", newCustodyView(record))
}
