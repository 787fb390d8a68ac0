// Package httpapi serves the guide's interactive widgets as a JSON API.
package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/vitwit/agentcommerce"
	"github.com/vitwit/agentcommerce/calculator"
	"github.com/vitwit/agentcommerce/comparison"
	"github.com/vitwit/agentcommerce/extensions"
	"github.com/vitwit/agentcommerce/logger"
	"github.com/vitwit/agentcommerce/metrics"
	"github.com/vitwit/agentcommerce/negotiation"
	"github.com/vitwit/agentcommerce/scenario"
	"github.com/vitwit/agentcommerce/types"
	"github.com/vitwit/agentcommerce/utils"
)

// maxBodyBytes bounds request bodies; selections are a handful of ids.
const maxBodyBytes = 64 << 10

// Handler handles HTTP requests for the guide API.
type Handler struct {
	ac       *agentcommerce.AgentCommerce
	log      logger.Logger
	exporter metrics.Exporter
}

// New returns a Handler backed by ac.
//
// It panics if ac is nil. A nil exporter disables /metrics.
func New(ac *agentcommerce.AgentCommerce, exporter metrics.Exporter) *Handler {
	if ac == nil {
		panic("httpapi.New: nil AgentCommerce")
	}
	if exporter == nil {
		exporter = metrics.NoopRecorder{}
	}
	return &Handler{
		ac:       ac,
		log:      ac.Logger(),
		exporter: exporter,
	}
}

// Routes registers every endpoint and wraps them in the middleware chain.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/catalog", h.HandleCatalog)
	mux.HandleFunc("POST /api/negotiate", h.HandleNegotiate)
	mux.HandleFunc("GET /api/profiles/{role}", h.HandleProfile)
	mux.HandleFunc("GET /api/scenarios", h.HandleScenarios)
	mux.HandleFunc("GET /api/scenarios/{name}/steps/{index}", h.HandleStep)
	mux.HandleFunc("GET /api/calculator", h.HandleCalculator)
	mux.HandleFunc("GET /api/comparison", h.HandleComparison)
	mux.HandleFunc("POST /api/compose", h.HandleCompose)
	mux.Handle("GET /metrics", h.exporter.Handler())

	return RequestID(Logging(h.log, h.ac.Metrics())(mux))
}

// HandleCatalog lists capabilities, payment handlers and extensions.
func (h *Handler) HandleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CatalogResponse{
		Capabilities:    h.ac.Capabilities(),
		PaymentHandlers: h.ac.PaymentHandlers(),
		Extensions:      extensions.All(),
	})
}

// HandleNegotiate intersects the posted selections.
//
// The body must be a JSON NegotiateRequest whose ids all belong to the
// catalog. A negotiation that cannot proceed is still a 200: the warning is
// part of the result, not an error.
func (h *Handler) HandleNegotiate(w http.ResponseWriter, r *http.Request) {
	var req NegotiateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		h.writeError(w, r, err)
		return
	}

	merchant := negotiation.SelectionFromConfig(types.RoleMerchant, req.Merchant)
	agent := negotiation.SelectionFromConfig(types.RoleAgent, req.Agent)
	result := h.ac.Negotiate(merchant, agent)

	_, merchantDigest, err := h.ac.Profile(merchant)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	_, agentDigest, err := h.ac.Profile(agent)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	warning := result.Warning()
	writeJSON(w, http.StatusOK, NegotiateResponse{
		Capabilities:   result.CapabilityList(),
		Handlers:       result.HandlerList(),
		CanProceed:     negotiation.CanProceed(result),
		Warning:        warning,
		Message:        warning.Message(),
		MerchantDigest: merchantDigest,
		AgentDigest:    agentDigest,
	})
}

// HandleProfile serves the configured profile document for a role. The
// digest doubles as the ETag.
func (h *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	role, err := utils.ParseRole(r.PathValue("role"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	sel, err := h.ac.DefaultSelection(role)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	doc, digest, err := h.ac.Profile(sel)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	etag := utils.ETag(digest)
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	writeJSON(w, http.StatusOK, ProfileResponse{Role: role, Digest: digest, Document: doc})
}

// HandleScenarios summarises every scripted scenario.
func (h *Handler) HandleScenarios(w http.ResponseWriter, r *http.Request) {
	all := h.ac.Scenarios()
	out := make([]ScenarioSummary, 0, len(all))
	for _, s := range all {
		out = append(out, summarize(s))
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleStep returns one step of a scenario. Out of range indices are
// clamped, mirroring the stepper's jump behaviour.
func (h *Handler) HandleStep(w http.ResponseWriter, r *http.Request) {
	name, err := utils.ParseScenarioName(r.PathValue("name"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	index, err := utils.ParseIndex(r.PathValue("index"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	snap, err := h.ac.Step(name, index)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, StepResponse{
		Scenario: snap.Scenario,
		Index:    snap.Index,
		Total:    snap.Total,
		Terminal: snap.Terminal,
		Step:     snap.Step,
	})
}

// HandleCalculator computes integration counts from the platforms and
// merchants query parameters, defaulting to the calculator's initial values.
func (h *Handler) HandleCalculator(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	platforms, err := utils.ParseCount(q.Get("platforms"), calculator.DefaultPlatforms)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	merchants, err := utils.ParseCount(q.Get("merchants"), calculator.DefaultMerchants)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	cost := h.ac.Calculate(platforms, merchants)
	writeJSON(w, http.StatusOK, CalculatorResponse{Cost: cost, Display: cost.FormatPercent()})
}

// HandleComparison returns the comparison rows for the category query parameter.
func (h *Handler) HandleComparison(w http.ResponseWriter, r *http.Request) {
	category := comparison.Category(r.URL.Query().Get("category"))
	if category == "" {
		category = comparison.CategoryAll
	}
	rows, err := h.ac.Compare(category)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ComparisonResponse{
		Category:   category,
		Categories: comparison.Categories(),
		Rows:       rows,
	})
}

// HandleCompose returns the checkout document with the posted extensions.
func (h *Handler) HandleCompose(w http.ResponseWriter, r *http.Request) {
	var req ComposeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	doc, err := h.ac.Compose(req.Extensions)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := httpStatus(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("request failed", map[string]any{
			"path":  r.URL.Path,
			"error": err.Error(),
		})
	}
	writeJSON(w, status, ErrorResponse{Error: ErrorPayload{Kind: errorKind(err), Message: err.Error()}})
}

func summarize(s scenario.Scenario) ScenarioSummary {
	statuses := make([]types.Status, 0, s.Len())
	for _, st := range s.Steps {
		if st.Status != "" {
			statuses = append(statuses, st.Status)
		}
	}
	return ScenarioSummary{Name: s.Name, Title: s.Title, Protocol: s.Protocol, Steps: s.Len(), Statuses: statuses}
}

// decodeJSON strictly decodes a single JSON value from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return badRequest("invalid JSON")
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return badRequest("invalid JSON")
	}
	return nil
}

// writeJSON writes v as a JSON response with the given status code.
// The Content-Type is set to application/json.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
