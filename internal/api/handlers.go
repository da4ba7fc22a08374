package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/babylonlabs-io/wallet-risk-checker/internal/services"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/types"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// maxRequestBodySize bounds the /check payload, an address is well below it
const maxRequestBodySize = 1 << 16

type Handler struct {
	service *services.Service
}

func NewHandler(service *services.Service) *Handler {
	return &Handler{service: service}
}

type CheckWalletRequest struct {
	Address string `json:"address"`
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Healthcheck(r.Context()); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Healthcheck failed")
		writeError(w, r, types.NewErrorWithMsg(http.StatusServiceUnavailable, types.ServiceUnavailable, "Database is unavailable"))
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// CheckWallet handles POST /check
func (h *Handler) CheckWallet(w http.ResponseWriter, r *http.Request) {
	var req CheckWalletRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Ctx(r.Context()).Debug().Err(err).Msg("Failed to decode check request")
		writeError(w, r, types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, "Invalid request body"))
		return
	}

	result, err := h.service.CheckWallet(r.Context(), req.Address)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, result)
}

// GetRecentChecks handles GET /recent-checks?limit=N. Missing limit and limit=0 both return
// the latest 10 checks, there is no unbounded listing
func (h *Handler) GetRecentChecks(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(w, r, types.NewError(http.StatusBadRequest, types.ValidationError, err))
		return
	}

	checks, svcErr := h.service.GetRecentChecks(r.Context(), limit)
	if svcErr != nil {
		writeError(w, r, svcErr)
		return
	}

	writeJSON(w, r, http.StatusOK, checks)
}

func (h *Handler) GetSubnetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetSubnetStats(r.Context(), chi.URLParam(r, "subnetId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, stats)
}

// GetWalletInfo handles GET /wallet-info/{address}, composite addresses contain a slash
// so the whole remaining path is taken as the address
func (h *Handler) GetWalletInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.GetWalletInfo(r.Context(), chi.URLParam(r, "*"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, info)
}

// parseLimit returns 0 for empty value, the store falls back to its default then
func parseLimit(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 0 {
		return 0, errors.New("limit must be a non negative integer")
	}
	return limit, nil
}
