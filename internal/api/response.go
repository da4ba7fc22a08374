package api

import (
	"encoding/json"
	"net/http"

	"github.com/babylonlabs-io/wallet-risk-checker/internal/types"
	"github.com/rs/zerolog/log"
)

type ErrorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to write response")
	}
}

// writeError renders err as JSON body. Error message of types.Error is already safe for callers
func writeError(w http.ResponseWriter, r *http.Request, err *types.Error) {
	writeJSON(w, r, err.StatusCode, ErrorResponse{
		ErrorCode: err.ErrorCode.String(),
		Message:   err.Error(),
	})
}
