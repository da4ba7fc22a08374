package predictionclient

import (
	"errors"
	"fmt"
)

type PredictionRequest struct {
	Address  string  `json:"address"`
	SubnetID *string `json:"subnet_id,omitempty"`
}

// predictionResponse is the wire shape, pointers tell absent and null fields apart from empty ones
type predictionResponse struct {
	RiskLevel        *string  `json:"risk_level"`
	Reason           *string  `json:"reason"`
	IPCSpecificFlags []string `json:"ipc_specific_flags"`
}

// Verdict is the scoring service response
type Verdict struct {
	RiskLevel        string   `json:"risk_level"`
	Reason           string   `json:"reason"`
	IPCSpecificFlags []string `json:"ipc_specific_flags,omitempty"`
}

// Fault distinguishes the ways a prediction call can fail
type Fault string

const (
	FaultNone        Fault = "none"
	FaultUnreachable Fault = "unreachable"
	FaultRejected    Fault = "rejected"
	FaultMalformed   Fault = "malformed"
)

func (f Fault) String() string {
	return string(f)
}

var (
	// ErrServiceUnreachable means no response was received from the scoring service
	ErrServiceUnreachable = errors.New("prediction service unreachable")
	// ErrMalformedResponse means the response body doesn't match the verdict shape
	ErrMalformedResponse = errors.New("malformed prediction response")
)

// RejectedError means the scoring service was reachable but replied with non success status
type RejectedError struct {
	StatusCode int
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("prediction service rejected request with status %d", e.StatusCode)
}

// FaultOf returns the fault kind of err produced by the client
func FaultOf(err error) Fault {
	var rejected *RejectedError
	switch {
	case err == nil:
		return FaultNone
	case errors.As(err, &rejected):
		return FaultRejected
	case errors.Is(err, ErrMalformedResponse):
		return FaultMalformed
	default:
		// anything else is treated as the service not being reachable
		return FaultUnreachable
	}
}
