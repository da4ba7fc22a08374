package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/babylonlabs-io/wallet-risk-checker/internal/observability/metrics"
	"github.com/rs/zerolog/log"
)

// maxErrorBodySize bounds how much of a failed response is kept for logs
const maxErrorBodySize = 1024

// ErrRequestFailed is returned when the request could not be sent or no response was received
var ErrRequestFailed = errors.New("request failed")

// StatusError is returned when the remote responded with non 2xx status
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected response status %d: %s", e.StatusCode, e.Body)
}

// DecodeError is returned when the response body can't be decoded into expected shape
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response body: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

type HttpClientOptions struct {
	// Timeout of zero keeps the client default
	Timeout      time.Duration
	Path         string
	TemplatePath string // Metrics purpose
	Headers      map[string]string
}

type BaseClient interface {
	GetBaseURL() string
	GetDefaultRequestTimeout() time.Duration
	GetHttpClient() *http.Client
}

func isAllowedMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPost:
		return true
	default:
		return false
	}
}

// SendRequest sends json encoded input (if any) and decodes json response into R
func SendRequest[I any, R any](
	ctx context.Context, client BaseClient, method string, opts *HttpClientOptions, input *I,
) (*R, error) {
	if !isAllowedMethod(method) {
		return nil, fmt.Errorf("method %s is not allowed", method)
	}

	timeout := client.GetDefaultRequestTimeout()
	if opts.Timeout > 0 {
		timeout = opts.Timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	completeURL := client.GetBaseURL() + opts.Path

	var body io.Reader
	if input != nil {
		bz, err := json.Marshal(input)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(bz)
	}

	req, err := http.NewRequestWithContext(ctx, method, completeURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if input != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	// Metrics
	timer := metrics.StartClientRequestDurationTimer(client.GetBaseURL(), method, opts.TemplatePath)

	resp, err := client.GetHttpClient().Do(req)
	if err != nil {
		timer(0)
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()
	timer(resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bz, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		log.Ctx(ctx).Debug().
			Str("url", completeURL).
			Int("status", resp.StatusCode).
			Msg("remote responded with error status")
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(bz)}
	}

	var output R
	if err := json.NewDecoder(resp.Body).Decode(&output); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return &output, nil
}
