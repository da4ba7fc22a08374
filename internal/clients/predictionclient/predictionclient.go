package predictionclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/clients/client"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/config"
	"github.com/rs/zerolog/log"
)

const predictEndpoint = "/predict"

type Client struct {
	httpClient *http.Client
	cfg        *config.PredictionConfig
}

func NewClient(cfg *config.PredictionConfig) *Client {
	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
	}
}

func (c *Client) GetBaseURL() string {
	return strings.TrimSuffix(c.cfg.URL, "/")
}

func (c *Client) GetDefaultRequestTimeout() time.Duration {
	return c.cfg.Timeout
}

func (c *Client) GetHttpClient() *http.Client {
	return c.httpClient
}

func (c *Client) Predict(ctx context.Context, address string, subnetID *string) (*Verdict, error) {
	request := &PredictionRequest{
		Address:  address,
		SubnetID: subnetID,
	}

	callPredict := func() (*Verdict, error) {
		opts := &client.HttpClientOptions{
			Path:         predictEndpoint,
			TemplatePath: predictEndpoint,
		}

		resp, err := client.SendRequest[PredictionRequest, predictionResponse](ctx, c, http.MethodPost, opts, request)
		if err != nil {
			return nil, classify(err)
		}

		return toVerdict(resp)
	}

	verdict, err := callWithRetry(ctx, callPredict, c.cfg)
	if err != nil {
		return nil, err
	}

	return verdict, nil
}

// toVerdict requires risk_level and reason to be present and non null, flags are optional
func toVerdict(resp *predictionResponse) (*Verdict, error) {
	if resp.RiskLevel == nil || *resp.RiskLevel == "" {
		return nil, fmt.Errorf("%w: risk_level is missing", ErrMalformedResponse)
	}
	if resp.Reason == nil {
		return nil, fmt.Errorf("%w: reason is missing", ErrMalformedResponse)
	}

	return &Verdict{
		RiskLevel:        *resp.RiskLevel,
		Reason:           *resp.Reason,
		IPCSpecificFlags: resp.IPCSpecificFlags,
	}, nil
}

// classify maps transport level errors to the prediction fault kinds
func classify(err error) error {
	var statusErr *client.StatusError
	if errors.As(err, &statusErr) {
		return &RejectedError{StatusCode: statusErr.StatusCode}
	}

	var decodeErr *client.DecodeError
	if errors.As(err, &decodeErr) {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, decodeErr.Err)
	}

	return fmt.Errorf("%w: %w", ErrServiceUnreachable, err)
}

// callWithRetry performs a single attempt unless max-retry-times is above 1,
// only unreachable faults are retried since rejected and malformed answers are final
func callWithRetry[T any](
	ctx context.Context,
	call retry.RetryableFuncWithData[T],
	cfg *config.PredictionConfig,
) (T, error) {
	attempts := cfg.MaxRetryTimes
	if attempts == 0 {
		attempts = 1
	}

	return retry.DoWithData(call,
		retry.Context(ctx),
		retry.Attempts(attempts),
		retry.Delay(cfg.RetryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return FaultOf(err) == FaultUnreachable
		}),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Debug().
				Uint("attempt", n+1).
				Uint("max_attempts", attempts).
				Err(err).
				Msg("prediction service unreachable, retrying")
		}))
}
