package chainclient

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/config"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog/log"
)

const (
	dialAttempts      = 3
	dialRetryInterval = time.Second
)

type Client struct {
	rpc     *rpc.Client
	eth     *ethclient.Client
	timeout time.Duration
}

// NewClient dials IPC subnet node JSON-RPC endpoint
func NewClient(ctx context.Context, cfg *config.ChainConfig) (*Client, error) {
	rpcClient, err := retry.DoWithData(
		func() (*rpc.Client, error) {
			return rpc.DialContext(ctx, cfg.RPCURL)
		},
		retry.Context(ctx),
		retry.Attempts(dialAttempts),
		retry.Delay(dialRetryInterval),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Warn().
				Uint("attempt", n+1).
				Err(err).
				Msg("failed to dial chain rpc, retrying")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to dial chain rpc: %w", err)
	}

	return &Client{
		rpc:     rpcClient,
		eth:     ethclient.NewClient(rpcClient),
		timeout: cfg.Timeout,
	}, nil
}

func (c *Client) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	// nil block number means latest
	return c.eth.BalanceAt(ctx, account, nil)
}

func (c *Client) NonceAt(ctx context.Context, account common.Address) (uint64, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	return c.eth.NonceAt(ctx, account, nil)
}

func (c *Client) CallContext(ctx context.Context, result any, method string, args ...any) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	return c.rpc.CallContext(ctx, result, method, args...)
}

func (c *Client) Close() {
	c.rpc.Close()
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}
