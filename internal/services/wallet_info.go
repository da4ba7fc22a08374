package services

import (
	"context"
	"math/big"
	"net/http"

	"github.com/babylonlabs-io/wallet-risk-checker/internal/clients/subnetclient"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/types"
	"github.com/babylonlabs-io/wallet-risk-checker/pkg"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/params"
	"github.com/rs/zerolog/log"
)

const defaultSubnetID = "default"

type WalletInfo struct {
	Address    string                    `json:"address"`
	SubnetID   string                    `json:"subnet_id"`
	EthAddress string                    `json:"eth_address"`
	Balance    string                    `json:"balance"`
	TxCount    uint64                    `json:"tx_count"`
	SubnetInfo *subnetclient.SubnetStats `json:"subnet_info,omitempty"`
}

// GetWalletInfo returns on chain balance and nonce of the address, with subnet statistics for composite addresses
func (s *Service) GetWalletInfo(ctx context.Context, rawAddress string) (*WalletInfo, *types.Error) {
	walletAddress, err := pkg.ParseWalletAddress(rawAddress)
	if err != nil {
		return nil, types.NewError(http.StatusBadRequest, types.InvalidAddress, pkg.ErrInvalidWalletAddress)
	}

	if s.chain == nil {
		return nil, types.NewErrorWithMsg(http.StatusServiceUnavailable, types.ServiceUnavailable, "Chain RPC is not configured")
	}

	logger := log.Ctx(ctx).With().Str("address", rawAddress).Logger()
	account := common.HexToAddress(walletAddress.Address)

	balance, err := s.chain.BalanceAt(ctx, account)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to get wallet balance")
		return nil, types.NewInternalServiceError("Failed to get wallet information")
	}

	txCount, err := s.chain.NonceAt(ctx, account)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to get wallet transaction count")
		return nil, types.NewInternalServiceError("Failed to get wallet information")
	}

	subnetID := defaultSubnetID
	if walletAddress.HasSubnet() {
		subnetID = *walletAddress.SubnetID
	}

	var subnetInfo *subnetclient.SubnetStats
	if subnetID != defaultSubnetID {
		var statsErr *types.Error
		subnetInfo, statsErr = s.GetSubnetStats(ctx, subnetID)
		if statsErr != nil {
			return nil, statsErr
		}
	}

	return &WalletInfo{
		Address:    rawAddress,
		SubnetID:   subnetID,
		EthAddress: walletAddress.Checksummed(),
		Balance:    formatEther(balance),
		TxCount:    txCount,
		SubnetInfo: subnetInfo,
	}, nil
}

// formatEther renders wei amount in ether with six decimals
func formatEther(wei *big.Int) string {
	ether := new(big.Float).Quo(new(big.Float).SetInt(wei), big.NewFloat(params.Ether))
	return ether.Text('f', 6)
}
