package services

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/babylonlabs-io/wallet-risk-checker/internal/clients/predictionclient"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/db/model"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/observability/metrics"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/types"
	"github.com/babylonlabs-io/wallet-risk-checker/pkg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	msgDatabaseError   = "Database error"
	msgPredictionError = "AI service error"
)

type WalletCheckResult struct {
	Address          string    `json:"address"`
	SubnetID         *string   `json:"subnet_id,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
	RiskLevel        string    `json:"risk_level"`
	Reason           string    `json:"reason"`
	IPCSpecificFlags []string  `json:"ipc_specific_flags,omitempty"`
}

// CheckWallet validates the address, records a pending check, asks the prediction service for a verdict
// and attaches it to the record. The record is always created before the prediction call, if anything
// fails afterwards it stays pending and no verdict is returned
func (s *Service) CheckWallet(ctx context.Context, rawAddress string) (*WalletCheckResult, *types.Error) {
	logger := log.Ctx(ctx).With().Str("address", rawAddress).Logger()
	logger.Info().Msg("Checking wallet address")

	// Received -> Validated
	walletAddress, err := pkg.ParseWalletAddress(rawAddress)
	if err != nil {
		logger.Debug().Err(err).Str("step", types.StepValidate.String()).Msg("Rejected wallet address")
		metrics.RecordWalletCheck(types.StepValidate.String(), true)
		return nil, types.NewError(http.StatusBadRequest, types.InvalidAddress, pkg.ErrInvalidWalletAddress)
	}
	subnetID := walletAddress.SubnetID

	// Validated -> Recorded
	id, err := s.db.SaveNewWalletCheck(ctx, rawAddress, subnetID)
	if err != nil {
		return nil, s.fail(&logger, types.StepRecord, err, "Failed to insert wallet check", msgDatabaseError)
	}
	logger = logger.With().Str("check_id", id.Hex()).Logger()

	// Recorded -> Predicted
	verdict, err := s.prediction.Predict(ctx, rawAddress, subnetID)
	if err != nil {
		fault := predictionclient.FaultOf(err)
		failLogger := logger.With().Str("fault", fault.String()).Logger()
		metrics.IncOrphanedWalletChecks()
		return nil, s.fail(&failLogger, types.StepPredict, err, "Prediction service call failed, wallet check left pending", msgPredictionError)
	}

	// Predicted -> Reconciled
	if err := s.reconcile(ctx, &logger, id, rawAddress, verdict); err != nil {
		metrics.IncOrphanedWalletChecks()
		return nil, s.fail(&logger, types.StepReconcile, err, "Failed to update wallet check", msgDatabaseError)
	}

	// Reconciled -> Responded
	metrics.RecordWalletCheck(types.StepRespond.String(), false)
	logger.Info().Str("risk_level", verdict.RiskLevel).Msg("Wallet check completed")

	return &WalletCheckResult{
		Address:          rawAddress,
		SubnetID:         subnetID,
		Timestamp:        time.Now().UTC(),
		RiskLevel:        verdict.RiskLevel,
		Reason:           verdict.Reason,
		IPCSpecificFlags: normalizeFlags(verdict.IPCSpecificFlags),
	}, nil
}

func (s *Service) reconcile(
	ctx context.Context, logger *zerolog.Logger, id primitive.ObjectID, address string, verdict *predictionclient.Verdict,
) error {
	update := &model.Verdict{
		RiskLevel:        verdict.RiskLevel,
		Reason:           verdict.Reason,
		IPCSpecificFlags: normalizeFlags(verdict.IPCSpecificFlags),
	}

	var (
		found bool
		err   error
	)
	switch s.cfg.Check.ReconcileBy {
	case types.ReconcileByRecency:
		found, err = s.db.ReconcileLatestWalletCheck(ctx, address, update)
	case types.ReconcileByHandle:
		found, err = s.db.ReconcileWalletCheck(ctx, id, update)
	default:
		return errors.New("unknown reconcile strategy " + s.cfg.Check.ReconcileBy.String())
	}
	if err != nil {
		return err
	}

	// nothing to update is not fatal for the caller
	if !found {
		logger.Warn().
			Str("step", types.StepReconcile.String()).
			Str("reconcile_by", s.cfg.Check.ReconcileBy.String()).
			Msg("No wallet check found to attach the verdict to")
	}

	return nil
}

// fail logs the internal error where it was detected and returns generic error for the caller
func (s *Service) fail(logger *zerolog.Logger, step types.CheckStep, err error, logMsg, publicMsg string) *types.Error {
	logger.Error().Err(err).Str("step", step.String()).Msg(logMsg)
	metrics.RecordWalletCheck(step.String(), true)

	return types.NewInternalServiceError(publicMsg)
}

func normalizeFlags(flags []string) []string {
	if len(flags) == 0 {
		return nil
	}
	return flags
}
