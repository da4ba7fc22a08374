package services

import (
	"errors"
	"net/http"
	"testing"

	"github.com/babylonlabs-io/wallet-risk-checker/internal/clients/predictionclient"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/db/model"
	"github.com/babylonlabs-io/wallet-risk-checker/internal/types"
	"github.com/babylonlabs-io/wallet-risk-checker/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	plainAddress     = "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"
	compositeAddress = "subnet42/0x742d35Cc6634C0532925a3b844Bc454e4438f44e"
)

func TestCheckWallet(t *testing.T) {
	t.Run("plain address", func(t *testing.T) {
		ctx := t.Context()
		srv, m := newTestService(t, types.ReconcileByHandle)

		id := primitive.NewObjectID()
		m.db.On("SaveNewWalletCheck", internalCtx, plainAddress, (*string)(nil)).Return(id, nil).Once()
		m.prediction.On("Predict", internalCtx, plainAddress, (*string)(nil)).Return(&predictionclient.Verdict{
			RiskLevel: "Low",
			Reason:    "Normal wallet activity",
		}, nil).Once()
		m.db.On("ReconcileWalletCheck", internalCtx, id, &model.Verdict{
			RiskLevel: "Low",
			Reason:    "Normal wallet activity",
		}).Return(true, nil).Once()

		result, err := srv.CheckWallet(ctx, plainAddress)
		require.Nil(t, err)
		assert.Equal(t, plainAddress, result.Address)
		assert.Nil(t, result.SubnetID)
		assert.Equal(t, "Low", result.RiskLevel)
		assert.Equal(t, "Normal wallet activity", result.Reason)
		assert.Nil(t, result.IPCSpecificFlags)
		assert.False(t, result.Timestamp.IsZero())
	})
	t.Run("composite address", func(t *testing.T) {
		ctx := t.Context()
		srv, m := newTestService(t, types.ReconcileByHandle)

		id := primitive.NewObjectID()
		subnetID := pkg.Ptr("subnet42")
		flags := []string{"Cross-subnet activity detected"}

		m.db.On("SaveNewWalletCheck", internalCtx, compositeAddress, subnetID).Return(id, nil).Once()
		m.prediction.On("Predict", internalCtx, compositeAddress, subnetID).Return(&predictionclient.Verdict{
			RiskLevel:        "High",
			Reason:           "Suspicious activity",
			IPCSpecificFlags: flags,
		}, nil).Once()
		m.db.On("ReconcileWalletCheck", internalCtx, id, &model.Verdict{
			RiskLevel:        "High",
			Reason:           "Suspicious activity",
			IPCSpecificFlags: flags,
		}).Return(true, nil).Once()

		result, err := srv.CheckWallet(ctx, compositeAddress)
		require.Nil(t, err)
		assert.Equal(t, compositeAddress, result.Address)
		require.NotNil(t, result.SubnetID)
		assert.Equal(t, "subnet42", *result.SubnetID)
		assert.Equal(t, "High", result.RiskLevel)
		assert.Equal(t, flags, result.IPCSpecificFlags)
	})
	t.Run("invalid address has no side effects", func(t *testing.T) {
		ctx := t.Context()
		// mocks without expectations fail the test on any call
		srv, _ := newTestService(t, types.ReconcileByHandle)

		for _, address := range []string{"not-an-address", "", "0x123", "a/b/0x742d35Cc6634C0532925a3b844Bc454e4438f44e"} {
			result, err := srv.CheckWallet(ctx, address)
			assert.Nil(t, result)
			require.NotNil(t, err)
			assert.Equal(t, http.StatusBadRequest, err.StatusCode)
			assert.Equal(t, types.InvalidAddress, err.ErrorCode)
			assert.ErrorIs(t, err, pkg.ErrInvalidWalletAddress)
		}
	})
	t.Run("create failure skips prediction", func(t *testing.T) {
		ctx := t.Context()
		srv, m := newTestService(t, types.ReconcileByHandle)

		m.db.On("SaveNewWalletCheck", internalCtx, plainAddress, (*string)(nil)).
			Return(primitive.NilObjectID, errors.New("connection refused")).Once()

		result, err := srv.CheckWallet(ctx, plainAddress)
		assert.Nil(t, result)
		require.NotNil(t, err)
		assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
		assert.Equal(t, types.InternalServiceError, err.ErrorCode)
		assert.NotContains(t, err.Error(), "connection refused")
	})
	t.Run("prediction faults leave record pending", func(t *testing.T) {
		faults := []error{
			predictionclient.ErrServiceUnreachable,
			&predictionclient.RejectedError{StatusCode: http.StatusServiceUnavailable},
			predictionclient.ErrMalformedResponse,
		}

		for _, fault := range faults {
			ctx := t.Context()
			srv, m := newTestService(t, types.ReconcileByHandle)

			m.db.On("SaveNewWalletCheck", internalCtx, plainAddress, (*string)(nil)).Return(primitive.NewObjectID(), nil).Once()
			m.prediction.On("Predict", internalCtx, plainAddress, (*string)(nil)).Return(nil, fault).Once()

			result, err := srv.CheckWallet(ctx, plainAddress)
			assert.Nil(t, result)
			require.NotNil(t, err)
			assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
			assert.Equal(t, msgPredictionError, err.Error())

			// no reconcile happened, the created record stays without verdict
			m.db.AssertNotCalled(t, "ReconcileWalletCheck", mock.Anything, mock.Anything, mock.Anything)
			m.db.AssertNotCalled(t, "ReconcileLatestWalletCheck", mock.Anything, mock.Anything, mock.Anything)
		}
	})
	t.Run("reconcile failure", func(t *testing.T) {
		ctx := t.Context()
		srv, m := newTestService(t, types.ReconcileByHandle)

		id := primitive.NewObjectID()
		m.db.On("SaveNewWalletCheck", internalCtx, plainAddress, (*string)(nil)).Return(id, nil).Once()
		m.prediction.On("Predict", internalCtx, plainAddress, (*string)(nil)).Return(&predictionclient.Verdict{
			RiskLevel: "Low",
			Reason:    "Normal wallet activity",
		}, nil).Once()
		m.db.On("ReconcileWalletCheck", internalCtx, id, mock.Anything).Return(false, errors.New("write conflict")).Once()

		result, err := srv.CheckWallet(ctx, plainAddress)
		assert.Nil(t, result)
		require.NotNil(t, err)
		assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
		assert.Equal(t, msgDatabaseError, err.Error())
	})
	t.Run("reconcile finding nothing is not fatal", func(t *testing.T) {
		ctx := t.Context()
		srv, m := newTestService(t, types.ReconcileByHandle)

		id := primitive.NewObjectID()
		m.db.On("SaveNewWalletCheck", internalCtx, plainAddress, (*string)(nil)).Return(id, nil).Once()
		m.prediction.On("Predict", internalCtx, plainAddress, (*string)(nil)).Return(&predictionclient.Verdict{
			RiskLevel: "Medium",
			Reason:    "Unusual transaction pattern",
		}, nil).Once()
		m.db.On("ReconcileWalletCheck", internalCtx, id, mock.Anything).Return(false, nil).Once()

		result, err := srv.CheckWallet(ctx, plainAddress)
		require.Nil(t, err)
		assert.Equal(t, "Medium", result.RiskLevel)
	})
	t.Run("reconcile by recency", func(t *testing.T) {
		ctx := t.Context()
		srv, m := newTestService(t, types.ReconcileByRecency)

		m.db.On("SaveNewWalletCheck", internalCtx, compositeAddress, pkg.Ptr("subnet42")).Return(primitive.NewObjectID(), nil).Once()
		m.prediction.On("Predict", internalCtx, compositeAddress, pkg.Ptr("subnet42")).Return(&predictionclient.Verdict{
			RiskLevel: "Low",
			Reason:    "Normal wallet activity",
		}, nil).Once()
		m.db.On("ReconcileLatestWalletCheck", internalCtx, compositeAddress, &model.Verdict{
			RiskLevel: "Low",
			Reason:    "Normal wallet activity",
		}).Return(true, nil).Once()

		result, err := srv.CheckWallet(ctx, compositeAddress)
		require.Nil(t, err)
		assert.Equal(t, "Low", result.RiskLevel)
	})
	t.Run("empty flags are normalised", func(t *testing.T) {
		ctx := t.Context()
		srv, m := newTestService(t, types.ReconcileByHandle)

		id := primitive.NewObjectID()
		m.db.On("SaveNewWalletCheck", internalCtx, plainAddress, (*string)(nil)).Return(id, nil).Once()
		m.prediction.On("Predict", internalCtx, plainAddress, (*string)(nil)).Return(&predictionclient.Verdict{
			RiskLevel:        "Low",
			Reason:           "Normal wallet activity",
			IPCSpecificFlags: []string{},
		}, nil).Once()
		m.db.On("ReconcileWalletCheck", internalCtx, id, &model.Verdict{
			RiskLevel: "Low",
			Reason:    "Normal wallet activity",
		}).Return(true, nil).Once()

		result, err := srv.CheckWallet(ctx, plainAddress)
		require.Nil(t, err)
		assert.Nil(t, result.IPCSpecificFlags)
	})
}
