package predictionclient

import "context"

//go:generate mockery --name=PredictionInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_prediction_client.go
type PredictionInterface interface {
	Predict(ctx context.Context, address string, subnetID *string) (*Verdict, error)
}
