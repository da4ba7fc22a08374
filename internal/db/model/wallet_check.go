package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const WalletChecksCollection = "wallet_checks"

// WalletCheckDocument is a single risk assessment attempt. It is pending until RiskLevel is set
type WalletCheckDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Address          string             `bson:"address"`
	SubnetID         *string            `bson:"subnet_id,omitempty"`
	Timestamp        time.Time          `bson:"timestamp"`
	RiskLevel        *string            `bson:"risk_level,omitempty"`
	Reason           *string            `bson:"reason,omitempty"`
	IPCSpecificFlags []string           `bson:"ipc_specific_flags,omitempty"`
}

func NewWalletCheckDocument(address string, subnetID *string) *WalletCheckDocument {
	return &WalletCheckDocument{
		Address:  address,
		SubnetID: subnetID,
		// mongo stores datetime with millisecond precision
		Timestamp: time.Now().UTC().Truncate(time.Millisecond),
	}
}

func (d *WalletCheckDocument) IsPending() bool {
	return d.RiskLevel == nil
}
