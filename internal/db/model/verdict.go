package model

// Verdict is the outcome of risk scoring attached to a pending wallet check
type Verdict struct {
	RiskLevel        string
	Reason           string
	IPCSpecificFlags []string
}
