package types

// CheckStep names a stage of the wallet check pipeline
type CheckStep string

const (
	StepValidate  CheckStep = "validate"
	StepRecord    CheckStep = "record"
	StepPredict   CheckStep = "predict"
	StepReconcile CheckStep = "reconcile"
	StepRespond   CheckStep = "respond"
)

func (s CheckStep) String() string {
	return string(s)
}

// ReconcileStrategy defines how the pending record is located once a verdict is received
type ReconcileStrategy string

const (
	// ReconcileByHandle updates exactly the record created for the current request
	ReconcileByHandle ReconcileStrategy = "handle"
	// ReconcileByRecency updates the most recent record for the address
	ReconcileByRecency ReconcileStrategy = "recency"
)

func (s ReconcileStrategy) String() string {
	return string(s)
}

func (s ReconcileStrategy) IsValid() bool {
	return s == ReconcileByHandle || s == ReconcileByRecency
}

// StatsMode selects subnet statistics implementation
type StatsMode string

const (
	StatsModeMock  StatsMode = "mock"
	StatsModeChain StatsMode = "chain"
)

func (m StatsMode) String() string {
	return string(m)
}

func (m StatsMode) IsValid() bool {
	return m == StatsModeMock || m == StatsModeChain
}
