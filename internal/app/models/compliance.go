package models

import (
	"railpay-service/internal/pkg/constvars"
)

// RiskCheckStatus is the outcome of a single risk signal evaluator.
type RiskCheckStatus string

const (
	RiskCheckPassed  RiskCheckStatus = "passed"
	RiskCheckWarning RiskCheckStatus = "warning"
	RiskCheckFailed  RiskCheckStatus = "failed"
)

// RiskCheckResult is produced once per evaluator invocation and never mutated.
type RiskCheckResult struct {
	Name              string          `json:"name"`
	Status            RiskCheckStatus `json:"status"`
	Detail            string          `json:"details"`
	ScoreContribution int             `json:"score_contribution"`
}

// ComplianceVerdict aggregates the ordered check results into the pass/fail
// compliance decision plus a provider recommendation. Check order equals
// evaluation order and is kept stable for the audit trail.
type ComplianceVerdict struct {
	Passed              bool                      `json:"passed"`
	RiskScore           int                       `json:"riskScore"`
	Checks              []RiskCheckResult         `json:"checks"`
	RecommendedProvider constvars.PaymentProvider `json:"recommendedProvider"`
}
