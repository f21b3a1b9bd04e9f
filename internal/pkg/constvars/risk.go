package constvars

// Risk check names as they appear in the audit trail. Order of evaluation is
// fixed in the risk package; these names must stay stable for reproducibility.
const (
	RiskCheckMerchantVerification = "Merchant Verification"
	RiskCheckHighValueTransaction = "High Value Transaction"
	RiskCheckTransactionAmount    = "Transaction Amount"
	RiskCheckPaymentMethod        = "Payment Method Risk"
	RiskCheckGeographic           = "Geographic Risk"
	RiskCheckAMLKYC               = "AML/KYC Check"
)

// Score contributions per signal.
const (
	RiskScoreHighValueTransaction = 30
	RiskScoreCryptoPaymentMethod  = 20
	RiskScoreGeographicFlag       = 25
	RiskScoreAMLFlag              = 50
)

const (
	// RiskFailThreshold is the compliance gate: riskScore must stay strictly
	// below it for a payment to pass.
	RiskFailThreshold = 80

	// RiskConservativeThreshold triggers the conservative provider fallback
	// when the accumulated score exceeds it.
	RiskConservativeThreshold = 60

	// HighValueAmountMinorUnits is the strict lower bound for the high value
	// signal: 10000 minor units ($100.00) itself is not high value.
	HighValueAmountMinorUnits = 10000
)

// Entropy draw thresholds for the stubbed external risk-intelligence signals.
// A draw at or above the threshold raises the flag, so flag probability is
// 1 - threshold.
const (
	GeographicFlagThreshold = 0.8
	AMLFlagThreshold        = 0.95
)
