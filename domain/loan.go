package domain

// LoanTerms are the inputs of every repayment calculation.
type LoanTerms struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"interest_rate"`
	TenureMonths      int     `json:"tenure_months"`
}

// EMIResult is the closed-form repayment summary for a LoanTerms.
type EMIResult struct {
	EMI                float64 `json:"emi"`
	TotalPayment       float64 `json:"total_payment"`
	TotalInterest      float64 `json:"total_interest"`
	Principal          float64 `json:"principal"`
	MonthlyRatePercent float64 `json:"monthly_rate"`
}

// AmortizationRow is one month of an amortization schedule.
type AmortizationRow struct {
	Month            int     `json:"month"`
	EMI              float64 `json:"emi"`
	PrincipalPortion float64 `json:"principal_payment"`
	InterestPortion  float64 `json:"interest_payment"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// ScheduleSummary aggregates a full schedule.
type ScheduleSummary struct {
	TotalMonths    int     `json:"total_months"`
	TotalPayment   float64 `json:"total_payment"`
	TotalPrincipal float64 `json:"total_principal"`
	TotalInterest  float64 `json:"total_interest"`
}

// LoanOffer is a candidate loan in a comparison batch.
type LoanOffer struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Principal     float64 `json:"principal"`
	AnnualRate    float64 `json:"interest_rate"`
	TenureMonths  int     `json:"tenure_months"`
	ProcessingFee float64 `json:"processing_fee"`
}

// Terms returns the repayment terms of the offer.
func (o LoanOffer) Terms() LoanTerms {
	return LoanTerms{
		Principal:         o.Principal,
		AnnualRatePercent: o.AnnualRate,
		TenureMonths:      o.TenureMonths,
	}
}

// Badge is the qualitative label attached to a ranked offer.
type Badge string

const (
	BadgeNone          Badge = ""
	BadgeBestOverall   Badge = "Best Overall"
	BadgeCheapestEMI   Badge = "Most Affordable EMI"
	BadgeFastestPayoff Badge = "Fastest Payoff"
)

// RankedLoan is a LoanOffer after scoring.
type RankedLoan struct {
	ID             string  `json:"loan_id"`
	Name           string  `json:"loan_name"`
	EMI            float64 `json:"emi"`
	TotalInterest  float64 `json:"total_interest"`
	TotalCost      float64 `json:"total_cost"`
	TenureMonths   int     `json:"tenure_months"`
	ProcessingFee  float64 `json:"processing_fee"`
	Score          float64 `json:"score"`
	Rank           int     `json:"rank"`
	SavingsVsFirst float64 `json:"savings_vs_first"`
	Badge          Badge   `json:"badge,omitempty"`
}

// PrepaymentRequest describes a single lump-sum payment against a loan.
type PrepaymentRequest struct {
	LoanTerms
	Amount    float64 `json:"prepayment_amount"`
	Month     int     `json:"prepayment_month"`
	ReduceEMI bool    `json:"reduce_emi"`
}

// PrepaymentOutcome compares a loan with and without a prepayment.
type PrepaymentOutcome struct {
	OriginalEMI           float64 `json:"original_emi"`
	NewEMI                float64 `json:"new_emi"`
	OriginalTotalInterest float64 `json:"original_total_interest"`
	NewTotalInterest      float64 `json:"new_total_interest"`
	InterestSaved         float64 `json:"interest_saved"`
	OriginalTenure        int     `json:"original_tenure"`
	NewTenure             int     `json:"new_tenure"`
	MonthsSaved           int     `json:"months_saved"`
	BreakEvenMonths       int     `json:"break_even_months"`
}
