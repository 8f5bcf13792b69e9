package calculator

import (
	"fmt"
	"math"

	"loan-optimizer/domain"
)

// ValidatePrepayment checks the loan terms and the prepayment itself.
func ValidatePrepayment(req domain.PrepaymentRequest) error {
	if err := ValidateTerms(req.LoanTerms); err != nil {
		return err
	}
	if !(req.Amount >= 0) || math.IsInf(req.Amount, 0) {
		return fmt.Errorf("%w: prepayment amount must not be negative", domain.ErrInvalidInput)
	}
	if req.Month < 0 || req.Month >= req.TenureMonths {
		return fmt.Errorf("%w: prepayment month must be between 0 and %d, got %d",
			domain.ErrInvalidInput, req.TenureMonths-1, req.Month)
	}
	return nil
}

// outstandingAfter runs the regular schedule for the given number of months
// and returns the principal still owed.
func outstandingAfter(principal, r, emi float64, months int) float64 {
	remaining := principal
	for m := 0; m < months; m++ {
		remaining -= emi - remaining*r
	}
	return remaining
}

// remainingTenure solves the EMI formula for n: the number of payments of emi
// needed to clear principal at rate r.
func remainingTenure(principal, r, emi float64) (int, error) {
	if principal <= 0 {
		return 0, nil
	}
	if r == 0 {
		return ceilMonths(principal / emi), nil
	}

	interestOnly := principal * r
	if emi <= interestOnly {
		return 0, fmt.Errorf("%w: installment %.2f does not cover monthly interest %.2f",
			domain.ErrInvalidInput, emi, interestOnly)
	}
	n := math.Log(emi/(emi-interestOnly)) / math.Log1p(r)
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0, fmt.Errorf("%w: cannot solve remaining tenure", domain.ErrInvalidInput)
	}
	return ceilMonths(n), nil
}

// SimulatePrepayment compares the loan as scheduled against the same loan with
// a lump sum paid right after month req.Month. With ReduceEMI the remaining
// tenure is kept and the installment drops; otherwise the installment is kept
// and the tenure shrinks.
func SimulatePrepayment(req domain.PrepaymentRequest) (domain.PrepaymentOutcome, error) {
	if err := ValidatePrepayment(req); err != nil {
		return domain.PrepaymentOutcome{}, err
	}

	P, N, m := req.Principal, req.TenureMonths, req.Month
	r := monthlyRate(req.AnnualRatePercent)
	emi := payment(P, r, N)
	originalInterest := emi*float64(N) - P
	if !finite(originalInterest) {
		return domain.PrepaymentOutcome{}, fmt.Errorf("%w: repayment of %v over %d months is out of range",
			domain.ErrInvalidInput, P, N)
	}

	remaining := outstandingAfter(P, r, emi, m)
	if !finite(remaining) {
		return domain.PrepaymentOutcome{}, fmt.Errorf("%w: cannot track the balance up to month %d", domain.ErrInvalidInput, m)
	}
	if req.Amount > Round2(remaining) {
		return domain.PrepaymentOutcome{}, fmt.Errorf("%w: prepayment %.2f exceeds outstanding principal %.2f at month %d",
			domain.ErrInvalidInput, req.Amount, Round2(remaining), m)
	}
	newPrincipal := math.Max(0, remaining-req.Amount)
	tenureLeft := N - m

	var (
		newEMI    float64
		newTenure int
	)
	if req.ReduceEMI {
		newEMI = payment(newPrincipal, r, tenureLeft)
		newTenure = tenureLeft
	} else {
		t, err := remainingTenure(newPrincipal, r, emi)
		if err != nil {
			return domain.PrepaymentOutcome{}, err
		}
		newEMI, newTenure = emi, t
	}

	interestPaid := emi*float64(m) - (P - remaining)
	newInterest := newEMI*float64(newTenure) - newPrincipal + interestPaid
	saved := Round2(originalInterest - newInterest)

	breakEven := 0
	if saved >= minSaving {
		monthlySavings := saved / float64(tenureLeft)
		breakEven = ceilMonths(req.Amount / monthlySavings)
	}

	return domain.PrepaymentOutcome{
		OriginalEMI:           Round2(emi),
		NewEMI:                Round2(newEMI),
		OriginalTotalInterest: Round2(originalInterest),
		NewTotalInterest:      Round2(newInterest),
		InterestSaved:         saved,
		OriginalTenure:        N,
		NewTenure:             m + newTenure,
		MonthsSaved:           max(0, N-(m+newTenure)),
		BreakEvenMonths:       breakEven,
	}, nil
}
