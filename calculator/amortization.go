// Package calculator holds the loan mathematics: EMI, amortization schedules,
// prepayment simulation and multi-criteria ranking of offers. Every function is
// pure; nothing here blocks, logs or keeps state between calls.
package calculator

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/shopspring/decimal"

	"loan-optimizer/domain"
)

// ValidateTerms checks the preconditions shared by every calculation.
func ValidateTerms(t domain.LoanTerms) error {
	switch {
	case !(t.Principal > 0) || math.IsInf(t.Principal, 0):
		return fmt.Errorf("%w: principal must be positive, got %v", domain.ErrInvalidInput, t.Principal)
	case !(t.AnnualRatePercent > 0):
		return fmt.Errorf("%w: interest rate must be positive, got %v", domain.ErrInvalidInput, t.AnnualRatePercent)
	case t.AnnualRatePercent > MaxAnnualRatePercent:
		return fmt.Errorf("%w: interest rate must not exceed %.0f%%, got %v", domain.ErrInvalidInput, MaxAnnualRatePercent, t.AnnualRatePercent)
	case t.TenureMonths <= 0:
		return fmt.Errorf("%w: tenure must be a positive number of months, got %d", domain.ErrInvalidInput, t.TenureMonths)
	}
	return nil
}

func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 12 / 100
}

// payment is the unrounded EMI. The closed form is rewritten as
// P·r / (1 − (1+r)^−n) and evaluated through Log1p/Expm1, so tiny rates
// converge on principal/n and very long tenures converge on P·r.
func payment(principal, r float64, n int) float64 {
	if principal <= 0 || n <= 0 {
		return 0
	}
	if r == 0 {
		return principal / float64(n)
	}
	g := float64(n) * math.Log1p(r)
	return principal * r / -math.Expm1(-g)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ComputeEMI returns the equated monthly installment for the given terms along
// with the lifetime payment and interest. Amounts are rounded to cents only on
// the way out.
func ComputeEMI(t domain.LoanTerms) (domain.EMIResult, error) {
	if err := ValidateTerms(t); err != nil {
		return domain.EMIResult{}, err
	}

	r := monthlyRate(t.AnnualRatePercent)
	emi := payment(t.Principal, r, t.TenureMonths)
	total := emi * float64(t.TenureMonths)
	if !finite(emi) || !finite(total) {
		return domain.EMIResult{}, fmt.Errorf("%w: repayment of %v over %d months is out of range",
			domain.ErrInvalidInput, t.Principal, t.TenureMonths)
	}

	return domain.EMIResult{
		EMI:                Round2(emi),
		TotalPayment:       Round2(total),
		TotalInterest:      Round2(total - t.Principal),
		Principal:          t.Principal,
		MonthlyRatePercent: round4(r * 100),
	}, nil
}

// ScheduleSeq lazily yields the month-by-month schedule. Each iteration starts
// from the original principal, so the sequence can be ranged over any number
// of times.
//
// The installment is the EMI rounded to cents. Interest is charged on the
// unrounded outstanding balance and only the reported portions are rounded;
// the balance left after the last month is folded into that month's principal
// portion so the schedule closes at exactly zero.
func ScheduleSeq(t domain.LoanTerms) (iter.Seq[domain.AmortizationRow], error) {
	if err := ValidateTerms(t); err != nil {
		return nil, err
	}

	r := monthlyRate(t.AnnualRatePercent)
	n := t.TenureMonths
	emi := Round2(payment(t.Principal, r, n))
	if !retires(t.Principal, r, emi, n) {
		return nil, fmt.Errorf("%w: an installment of %.2f does not repay %v over %d months",
			domain.ErrInvalidInput, emi, t.Principal, n)
	}
	emiCents := decimal.NewFromFloat(emi)

	return func(yield func(domain.AmortizationRow) bool) {
		balance := t.Principal
		for month := 1; month <= n; month++ {
			interest := balance * r
			principalPart := emi - interest
			balance -= principalPart

			interestCents := decimal.NewFromFloat(interest).Round(2)
			principalCents := emiCents.Sub(interestCents)
			if month == n {
				principalCents = decimal.NewFromFloat(principalPart + balance).Round(2)
				balance = 0
			}

			row := domain.AmortizationRow{
				Month:            month,
				EMI:              emi,
				PrincipalPortion: principalCents.InexactFloat64(),
				InterestPortion:  interestCents.InexactFloat64(),
				RemainingBalance: Round2(math.Max(0, balance)),
			}
			if !yield(row) {
				return
			}
		}
	}, nil
}

// retires reports whether paying emi every month shrinks the balance without
// overshooting it before the final month. A rounded installment that falls
// short of the monthly interest, or one that compounds cent rounding over a
// very long tenure, fails this check.
func retires(principal, r, emi float64, n int) bool {
	balance := principal
	for month := 1; month < n; month++ {
		principalPart := emi - balance*r
		balance -= principalPart
		if !(principalPart > 0) || !(balance > 0) || !finite(balance) {
			return false
		}
	}
	return true
}

// GenerateSchedule returns the full amortization schedule, one row per month.
func GenerateSchedule(t domain.LoanTerms) ([]domain.AmortizationRow, error) {
	seq, err := ScheduleSeq(t)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// SummarizeSchedule totals what a schedule actually pays.
func SummarizeSchedule(rows []domain.AmortizationRow) domain.ScheduleSummary {
	principal, interest := decimal.Zero, decimal.Zero
	for _, row := range rows {
		principal = principal.Add(decimal.NewFromFloat(row.PrincipalPortion))
		interest = interest.Add(decimal.NewFromFloat(row.InterestPortion))
	}

	return domain.ScheduleSummary{
		TotalMonths:    len(rows),
		TotalPayment:   principal.Add(interest).InexactFloat64(),
		TotalPrincipal: principal.InexactFloat64(),
		TotalInterest:  interest.InexactFloat64(),
	}
}
