package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-optimizer/domain"
)

func terms(principal, rate float64, tenure int) domain.LoanTerms {
	return domain.LoanTerms{Principal: principal, AnnualRatePercent: rate, TenureMonths: tenure}
}

func TestComputeEMI_PersonalLoan(t *testing.T) {
	res, err := ComputeEMI(terms(500_000, 10, 36))
	require.NoError(t, err)

	assert.Equal(t, 16133.59, res.EMI)
	assert.Equal(t, 580809.37, res.TotalPayment)
	assert.Equal(t, 80809.37, res.TotalInterest)
	assert.Equal(t, 500_000.0, res.Principal)
	assert.Equal(t, 0.8333, res.MonthlyRatePercent)
}

func TestComputeEMI_Invariants(t *testing.T) {
	cases := []domain.LoanTerms{
		terms(100_000, 12, 12),
		terms(5_000_000, 9.5, 240),
		terms(1_000, 100, 1),
		terms(250_000.55, 7.25, 84),
		terms(100_000, 100, 600),
	}

	for _, tc := range cases {
		res, err := ComputeEMI(tc)
		require.NoError(t, err)

		n := float64(tc.TenureMonths)
		assert.InDelta(t, res.EMI*n, res.TotalPayment, 0.005*n+0.01, "%+v", tc)
		assert.InDelta(t, res.TotalPayment-tc.Principal, res.TotalInterest, 0.011, "%+v", tc)
		assert.GreaterOrEqual(t, res.TotalPayment, tc.Principal, "%+v", tc)
	}
}

func TestComputeEMI_TinyRateApproachesStraightLine(t *testing.T) {
	res, err := ComputeEMI(terms(120_000, 1e-6, 12))
	require.NoError(t, err)

	assert.InDelta(t, 10_000.0, res.EMI, 0.01)
	assert.GreaterOrEqual(t, res.TotalPayment, 120_000.0)
}

func TestPayment_ZeroRateIsStraightLine(t *testing.T) {
	assert.Equal(t, 1_000.0, payment(12_000, 0, 12))
	assert.Equal(t, 0.0, payment(0, 0.01, 12))
}

func TestComputeEMI_InvalidInput(t *testing.T) {
	cases := map[string]domain.LoanTerms{
		"zero principal":     terms(0, 10, 12),
		"negative principal": terms(-1, 10, 12),
		"zero rate":          terms(1000, 0, 12),
		"negative rate":      terms(1000, -5, 12),
		"rate above 100":     terms(1000, 100.01, 12),
		"zero tenure":        terms(1000, 10, 0),
		"negative tenure":    terms(1000, 10, -3),
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ComputeEMI(tc)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestGenerateSchedule_ClosesAtZero(t *testing.T) {
	schedule, err := GenerateSchedule(terms(500_000, 10, 36))
	require.NoError(t, err)
	require.Len(t, schedule, 36)

	first := schedule[0]
	assert.Equal(t, 1, first.Month)
	assert.Equal(t, 16133.59, first.EMI)
	assert.Equal(t, 4166.67, first.InterestPortion)
	assert.Equal(t, 11966.92, first.PrincipalPortion)

	for _, row := range schedule[:len(schedule)-1] {
		assert.InDelta(t, row.EMI, row.PrincipalPortion+row.InterestPortion, 1e-6, "month %d", row.Month)
		assert.Greater(t, row.RemainingBalance, 0.0, "month %d", row.Month)
	}

	last := schedule[len(schedule)-1]
	assert.Equal(t, 36, last.Month)
	assert.Equal(t, 16000.40, last.PrincipalPortion)
	assert.Equal(t, 133.34, last.InterestPortion)
	assert.Equal(t, 0.0, last.RemainingBalance)

	summary := SummarizeSchedule(schedule)
	assert.Equal(t, 36, summary.TotalMonths)
	assert.InDelta(t, 500_000.0, summary.TotalPrincipal, 0.005*36)
	assert.InDelta(t, summary.TotalPrincipal+summary.TotalInterest, summary.TotalPayment, 1e-6)
	assert.InDelta(t, 80809.37, summary.TotalInterest, 1.0)
}

func TestGenerateSchedule_LongTerm(t *testing.T) {
	schedule, err := GenerateSchedule(terms(5_000_000, 9.5, 240))
	require.NoError(t, err)
	require.Len(t, schedule, 240)

	assert.Equal(t, 0.0, schedule[239].RemainingBalance)
	assert.InDelta(t, 5_000_000.0, SummarizeSchedule(schedule).TotalPrincipal, 0.005*240)

	for i := 1; i < len(schedule); i++ {
		assert.Less(t, schedule[i].RemainingBalance, schedule[i-1].RemainingBalance)
	}
}

// Interest is charged on the unrounded balance; only the reported portions are
// rounded, so the balance column tracks the unrounded one to the cent.
func TestGenerateSchedule_BalanceIsNotRoundedInternally(t *testing.T) {
	schedule, err := GenerateSchedule(terms(500_000, 10, 36))
	require.NoError(t, err)

	r := 10.0 / 12 / 100
	balance := 500_000.0
	for _, row := range schedule[:len(schedule)-1] {
		balance -= row.EMI - balance*r
		assert.Equal(t, Round2(balance), row.RemainingBalance, "month %d", row.Month)
	}
}

func TestGenerateSchedule_SingleMonth(t *testing.T) {
	schedule, err := GenerateSchedule(terms(1_000, 12, 1))
	require.NoError(t, err)
	require.Len(t, schedule, 1)

	assert.Equal(t, 1_000.0, schedule[0].PrincipalPortion)
	assert.Equal(t, 10.0, schedule[0].InterestPortion)
	assert.Equal(t, 0.0, schedule[0].RemainingBalance)
}

func TestComputeEMI_VeryLongTenure(t *testing.T) {
	res, err := ComputeEMI(terms(100_000, 100, 10_000))
	require.NoError(t, err)
	assert.Equal(t, 8333.33, res.EMI)
	assert.Equal(t, 83_333_333.33, res.TotalPayment)
	assert.Equal(t, 83_233_333.33, res.TotalInterest)

	res, err = ComputeEMI(terms(100_000, 10, 100_000))
	require.NoError(t, err)
	assert.Equal(t, 833.33, res.EMI)
	assert.Equal(t, 83_333_333.33, res.TotalPayment)
}

func TestComputeEMI_OutOfRangeTotals(t *testing.T) {
	_, err := ComputeEMI(terms(1e308, 100, 1_000))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGenerateSchedule_VeryLongTenure(t *testing.T) {
	// The cent-rounded installment no longer covers the monthly interest.
	_, err := GenerateSchedule(terms(100_000, 100, 10_000))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	schedule, err := GenerateSchedule(terms(1_000_000, 8, 600))
	require.NoError(t, err)
	require.Len(t, schedule, 600)
	for _, row := range schedule {
		assert.GreaterOrEqual(t, row.RemainingBalance, 0.0, "month %d", row.Month)
	}
	assert.Equal(t, 0.0, schedule[599].RemainingBalance)
}

func TestScheduleSeq_IsRestartable(t *testing.T) {
	seq, err := ScheduleSeq(terms(100_000, 12, 12))
	require.NoError(t, err)

	var firstPass, secondPass []domain.AmortizationRow
	for row := range seq {
		firstPass = append(firstPass, row)
	}
	for row := range seq {
		secondPass = append(secondPass, row)
	}
	assert.Equal(t, firstPass, secondPass)

	count := 0
	for row := range seq {
		count++
		if row.Month == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestGenerateSchedule_InvalidInput(t *testing.T) {
	_, err := GenerateSchedule(terms(1000, 10, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	seq, err := ScheduleSeq(terms(-1, 10, 12))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, seq)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.01, Round2(1.005))
	assert.Equal(t, -1.01, Round2(-1.005))
	assert.Equal(t, 2.68, Round2(2.675))
	assert.Equal(t, 16133.59, Round2(16133.593596918745))
}
