package calculator

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"loan-optimizer/domain"
)

// ValidateOffers checks batch size and every offer in it.
func ValidateOffers(offers []domain.LoanOffer) error {
	if len(offers) < MinOffers || len(offers) > MaxOffers {
		return fmt.Errorf("%w: between %d and %d loans can be compared, got %d",
			domain.ErrInvalidBatchSize, MinOffers, MaxOffers, len(offers))
	}

	seen := make(map[string]struct{}, len(offers))
	for i, o := range offers {
		if strings.TrimSpace(o.ID) == "" {
			return fmt.Errorf("%w: loan #%d has no id", domain.ErrInvalidInput, i+1)
		}
		if _, dup := seen[o.ID]; dup {
			return fmt.Errorf("%w: duplicate loan id %q", domain.ErrInvalidInput, o.ID)
		}
		seen[o.ID] = struct{}{}

		if strings.TrimSpace(o.Name) == "" {
			return fmt.Errorf("%w: loan %q has no name", domain.ErrInvalidInput, o.ID)
		}
		if err := ValidateTerms(o.Terms()); err != nil {
			return fmt.Errorf("loan %q: %w", o.ID, err)
		}
		if !(o.ProcessingFee >= 0) || math.IsInf(o.ProcessingFee, 0) {
			return fmt.Errorf("%w: loan %q processing fee must not be negative", domain.ErrInvalidInput, o.ID)
		}
	}
	return nil
}

// RankLoans scores every offer on EMI, total interest, total cost, tenure and
// processing fee, each normalized across the batch so that the cheapest value
// scores 100, and returns the offers ordered best first. Equal scores keep
// their input order.
func RankLoans(offers []domain.LoanOffer) ([]domain.RankedLoan, error) {
	if err := ValidateOffers(offers); err != nil {
		return nil, err
	}

	n := len(offers)
	ranked := make([]domain.RankedLoan, n)
	emis := make([]float64, n)
	interests := make([]float64, n)
	costs := make([]float64, n)
	tenures := make([]float64, n)
	fees := make([]float64, n)

	for i, o := range offers {
		res, err := ComputeEMI(o.Terms())
		if err != nil {
			return nil, fmt.Errorf("loan %q: %w", o.ID, err)
		}
		totalCost := Round2(res.TotalPayment + o.ProcessingFee)

		ranked[i] = domain.RankedLoan{
			ID:            o.ID,
			Name:          o.Name,
			EMI:           res.EMI,
			TotalInterest: res.TotalInterest,
			TotalCost:     totalCost,
			TenureMonths:  o.TenureMonths,
			ProcessingFee: o.ProcessingFee,
		}
		emis[i] = res.EMI
		interests[i] = res.TotalInterest
		costs[i] = totalCost
		tenures[i] = float64(o.TenureMonths)
		fees[i] = o.ProcessingFee
	}

	emiScores := costScores(emis)
	interestScores := costScores(interests)
	costScoresNorm := costScores(costs)
	tenureScores := costScores(tenures)
	feeScores := costScores(fees)

	for i := range ranked {
		ranked[i].Score = Round2(
			WeightInterest*interestScores[i] +
				WeightEMI*emiScores[i] +
				WeightTotalCost*costScoresNorm[i] +
				WeightTenure*tenureScores[i] +
				WeightFee*feeScores[i],
		)
	}

	slices.SortStableFunc(ranked, func(a, b domain.RankedLoan) int {
		return cmp.Compare(b.Score, a.Score)
	})

	minEMI, _ := minMax(emis)
	minTenure, _ := minMax(tenures)
	stats := batchStats{minEMI: minEMI, minTenure: int(minTenure)}

	firstCost := ranked[0].TotalCost
	for i := range ranked {
		ranked[i].Rank = i + 1
		if i > 0 {
			ranked[i].SavingsVsFirst = Round2(ranked[i].TotalCost - firstCost)
		}
		ranked[i].Badge = assignBadge(ranked[i], stats)
	}

	return ranked, nil
}
