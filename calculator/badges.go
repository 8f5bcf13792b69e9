package calculator

import "loan-optimizer/domain"

// batchStats holds the batch-wide minima the badge rules compare against.
type batchStats struct {
	minEMI    float64
	minTenure int
}

type badgeRule struct {
	badge   domain.Badge
	matches func(loan domain.RankedLoan, stats batchStats) bool
}

// badgeRules are evaluated in order and the first match wins. A lower-ranked
// offer that has both the cheapest EMI and the shortest tenure is only labelled
// as the cheapest EMI; Fastest Payoff is not handed to anyone else in that case.
var badgeRules = []badgeRule{
	{
		badge: domain.BadgeBestOverall,
		matches: func(loan domain.RankedLoan, _ batchStats) bool {
			return loan.Rank == 1
		},
	},
	{
		badge: domain.BadgeCheapestEMI,
		matches: func(loan domain.RankedLoan, stats batchStats) bool {
			return loan.EMI == stats.minEMI
		},
	},
	{
		badge: domain.BadgeFastestPayoff,
		matches: func(loan domain.RankedLoan, stats batchStats) bool {
			return loan.TenureMonths == stats.minTenure
		},
	},
}

func assignBadge(loan domain.RankedLoan, stats batchStats) domain.Badge {
	for _, rule := range badgeRules {
		if rule.matches(loan, stats) {
			return rule.badge
		}
	}
	return domain.BadgeNone
}
