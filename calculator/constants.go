package calculator

const (
	MaxAnnualRatePercent = 100.0

	MinOffers = 2
	MaxOffers = 5

	// Score weights; they sum to 1.
	WeightInterest  = 0.35
	WeightEMI       = 0.25
	WeightTotalCost = 0.20
	WeightTenure    = 0.10
	WeightFee       = 0.10

	// NeutralScore is the normalized value of a metric shared by the whole batch.
	NeutralScore = 50.0

	// ceilTolerance keeps float noise from adding a phantom month.
	ceilTolerance = 1e-9

	// minSaving is the smallest interest saving that yields a break-even month.
	minSaving = 0.01
)
