package calculator

// minMax returns the bounds of a non-empty slice.
func minMax(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// normalizeCost maps value onto 0..100 where the batch minimum scores 100 and
// the maximum scores 0. A metric with no spread scores NeutralScore.
func normalizeCost(value, lo, hi float64) float64 {
	if hi == lo {
		return NeutralScore
	}
	return 100 - (value-lo)/(hi-lo)*100
}

// costScores normalizes every value of a cost-type metric against its batch.
func costScores(values []float64) []float64 {
	lo, hi := minMax(values)
	scores := make([]float64, len(values))
	for i, v := range values {
		scores[i] = normalizeCost(v, lo, hi)
	}
	return scores
}
