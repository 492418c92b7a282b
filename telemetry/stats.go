package telemetry

import "gonum.org/v1/gonum/stat"

// fitnessStats returns the mean and sample (n-1) standard deviation of a
// fitness distribution. Returns 0, 0 for an empty slice and a standard
// deviation of 0 for a single value.
func fitnessStats(fitnesses []float64) (mean, stddev float64) {
	if len(fitnesses) == 0 {
		return 0, 0
	}
	mean = stat.Mean(fitnesses, nil)
	if len(fitnesses) == 1 {
		return mean, 0
	}
	stddev = stat.StdDev(fitnesses, nil)
	return mean, stddev
}

// minMax returns the smallest and largest values in fitnesses. Returns
// 0, 0 for an empty slice.
func minMax(fitnesses []float64) (min, max float64) {
	if len(fitnesses) == 0 {
		return 0, 0
	}
	min, max = fitnesses[0], fitnesses[0]
	for _, f := range fitnesses[1:] {
		if f < min {
			min = f
		}
		if f > max {
			max = f
		}
	}
	return min, max
}
