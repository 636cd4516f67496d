package topsis

import (
	"math"
	"sort"
)

// Result holds the engine output for one Problem: a relative closeness
// score in [0,1] and a dense rank (1 = best) per alternative, in the
// original row order.
type Result struct {
	Problem *Problem
	Scores  []float64
	Ranks   []int
}

// Rank runs the TOPSIS computation over a validated Problem: Euclidean
// column normalization, weighting, ideal best/worst derivation, distance
// computation, and dense ranking of the closeness scores. It never emits
// NaN or Inf; the two degenerate cases (all-zero column, zero total
// distance) fail instead.
func Rank(p *Problem) (*Result, error) {
	rows := len(p.Matrix)

	weighted, err := weightedNormalize(p)
	if err != nil {
		return nil, err
	}

	best, worst := idealVectors(weighted, p.Impacts)

	scores := make([]float64, rows)
	for i, row := range weighted {
		var dBest, dWorst float64
		for j := range row {
			dBest += (row[j] - best[j]) * (row[j] - best[j])
			dWorst += (row[j] - worst[j]) * (row[j] - worst[j])
		}
		dBest = math.Sqrt(dBest)
		dWorst = math.Sqrt(dWorst)
		if dBest+dWorst == 0 {
			return nil, newError(KindComputation, "undefined score for row %d: zero total distance", i+1)
		}
		scores[i] = dWorst / (dBest + dWorst)
	}

	return &Result{Problem: p, Scores: scores, Ranks: denseRanks(scores)}, nil
}

// weightedNormalize scales each cell by the Euclidean norm of its column
// and multiplies it by the column weight.
func weightedNormalize(p *Problem) ([][]float64, error) {
	rows := len(p.Matrix)
	cols := p.Criteria()

	// Column norms. An all-zero column makes normalization undefined.
	norms := make([]float64, cols)
	for j := 0; j < cols; j++ {
		var sum float64
		for i := 0; i < rows; i++ {
			sum += p.Matrix[i][j] * p.Matrix[i][j]
		}
		norms[j] = math.Sqrt(sum)
		if norms[j] == 0 {
			return nil, newError(KindComputation, "degenerate column %q: all-zero values", p.src.Header[j+1])
		}
	}

	weighted := make([][]float64, rows)
	for i := range p.Matrix {
		weighted[i] = make([]float64, cols)
		for j, v := range p.Matrix[i] {
			weighted[i][j] = v / norms[j] * p.Weights[j]
		}
	}
	return weighted, nil
}

// idealVectors derives the per-column ideal best and worst values from the
// weighted normalized matrix, honoring each column's impact direction.
func idealVectors(m [][]float64, impacts []Impact) (best, worst []float64) {
	cols := len(impacts)
	best = make([]float64, cols)
	worst = make([]float64, cols)
	for j := 0; j < cols; j++ {
		lo, hi := m[0][j], m[0][j]
		for i := range m {
			if m[i][j] < lo {
				lo = m[i][j]
			}
			if m[i][j] > hi {
				hi = m[i][j]
			}
		}
		if impacts[j] == Benefit {
			best[j], worst[j] = hi, lo
		} else {
			best[j], worst[j] = lo, hi
		}
	}
	return best, worst
}

// denseRanks assigns rank 1 to the highest score; ties share a rank and
// the next distinct score takes the immediately following integer.
func denseRanks(scores []float64) []int {
	distinct := make([]float64, 0, len(scores))
	seen := make(map[float64]bool, len(scores))
	for _, s := range scores {
		if !seen[s] {
			seen[s] = true
			distinct = append(distinct, s)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(distinct)))

	rankOf := make(map[float64]int, len(distinct))
	for i, s := range distinct {
		rankOf[s] = i + 1
	}

	ranks := make([]int, len(scores))
	for i, s := range scores {
		ranks[i] = rankOf[s]
	}
	return ranks
}
