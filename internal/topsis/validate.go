package topsis

import (
	"math"
	"strconv"
	"strings"

	"github.com/Sommit1/topsis-web/internal/table"
)

// Impact is the preference direction for one criterion column.
type Impact string

const (
	Benefit Impact = "+" // higher is better
	Cost    Impact = "-" // lower is better
)

// Problem is a validated TOPSIS input: the criterion matrix with its
// weights and impacts, plus the source table it was parsed from. The
// first column of the source is the alternative identifier and takes no
// part in the computation.
type Problem struct {
	IDs     []string    // identifier column, copied through untouched
	Matrix  [][]float64 // rows = alternatives, columns = criteria
	Weights []float64
	Impacts []Impact

	src *table.Table
}

// Criteria returns the number of criterion columns.
func (p *Problem) Criteria() int { return len(p.Impacts) }

// Validate checks the loaded table and parameter tokens before any
// arithmetic: column count, cell types, weight/impact arity, impact
// symbols, weight values. Zero or negative weights pass validation; a
// division they break is reported by Rank instead.
func Validate(t *table.Table, weightTokens, impactTokens []string) (*Problem, error) {
	if t.Columns() < 3 {
		return nil, newError(KindShape, "too few columns: input must contain three or more columns, got %d", t.Columns())
	}
	criteria := t.Columns() - 1

	ids := make([]string, len(t.Rows))
	matrix := make([][]float64, len(t.Rows))
	for i, row := range t.Rows {
		ids[i] = row[0]
		vals := make([]float64, criteria)
		for j, cell := range row[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, newError(KindType, "non-numeric criterion value %q at row %d, column %q", cell, i+1, t.Header[j+1])
			}
			vals[j] = v
		}
		matrix[i] = vals
	}

	if len(weightTokens) != criteria || len(impactTokens) != criteria {
		return nil, newError(KindArity, "number of weights (%d), impacts (%d) and criterion columns (%d) must be the same",
			len(weightTokens), len(impactTokens), criteria)
	}

	impacts := make([]Impact, criteria)
	for i, tok := range impactTokens {
		if tok != string(Benefit) && tok != string(Cost) {
			return nil, newError(KindImpact, "impacts must be either + or -, got %q", tok)
		}
		impacts[i] = Impact(tok)
	}

	weights := make([]float64, criteria)
	for i, tok := range weightTokens {
		w, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, newError(KindType, "weight %q is not a finite number", tok)
		}
		weights[i] = w
	}

	return &Problem{IDs: ids, Matrix: matrix, Weights: weights, Impacts: impacts, src: t}, nil
}
