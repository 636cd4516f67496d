package topsis

import (
	"io"
	"strconv"

	"github.com/Sommit1/topsis-web/internal/table"
)

// Column labels appended by the emitter.
const (
	ScoreColumn = "Topsis Score"
	RankColumn  = "Rank"
)

// Table returns the source table with the score and rank columns
// appended. Original cells are copied through unchanged; scores are
// printed with round-trip precision.
func (r *Result) Table() *table.Table {
	src := r.Problem.src

	header := make([]string, 0, len(src.Header)+2)
	header = append(header, src.Header...)
	header = append(header, ScoreColumn, RankColumn)

	rows := make([][]string, len(src.Rows))
	for i, row := range src.Rows {
		out := make([]string, 0, len(row)+2)
		out = append(out, row...)
		out = append(out,
			strconv.FormatFloat(r.Scores[i], 'g', -1, 64),
			strconv.Itoa(r.Ranks[i]),
		)
		rows[i] = out
	}
	return &table.Table{Header: header, Rows: rows}
}

// Write serializes the augmented table as CSV to w.
func (r *Result) Write(w io.Writer) error {
	if err := r.Table().Write(w); err != nil {
		return wrapError(KindWrite, "write result", err)
	}
	return nil
}

// WriteFile serializes the augmented table as CSV to path.
func (r *Result) WriteFile(path string) error {
	if err := r.Table().WriteFile(path); err != nil {
		return wrapError(KindWrite, "write result file", err)
	}
	return nil
}
