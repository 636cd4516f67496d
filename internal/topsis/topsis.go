// Package topsis implements the TOPSIS multi-criteria ranking pipeline:
// parameter parsing, dataset validation, vector normalization, weighting,
// ideal-point distances, and dense ranking. The stages are strictly
// sequential and share no state across invocations, so one Problem may be
// ranked concurrently with others.
package topsis

import (
	"io"

	"github.com/Sommit1/topsis-web/internal/table"
)

// Load reads the source table from r, surfacing CSV problems (ragged
// rows, empty input) as load failures.
func Load(r io.Reader) (*table.Table, error) {
	t, err := table.Read(r)
	if err != nil {
		return nil, wrapError(KindLoad, "read input table", err)
	}
	return t, nil
}

// LoadFile reads the source table from path.
func LoadFile(path string) (*table.Table, error) {
	t, err := table.ReadFile(path)
	if err != nil {
		return nil, wrapError(KindLoad, "read input file", err)
	}
	return t, nil
}

// Score runs the in-memory pipeline on an already-loaded table: parse
// parameters, validate, rank.
func Score(t *table.Table, weights, impacts string) (*Result, error) {
	ws, is, err := ParseParams(weights, impacts)
	if err != nil {
		return nil, err
	}
	p, err := Validate(t, ws, is)
	if err != nil {
		return nil, err
	}
	return Rank(p)
}

// Run executes the pipeline end to end: load the table from inputPath,
// score it, and write the augmented table to outputPath. On failure no
// output file is produced.
func Run(inputPath, weights, impacts, outputPath string) error {
	t, err := LoadFile(inputPath)
	if err != nil {
		return err
	}
	res, err := Score(t, weights, impacts)
	if err != nil {
		return err
	}
	return res.WriteFile(outputPath)
}
