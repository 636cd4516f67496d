package topsis

import (
	"strings"
	"testing"

	"github.com/Sommit1/topsis-web/internal/table"
)

func TestValidateRejectsTooFewColumns(t *testing.T) {
	tbl := testTable([]string{"ID", "A"}, [][]string{{"r1", "1"}})
	_, err := Validate(tbl, []string{"1"}, []string{"+"})
	if KindOf(err) != KindShape {
		t.Errorf("expected %q, got %q (%v)", KindShape, KindOf(err), err)
	}
}

func TestValidateRejectsNonNumericCell(t *testing.T) {
	tbl := testTable(
		[]string{"ID", "A", "B"},
		[][]string{
			{"r1", "1", "2"},
			{"r2", "low", "4"},
		},
	)
	_, err := Validate(tbl, []string{"1", "1"}, []string{"+", "+"})
	if KindOf(err) != KindType {
		t.Fatalf("expected %q, got %q (%v)", KindType, KindOf(err), err)
	}
	// The message names the offending cell.
	if !strings.Contains(err.Error(), `"low"`) || !strings.Contains(err.Error(), "row 2") {
		t.Errorf("error does not locate the bad cell: %v", err)
	}
}

func TestValidateRejectsNonFiniteCell(t *testing.T) {
	for _, bad := range []string{"NaN", "Inf", "-Inf"} {
		tbl := testTable(
			[]string{"ID", "A", "B"},
			[][]string{{"r1", bad, "2"}, {"r2", "3", "4"}},
		)
		_, err := Validate(tbl, []string{"1", "1"}, []string{"+", "+"})
		if KindOf(err) != KindType {
			t.Errorf("%s: expected %q, got %q (%v)", bad, KindType, KindOf(err), err)
		}
	}
}

func TestValidateRejectsArityMismatch(t *testing.T) {
	tbl := testTable(
		[]string{"ID", "A", "B"},
		[][]string{{"r1", "1", "2"}},
	)
	cases := []struct {
		name    string
		weights []string
		impacts []string
	}{
		{"short weights", []string{"1"}, []string{"+", "+"}},
		{"short impacts", []string{"1", "1"}, []string{"+"}},
		{"both long", []string{"1", "1", "1"}, []string{"+", "+", "+"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Validate(tbl, tc.weights, tc.impacts)
			if KindOf(err) != KindArity {
				t.Errorf("expected %q, got %q (%v)", KindArity, KindOf(err), err)
			}
		})
	}
}

func TestValidateRejectsBadImpactToken(t *testing.T) {
	tbl := testTable(
		[]string{"ID", "A", "B"},
		[][]string{{"r1", "1", "2"}},
	)
	for _, bad := range []string{"x", "++", "max", ""} {
		_, err := Validate(tbl, []string{"1", "1"}, []string{"+", bad})
		if KindOf(err) != KindImpact {
			t.Errorf("%q: expected %q, got %q (%v)", bad, KindImpact, KindOf(err), err)
		}
	}
}

func TestValidateRejectsNonFiniteWeight(t *testing.T) {
	tbl := testTable(
		[]string{"ID", "A", "B"},
		[][]string{{"r1", "1", "2"}},
	)
	for _, bad := range []string{"heavy", "NaN", "Inf"} {
		_, err := Validate(tbl, []string{bad, "1"}, []string{"+", "+"})
		if KindOf(err) != KindType {
			t.Errorf("%q: expected %q, got %q (%v)", bad, KindType, KindOf(err), err)
		}
	}
}

func TestValidateAcceptsZeroWeight(t *testing.T) {
	// Zero and negative weights are structurally valid; only a division
	// they actually break is reported, and that happens in Rank.
	tbl := testTable(
		[]string{"ID", "A", "B"},
		[][]string{{"r1", "1", "2"}, {"r2", "3", "4"}},
	)
	p, err := Validate(tbl, []string{"0", "-1"}, []string{"+", "+"})
	if err != nil {
		t.Fatalf("Validate rejected zero/negative weights: %v", err)
	}
	if p.Weights[0] != 0 || p.Weights[1] != -1 {
		t.Errorf("weights parsed as %v", p.Weights)
	}
}

func TestValidateParsesIdentifierAsOpaqueText(t *testing.T) {
	tbl := &table.Table{
		Header: []string{"Fund Name", "P1", "P2"},
		Rows: [][]string{
			{"M1, the first", "0.79", "0.62"},
			{"M2", "0.66", "0.44"},
		},
	}
	p, err := Validate(tbl, []string{"1", "2"}, []string{"+", "-"})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if p.IDs[0] != "M1, the first" {
		t.Errorf("identifier mangled: %q", p.IDs[0])
	}
	if p.Criteria() != 2 {
		t.Errorf("expected 2 criteria, got %d", p.Criteria())
	}
}
