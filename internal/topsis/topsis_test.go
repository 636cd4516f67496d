package topsis

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `Model,C1,C2
M1,250,16
M2,200,16
M3,300,32
`

func TestLoadRejectsRaggedRows(t *testing.T) {
	in := "Model,C1,C2\nM1,250,16\nM2,200\n"
	_, err := Load(strings.NewReader(in))
	if KindOf(err) != KindLoad {
		t.Errorf("expected %q, got %q (%v)", KindLoad, KindOf(err), err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.csv"))
	if KindOf(err) != KindLoad {
		t.Errorf("expected %q, got %q (%v)", KindLoad, KindOf(err), err)
	}
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")
	if err := os.WriteFile(in, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Run(in, "1,1", "+,-", out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("result not written: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines", len(lines))
	}
	if !strings.HasSuffix(lines[0], "Topsis Score,Rank") {
		t.Errorf("header missing appended columns: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "M1,250,16,") {
		t.Errorf("original cells not preserved: %q", lines[1])
	}
	if !strings.HasSuffix(lines[1], ",1") {
		t.Errorf("expected M1 at rank 1: %q", lines[1])
	}
}

func TestRunLeavesNoPartialOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")
	if err := os.WriteFile(in, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	err := Run(in, "1,1,1", "+,-", out)
	if KindOf(err) != KindArity {
		t.Fatalf("expected arity failure, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("output file written despite validation failure")
	}
}

func TestResultWriteScoresRoundTrip(t *testing.T) {
	tbl, err := Load(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatal(err)
	}
	res, err := Score(tbl, "1,1", "+,-")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := res.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	reloaded, err := Load(&buf)
	if err != nil {
		t.Fatalf("emitted CSV does not reload: %v", err)
	}
	p, err := Validate(reloaded, []string{"1", "1", "1", "1"}, []string{"+", "-", "+", "-"})
	if err != nil {
		t.Fatalf("emitted score/rank columns are not numeric: %v", err)
	}
	scoreCol := p.Criteria() - 2
	for i := range res.Scores {
		if p.Matrix[i][scoreCol] != res.Scores[i] {
			t.Errorf("score[%d] did not round-trip: wrote %v, read %v", i, res.Scores[i], p.Matrix[i][scoreCol])
		}
	}
}
