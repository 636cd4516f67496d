package table

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadRoundTrip(t *testing.T) {
	in := "Name,A,B\nfirst,1,2\n\"second, inc\",3,4\n"
	tbl, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if tbl.Columns() != 3 {
		t.Errorf("expected 3 columns, got %d", tbl.Columns())
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(tbl.Rows))
	}
	if tbl.Rows[1][0] != "second, inc" {
		t.Errorf("quoted field mangled: %q", tbl.Rows[1][0])
	}

	var buf bytes.Buffer
	if err := tbl.Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	again, err := Read(&buf)
	if err != nil {
		t.Fatalf("re-read failed: %v", err)
	}
	for i, row := range again.Rows {
		for j, cell := range row {
			if cell != tbl.Rows[i][j] {
				t.Errorf("cell (%d,%d) changed across round trip: %q vs %q", i, j, cell, tbl.Rows[i][j])
			}
		}
	}
}

func TestReadRejectsRaggedRows(t *testing.T) {
	in := "Name,A,B\nfirst,1,2\nsecond,3\n"
	if _, err := Read(strings.NewReader(in)); err == nil {
		t.Error("expected error for ragged rows")
	}
}

func TestReadRejectsEmptyInput(t *testing.T) {
	if _, err := Read(strings.NewReader("")); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestWriteFileAndReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	tbl := &Table{
		Header: []string{"ID", "X"},
		Rows:   [][]string{{"a", "1"}, {"b", "2"}},
	}
	if err := tbl.WriteFile(path); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(got.Rows) != 2 || got.Rows[1][1] != "2" {
		t.Errorf("unexpected table after round trip: %+v", got)
	}
}
