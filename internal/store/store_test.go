package store

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	run := &Run{
		OriginalFilename: "data.csv",
		Weights:          "1,1",
		Impacts:          "+,-",
	}
	if err := s.CreateRun(ctx, run); err != nil {
		t.Fatalf("CreateRun failed: %v", err)
	}
	if run.ID == uuid.Nil {
		t.Fatal("expected an id to be assigned")
	}
	if run.Status != StatusPending {
		t.Errorf("expected pending status, got %q", run.Status)
	}

	got, err := s.GetRun(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if got == nil || got.Weights != "1,1" {
		t.Fatalf("unexpected run: %+v", got)
	}

	got.Status = StatusCompleted
	got.ResultFile = "topsis_result_x.csv"
	if err := s.UpdateRun(ctx, got); err != nil {
		t.Fatalf("UpdateRun failed: %v", err)
	}

	again, _ := s.GetRun(ctx, run.ID)
	if again.Status != StatusCompleted || again.ResultFile == "" {
		t.Errorf("update not persisted: %+v", again)
	}

	// Reads hand out copies, not aliases into the store.
	again.Status = StatusFailed
	fresh, _ := s.GetRun(ctx, run.ID)
	if fresh.Status != StatusCompleted {
		t.Error("mutating a returned run leaked into the store")
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	s := NewMemoryStore()
	got, err := s.GetRun(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetRun failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for unknown run, got %+v", got)
	}
	if err := s.UpdateRun(context.Background(), &Run{ID: uuid.New()}); err == nil {
		t.Error("expected error updating unknown run")
	}
}

func TestMemoryStoreStats(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	for _, status := range []RunStatus{StatusPending, StatusCompleted, StatusCompleted, StatusFailed} {
		if err := s.CreateRun(ctx, &Run{Status: status}); err != nil {
			t.Fatal(err)
		}
	}
	st, err := s.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if st.Total != 4 || st.Pending != 1 || st.Completed != 2 || st.Failed != 1 {
		t.Errorf("unexpected stats: %+v", st)
	}
}

func TestFilesSaveUpload(t *testing.T) {
	dir := t.TempDir()
	files, err := NewFiles(dir+"/up", dir+"/res")
	if err != nil {
		t.Fatalf("NewFiles failed: %v", err)
	}

	id := uuid.New()
	path, err := files.SaveUpload(id, "../../etc/data.csv", strings.NewReader("a,b,c\n"))
	if err != nil {
		t.Fatalf("SaveUpload failed: %v", err)
	}
	if !strings.HasPrefix(path, dir+"/up/") {
		t.Errorf("upload escaped the upload dir: %q", path)
	}
	if !strings.Contains(path, id.String()) || !strings.HasSuffix(path, "_data.csv") {
		t.Errorf("unexpected upload name: %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "a,b,c\n" {
		t.Errorf("upload content wrong: %q, %v", data, err)
	}
}

func TestFilesResultPathRejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	files, err := NewFiles(dir+"/up", dir+"/res")
	if err != nil {
		t.Fatal(err)
	}
	for _, bad := range []string{"", "../secrets.csv", "a/b.csv", "..", "sub/../../x"} {
		if _, err := files.ResultPath(bad); err == nil {
			t.Errorf("expected rejection of %q", bad)
		}
	}
	if _, err := files.ResultPath(files.ResultName(uuid.New())); err != nil {
		t.Errorf("canonical result name rejected: %v", err)
	}
}
