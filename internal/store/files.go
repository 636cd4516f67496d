package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Files owns the on-disk layout: uploaded datasets under the upload dir,
// produced CSVs under the result dir. Names carry the run id so repeated
// uploads of the same filename never collide.
type Files struct {
	UploadDir string
	ResultDir string
}

func NewFiles(uploadDir, resultDir string) (*Files, error) {
	for _, dir := range []string{uploadDir, resultDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create dir %s: %w", dir, err)
		}
	}
	return &Files{UploadDir: uploadDir, ResultDir: resultDir}, nil
}

// SaveUpload writes an uploaded dataset to the upload dir and returns its
// path. The client-supplied filename is reduced to its base name first.
func (f *Files) SaveUpload(id uuid.UUID, filename string, r io.Reader) (string, error) {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "upload.csv"
	}
	path := filepath.Join(f.UploadDir, fmt.Sprintf("%s_%s", id, name))

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		os.Remove(path)
		return "", fmt.Errorf("save upload: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return path, nil
}

// ResultName returns the canonical result filename for a run.
func (f *Files) ResultName(id uuid.UUID) string {
	return fmt.Sprintf("topsis_result_%s.csv", id)
}

// ResultPath resolves a result filename to its path, rejecting anything
// that would escape the result dir.
func (f *Files) ResultPath(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
		return "", fmt.Errorf("invalid result name %q", name)
	}
	return filepath.Join(f.ResultDir, name), nil
}

// OpenResult opens a previously produced result CSV for download.
func (f *Files) OpenResult(name string) (*os.File, error) {
	path, err := f.ResultPath(name)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}
