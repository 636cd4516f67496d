package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type RunStatus string

const (
	StatusPending   RunStatus = "pending"
	StatusRunning   RunStatus = "running"
	StatusCompleted RunStatus = "completed"
	StatusFailed    RunStatus = "failed"
)

// Run is one ranking request: an uploaded dataset plus its parameters,
// tracked from submission through completion or failure.
type Run struct {
	ID               uuid.UUID `json:"run_id"`
	OriginalFilename string    `json:"original_filename"`
	InputPath        string    `json:"-"`
	Weights          string    `json:"weights"`
	Impacts          string    `json:"impacts"`
	Email            string    `json:"email,omitempty"`

	Status    RunStatus `json:"status"`
	ErrorKind string    `json:"error_kind,omitempty"`
	Error     string    `json:"error,omitempty"`

	// ResultFile is the name of the produced CSV under the result dir.
	ResultFile string `json:"result_file,omitempty"`
	Emailed    bool   `json:"emailed"`

	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type Stats struct {
	Pending   int `json:"pending"`
	Running   int `json:"running"`
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
	Total     int `json:"total"`
}

type Store interface {
	CreateRun(ctx context.Context, run *Run) error
	GetRun(ctx context.Context, id uuid.UUID) (*Run, error)
	UpdateRun(ctx context.Context, run *Run) error
	ListRuns(ctx context.Context) ([]*Run, error)
	Stats(ctx context.Context) (*Stats, error)
}
