package events

type RunSubmittedEvent struct {
	RunID    string `json:"run_id"`
	Filename string `json:"filename"`
	Weights  string `json:"weights"`
	Impacts  string `json:"impacts"`
}

type RunCompletedEvent struct {
	RunID      string  `json:"run_id"`
	ResultFile string  `json:"result_file"`
	Rows       int     `json:"rows"`
	DurationMs float64 `json:"duration_ms"`
}

type RunFailedEvent struct {
	RunID string `json:"run_id"`
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

type RunDeliveredEvent struct {
	RunID string `json:"run_id"`
	Email string `json:"email"`
}
