package events

const (
	StreamName   = "TOPSIS_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectRunSubmitted(runID string) string { return "topsis.run." + runID + ".submitted" }
func SubjectRunCompleted(runID string) string { return "topsis.run." + runID + ".completed" }
func SubjectRunFailed(runID string) string    { return "topsis.run." + runID + ".failed" }
func SubjectRunDelivered(runID string) string { return "topsis.run." + runID + ".delivered" }
