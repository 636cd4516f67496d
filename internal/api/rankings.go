package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Sommit1/topsis-web/internal/events"
	"github.com/Sommit1/topsis-web/internal/mailer"
	"github.com/Sommit1/topsis-web/internal/metrics"
	"github.com/Sommit1/topsis-web/internal/store"
	"github.com/Sommit1/topsis-web/internal/topsis"
)

const maxUploadBytes = 32 << 20

// Submitter hands accepted runs to the background pipeline.
type Submitter interface {
	Submit(id uuid.UUID) error
}

type RankingsHandler struct {
	store  store.Store
	files  *store.Files
	runner Submitter
	events events.Client
}

func NewRankingsHandler(s store.Store, f *store.Files, run Submitter, ev events.Client) *RankingsHandler {
	return &RankingsHandler{store: s, files: f, runner: run, events: ev}
}

// rankingForm is the shared multipart form of the submit and score
// endpoints: the dataset file plus its weights/impacts parameters.
type rankingForm struct {
	file     multipart.File
	filename string
	weights  string
	impacts  string
	email    string
}

func parseRankingForm(r *http.Request) (*rankingForm, string) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, "invalid multipart form"
	}

	file, header, err := r.FormFile("file")
	if err != nil || header.Filename == "" {
		return nil, "Please upload a CSV file."
	}

	form := &rankingForm{
		file:     file,
		filename: header.Filename,
		weights:  strings.TrimSpace(r.FormValue("weights")),
		impacts:  strings.TrimSpace(r.FormValue("impacts")),
		email:    strings.TrimSpace(r.FormValue("email")),
	}

	if !strings.Contains(form.weights, ",") || !strings.Contains(form.impacts, ",") {
		return nil, "Weights and impacts must be separated by comma (,)."
	}
	weightCount := len(strings.Split(form.weights, ","))
	impactCount := len(strings.Split(form.impacts, ","))
	if weightCount != impactCount {
		return nil, "Number of weights must be equal to number of impacts."
	}
	for _, tok := range strings.Split(form.impacts, ",") {
		if t := strings.TrimSpace(tok); t != "+" && t != "-" {
			return nil, "Impacts must be either + or -."
		}
	}
	if form.email != "" && !mailer.ValidAddress(form.email) {
		return nil, "Format of email id is not correct."
	}
	return form, ""
}

// Submit accepts a dataset upload and queues it for ranking.
func (h *RankingsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	form, msg := parseRankingForm(r)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	defer form.file.Close()

	run := &store.Run{
		OriginalFilename: form.filename,
		Weights:          form.weights,
		Impacts:          form.impacts,
		Email:            form.email,
	}
	if err := h.store.CreateRun(r.Context(), run); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	path, err := h.files.SaveUpload(run.ID, form.filename, form.file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	run.InputPath = path
	if err := h.store.UpdateRun(r.Context(), run); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.runner.Submit(run.ID); err != nil {
		run.Status = store.StatusFailed
		run.Error = err.Error()
		_ = h.store.UpdateRun(r.Context(), run)
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	metrics.RunsSubmitted.Inc()
	if h.events != nil {
		_ = h.events.Publish(events.SubjectRunSubmitted(run.ID.String()), events.RunSubmittedEvent{
			RunID:    run.ID.String(),
			Filename: run.OriginalFilename,
			Weights:  run.Weights,
			Impacts:  run.Impacts,
		})
	}

	writeJSON(w, http.StatusAccepted, run)
}

// Get reports the status of a submitted run.
func (h *RankingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid run id")
		return
	}

	run, err := h.store.GetRun(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if run == nil {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// ScoreSync ranks the uploaded dataset in-request and streams the
// augmented CSV back. Nothing is stored and nothing is emailed.
func (h *RankingsHandler) ScoreSync(w http.ResponseWriter, r *http.Request) {
	form, msg := parseRankingForm(r)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	defer form.file.Close()

	tbl, err := topsis.Load(form.file)
	if err != nil {
		writeError(w, statusForKind(topsis.KindOf(err)), err.Error())
		return
	}
	res, err := topsis.Score(tbl, form.weights, form.impacts)
	if err != nil {
		writeError(w, statusForKind(topsis.KindOf(err)), err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="topsis_result.csv"`)
	if err := res.Write(w); err != nil {
		// Headers are out; all that is left is to log upstream.
		return
	}
}

// Download serves a previously produced result CSV by name.
func (h *RankingsHandler) Download(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	f, err := h.files.OpenResult(name)
	if err != nil {
		if os.IsNotExist(err) {
			writeError(w, http.StatusNotFound, "result not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	_, _ = io.Copy(w, f)
}

// statusForKind maps pipeline error kinds onto HTTP statuses: bad uploads
// are 400s, semantically invalid datasets are 422s.
func statusForKind(kind topsis.Kind) int {
	switch kind {
	case topsis.KindLoad, topsis.KindParse:
		return http.StatusBadRequest
	case topsis.KindShape, topsis.KindType, topsis.KindArity, topsis.KindImpact, topsis.KindComputation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
