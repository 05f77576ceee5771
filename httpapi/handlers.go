package httpapi

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/poiesic/scout/core"
	"github.com/poiesic/scout/query"
	"github.com/poiesic/scout/search"
	"github.com/poiesic/scout/triage"
)

var validate = validator.New()

// TenderSearcher runs tender searches.
type TenderSearcher interface {
	Search(ctx context.Context, params core.SearchParams) search.TenderResult
}

// DoctorFinder runs doctor searches.
type DoctorFinder interface {
	Find(ctx context.Context, params core.DoctorSearchParams) search.DoctorResult
}

// SymptomAnalyzer assesses symptoms.
type SymptomAnalyzer interface {
	Analyze(ctx context.Context, input core.SymptomInput) triage.AnalysisResult
}

// NewPing answers liveness probes.
func NewPing(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "httpapi.NewPing"

		log := log.With(slog.String("op", op))
		log.Debug("ping request")

		render.PlainText(w, r, "ok")
	}
}

// NewSearchTenders runs a tender search for the posted core.SearchParams.
func NewSearchTenders(log *slog.Logger, searcher TenderSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "httpapi.NewSearchTenders"
		log := log.With(slog.String("op", op))

		var params core.SearchParams
		if err := decode(r.Body, &params); err != nil {
			badRequest(log, w, r, "failed to decode tender search", err)
			return
		}
		if err := core.ValidateSearchParams(&params); err != nil {
			badRequest(log, w, r, "invalid tender search", err)
			return
		}

		result := searcher.Search(r.Context(), params)
		log.Info("tender search", "city", params.City, "count", len(result.Tenders), "source", result.Source)
		render.JSON(w, r, result)
	}
}

// TranscriptRequest carries a spoken tender request and the filters
// currently selected.
type TranscriptRequest struct {
	Transcript string            `json:"transcript"`
	Current    core.SearchParams `json:"current"`
}

// TranscriptResponse holds the filters read from a transcript and, when
// they were enough to search, the search result.
type TranscriptResponse struct {
	Params     core.SearchParams    `json:"params"`
	Searchable bool                 `json:"searchable"`
	Result     *search.TenderResult `json:"result,omitempty"`
}

// NewTranscriptTenders turns a spoken request into tender filters and runs
// the search when the filters carry enough input.
func NewTranscriptTenders(log *slog.Logger, searcher TenderSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "httpapi.NewTranscriptTenders"
		log := log.With(slog.String("op", op))

		var req TranscriptRequest
		if err := decode(r.Body, &req); err != nil {
			badRequest(log, w, r, "failed to decode transcript", err)
			return
		}
		// Current may be partial; the merged filters are checked below.
		if err := validate.Var(req.Transcript, "required"); err != nil {
			badRequest(log, w, r, "invalid transcript", errEmptyTranscript)
			return
		}

		params := query.ParseTranscript(req.Transcript, req.Current)
		if err := core.ValidateSearchParams(&params); err != nil {
			badRequest(log, w, r, "invalid filters in transcript request", err)
			return
		}

		resp := TranscriptResponse{Params: params, Searchable: query.Searchable(params)}
		if resp.Searchable {
			result := searcher.Search(r.Context(), params)
			resp.Result = &result
		}
		render.JSON(w, r, resp)
	}
}

// RefineRequest narrows a tender list the caller already holds.
type RefineRequest struct {
	Tenders []core.Tender        `json:"tenders"`
	Options search.RefineOptions `json:"options"`
}

// NewRefineTenders filters and sorts posted tenders without a search.
func NewRefineTenders(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "httpapi.NewRefineTenders"
		log := log.With(slog.String("op", op))

		var req RefineRequest
		if err := decode(r.Body, &req); err != nil {
			badRequest(log, w, r, "failed to decode refine request", err)
			return
		}
		if err := validate.Struct(req.Options); err != nil {
			badRequest(log, w, r, "invalid refine options", err)
			return
		}

		render.JSON(w, r, search.Refine(req.Tenders, req.Options))
	}
}

// AnalyzeResponse is a symptom assessment, followed by nearby doctors when
// the input named a city.
type AnalyzeResponse struct {
	triage.AnalysisResult
	Doctors *search.DoctorResult `json:"doctors,omitempty"`
}

// NewAnalyzeSymptoms assesses the posted core.SymptomInput. With a city in
// the input, doctors for the recommended specialties are looked up too.
func NewAnalyzeSymptoms(log *slog.Logger, analyzer SymptomAnalyzer, finder DoctorFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "httpapi.NewAnalyzeSymptoms"
		log := log.With(slog.String("op", op))

		var input core.SymptomInput
		if err := decode(r.Body, &input); err != nil {
			badRequest(log, w, r, "failed to decode symptoms", err)
			return
		}
		if err := core.ValidateSymptomInput(&input); err != nil {
			badRequest(log, w, r, "invalid symptoms", err)
			return
		}

		resp := AnalyzeResponse{AnalysisResult: analyzer.Analyze(r.Context(), input)}
		log.Info("symptom analysis", "severity", resp.Analysis.Severity, "source", resp.Source)

		if finder != nil && triage.HasLocation(input) {
			doctors := finder.Find(r.Context(), triage.DoctorSearchParamsFor(resp.Analysis, input))
			resp.Doctors = &doctors
		}
		render.JSON(w, r, resp)
	}
}

// NewFindDoctors runs a doctor search for the posted core.DoctorSearchParams.
func NewFindDoctors(log *slog.Logger, finder DoctorFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "httpapi.NewFindDoctors"
		log := log.With(slog.String("op", op))

		var params core.DoctorSearchParams
		if err := decode(r.Body, &params); err != nil {
			badRequest(log, w, r, "failed to decode doctor search", err)
			return
		}
		if err := core.ValidateDoctorSearchParams(&params); err != nil {
			badRequest(log, w, r, "invalid doctor search", err)
			return
		}

		result := finder.Find(r.Context(), params)
		log.Info("doctor search", "city", params.City, "count", len(result.Doctors), "source", result.Source)
		render.JSON(w, r, result)
	}
}

// NewSpecialties lists the doctor specialty taxonomy.
func NewSpecialties(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("specialties request", slog.String("op", "httpapi.NewSpecialties"))
		render.JSON(w, r, core.Specialties())
	}
}
