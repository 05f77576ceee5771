package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/poiesic/scout/ai"
	"github.com/poiesic/scout/ai/mock"
	"github.com/poiesic/scout/core"
	"github.com/poiesic/scout/search"
	"github.com/poiesic/scout/triage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newServer wires real pipelines to a mock provider. Search runs in mock
// mode unless searcher is non-nil.
func newServer(t *testing.T, searcher *mock.MockSearcher) *httptest.Server {
	t.Helper()

	cfg := ai.NewConfig(ai.WithoutDelays())
	if searcher != nil {
		cfg = ai.NewConfig(ai.WithSearchAPIKey("tvly-test"), ai.WithoutDelays())
	}
	provider := mock.NewMockProviderWithServices(nil, searcher)

	tenders, err := search.NewTenderSearcher(provider, cfg, search.WithLogger(quietLogger()))
	require.NoError(t, err)
	doctors, err := search.NewDoctorSearcher(provider, cfg, search.WithLogger(quietLogger()))
	require.NoError(t, err)
	analyzer, err := triage.NewAnalyzer(provider, cfg, triage.WithLogger(quietLogger()))
	require.NoError(t, err)

	handler, err := NewRouter(quietLogger(), Pipelines{Tenders: tenders, Doctors: doctors, Analyzer: analyzer})
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestNewRouter_RequiresPipelines(t *testing.T) {
	_, err := NewRouter(nil, Pipelines{})
	assert.Equal(t, ErrScoutRequired, err)
}

func TestPing(t *testing.T) {
	srv := newServer(t, nil)

	resp, err := http.Get(srv.URL + "/api/ping")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
}

func TestSpecialties(t *testing.T) {
	srv := newServer(t, nil)

	resp, err := http.Get(srv.URL + "/api/specialties")
	require.NoError(t, err)
	defer resp.Body.Close()

	got := decodeBody[[]core.Specialty](t, resp)
	assert.Equal(t, core.Specialties(), got)
}

func TestSearchTenders(t *testing.T) {
	srv := newServer(t, nil)

	t.Run("mock mode scenario", func(t *testing.T) {
		resp := post(t, srv, "/api/tenders/search", `{"city":"Riyadh","area":"Al Olaya"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		got := decodeBody[search.TenderResult](t, resp)
		assert.Equal(t, core.SourceMock, got.Source)
		require.Len(t, got.Tenders, 1)
		assert.Equal(t, "tender-002", got.Tenders[0].ID)
	})

	tests := []struct {
		name string
		body string
	}{
		{"empty body", ``},
		{"malformed json", `{"city":`},
		{"unknown field", `{"city":"Riyadh","colour":"blue"}`},
		{"unsupported city", `{"city":"Dammam"}`},
		{"bad month", `{"city":"Riyadh","month":13}`},
		{"trailing data", `{"city":"Riyadh"}{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := post(t, srv, "/api/tenders/search", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			got := decodeBody[ErrorResponse](t, resp)
			assert.NotEmpty(t, got.Reason)
		})
	}
}

func TestTranscriptTenders(t *testing.T) {
	srv := newServer(t, nil)

	t.Run("fills filters and searches", func(t *testing.T) {
		resp := post(t, srv, "/api/tenders/transcript", `{"transcript":"warehouse projects in jeddah"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		got := decodeBody[TranscriptResponse](t, resp)
		assert.Equal(t, core.CityJeddah, got.Params.City)
		assert.True(t, got.Searchable)
		require.NotNil(t, got.Result)
		assert.Equal(t, core.SourceMock, got.Result.Source)
	})

	t.Run("partial current filters", func(t *testing.T) {
		resp := post(t, srv, "/api/tenders/transcript", `{"transcript":"road works in olaya","current":{"month":3}}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		got := decodeBody[TranscriptResponse](t, resp)
		assert.Equal(t, core.CityRiyadh, got.Params.City)
		assert.Equal(t, 3, got.Params.Month)
	})

	t.Run("invalid merged filters", func(t *testing.T) {
		resp := post(t, srv, "/api/tenders/transcript", `{"transcript":"warehouse in jeddah","current":{"month":13}}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("empty transcript", func(t *testing.T) {
		resp := post(t, srv, "/api/tenders/transcript", `{"transcript":""}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestRefineTenders(t *testing.T) {
	srv := newServer(t, nil)

	body := `{"tenders":[
		{"id":"a","title":"A","deadline":"2025-12-20"},
		{"id":"b","title":"B","deadline":"2025-12-01"}
	],"options":{"sortBy":"deadline"}}`
	resp := post(t, srv, "/api/tenders/refine", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got := decodeBody[[]core.Tender](t, resp)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)

	resp = post(t, srv, "/api/tenders/refine", `{"tenders":[],"options":{"sortBy":"price"}}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalyzeSymptoms(t *testing.T) {
	t.Run("mock mode scenario", func(t *testing.T) {
		srv := newServer(t, nil)
		resp := post(t, srv, "/api/symptoms/analyze", `{"symptoms":"I have chest pain and can't breathe"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		got := decodeBody[AnalyzeResponse](t, resp)
		assert.Equal(t, core.SeverityUrgent, got.Analysis.Severity)
		assert.True(t, got.Analysis.ShouldSeeDoctorUrgently)
		assert.Contains(t, got.Analysis.SuggestedSpecialist, "Cardiologist")
		assert.Equal(t, core.Disclaimer, got.Analysis.Disclaimer)
		assert.Nil(t, got.Doctors, "no city, no doctor search")
	})

	t.Run("city triggers doctor search", func(t *testing.T) {
		searcher := mock.NewMockSearcher().WithResults(ai.RawResult{
			Title:   "Dr. Sara Ali | Cardiologist",
			URL:     "https://www.vezeeta.com/sara",
			Content: "Cardiology consultant.",
		})
		srv := newServer(t, searcher)

		resp := post(t, srv, "/api/symptoms/analyze", `{"symptoms":"chest pain","city":"Riyadh"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		got := decodeBody[AnalyzeResponse](t, resp)
		require.NotNil(t, got.Doctors)
		require.Len(t, got.Doctors.Doctors, 1)
		assert.Equal(t, "Dr. Sara Ali", got.Doctors.Doctors[0].Name)
		assert.Contains(t, searcher.LastRequest().Query, "Riyadh Saudi Arabia")
	})

	t.Run("blank symptoms", func(t *testing.T) {
		srv := newServer(t, nil)
		resp := post(t, srv, "/api/symptoms/analyze", `{"symptoms":"   "}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestFindDoctors(t *testing.T) {
	searcher := mock.NewMockSearcher().WithResults(
		ai.RawResult{Title: "City General Hospital - Emergency Services", URL: "https://cityhospital.sa"},
		ai.RawResult{Title: "Dr. Omar Nasser - Neurologist", URL: "https://doctoruna.com/omar", Content: "Neurology."},
	)
	srv := newServer(t, searcher)

	t.Run("hospitals are excluded", func(t *testing.T) {
		resp := post(t, srv, "/api/doctors/search", `{"country":"Saudi Arabia","city":"Riyadh","specialties":["Neurologist"]}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		got := decodeBody[search.DoctorResult](t, resp)
		require.Len(t, got.Doctors, 1)
		assert.Equal(t, "Dr. Omar Nasser", got.Doctors[0].Name)
		assert.Equal(t, "Neurologist", got.Doctors[0].Specialization)
	})

	t.Run("city is required", func(t *testing.T) {
		resp := post(t, srv, "/api/doctors/search", `{"country":"Saudi Arabia"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestServe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, "127.0.0.1:0", http.NotFoundHandler(), quietLogger())
	}()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
