package mock

import (
	"context"
	"sync"

	"github.com/poiesic/scout/ai"
)

// MockAnalyzer is a test double for ai.SymptomAnalyzer.
// It allows custom behavior injection via function fields.
type MockAnalyzer struct {
	// AnalyzeSymptomsFunc is called by AnalyzeSymptoms if set.
	// If nil, returns a fixed mild payload.
	AnalyzeSymptomsFunc func(ctx context.Context, symptoms string) (*ai.AnalysisPayload, error)

	mu        sync.Mutex
	callCount int
	lastInput string
}

// NewMockAnalyzer creates a mock analyzer with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockAnalyzer() *MockAnalyzer {
	return &MockAnalyzer{}
}

// WithPayload makes every call return a copy of payload.
func (m *MockAnalyzer) WithPayload(payload ai.AnalysisPayload) *MockAnalyzer {
	m.AnalyzeSymptomsFunc = func(ctx context.Context, symptoms string) (*ai.AnalysisPayload, error) {
		p := payload
		return &p, nil
	}
	return m
}

// WithError makes every call fail with err.
func (m *MockAnalyzer) WithError(err error) *MockAnalyzer {
	m.AnalyzeSymptomsFunc = func(ctx context.Context, symptoms string) (*ai.AnalysisPayload, error) {
		return nil, err
	}
	return m
}

// AnalyzeSymptoms records the call and returns the scripted payload.
func (m *MockAnalyzer) AnalyzeSymptoms(ctx context.Context, symptoms string) (*ai.AnalysisPayload, error) {
	m.mu.Lock()
	m.callCount++
	m.lastInput = symptoms
	fn := m.AnalyzeSymptomsFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, symptoms)
	}

	return &ai.AnalysisPayload{
		Summary:                "Thank you for sharing your symptoms with me.",
		PossibleConditions:     []string{"Common cold"},
		Severity:               "mild",
		RedFlags:               []string{"High fever"},
		RecommendedActions:     []string{"Rest"},
		SuggestedSpecialist:    "General Physician",
		RecommendedSpecialties: []string{"General Physician"},
	}, nil
}

// CallCount returns the number of times AnalyzeSymptoms was called.
func (m *MockAnalyzer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastInput returns the symptoms passed to the most recent call.
func (m *MockAnalyzer) LastInput() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastInput
}

// Reset clears the call count and custom functions.
func (m *MockAnalyzer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.lastInput = ""
	m.AnalyzeSymptomsFunc = nil
}
