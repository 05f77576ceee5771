// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package search

import "github.com/poiesic/scout/core"

// SearchMonitor provides hooks to observe a search.
// Implement this interface to drive progress indicators or collect
// diagnostics. Hooks run synchronously on the searching goroutine.
type SearchMonitor interface {
	Start(query string)
	StepStarted(step core.ProgressStep)
	StepDone(step core.ProgressStep)
	Fallback(reason error)
	Finish(count int, source core.ResultSource)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                    {}
func (n *noopMonitor) StepStarted(_ core.ProgressStep)   {}
func (n *noopMonitor) StepDone(_ core.ProgressStep)      {}
func (n *noopMonitor) Fallback(_ error)                  {}
func (n *noopMonitor) Finish(_ int, _ core.ResultSource) {}

// TenderSteps returns the user-facing progress steps of a tender search,
// all pending.
func TenderSteps() []core.ProgressStep {
	return []core.ProgressStep{
		{ID: "portals", Text: "Checking government procurement portals", Status: core.StepPending},
		{ID: "announcements", Text: "Scanning recent public tender announcements", Status: core.StepPending},
		{ID: "details", Text: "Extracting key tender details and requirements", Status: core.StepPending},
	}
}

// stepper walks a monitor through an ordered list of steps.
type stepper struct {
	monitor SearchMonitor
	steps   []core.ProgressStep
	current int
}

func newStepper(monitor SearchMonitor, steps []core.ProgressStep) *stepper {
	return &stepper{monitor: monitor, steps: steps, current: -1}
}

// next completes the active step and activates the following one.
func (s *stepper) next() {
	if s.current >= 0 && s.current < len(s.steps) {
		s.steps[s.current].Status = core.StepDone
		s.monitor.StepDone(s.steps[s.current])
	}
	s.current++
	if s.current < len(s.steps) {
		s.steps[s.current].Status = core.StepActive
		s.monitor.StepStarted(s.steps[s.current])
	}
}

// finish completes every remaining step.
func (s *stepper) finish() {
	for s.current < len(s.steps) {
		s.next()
	}
}
