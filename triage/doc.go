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


// Package triage turns a patient's symptom description into a preliminary
// assessment.
//
// Analyzer.Analyze asks the analysis provider for an assessment and maps
// its payload onto core.SymptomAnalysis. When no analysis key is configured,
// or the provider fails, a deterministic keyword-based assessment from the
// fallback package is served instead, after a short simulated delay. The
// result always carries core.Disclaimer.
//
// Severity and the urgency flag are passed through as the provider returns
// them. Use core.SymptomAnalysis.Consistent to detect disagreement.
//
// DoctorSearchParamsFor links an assessment to the doctor search: its
// recommended specialties become the specialties searched for.
package triage
