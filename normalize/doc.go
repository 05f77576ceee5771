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


// Package normalize maps raw web search results into tenders and doctors.
//
// Providers return loosely structured pages: a title, a URL and a text
// snippet. This package extracts what it can with best-effort heuristics.
// A heuristic that finds nothing leaves its field empty; nothing here
// returns an error.
//
// # Tenders
//
// Tender pulls city, district, issuing authority, estimated value and the
// first date-shaped token out of the snippet, and classifies the project
// with classify.Categories.
//
// # Doctors
//
// Doctor drops institutions twice: once on the raw title (hospital keyword
// without a "Dr." marker) and again on the cleaned name. Survivors get a
// formatted name, a detected specialization and a note saying whether
// they match the caller's recommended specialties.
//
// # Concurrency
//
// Batch runs either mapper over a result list on an ants worker pool and
// keeps the input order, which the ranker relies on for stability.
package normalize
