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


// Package search provides the tender and doctor search pipelines.
//
// Both pipelines share one shape: build a query, call the web search
// provider once, normalize the raw results, filter and rank them. Their
// entry points never return errors. A missing credential, a failed call
// or an empty answer is logged and turned into fallback data:
//
//   - Tenders: fixture tenders filtered like a real search. An empty
//     provider answer yields the first three fixtures of the city.
//   - Doctors: an empty list.
//
// Every result carries the generation it ran under, so a caller that
// started a newer search can discard a late answer.
//
// FilterByDate and Refine implement the year/month filter and the
// secondary keyword, category and sort controls applied to a result list.
package search
