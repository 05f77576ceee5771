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


// Package gemini implements ai.SymptomAnalyzer against Google's Gemini models.
//
// On Google hosts the analyzer uses the langchaingo googleai client, which
// sends the generation settings together with a medium-and-above block
// threshold for harassment, hate speech, sexually explicit and dangerous
// content. Any other AnalysisHost is reached through the langchaingo OpenAI
// client, so OpenAI-compatible servers (Ollama, vLLM, LocalAI) work too,
// without safety settings.
//
// # Response Handling
//
// Models frequently wrap the requested JSON object in markdown fences or add
// prose around it. The analyzer:
//
//  1. takes the first ```json fenced block, else the first ``` block, else
//     the whole text
//  2. trims to the outermost {...}
//  3. repairs keys missing their opening quote and trailing commas
//  4. decodes, then defaults every field the model left out
//
// Unknown severity strings are coerced to "moderate".
//
// # Errors
//
// Transport failures are wrapped in ai.ErrProviderHTTP, undecodable bodies in
// ai.ErrProviderParse, and a missing key yields ai.ErrMissingCredential
// without any network traffic.
package gemini
