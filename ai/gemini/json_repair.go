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


package gemini

import (
	"regexp"
	"strings"
)

var (
	jsonFence = regexp.MustCompile("```json\\s*([\\s\\S]*?)\\s*```")
	anyFence  = regexp.MustCompile("```\\s*([\\s\\S]*?)\\s*```")
)

// cleanModelJSON turns raw model text into something json.Unmarshal can
// usually accept: the first fenced block (```json preferred), trimmed to the
// outermost object, with unquoted keys and trailing commas repaired.
func cleanModelJSON(text string) string {
	text = stripFences(text)
	text = outermostObject(text)
	text = repairJSON(text)
	return dropTrailingCommas(text)
}

func stripFences(text string) string {
	if m := jsonFence.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := anyFence.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(text)
}

// outermostObject drops any prose the model put around the JSON object.
func outermostObject(text string) string {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return text
	}
	return text[start : end+1]
}

// repairJSON fixes keys that lost their opening quote.
// Example: `, severity":` -> `, "severity":`
func repairJSON(s string) string {
	src := []rune(s)
	fixed := make([]rune, 0, len(src)+16)
	inString := false

	for i := 0; i < len(src); i++ {
		ch := src[i]
		if ch == '"' && (i == 0 || src[i-1] != '\\') {
			inString = !inString
		}
		fixed = append(fixed, ch)
		if inString || (ch != '{' && ch != ',') {
			continue
		}

		// Copy whitespace after the separator
		j := i + 1
		for j < len(src) && isSpace(src[j]) {
			fixed = append(fixed, src[j])
			j++
		}

		// An unquoted key is letters/underscores directly followed by `":`
		k := j
		for k < len(src) && (isLetter(src[k]) || src[k] == '_') {
			k++
		}
		if k > j && k+1 < len(src) && src[k] == '"' && src[k+1] == ':' {
			fixed = append(fixed, '"')
			fixed = append(fixed, src[j:k]...)
			// The closing quote at src[k] is copied by the main loop and
			// toggles inString back off after the opening quote we added.
			inString = true
			i = k - 1
			continue
		}
		i = j - 1
	}

	return string(fixed)
}

// dropTrailingCommas removes commas directly before a closing bracket.
func dropTrailingCommas(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inString := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '"' && (i == 0 || s[i-1] != '\\') {
			inString = !inString
		}
		if ch == ',' && !inString {
			j := i + 1
			for j < len(s) && isSpace(rune(s[j])) {
				j++
			}
			if j < len(s) && (s[j] == '}' || s[j] == ']') {
				continue
			}
		}
		b.WriteByte(ch)
	}
	return b.String()
}
