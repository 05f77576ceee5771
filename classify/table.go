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


package classify

import "strings"

// Rule maps a set of lowercase keywords onto a label.
type Rule struct {
	Label    string
	Keywords []string
}

// Table is an ordered keyword classifier. Order is significant: the first
// rule with any matching keyword wins.
type Table []Rule

// FirstMatch lowercases text and returns the label of the first rule that
// has a keyword contained in it.
func (t Table) FirstMatch(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, rule := range t {
		if containsAny(lower, rule.Keywords) {
			return rule.Label, true
		}
	}
	return "", false
}

// Labels returns the rule labels in table order.
func (t Table) Labels() []string {
	labels := make([]string, len(t))
	for i, rule := range t {
		labels[i] = rule.Label
	}
	return labels
}

// containsAny reports whether s contains any of the keywords. s and the
// keywords must already be lowercase.
func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
