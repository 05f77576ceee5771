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


// Package rank orders normalized results by relevance.
package rank

import (
	"slices"

	"github.com/poiesic/scout/classify"
	"github.com/poiesic/scout/core"
)

// Partition stably moves the elements satisfying first ahead of the rest.
// Relative order inside each group is preserved. The input is not modified.
func Partition[T any](items []T, first func(T) bool) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		return rank(first(a)) - rank(first(b))
	})
	return out
}

func rank(matched bool) int {
	if matched {
		return 0
	}
	return 1
}

// ByMatch puts doctors whose note marks a specialty match first.
func ByMatch(doctors []core.Doctor) []core.Doctor {
	return Partition(doctors, func(d core.Doctor) bool {
		return classify.IsMatchNote(d.Notes)
	})
}
