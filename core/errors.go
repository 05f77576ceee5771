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


package core

import "errors"

var (
	// ErrInvalidSearchParams indicates tender SearchParams failed validation.
	ErrInvalidSearchParams = errors.New("invalid search params")

	// ErrInvalidCity indicates a city outside the supported set.
	ErrInvalidCity = errors.New("city must be Riyadh or Jeddah")

	// ErrInvalidProjectType indicates an unknown project type.
	ErrInvalidProjectType = errors.New("invalid project type")

	// ErrInvalidYear indicates a filter year outside 1900-2100.
	ErrInvalidYear = errors.New("invalid year")

	// ErrInvalidMonth indicates a filter month outside 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidSymptomInput indicates a SymptomInput failed validation.
	ErrInvalidSymptomInput = errors.New("invalid symptom input")

	// ErrEmptySymptoms indicates the Symptoms field is blank.
	ErrEmptySymptoms = errors.New("symptoms cannot be empty")

	// ErrInvalidDoctorSearch indicates DoctorSearchParams failed validation.
	ErrInvalidDoctorSearch = errors.New("invalid doctor search params")

	// ErrEmptyCity indicates a doctor search without a city.
	ErrEmptyCity = errors.New("city cannot be empty")

	// ErrEmptySpecialty indicates a blank entry in the specialties list.
	ErrEmptySpecialty = errors.New("specialty cannot be empty")
)
