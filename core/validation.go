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

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateSearchParams checks tender search filters.
func ValidateSearchParams(params *SearchParams) error {
	if params == nil {
		return fmt.Errorf("%w: params is nil", ErrInvalidSearchParams)
	}
	if err := validate.Struct(params); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSearchParams, fieldError(err, map[string]error{
			"City":        ErrInvalidCity,
			"ProjectType": ErrInvalidProjectType,
			"Year":        ErrInvalidYear,
			"Month":       ErrInvalidMonth,
		}))
	}
	return nil
}

// ValidateSymptomInput checks that symptoms were supplied.
func ValidateSymptomInput(input *SymptomInput) error {
	if input == nil {
		return fmt.Errorf("%w: input is nil", ErrInvalidSymptomInput)
	}
	if strings.TrimSpace(input.Symptoms) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSymptomInput, ErrEmptySymptoms)
	}
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSymptomInput, fieldError(err, map[string]error{
			"Symptoms": ErrEmptySymptoms,
		}))
	}
	return nil
}

// ValidateDoctorSearchParams checks doctor search location and specialties.
func ValidateDoctorSearchParams(params *DoctorSearchParams) error {
	if params == nil {
		return fmt.Errorf("%w: params is nil", ErrInvalidDoctorSearch)
	}
	if strings.TrimSpace(params.City) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDoctorSearch, ErrEmptyCity)
	}
	if err := validate.Struct(params); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDoctorSearch, fieldError(err, map[string]error{
			"City":        ErrEmptyCity,
			"Specialties": ErrEmptySpecialty,
		}))
	}
	return nil
}

// IsValidCity reports whether c is one of the supported tender cities.
func IsValidCity(c City) bool {
	for _, known := range Cities {
		if c == known {
			return true
		}
	}
	return false
}

// fieldError maps the first failing field onto its sentinel.
func fieldError(err error, sentinels map[string]error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	// dive errors report the element as Specialties[0]
	name := fe.StructField()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	if sentinel, ok := sentinels[name]; ok {
		return fmt.Errorf("%w: %q", sentinel, fmt.Sprint(fe.Value()))
	}
	return fmt.Errorf("field %s failed %s", fe.Field(), fe.Tag())
}
