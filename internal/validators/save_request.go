// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"regexp"

	"github.com/MKhiriev/stateless-settings/models"
)

// Fields of [models.SaveRequest] that can be validated separately.
const (
	FieldAction = "action"
	FieldValues = "values"
)

const (
	maxActionLength = 128
	maxValues       = 64
	// key_json holds a whole service account key.
	maxValueLength = 64 << 10
)

var settingNamePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// SaveRequestValidator checks settings submissions.
type SaveRequestValidator struct{}

func NewSaveRequestValidator() *SaveRequestValidator {
	return &SaveRequestValidator{}
}

// Validate accepts models.SaveRequest or a pointer to one. Without fields
// every field is checked.
func (v *SaveRequestValidator) Validate(ctx context.Context, value any, fields ...string) error {
	switch req := value.(type) {
	case models.SaveRequest:
		return v.validateSaveRequest(req, fields...)
	case *models.SaveRequest:
		if req == nil {
			return ErrUnsupportedType
		}
		return v.validateSaveRequest(*req, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *SaveRequestValidator) validateSaveRequest(req models.SaveRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAction, FieldValues}
	}

	for _, f := range fields {
		switch f {
		case FieldAction:
			if len(req.Action) > maxActionLength {
				return ErrActionTooLong
			}
		case FieldValues:
			if err := validateValues(req.Values); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateValues(values map[string]string) error {
	if len(values) > maxValues {
		return ErrTooManyValues
	}

	for name, value := range values {
		if !settingNamePattern.MatchString(name) {
			return fmt.Errorf("%w: %q", ErrInvalidSettingName, name)
		}
		if len(value) > maxValueLength {
			return fmt.Errorf("%w: %s", ErrValueTooLong, name)
		}
	}

	return nil
}
