package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	fserrors "github.com/CodeRohanDev/FastSubmit-sub004/internal/errors"
	formdomain "github.com/CodeRohanDev/FastSubmit-sub004/internal/forms/domain"
)

const defaultMaxFieldLength = 10000

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateFields checks data against the form's field specs and returns the
// sanitized payload. Forms with no declared fields accept any payload,
// sanitized but otherwise as-is.
func validateFields(specs []formdomain.FieldSpec, data map[string]any) (map[string]any, error) {
	clean := make(map[string]any, len(data))

	for _, spec := range specs {
		raw, present := data[spec.Name]
		str, isString := raw.(string)
		if !present || (isString && strings.TrimSpace(str) == "") {
			if spec.Required {
				return nil, fserrors.Validation(fmt.Sprintf("field %q is required", spec.Name))
			}
			continue
		}

		switch spec.Type {
		case "email":
			if !isString || !emailPattern.MatchString(strings.TrimSpace(str)) {
				return nil, fserrors.Validation(fmt.Sprintf("field %q must be a valid email address", spec.Name))
			}
		case "number":
			switch raw.(type) {
			case float64, int, int64:
			default:
				return nil, fserrors.Validation(fmt.Sprintf("field %q must be a number", spec.Name))
			}
		}

		if isString {
			max := spec.MaxLength
			if max <= 0 {
				max = defaultMaxFieldLength
			}
			if len(str) > max {
				return nil, fserrors.Validation(fmt.Sprintf("field %q exceeds %d characters", spec.Name, max))
			}
		}
	}

	// Sanitize everything present, declared or not.
	for k, v := range data {
		if s, ok := v.(string); ok {
			clean[k] = sanitizeString(s)
		} else {
			clean[k] = v
		}
	}
	return clean, nil
}

// sanitizeString trims the value and drops control characters other than
// newline and tab.
func sanitizeString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
