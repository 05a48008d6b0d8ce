package service

import (
	"errors"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/zkcostlab/zkcost/internal/estimation"
)

// mapValidationError converts validator failures into the estimator error
// taxonomy so the CLI reports the specific offending parameter.
func mapValidationError(err error) error {
	var verrs playground.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	// Report the first failing field; validation is terminal either way.
	fe := verrs[0]
	switch fe.Tag() {
	case "system_key":
		key, _ := fe.Value().(string)
		return estimation.NewErrUnknownSystem(key)
	case "security_bits":
		bits := 0
		if v, ok := fe.Value().(int); ok {
			bits = v
		}
		return estimation.NewErrUnsupportedSecurityLevel(bits)
	case "required":
		return estimation.NewErrInvalidParameter(fieldName(fe), "is required")
	default:
		return estimation.NewErrInvalidParameter(fieldName(fe), "must be positive")
	}
}

func fieldName(fe playground.FieldError) string {
	name := fe.Field()
	if name == "" {
		return "input"
	}
	return strings.ToLower(name[:1]) + name[1:]
}
