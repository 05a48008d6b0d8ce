package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/zkcostlab/zkcost/internal/estimation"
)

func systemKeyValidator(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := estimation.LookupProfile(val)
	return err == nil
}

func securityBitsValidator(fl validator.FieldLevel) bool {
	val := fl.Field()
	if !val.CanInt() {
		return false
	}

	bits := int(val.Int())
	for _, supported := range estimation.SupportedSecurityBits() {
		if bits == supported {
			return true
		}
	}
	return false
}
