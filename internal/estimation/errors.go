package estimation

import (
	"fmt"
	"strings"
)

type ErrInvalidParameter struct {
	error
}

func NewErrInvalidParameter(name string, reason string) *ErrInvalidParameter {
	return &ErrInvalidParameter{fmt.Errorf("invalid parameter %s: %s", name, reason)}
}

type ErrUnknownSystem struct {
	error
}

func NewErrUnknownSystem(key string) *ErrUnknownSystem {
	return &ErrUnknownSystem{fmt.Errorf("unknown proving system %q, valid systems: %s", key, strings.Join(SystemKeys(), ", "))}
}

type ErrUnsupportedSecurityLevel struct {
	error
}

func NewErrUnsupportedSecurityLevel(bits int) *ErrUnsupportedSecurityLevel {
	supported := SupportedSecurityBits()
	parts := make([]string, len(supported))
	for i, b := range supported {
		parts[i] = fmt.Sprintf("%d", b)
	}
	return &ErrUnsupportedSecurityLevel{fmt.Errorf("unsupported security level %d bits, supported levels: %s", bits, strings.Join(parts, ", "))}
}
