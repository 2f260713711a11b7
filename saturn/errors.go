package saturn

import (
	"errors"
	"fmt"
)

// These are the reasons a field can fail validation
var (
	ErrInvalidHardwareIdentifier    = errors.New("invalid hardware identifier")
	ErrInvalidMakerID               = errors.New("invalid maker ID")
	ErrInvalidProductVersion        = errors.New("invalid product version")
	ErrInvalidReleaseDate           = errors.New("invalid release date format")
	ErrInvalidDeviceInformation     = errors.New("invalid device information format")
	ErrInvalidAreaSymbols           = errors.New("invalid area symbols")
	ErrInvalidCompatiblePeripherals = errors.New("invalid compatible peripherals")
)

// FieldError identifies the first field that failed validation
type FieldError struct {
	Field Field
	Err   error
}

func (e *FieldError) Error() string {
	return e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// CodeError is returned when a region or peripheral code is not recognised
type CodeError struct {
	Err    error
	Code   byte
	Offset int
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("%s: unrecognised code %q at offset %d", e.Err, e.Code, e.Offset)
}

func (e *CodeError) Unwrap() error {
	return e.Err
}
