package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrDataLoad indicates one or more of the startup data sources could not
	// be fetched. Callers only ever see this generic message.
	ErrDataLoad = errors.New("failed to fetch one or more data sources")

	// ErrContentUnavailable indicates a selected topic has no matching section.
	// It is per-turn and never fatal.
	ErrContentUnavailable = errors.New("content unavailable for this section")

	// ErrDuplicateKey indicates two keyword labels map to the same key.
	// Reverse lookup stays defined (first label wins) but the data is ambiguous.
	ErrDuplicateKey = errors.New("duplicate keyword key")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedSource indicates a source location with an unknown scheme.
	ErrUnsupportedSource = errors.New("unsupported source")

	// ErrSourceNotFound indicates a source location does not exist.
	ErrSourceNotFound = errors.New("source not found")
)

// DataLoadError is returned when the startup fetch barrier fails.
// Its message is deliberately generic; Cause is kept for diagnostics.
type DataLoadError struct {
	Cause error
}

func (e *DataLoadError) Error() string {
	return ErrDataLoad.Error()
}

// Unwrap returns the underlying fetch failure.
func (e *DataLoadError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrDataLoad.
func (e *DataLoadError) Is(target error) bool {
	return target == ErrDataLoad
}
