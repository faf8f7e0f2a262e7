package spatialmine

import (
	"errors"
	"fmt"
)

// ErrSourceUnavailable is returned when the sequence database or
// neighborhood source cannot be read. It is fatal: the engine does not
// recover from it.
var ErrSourceUnavailable = errors.New("spatialmine: source unavailable")

// ErrParameterRange is returned when minSup parses but is non-positive, or
// maxLength/maxGap are negative. It is fatal and is checked before mining.
var ErrParameterRange = errors.New("spatialmine: parameter out of range")

func sourceUnavailable(what, path string, cause error) error {
	return fmt.Errorf("%s %q: %w: %v", what, path, ErrSourceUnavailable, cause)
}

func parameterRange(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrParameterRange)
}
