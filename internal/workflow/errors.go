package workflow

import (
	"errors"
	"fmt"
)

// ErrNotReady reports an export requested before the session completed,
// without force-assemble.
var ErrNotReady = errors.New("PRD is not yet completed")

// UnknownSectionError reports a section index outside the configured
// instruction range. A configuration or caller bug: the engine fails
// closed rather than generating with undefined instructions, and the
// workflow cannot be resumed with this index.
type UnknownSectionError struct {
	Index int
	Limit int
}

func (e *UnknownSectionError) Error() string {
	return fmt.Sprintf("unknown section index %d (configured sections: %d)", e.Index, e.Limit)
}
