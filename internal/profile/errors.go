package profile

import "fmt"

// NotFoundError indicates that no profile exists at the requested path.
// Recoverable: callers should prompt for another location, never abort.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("profile not found: %s", e.Path)
}

// CorruptError indicates that the file at the requested path exists but
// cannot be parsed into a valid profile. Recoverable.
type CorruptError struct {
	Path  string
	Cause error
}

func (e *CorruptError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("profile file is corrupt: %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("profile file is corrupt: %s", e.Path)
}

func (e *CorruptError) Unwrap() error {
	return e.Cause
}
