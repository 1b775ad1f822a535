package resources

import "fmt"

// DataLoadError represents a fatal failure to load a reference data table.
// The engine never starts with a partial store, so callers should treat
// this as a startup-aborting condition.
type DataLoadError struct {
	Table   string
	Message string
	Cause   error
}

func (e *DataLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load %s: %s: %v", e.Table, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load %s: %s", e.Table, e.Message)
}

func (e *DataLoadError) Unwrap() error {
	return e.Cause
}
