package analytics

import "fmt"

// RemoteFetchError wraps the failure of any single report request. One
// failed report aborts the whole per-property batch, so this is what the
// orchestration boundary sees.
type RemoteFetchError struct {
	PropertyID string
	Report     string
	Err        error
}

func (e *RemoteFetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s report for property %s: %v", e.Report, e.PropertyID, e.Err)
}

func (e *RemoteFetchError) Unwrap() error {
	return e.Err
}
