package lexicon

import "fmt"

// ResourceUnavailableError reports a linguistic resource that could not be loaded.
type ResourceUnavailableError struct {
	Resource string
	Err      error
}

func (e *ResourceUnavailableError) Error() string {
	return fmt.Sprintf("lexical resource %q unavailable: %v", e.Resource, e.Err)
}

func (e *ResourceUnavailableError) Unwrap() error {
	return e.Err
}
