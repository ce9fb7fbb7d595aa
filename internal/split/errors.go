package split

import "fmt"

// InsufficientSamplesError reports a corpus that cannot be split while
// keeping every class represented in both subsets.
type InsufficientSamplesError struct {
	Label    string // offending class label, empty when the whole corpus is too small
	Count    int
	Required int
}

func (e *InsufficientSamplesError) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("insufficient samples to stratify: have %d, need at least %d", e.Count, e.Required)
	}
	return fmt.Sprintf("insufficient samples to stratify class %q: have %d, need at least %d", e.Label, e.Count, e.Required)
}
