// Package counter provides the document measurements used by the corpus filters.
//
// Two counting strategies are available through the Counter interface: token
// counting by whitespace splitting (the token_count of a document) and
// character counting by Unicode code point (its length).
//
// Usage Example:
//
//	tokens := counter.NewTokenCounter()
//	n := tokens.Count("buy cheap phone") // 3
package counter

// Counter defines the interface for different text counting strategies.
type Counter interface {
	// Count returns the number of units (tokens or characters) in given text.
	Count(text string) int

	// Name returns a human-readable name for this counting method (for logging)
	Name() string
}

// CountingMethod represents the different available counting strategies.
type CountingMethod int

const (
	// Tokens counts whitespace-delimited tokens (default)
	Tokens CountingMethod = iota
	// Characters counts individual characters including whitespace
	Characters
)

// String returns the string representation of the counting method.
func (cm CountingMethod) String() string {
	switch cm {
	case Tokens:
		return "tokens"
	case Characters:
		return "characters"
	default:
		return "unknown"
	}
}

// NewCounter creates a new Counter for the specified method,
// falling back to token counting for unknown methods.
func NewCounter(method CountingMethod) Counter {
	switch method {
	case Characters:
		return NewCharCounter()
	default:
		return NewTokenCounter()
	}
}
