package guard

import "strings"

// Category is the routing category derived from a verdict. It is recomputed
// per query, never stored.
type Category string

const (
	// CategoryRefusal means the classifier declined the query; its verdict
	// text is returned to the user as-is.
	CategoryRefusal Category = "refusal"

	// CategoryNeedsSearch means the query should be answered from the movie
	// catalog via the structured search path.
	CategoryNeedsSearch Category = "needs_search"

	// CategoryGeneral means the query takes the generic completion path.
	CategoryGeneral Category = "general"
)

// Interpreter derives a routing category from a verdict by matching fixed
// marker phrases against the lower-cased verdict text. The refusal check
// takes precedence over the search check; both are substring tests.
type Interpreter struct {
	refusalMarkers []string
	searchMarkers  []string
}

// NewInterpreter creates an interpreter with the given marker phrases.
// Markers are matched case-insensitively.
func NewInterpreter(refusalMarkers, searchMarkers []string) *Interpreter {
	return &Interpreter{
		refusalMarkers: lowerAll(refusalMarkers),
		searchMarkers:  lowerAll(searchMarkers),
	}
}

// Classify derives the category for a verdict. A verdict whose shape yields
// no text fails open to CategoryGeneral: a malformed classifier response
// must never block the user.
func (i *Interpreter) Classify(verdict *Verdict) Category {
	text := strings.ToLower(verdict.Text())
	if text == "" {
		return CategoryGeneral
	}

	if containsAny(text, i.refusalMarkers) {
		return CategoryRefusal
	}
	if containsAny(text, i.searchMarkers) {
		return CategoryNeedsSearch
	}
	return CategoryGeneral
}

// IsRefusal reports whether the text carries a refusal marker. Used by the
// router's fast path on the raw verdict content.
func (i *Interpreter) IsRefusal(text string) bool {
	return containsAny(strings.ToLower(text), i.refusalMarkers)
}

func containsAny(text string, markers []string) bool {
	for _, marker := range markers {
		if marker != "" && strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

func lowerAll(items []string) []string {
	lowered := make([]string, len(items))
	for i, item := range items {
		lowered[i] = strings.ToLower(item)
	}
	return lowered
}
