package talentpath

import "fmt"

// SectionError marks a failed list or dashboard fetch. Surfacing it
// lets callers render an error state distinct from "no results" instead
// of silently showing an empty list.
type SectionError struct {
	Section string
	Cause   error
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("talentpath: %s fetch failed: %v", e.Section, e.Cause)
}

func (e *SectionError) Unwrap() error {
	return e.Cause
}
