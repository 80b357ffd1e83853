package diagram

import "fmt"

// WarningKind classifies the non-fatal conditions the pipeline can report.
// None of these abort a render; they accompany a (possibly partial)
// primitive sequence.
type WarningKind int

const (
	// WarnMissingEndpoint means a connector referenced a node ID absent
	// from the resolved position map. The connector was dropped.
	WarnMissingEndpoint WarningKind = iota
	// WarnUnknownShape means a node carried an unrecognized shape kind and
	// was treated as a rectangle.
	WarnUnknownShape
	// WarnIncompleteExternalLayout means the external adapter returned
	// positions for fewer than all nodes (or failed outright) and the whole
	// graph fell back to the grid strategy. Informational, not a failure.
	WarnIncompleteExternalLayout
)

// String returns the string representation of a WarningKind.
func (k WarningKind) String() string {
	switch k {
	case WarnMissingEndpoint:
		return "missing-endpoint"
	case WarnUnknownShape:
		return "unknown-shape"
	case WarnIncompleteExternalLayout:
		return "incomplete-external-layout"
	default:
		return "unknown"
	}
}

// Warning records a non-fatal condition encountered during a pipeline run.
type Warning struct {
	Kind    WarningKind
	Subject string // ID of the element the warning concerns
	Message string
}

// Warningf builds a warning with a formatted message.
func Warningf(kind WarningKind, subject, format string, args ...any) Warning {
	return Warning{Kind: kind, Subject: subject, Message: fmt.Sprintf(format, args...)}
}
