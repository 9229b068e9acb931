package stylus

import "strings"

// Warning describes a non-fatal issue encountered while loading or
// analyzing a document. Warnings never stop an analysis; they surface
// conditions the caller may want to report, such as a PDF page with no
// extractable text or a selection clamped to the document bounds.
type Warning struct {
	// Stage is the phase that produced the warning: "open" or "analyze".
	Stage string
	// Message is a human-readable description.
	Message string
}

// FormatWarnings renders warnings as a single semicolon-separated string
// for logging or display.
//
// Example:
//
//	text, warnings, err := stylus.Open("scan.pdf").Text()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", stylus.FormatWarnings(warnings))
//	}
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.Stage + ": " + w.Message
	}
	return strings.Join(parts, "; ")
}
