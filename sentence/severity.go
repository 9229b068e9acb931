package sentence

// Severity classifies a sentence's readability risk
type Severity int

const (
	SeverityNone Severity = iota
	SeverityWarn
	SeverityDanger
)

// String returns the severity's class name. Hosts map "warn" and "danger"
// directly to their two highlight styles.
func (s Severity) String() string {
	switch s {
	case SeverityWarn:
		return "warn"
	case SeverityDanger:
		return "danger"
	default:
		return "none"
	}
}
