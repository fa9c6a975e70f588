package product

// Severity grades how urgently a product needs restocking.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityWarning
	SeverityCritical
)

var severityNames = map[Severity]string{
	SeverityNone:     "none",
	SeverityWarning:  "warning",
	SeverityCritical: "critical",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "unknown"
}

// SeverityFor grades a stock level against threshold. Anything below the
// threshold is a warning; half the threshold or less (out of stock included)
// is critical.
func SeverityFor(stockQuantity, threshold int) Severity {
	if stockQuantity >= threshold {
		return SeverityNone
	}
	if stockQuantity*2 <= threshold {
		return SeverityCritical
	}
	return SeverityWarning
}
