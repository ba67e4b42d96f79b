package sgml

import "fmt"

// ContentType describes what an element may contain.
type ContentType int

const (
	// ElementContent elements (aggregates) contain other elements only.
	ElementContent ContentType = iota
	// MixedContent elements (data elements) carry character data.
	MixedContent
)

func (c ContentType) String() string {
	switch c {
	case ElementContent:
		return "element"
	case MixedContent:
		return "mixed"
	}
	return fmt.Sprintf("ContentType(%d)", int(c))
}

// Severity classifies a parse diagnostic.
type Severity int

const (
	SeverityInfo     Severity = iota // An informational message, not an error.
	SeverityWarning                  // A warning, not an error.
	SeverityQuantity                 // Exceeding a quantity limit.
	SeverityIDRef                    // An IDREF to a non-existent ID.
	SeverityCapacity                 // Exceeding a capacity limit.
	SeverityOther                    // Any other parse error.
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityQuantity:
		return "quantity"
	case SeverityIDRef:
		return "idref"
	case SeverityCapacity:
		return "capacity"
	case SeverityOther:
		return "other"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// IsError returns true for the severities that count towards the error limit.
func (s Severity) IsError() bool {
	return s >= SeverityQuantity
}

// Position is a location in the tokenized input.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Handler receives the events of a tokenized document.
type Handler interface {
	StartElement(name string, content ContentType)
	EndElement(name string)
	CharacterData(data []byte)
	ParseError(severity Severity, message string, pos Position)
}
