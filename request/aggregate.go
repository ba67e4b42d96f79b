package request

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

var (
	escAmp = []byte("&amp;")
	escLt  = []byte("&lt;")
	escGt  = []byte("&gt;")
)

// Aggregate is an SGML aggregate being built. Data elements are written without end tags, one
// per line, as OFX 1.x servers expect.
type Aggregate struct {
	tag      string
	contents strings.Builder
}

// NewAggregate returns an empty aggregate named tag.
func NewAggregate(tag string) *Aggregate {
	return &Aggregate{tag: tag}
}

// Add appends a data element.
func (a *Aggregate) Add(tag, value string) *Aggregate {
	a.contents.WriteString("<" + tag + ">" + escapeString(value) + "\r\n")
	return a
}

// AddIf appends a data element unless value is empty.
func (a *Aggregate) AddIf(tag, value string) *Aggregate {
	if value == "" {
		return a
	}
	return a.Add(tag, value)
}

// AddAggregate appends a nested aggregate.
func (a *Aggregate) AddAggregate(child *Aggregate) *Aggregate {
	a.contents.WriteString(child.String())
	return a
}

// String returns the aggregate with its start and end tags.
func (a *Aggregate) String() string {
	return "<" + a.tag + ">\r\n" + a.contents.String() + "</" + a.tag + ">\r\n"
}

// escapeString returns s with the characters that would start markup escaped.
func escapeString(s string) string {
	var (
		result bytes.Buffer
		esc    []byte
		last   = 0
	)
	for i := 0; i < len(s); {
		r, width := utf8.DecodeRuneInString(s[i:])
		i += width
		switch r {
		case '&':
			esc = escAmp
		case '<':
			esc = escLt
		case '>':
			esc = escGt
		default:
			continue
		}
		result.WriteString(s[last : i-width])
		result.Write(esc)
		last = i
	}
	result.WriteString(s[last:])
	return result.String()
}
