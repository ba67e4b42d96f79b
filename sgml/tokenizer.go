package sgml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/golang/glog"
)

// ErrTooManyErrors is returned when the number of reported errors exceeds the error limit.
var ErrTooManyErrors = errors.New("error - too many parse errors, parsing cancelled")

// Tokenizer reads OFX SGML and drives a Handler, adding any start or end tags the input omits.
type Tokenizer struct {
	decoder   *xml.Decoder
	handler   Handler
	stack     TagStack // Open aggregates.
	maxErrors int
	errors    int

	openData string // Open data element, if any.
	pending  string // Unknown start tag not yet classified as aggregate or data element.
	orphan   []byte // Character data seen outside of any data element.
}

// NewTokenizer returns a tokenizer reading from r. A maxErrors of 0 means no limit.
func NewTokenizer(r io.Reader, h Handler, maxErrors int) *Tokenizer {
	decoder := xml.NewDecoder(r)
	decoder.Strict = false
	// The input has already been converted to UTF-8 during pre-processing.
	decoder.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	return &Tokenizer{
		decoder:   decoder,
		handler:   h,
		stack:     NewStack(),
		maxErrors: maxErrors,
	}
}

// Parse tokenizes r into h and returns the number of errors reported.
func Parse(r io.Reader, h Handler, maxErrors int) (int, error) {
	return NewTokenizer(r, h, maxErrors).Run()
}

// Run reads the input to the end and returns the number of errors reported.
func (t *Tokenizer) Run() (int, error) {
	for {
		token, err := t.decoder.RawToken()
		if err != nil {
			if err == io.EOF {
				break
			}
			t.report(SeverityOther, err.Error())
			return t.errors, err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			t.startElement(tagName(tok.Name))
		case xml.EndElement:
			t.endElement(tagName(tok.Name))
		case xml.CharData:
			t.charData(tok.Copy())
		default:
			glog.V(3).Infof("ignoring token %T", tok)
		}
		if t.cancelled() {
			return t.errors, ErrTooManyErrors
		}
	}
	t.finish()
	if t.cancelled() {
		return t.errors, ErrTooManyErrors
	}
	return t.errors, nil
}

func (t *Tokenizer) startElement(name string) {
	glog.V(3).Infof("case start element %s", name)
	t.resolvePendingAsAggregate()
	t.flushOrphan()
	t.closeOpenData()

	switch {
	case IsAggregate(name):
		t.openAggregate(name)
	case IsDataElement(name):
		t.openDataElement(name)
	default:
		// Unknown tags are classified by the token that follows them.
		t.pending = name
	}
}

func (t *Tokenizer) endElement(name string) {
	glog.V(3).Infof("case end element %s", name)
	if t.pending != "" {
		// An unknown tag immediately closed (or followed by a foreign end tag) held no data.
		pending := t.pending
		t.pending = ""
		t.openDataElement(pending)
	}
	if t.openData != "" {
		if t.openData == name {
			t.closeOpenData()
			return
		}
		t.closeOpenData()
	}
	if len(t.orphan) > 0 {
		data := t.orphan
		t.orphan = nil
		if !IsAggregate(name) && !t.stack.Contains(name) {
			// The data element is missing its start tag only.
			glog.V(3).Infof("EndTag: synthesizing start tag for %s", name)
			t.handler.StartElement(name, MixedContent)
			t.handler.CharacterData(data)
			t.handler.EndElement(name)
			return
		}
		t.report(SeverityOther, fmt.Sprintf("character data (%s) missing start and end tags", bytes.TrimSpace(data)))
		if t.cancelled() {
			return
		}
	}
	if t.stack.Contains(name) {
		t.closeAggregate(name)
		return
	}
	t.report(SeverityWarning, fmt.Sprintf("end tag for %s which is not open", name))
}

func (t *Tokenizer) charData(data []byte) {
	if t.openData != "" {
		t.handler.CharacterData(data)
		return
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return
	}
	if t.pending != "" {
		pending := t.pending
		t.pending = ""
		t.openDataElement(pending)
		t.handler.CharacterData(data)
		return
	}
	glog.V(3).Infof("chardata (%s) outside of a data element", data)
	t.orphan = append(t.orphan, data...)
}

func (t *Tokenizer) finish() {
	t.resolvePendingAsData()
	t.closeOpenData()
	t.flushOrphan()
	for !t.stack.IsEmpty() && !t.cancelled() {
		name, _ := t.stack.Peek()
		t.report(SeverityWarning, fmt.Sprintf("end tag for %s omitted at end of document", name))
		t.closeAggregate(name)
	}
}

func (t *Tokenizer) openAggregate(name string) {
	glog.V(3).Infof("StartTag: %s is aggregate, pushing to stack", name)
	t.stack.Push(name)
	t.handler.StartElement(name, ElementContent)
}

func (t *Tokenizer) openDataElement(name string) {
	t.openData = name
	t.handler.StartElement(name, MixedContent)
}

func (t *Tokenizer) closeOpenData() {
	if t.openData == "" {
		return
	}
	name := t.openData
	t.openData = ""
	t.handler.EndElement(name)
}

// closeAggregate closes every open aggregate until name is closed.
// Nothing is closed once the error limit is exceeded, so the handler never sees the root close.
func (t *Tokenizer) closeAggregate(name string) {
	if t.cancelled() {
		return
	}
	for !t.stack.IsEmpty() {
		last, _ := t.stack.Pop()
		t.handler.EndElement(last)
		if last == name {
			break
		}
	}
	glog.V(3).Infof("Stack: %#v", t.stack.Dump())
}

func (t *Tokenizer) resolvePendingAsAggregate() {
	if t.pending == "" {
		return
	}
	name := t.pending
	t.pending = ""
	t.openAggregate(name)
}

func (t *Tokenizer) resolvePendingAsData() {
	if t.pending == "" {
		return
	}
	name := t.pending
	t.pending = ""
	t.openDataElement(name)
}

func (t *Tokenizer) flushOrphan() {
	if len(t.orphan) == 0 {
		return
	}
	data := bytes.TrimSpace(t.orphan)
	t.orphan = nil
	t.report(SeverityOther, fmt.Sprintf("character data (%s) missing start and end tags", data))
}

func (t *Tokenizer) report(severity Severity, message string) {
	if severity.IsError() {
		t.errors++
	}
	line, column := t.decoder.InputPos()
	t.handler.ParseError(severity, message, Position{Line: line, Column: column})
}

func (t *Tokenizer) cancelled() bool {
	return t.maxErrors > 0 && t.errors > t.maxErrors
}

// tagName returns the upper cased tag name; SGML tag names are case insensitive.
func tagName(name xml.Name) string {
	if name.Space != "" {
		return strings.ToUpper(name.Space + ":" + name.Local)
	}
	return strings.ToUpper(name.Local)
}
