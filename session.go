package ofxevent

import (
	"strings"

	"github.com/rockstardevs/ofxevent/sgml"
)

// Session turns the events of one tokenized document into a container tree, and emits the
// entities of the tree to the callbacks of its Context when the document root closes.
// It implements sgml.Handler. A Session is not safe for concurrent use.
type Session struct {
	ctx     *Context
	tree    *mainTree  // Entities of the open document; nil outside of a document.
	current *container // Innermost open container.

	inData   bool   // Inside a data element.
	dataTag  string // Name of the open data element.
	incoming strings.Builder

	errors    int
	cancelled bool
}

var _ sgml.Handler = (*Session)(nil)

// NewSession returns a session emitting to the callbacks of c.
func (c *Context) NewSession() *Session {
	return &Session{ctx: c}
}

// Errors returns the number of errors seen so far.
func (s *Session) Errors() int {
	return s.errors
}

// Cancelled returns true once the session gave up on the document.
func (s *Session) Cancelled() bool {
	return s.cancelled
}

// FindSecurity looks up a security of the open document by its unique id.
func (s *Session) FindSecurity(uniqueID string) (SecurityData, bool) {
	if s.tree == nil {
		return SecurityData{}, false
	}
	return s.tree.findSecurity(uniqueID)
}

// StartElement opens an aggregate or a data element.
func (s *Session) StartElement(name string, content sgml.ContentType) {
	if s.cancelled {
		return
	}
	name = strings.ToUpper(name)
	if leftover := stripWhitespace(s.incoming.String()); leftover != "" {
		message(msgWarning, "StartElement(%s): data %q was not closed, discarding it", name, leftover)
	}
	s.incoming.Reset()

	if content == sgml.MixedContent {
		message(msgParser, "StartElement(%s): data element", name)
		s.inData = true
		s.dataTag = name
		return
	}
	s.inData = false
	s.openTag(name)
}

// EndElement closes the open data element, or the current aggregate.
func (s *Session) EndElement(name string) {
	if s.cancelled {
		return
	}
	name = strings.ToUpper(name)
	if s.inData {
		value := stripWhitespace(s.incoming.String())
		s.incoming.Reset()
		s.inData = false
		s.addAttribute(s.dataTag, value)
		if name == s.dataTag {
			return
		}
		message(msgWarning, "EndElement(%s): data element %s was not closed", name, s.dataTag)
	}
	s.closeTag(name)
}

// CharacterData buffers the data of the open data element.
func (s *Session) CharacterData(data []byte) {
	if s.cancelled {
		return
	}
	s.incoming.Write(data)
}

// ParseError logs a tokenizer diagnostic, counting it when it is an error.
func (s *Session) ParseError(severity sgml.Severity, msg string, pos sgml.Position) {
	switch severity {
	case sgml.SeverityInfo:
		message(msgInfo, "%s: %s", pos, msg)
	case sgml.SeverityWarning:
		message(msgWarning, "%s: %s", pos, msg)
	default:
		s.errors++
		message(msgError, "%s: %s error: %s", pos, severity, msg)
		if limit := s.ctx.errorLimit; limit > 0 && s.errors > limit && !s.cancelled {
			s.cancel()
		}
	}
}

func (s *Session) openTag(tag string) {
	c := newContainer(s, s.current, tag)
	message(msgParser, "openTag(%s): created %s container", tag, c.typeName())
	s.current = c
}

func (s *Session) addAttribute(id, value string) {
	if s.current == nil {
		message(msgError, "addAttribute(%s): data element outside of any aggregate, ignoring %q", id, value)
		return
	}
	message(msgParser, "addAttribute(%s): %q to %s", id, value, s.current.tag)
	s.current.addAttribute(id, value)
}

func (s *Session) closeTag(tag string) {
	c := s.current
	if c == nil {
		s.errors++
		message(msgError, "closeTag(%s): no open aggregate", tag)
		return
	}
	if c.tag != tag {
		s.errors++
		message(msgError, "closeTag(%s): tag mismatch, %s (%s) is open", tag, c.tag, c.typeName())
		if c.parent == nil {
			s.cancel()
		}
		return
	}
	message(msgParser, "closeTag(%s): closing %s container", tag, c.typeName())
	s.current = c.parent
	c.attach()
}

// cancel stops the session and drops the partial tree without emitting it.
func (s *Session) cancel() {
	if s.cancelled {
		return
	}
	message(msgError, "parsing cancelled, discarding the document")
	s.cancelled = true
	s.tree = nil
	s.current = nil
}
