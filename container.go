package ofxevent

import "time"

// payload is the kind specific state of a container. The set of payloads is closed; every
// operation on a container switches on the payload type.
type payload interface {
	isPayload()
}

type mainPayload struct{}
type pushUpPayload struct{}
type dummyPayload struct{}

func (*mainPayload) isPayload()        {}
func (*pushUpPayload) isPayload()      {}
func (*dummyPayload) isPayload()       {}
func (*statusPayload) isPayload()      {}
func (*statementPayload) isPayload()   {}
func (*accountPayload) isPayload()     {}
func (*transactionPayload) isPayload() {}
func (*securityPayload) isPayload()    {}
func (*balancePayload) isPayload()     {}

// container holds the data of one open aggregate until its end tag.
type container struct {
	tag     string
	parent  *container // Never owned by the child.
	session *Session
	payload payload
}

func newMainContainer(s *Session, parent *container, tag string) *container {
	if parent != nil {
		message(msgWarning, "%s: nested document root, ignoring it", tag)
		return newDummyContainer(s, parent, tag)
	}
	if s.tree == nil {
		s.tree = newMainTree()
	}
	return &container{tag: tag, parent: parent, session: s, payload: &mainPayload{}}
}

func newPushUpContainer(s *Session, parent *container, tag string) *container {
	return &container{tag: tag, parent: parent, session: s, payload: &pushUpPayload{}}
}

func newDummyContainer(s *Session, parent *container, tag string) *container {
	message(msgInfo, "%s: unsupported aggregate, created a dummy container", tag)
	return &container{tag: tag, parent: parent, session: s, payload: &dummyPayload{}}
}

// typeName returns the semantic kind of the container.
func (c *container) typeName() string {
	switch p := c.payload.(type) {
	case *mainPayload:
		return "MAIN"
	case *statusPayload:
		return "STATUS"
	case *statementPayload:
		return "STATEMENT"
	case *accountPayload:
		return "ACCOUNT"
	case *transactionPayload:
		if p.investment {
			return "INVESTMENT"
		}
		return "TRANSACTION"
	case *securityPayload:
		return "SECURITY"
	case *balancePayload:
		return "BALANCE"
	case *pushUpPayload:
		return "PUSHUP"
	}
	return "DUMMY"
}

// addAttribute records the value of the data element id in the container.
func (c *container) addAttribute(id, value string) {
	handled := false
	switch p := c.payload.(type) {
	case *statusPayload:
		handled = p.addAttribute(c, id, value)
	case *statementPayload:
		handled = p.addAttribute(c, id, value)
	case *accountPayload:
		handled = p.addAttribute(c, id, value)
	case *transactionPayload:
		handled = p.addAttribute(c, id, value)
	case *securityPayload:
		handled = p.addAttribute(c, id, value)
	case *balancePayload:
		handled = p.addAttribute(c, id, value)
	case *pushUpPayload:
		if c.parent == nil {
			message(msgError, "%s (PUSHUP): no parent to forward %s to", c.tag, id)
			return
		}
		message(msgParser, "%s (PUSHUP): forwarding %s to %s", c.tag, id, c.parent.tag)
		c.parent.addAttribute(id, value)
		return
	case *dummyPayload:
		message(msgInfo, "%s (DUMMY): %s not supported, ignoring %q", c.tag, id, value)
		return
	}
	if !handled {
		message(msgInfo, "%s (%s): unknown element %s, ignoring %q", c.tag, c.typeName(), id, value)
	}
}

// attach hands the data of a closed container over to the main tree.
func (c *container) attach() {
	s := c.session
	switch p := c.payload.(type) {
	case *mainPayload:
		if s.tree != nil {
			s.tree.emitAll(s.ctx)
		}
		s.tree = nil
		return
	case *statusPayload:
		// Statuses are emitted right away, they do not reference other entities.
		s.ctx.emitStatus(p.data)
		return
	case *balancePayload:
		p.mergeInto(c)
		return
	case *pushUpPayload, *dummyPayload:
		return
	}

	if s.tree == nil {
		message(msgError, "%s (%s): no document root, discarding it", c.tag, c.typeName())
		return
	}
	switch p := c.payload.(type) {
	case *statementPayload:
		s.tree.addStatement(p.data)
	case *accountPayload:
		p.synthesizeID()
		s.tree.addAccount(p.data)
		if statement := c.findStatement(); statement != nil {
			statement.addAccount(p.data)
		}
	case *transactionPayload:
		s.tree.addTransaction(p.data)
	case *securityPayload:
		s.tree.addSecurity(p.data)
	}
}

// findStatement returns the payload of the closest enclosing statement, if any.
func (c *container) findStatement() *statementPayload {
	for parent := c.parent; parent != nil; parent = parent.parent {
		if p, ok := parent.payload.(*statementPayload); ok {
			return p
		}
	}
	return nil
}

func (c *container) isStatement() bool {
	_, ok := c.payload.(*statementPayload)
	return ok
}

func (c *container) isSecurity() bool {
	_, ok := c.payload.(*securityPayload)
	return ok
}

// parseAmount converts value, logging a warning and returning 0 when it is not a number.
func (c *container) parseAmount(id, value string) float64 {
	f, err := ParseAmount(value)
	if err != nil {
		message(msgWarning, "%s: %s %q is not a number, using 0", c.tag, id, value)
	}
	return f
}

// setDate converts value and stores it in field, leaving the field untouched when it is not a date.
func (c *container) setDate(field *Field[time.Time], id, value string) {
	t, err := ParseDate(value, c.session.ctx.location)
	if err != nil {
		message(msgError, "%s: %s: %v", c.tag, id, err)
		return
	}
	field.Set(t)
}
