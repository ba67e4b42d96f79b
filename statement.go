package ofxevent

type statementPayload struct {
	data StatementData
}

func newStatementContainer(s *Session, parent *container, tag string) *container {
	// OFC wraps STMTRS inside ACCTSTMT; its elements belong to the outer statement.
	if parent != nil && parent.isStatement() {
		return newPushUpContainer(s, parent, tag)
	}
	return &container{tag: tag, parent: parent, session: s, payload: &statementPayload{}}
}

// newTransactionListContainer handles BANKTRANLIST and INVTRANLIST, whose dates belong to the statement.
func newTransactionListContainer(s *Session, parent *container, tag string) *container {
	if parent != nil && parent.isStatement() {
		return newPushUpContainer(s, parent, tag)
	}
	return newDummyContainer(s, parent, tag)
}

func (p *statementPayload) addAttribute(c *container, id, value string) bool {
	switch id {
	case "CURDEF":
		p.data.Currency.Set(value)
	case "MKTGINFO":
		p.data.MarketingInfo.Set(value)
	case "DTSTART":
		c.setDate(&p.data.DateStart, id, value)
	case "DTEND":
		c.setDate(&p.data.DateEnd, id, value)
	default:
		return false
	}
	return true
}

// addAccount links the statement to the account it describes.
func (p *statementPayload) addAccount(account AccountData) {
	if account.AccountID.Valid {
		p.data.AccountID.Set(account.AccountID.Value)
	}
}
