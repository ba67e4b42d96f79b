package ofxevent

import "time"

type balancePayload struct {
	amount Field[float64]
	date   Field[time.Time]
}

func newBalanceContainer(s *Session, parent *container, tag string) *container {
	return &container{tag: tag, parent: parent, session: s, payload: &balancePayload{}}
}

func (p *balancePayload) addAttribute(c *container, id, value string) bool {
	switch id {
	case "BALAMT":
		p.amount.Set(c.parseAmount(id, value))
	case "DTASOF":
		c.setDate(&p.date, id, value)
	default:
		return false
	}
	return true
}

// mergeInto copies the balance into the statement that encloses c.
func (p *balancePayload) mergeInto(c *container) {
	if c.parent == nil || !c.parent.isStatement() {
		message(msgError, "%s: balance is not directly inside a statement, discarding it", c.tag)
		return
	}
	statement := c.parent.payload.(*statementPayload)
	switch c.tag {
	case "LEDGERBAL":
		statement.data.LedgerBalance = p.amount
		statement.data.LedgerBalanceDate = p.date
	case "AVAILBAL":
		statement.data.AvailableBalance = p.amount
		statement.data.AvailableBalanceDate = p.date
	default:
		message(msgError, "%s: unknown balance type", c.tag)
	}
}
