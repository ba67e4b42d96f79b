package ofxevent

type securityPayload struct {
	data SecurityData
}

func newSecurityContainer(s *Session, parent *container, tag string) *container {
	// STOCKINFO and friends wrap a SECINFO whose elements describe the outer security.
	if parent != nil && parent.isSecurity() {
		return newPushUpContainer(s, parent, tag)
	}
	return &container{tag: tag, parent: parent, session: s, payload: &securityPayload{}}
}

func (p *securityPayload) addAttribute(c *container, id, value string) bool {
	switch id {
	case "UNIQUEID":
		p.data.UniqueID.Set(value)
	case "UNIQUEIDTYPE":
		p.data.UniqueIDType.Set(value)
	case "SECNAME":
		p.data.SecurityName.Set(value)
	case "TICKER":
		p.data.Ticker.Set(value)
	case "UNITPRICE":
		p.data.UnitPrice.Set(c.parseAmount(id, value))
	case "DTASOF":
		c.setDate(&p.data.DateUnitPrice, id, value)
	case "CURDEF":
		p.data.Currency.Set(value)
	case "MEMO", "MEMO2":
		p.data.Memo.Set(value)
	default:
		return false
	}
	return true
}
