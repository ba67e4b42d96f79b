package ofxevent

type transactionPayload struct {
	data       TransactionData
	investment bool
}

func newTransactionPayload(c *container) *transactionPayload {
	p := &transactionPayload{}
	statement := c.findStatement()
	if statement == nil {
		message(msgError, "%s: unable to find the enclosing statement of this transaction", c.tag)
	} else if statement.data.AccountID.Valid {
		p.data.AccountID.Set(statement.data.AccountID.Value)
	}
	return p
}

func newBankTransactionContainer(s *Session, parent *container, tag string) *container {
	// OFC nests GENTRN inside STMTTRN; both describe the same transaction.
	if parent != nil {
		if _, ok := parent.payload.(*transactionPayload); ok {
			return newPushUpContainer(s, parent, tag)
		}
	}
	c := &container{tag: tag, parent: parent, session: s}
	c.payload = newTransactionPayload(c)
	return c
}

func newInvestmentTransactionContainer(s *Session, parent *container, tag string) *container {
	c := &container{tag: tag, parent: parent, session: s}
	p := newTransactionPayload(c)
	p.investment = true
	p.data.TransactionType.Set(OTHER)
	p.data.InvTransactionType.Set(InvTransactionType(tag))
	c.payload = p
	return c
}

func (p *transactionPayload) addAttribute(c *container, id, value string) bool {
	if p.investment {
		if p.addInvestmentAttribute(c, id, value) {
			return true
		}
	} else if p.addBankAttribute(c, id, value) {
		return true
	}
	return p.addCommonAttribute(c, id, value)
}

func (p *transactionPayload) addCommonAttribute(c *container, id, value string) bool {
	switch id {
	case "DTPOSTED":
		c.setDate(&p.data.DatePosted, id, value)
	case "DTUSER":
		c.setDate(&p.data.DateInitiated, id, value)
	case "DTAVAIL":
		c.setDate(&p.data.DateFundsAvailable, id, value)
	case "FITID":
		p.data.FITID.Set(value)
	case "CORRECTFITID":
		p.data.CorrectFITID.Set(value)
	case "CORRECTACTION":
		switch CorrectionAction(value) {
		case CorrectionReplace, CorrectionDelete:
			p.data.CorrectAction.Set(CorrectionAction(value))
		default:
			message(msgWarning, "%s: unknown CORRECTACTION %q", c.tag, value)
			p.data.CorrectAction.Clear()
		}
	case "SRVRTID", "SRVRTID2":
		p.data.ServerTransactionID.Set(value)
	case "MEMO", "MEMO2":
		p.data.Memo.Set(value)
	default:
		return false
	}
	return true
}

func (p *transactionPayload) addBankAttribute(c *container, id, value string) bool {
	switch id {
	case "TRNTYPE":
		if t, found := transactionTypes[value]; found {
			p.data.TransactionType.Set(t)
		} else {
			message(msgWarning, "%s: unknown TRNTYPE %q", c.tag, value)
			p.data.TransactionType.Clear()
		}
	case "TRNAMT":
		amount := c.parseAmount(id, value)
		p.data.Amount.Set(amount)
		p.data.Units.Set(-amount)
		p.data.UnitPrice.Set(1.0)
	case "CHECKNUM":
		p.data.CheckNumber.Set(value)
	case "REFNUM":
		p.data.ReferenceNumber.Set(value)
	case "SIC":
		sic, err := parseInt(value)
		if err != nil {
			message(msgWarning, "%s: SIC %q is not a number, using 0", c.tag, value)
		}
		p.data.StandardIndustrialCode.Set(sic)
	case "PAYEEID", "PAYEEID2":
		p.data.PayeeID.Set(value)
	case "NAME":
		p.data.Name.Set(value)
	default:
		return false
	}
	return true
}

func (p *transactionPayload) addInvestmentAttribute(c *container, id, value string) bool {
	switch id {
	case "UNIQUEID":
		p.data.UniqueID.Set(value)
	case "UNIQUEIDTYPE":
		p.data.UniqueIDType.Set(value)
	case "UNITS":
		p.data.Units.Set(c.parseAmount(id, value))
	case "UNITPRICE":
		p.data.UnitPrice.Set(c.parseAmount(id, value))
	case "MKTVAL":
		message(msgDebug, "%s: MKTVAL %q is not used", c.tag, value)
	case "TOTAL":
		p.data.Amount.Set(c.parseAmount(id, value))
	case "DTSETTLE":
		c.setDate(&p.data.DatePosted, id, value)
	case "DTTRADE":
		c.setDate(&p.data.DateInitiated, id, value)
	case "COMMISSION":
		p.data.Commission.Set(c.parseAmount(id, value))
	case "FEES":
		p.data.Fees.Set(c.parseAmount(id, value))
	case "OLDUNITS":
		p.data.OldUnits.Set(c.parseAmount(id, value))
	case "NEWUNITS":
		p.data.NewUnits.Set(c.parseAmount(id, value))
	default:
		return false
	}
	return true
}
