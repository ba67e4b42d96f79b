package ofxevent

import "fmt"

type accountPayload struct {
	data AccountData
}

func newAccountContainer(s *Session, parent *container, tag string) *container {
	p := &accountPayload{}
	switch tag {
	case "CCACCTFROM":
		p.data.AccountType.Set(AccountCreditCard)
	case "INVACCTFROM":
		p.data.AccountType.Set(AccountInvestment)
	}
	c := &container{tag: tag, parent: parent, session: s, payload: p}
	if statement := c.findStatement(); statement != nil && statement.data.Currency.Valid {
		p.data.Currency.Set(statement.data.Currency.Value)
	}
	return c
}

func (p *accountPayload) addAttribute(c *container, id, value string) bool {
	switch id {
	case "BANKID":
		p.data.BankID.Set(value)
	case "BRANCHID":
		p.data.BranchID.Set(value)
	case "ACCTID":
		p.data.AccountNumber.Set(value)
	case "ACCTKEY":
		p.data.AccountKey.Set(value)
	case "BROKERID":
		p.data.BrokerID.Set(value)
	case "ACCTTYPE", "ACCTTYPE2":
		if t, found := accountTypes[value]; found {
			p.data.AccountType.Set(t)
		} else {
			message(msgError, "%s: unknown account type %q", c.tag, value)
			p.data.AccountType.Clear()
		}
	default:
		return false
	}
	return true
}

// synthesizeID builds the account id and name from the numbers the account holds.
// Missing parts are left empty so the layout of the id never changes.
func (p *accountPayload) synthesizeID() {
	d := &p.data
	switch d.AccountType.Value {
	case AccountCreditCard:
		d.AccountID.Set(fmt.Sprintf("%s %s", d.AccountNumber.Value, d.AccountKey.Value))
		d.AccountName.Set("Credit card " + d.AccountNumber.Value)
	case AccountInvestment:
		d.AccountID.Set(fmt.Sprintf("%s %s", d.BrokerID.Value, d.AccountNumber.Value))
		d.AccountName.Set(fmt.Sprintf("Investment account %s at broker %s", d.AccountNumber.Value, d.BrokerID.Value))
	default:
		d.AccountID.Set(fmt.Sprintf("%s %s %s", d.BankID.Value, d.BranchID.Value, d.AccountNumber.Value))
		d.AccountName.Set("Bank account " + d.AccountNumber.Value)
	}
}
