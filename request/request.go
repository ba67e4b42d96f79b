// Package request serializes OFX 1.x requests: statement, account information, payment and
// payment inquiry requests, each wrapped in a signon and a transaction with a fresh TRNUID.
package request

import (
	"errors"
	"fmt"
	"time"

	"github.com/aclindsa/ofxgo"
	"github.com/rockstardevs/decimal"

	"github.com/rockstardevs/ofxevent"
)

const (
	dateFormat     = "20060102"
	dateTimeFormat = "20060102150405.000"
	// accountInfoEpoch asks for every account, whatever changed since.
	accountInfoEpoch = "19700101000000"
)

// FI describes the financial institution and the user signing on to it.
type FI struct {
	Org        string
	FID        string
	UserID     string
	Password   string
	AppID      string // Defaults to QWIN.
	AppVersion string // Defaults to 2700.
	Language   string // Defaults to ENG.
}

// Account is the account a request is about. Type selects the account aggregate: credit card and
// investment accounts use CCACCTFROM and INVACCTFROM, every other type BANKACCTFROM.
type Account struct {
	Type      ofxevent.AccountType
	BankID    string
	BranchID  string
	AccountID string
	BrokerID  string
}

// Payee is the recipient of a payment.
type Payee struct {
	Name       string
	Address1   string
	Address2   string
	Address3   string
	City       string
	State      string
	PostalCode string
	Phone      string
}

// Payment is a bill payment.
type Payment struct {
	Amount       decimal.Decimal
	Payee        Payee
	PayeeAccount string // Account number of the user at the payee.
	DateDue      time.Time
	Memo         string
}

// Builder builds requests for one institution.
type Builder struct {
	fi  FI
	now func() time.Time
	uid func() (string, error)
}

// NewBuilder returns a builder signing on to fi.
func NewBuilder(fi FI) *Builder {
	if fi.AppID == "" {
		fi.AppID = "QWIN"
	}
	if fi.AppVersion == "" {
		fi.AppVersion = "2700"
	}
	if fi.Language == "" {
		fi.Language = "ENG"
	}
	return &Builder{fi: fi, now: time.Now, uid: newUID}
}

// newUID returns a random transaction id.
func newUID() (string, error) {
	uid, err := ofxgo.RandomUID()
	if err != nil {
		return "", err
	}
	return string(*uid), nil
}

// ValidateUID returns an error when uid can not be used as a TRNUID.
func ValidateUID(uid string) error {
	ok, err := ofxgo.UID(uid).Valid()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("error - invalid TRNUID %q", uid)
	}
	return nil
}

// Header returns the OFX 1.02 SGML header.
func Header() string {
	return "OFXHEADER:100\r\n" +
		"DATA:OFXSGML\r\n" +
		"VERSION:102\r\n" +
		"SECURITY:NONE\r\n" +
		"ENCODING:USASCII\r\n" +
		"CHARSET:1252\r\n" +
		"COMPRESSION:NONE\r\n" +
		"OLDFILEUID:NONE\r\n" +
		"NEWFILEUID:NONE\r\n" +
		"\r\n"
}

func (b *Builder) formatDateTime(t time.Time) string {
	return t.UTC().Format(dateTimeFormat) + "[0:GMT]"
}

func (b *Builder) signOn() *Aggregate {
	fi := NewAggregate("FI").
		Add("ORG", b.fi.Org).
		AddIf("FID", b.fi.FID)
	sonrq := NewAggregate("SONRQ").
		Add("DTCLIENT", b.formatDateTime(b.now())).
		Add("USERID", b.fi.UserID).
		Add("USERPASS", b.fi.Password).
		Add("LANGUAGE", b.fi.Language).
		AddAggregate(fi).
		Add("APPID", b.fi.AppID).
		Add("APPVER", b.fi.AppVersion)
	return NewAggregate("SIGNONMSGSRQV1").AddAggregate(sonrq)
}

// transaction wraps rq in the transaction aggregate tag with a new TRNUID.
func (b *Builder) transaction(tag string, rq *Aggregate) (*Aggregate, error) {
	uid, err := b.uid()
	if err != nil {
		return nil, fmt.Errorf("error - generating TRNUID: %v", err)
	}
	if err := ValidateUID(uid); err != nil {
		return nil, err
	}
	return NewAggregate(tag).
		Add("TRNUID", uid).
		Add("CLTCOOKIE", "1").
		AddAggregate(rq), nil
}

// document returns the header and the OFX root holding the signon and the message set.
func (b *Builder) document(messageSet *Aggregate) string {
	root := NewAggregate("OFX").
		AddAggregate(b.signOn()).
		AddAggregate(messageSet)
	return Header() + root.String()
}

func accountFrom(account Account) *Aggregate {
	switch account.Type {
	case ofxevent.AccountCreditCard:
		return NewAggregate("CCACCTFROM").Add("ACCTID", account.AccountID)
	case ofxevent.AccountInvestment:
		return NewAggregate("INVACCTFROM").
			Add("BROKERID", account.BrokerID).
			Add("ACCTID", account.AccountID)
	}
	accountType := account.Type
	if accountType == "" {
		accountType = ofxevent.AccountChecking
	}
	return NewAggregate("BANKACCTFROM").
		Add("BANKID", account.BankID).
		AddIf("BRANCHID", account.BranchID).
		Add("ACCTID", account.AccountID).
		Add("ACCTTYPE", string(accountType))
}

// Statement returns a statement request for account covering the transactions since start.
func (b *Builder) Statement(account Account, start time.Time) (string, error) {
	inctran := NewAggregate("INCTRAN").
		Add("DTSTART", start.Format(dateFormat)).
		Add("INCLUDE", "Y")

	var (
		rq             *Aggregate
		trnTag, msgTag string
	)
	switch account.Type {
	case ofxevent.AccountCreditCard:
		trnTag, msgTag = "CCSTMTTRNRQ", "CREDITCARDMSGSRQV1"
		rq = NewAggregate("CCSTMTRQ").AddAggregate(accountFrom(account)).AddAggregate(inctran)
	case ofxevent.AccountInvestment:
		trnTag, msgTag = "INVSTMTTRNRQ", "INVSTMTMSGSRQV1"
		incpos := NewAggregate("INCPOS").
			Add("DTASOF", b.formatDateTime(b.now())).
			Add("INCLUDE", "Y")
		rq = NewAggregate("INVSTMTRQ").
			AddAggregate(accountFrom(account)).
			AddAggregate(inctran).
			Add("INCOO", "Y").
			AddAggregate(incpos).
			Add("INCBAL", "Y")
	default:
		trnTag, msgTag = "STMTTRNRQ", "BANKMSGSRQV1"
		rq = NewAggregate("STMTRQ").AddAggregate(accountFrom(account)).AddAggregate(inctran)
	}

	trn, err := b.transaction(trnTag, rq)
	if err != nil {
		return "", err
	}
	return b.document(NewAggregate(msgTag).AddAggregate(trn)), nil
}

// AccountInfo returns a request for the list of accounts of the user.
func (b *Builder) AccountInfo() (string, error) {
	rq := NewAggregate("ACCTINFORQ").Add("DTACCTUP", accountInfoEpoch)
	trn, err := b.transaction("ACCTINFOTRNRQ", rq)
	if err != nil {
		return "", err
	}
	return b.document(NewAggregate("SIGNUPMSGSRQV1").AddAggregate(trn)), nil
}

// Payment returns a request paying payment from account.
func (b *Builder) Payment(account Account, payment Payment) (string, error) {
	if payment.Payee.Name == "" {
		return "", errors.New("error - payment has no payee name")
	}
	payee := NewAggregate("PAYEE").
		Add("NAME", payment.Payee.Name).
		Add("ADDR1", payment.Payee.Address1).
		AddIf("ADDR2", payment.Payee.Address2).
		AddIf("ADDR3", payment.Payee.Address3).
		Add("CITY", payment.Payee.City).
		Add("STATE", payment.Payee.State).
		Add("POSTALCODE", payment.Payee.PostalCode).
		Add("PHONE", payment.Payee.Phone)
	info := NewAggregate("PMTINFO").
		AddAggregate(accountFrom(account)).
		Add("TRNAMT", payment.Amount.StringFixed(2)).
		AddAggregate(payee).
		Add("PAYACCT", payment.PayeeAccount).
		Add("DTDUE", payment.DateDue.Format(dateFormat)).
		AddIf("MEMO", payment.Memo)
	trn, err := b.transaction("PMTTRNRQ", NewAggregate("PMTRQ").AddAggregate(info))
	if err != nil {
		return "", err
	}
	return b.document(NewAggregate("BILLPAYMSGSRQV1").AddAggregate(trn)), nil
}

// PaymentInquiry returns a request for the status of the payment with the server id serverID.
func (b *Builder) PaymentInquiry(serverID string) (string, error) {
	rq := NewAggregate("PMTINQRQ").Add("SRVRTID", serverID)
	trn, err := b.transaction("PMTINQTRNRQ", rq)
	if err != nil {
		return "", err
	}
	return b.document(NewAggregate("BILLPAYMSGSRQV1").AddAggregate(trn)), nil
}
