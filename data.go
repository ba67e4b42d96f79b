package ofxevent

import "time"

//revive:disable:exported

// TransactionType is a bank transaction type as per the OFX Spec 2.2 Section 11.4.4.3
// https://www.ofx.net/downloads/OFX%202.2.pdf
type TransactionType string

const (
	// Common Transaction Types
	DEBIT  TransactionType = "DEBIT"
	CREDIT TransactionType = "CREDIT"
	// Uncommon Transaction Types
	INTEREST      TransactionType = "INT"
	DIVIDEND      TransactionType = "DIV"
	FEE           TransactionType = "FEE"
	SERVICECHARGE TransactionType = "SRVCHG"
	DEPOSIT       TransactionType = "DEP"
	ATM           TransactionType = "ATM"
	POS           TransactionType = "POS"
	TRANSFER      TransactionType = "XFER"
	CHECK         TransactionType = "CHECK"
	PAYMENT       TransactionType = "PAYMENT"
	CASH          TransactionType = "CASH"
	DIRECTDEPOSIT TransactionType = "DIRECTDEP"
	DIRECTDEBIT   TransactionType = "DIRECTDEBIT"
	REPEATPAYMENT TransactionType = "REPEATPMT"
	OTHER         TransactionType = "OTHER"
)

var transactionTypes = map[string]TransactionType{
	"DEBIT": DEBIT, "CREDIT": CREDIT, "INT": INTEREST, "DIV": DIVIDEND, "FEE": FEE,
	"SRVCHG": SERVICECHARGE, "DEP": DEPOSIT, "ATM": ATM, "POS": POS, "XFER": TRANSFER,
	"CHECK": CHECK, "PAYMENT": PAYMENT, "CASH": CASH, "DIRECTDEP": DIRECTDEPOSIT,
	"DIRECTDEBIT": DIRECTDEBIT, "REPEATPMT": REPEATPAYMENT, "OTHER": OTHER,
}

// InvTransactionType is the kind of an investment transaction, named after its aggregate tag.
type InvTransactionType string

const (
	InvBuyDebt        InvTransactionType = "BUYDEBT"
	InvBuyMF          InvTransactionType = "BUYMF"
	InvBuyOpt         InvTransactionType = "BUYOPT"
	InvBuyOther       InvTransactionType = "BUYOTHER"
	InvBuyStock       InvTransactionType = "BUYSTOCK"
	InvClosureOpt     InvTransactionType = "CLOSUREOPT"
	InvIncome         InvTransactionType = "INCOME"
	InvExpense        InvTransactionType = "INVEXPENSE"
	InvJrnlFund       InvTransactionType = "JRNLFUND"
	InvJrnlSec        InvTransactionType = "JRNLSEC"
	InvMarginInterest InvTransactionType = "MARGININTEREST"
	InvReinvest       InvTransactionType = "REINVEST"
	InvRetOfCap       InvTransactionType = "RETOFCAP"
	InvSellDebt       InvTransactionType = "SELLDEBT"
	InvSellMF         InvTransactionType = "SELLMF"
	InvSellOpt        InvTransactionType = "SELLOPT"
	InvSellOther      InvTransactionType = "SELLOTHER"
	InvSellStock      InvTransactionType = "SELLSTOCK"
	InvSplit          InvTransactionType = "SPLIT"
	InvTransfer       InvTransactionType = "TRANSFER"
)

var invTransactionTypes = []InvTransactionType{
	InvBuyDebt, InvBuyMF, InvBuyOpt, InvBuyOther, InvBuyStock, InvClosureOpt, InvIncome,
	InvExpense, InvJrnlFund, InvJrnlSec, InvMarginInterest, InvReinvest, InvRetOfCap,
	InvSellDebt, InvSellMF, InvSellOpt, InvSellOther, InvSellStock, InvSplit, InvTransfer,
}

// AccountType is the kind of an account.
type AccountType string

const (
	AccountChecking    AccountType = "CHECKING"
	AccountSavings     AccountType = "SAVINGS"
	AccountMoneyMarket AccountType = "MONEYMRKT"
	AccountCreditLine  AccountType = "CREDITLINE"
	AccountCMA         AccountType = "CMA"
	AccountCreditCard  AccountType = "CREDITCARD"
	AccountInvestment  AccountType = "INVESTMENT"
)

// accountTypes maps ACCTTYPE values, including the numeric OFC codes, to account types.
var accountTypes = map[string]AccountType{
	"CHECKING":   AccountChecking,
	"SAVINGS":    AccountSavings,
	"MONEYMRKT":  AccountMoneyMarket,
	"CREDITLINE": AccountCreditLine,
	"CMA":        AccountCMA,
	"1":          AccountChecking,
	"2":          AccountSavings,
	"3":          AccountCreditCard,
	"4":          AccountMoneyMarket,
	"5":          AccountCreditLine,
}

// StatusSeverity is the severity of a STATUS aggregate.
type StatusSeverity string

const (
	SeverityInfo  StatusSeverity = "INFO"
	SeverityWarn  StatusSeverity = "WARN"
	SeverityError StatusSeverity = "ERROR"
)

// CorrectionAction says how a transaction corrects the one named by CorrectFITID.
type CorrectionAction string

const (
	CorrectionReplace CorrectionAction = "REPLACE"
	CorrectionDelete  CorrectionAction = "DELETE"
)

// AccountData is an account found in a statement or account list.
type AccountData struct {
	AccountID     Field[string] // Synthesized from the bank, branch, broker and account numbers.
	AccountName   Field[string]
	AccountType   Field[AccountType]
	Currency      Field[string]
	AccountNumber Field[string] // ACCTID
	AccountKey    Field[string]
	BankID        Field[string]
	BranchID      Field[string]
	BrokerID      Field[string]
}

// StatementData is the summary of one statement.
type StatementData struct {
	AccountID            Field[string]
	Currency             Field[string]
	MarketingInfo        Field[string]
	LedgerBalance        Field[float64]
	LedgerBalanceDate    Field[time.Time]
	AvailableBalance     Field[float64]
	AvailableBalanceDate Field[time.Time]
	DateStart            Field[time.Time]
	DateEnd              Field[time.Time]
}

// TransactionData is a bank or investment transaction.
type TransactionData struct {
	AccountID              Field[string]
	TransactionType        Field[TransactionType]
	InvTransactionType     Field[InvTransactionType]
	UniqueID               Field[string] // Security the transaction refers to.
	UniqueIDType           Field[string]
	Security               Field[SecurityData] // Resolved from UniqueID right before emission.
	Units                  Field[float64]
	UnitPrice              Field[float64]
	Amount                 Field[float64]
	FITID                  Field[string]
	CorrectFITID           Field[string]
	CorrectAction          Field[CorrectionAction]
	ServerTransactionID    Field[string]
	CheckNumber            Field[string]
	ReferenceNumber        Field[string]
	StandardIndustrialCode Field[int]
	PayeeID                Field[string]
	Name                   Field[string]
	Memo                   Field[string]
	DatePosted             Field[time.Time]
	DateInitiated          Field[time.Time]
	DateFundsAvailable     Field[time.Time]
	Commission             Field[float64]
	Fees                   Field[float64]
	OldUnits               Field[float64]
	NewUnits               Field[float64]
}

// SecurityData describes a security from the security list.
type SecurityData struct {
	UniqueID      Field[string]
	UniqueIDType  Field[string]
	SecurityName  Field[string]
	Ticker        Field[string]
	UnitPrice     Field[float64]
	DateUnitPrice Field[time.Time]
	Currency      Field[string]
	Memo          Field[string]
}

// StatusData is a STATUS aggregate returned by the server.
type StatusData struct {
	ElementName   Field[string] // Tag of the aggregate the status belongs to.
	Code          Field[int]
	Name          Field[string]
	Description   Field[string]
	Severity      Field[StatusSeverity]
	ServerMessage Field[string]
}
