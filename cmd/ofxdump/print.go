package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/rockstardevs/ofxevent"
)

// register prints the events of a context to out.
func register(ctx *ofxevent.Context, out *strings.Builder) {
	ctx.SetStatusCallback(func(d ofxevent.StatusData) int {
		out.WriteString("STATUS\n")
		field(out, "element", d.ElementName)
		field(out, "code", d.Code)
		field(out, "name", d.Name)
		field(out, "description", d.Description)
		field(out, "severity", d.Severity)
		field(out, "server message", d.ServerMessage)
		return 0
	})
	ctx.SetSecurityCallback(func(d ofxevent.SecurityData) int {
		out.WriteString("SECURITY\n")
		field(out, "unique id", d.UniqueID)
		field(out, "unique id type", d.UniqueIDType)
		field(out, "name", d.SecurityName)
		field(out, "ticker", d.Ticker)
		field(out, "unit price", d.UnitPrice)
		dateField(out, "unit price as of", d.DateUnitPrice)
		field(out, "currency", d.Currency)
		field(out, "memo", d.Memo)
		return 0
	})
	ctx.SetAccountCallback(func(d ofxevent.AccountData) int {
		out.WriteString("ACCOUNT\n")
		field(out, "account id", d.AccountID)
		field(out, "account name", d.AccountName)
		field(out, "account type", d.AccountType)
		field(out, "currency", d.Currency)
		field(out, "bank id", d.BankID)
		field(out, "branch id", d.BranchID)
		field(out, "broker id", d.BrokerID)
		field(out, "account number", d.AccountNumber)
		return 0
	})
	ctx.SetStatementCallback(func(d ofxevent.StatementData) int {
		out.WriteString("STATEMENT\n")
		field(out, "account id", d.AccountID)
		field(out, "currency", d.Currency)
		field(out, "ledger balance", d.LedgerBalance)
		dateField(out, "ledger balance as of", d.LedgerBalanceDate)
		field(out, "available balance", d.AvailableBalance)
		dateField(out, "available balance as of", d.AvailableBalanceDate)
		dateField(out, "start date", d.DateStart)
		dateField(out, "end date", d.DateEnd)
		field(out, "marketing info", d.MarketingInfo)
		return 0
	})
	ctx.SetTransactionCallback(func(d ofxevent.TransactionData) int {
		out.WriteString("TRANSACTION\n")
		field(out, "account id", d.AccountID)
		field(out, "transaction type", d.TransactionType)
		field(out, "investment transaction type", d.InvTransactionType)
		field(out, "fitid", d.FITID)
		field(out, "corrected fitid", d.CorrectFITID)
		field(out, "correction action", d.CorrectAction)
		field(out, "server transaction id", d.ServerTransactionID)
		dateField(out, "date posted", d.DatePosted)
		dateField(out, "date initiated", d.DateInitiated)
		dateField(out, "date funds available", d.DateFundsAvailable)
		field(out, "amount", d.Amount)
		field(out, "units", d.Units)
		field(out, "unit price", d.UnitPrice)
		field(out, "old units", d.OldUnits)
		field(out, "new units", d.NewUnits)
		field(out, "commission", d.Commission)
		field(out, "fees", d.Fees)
		field(out, "unique id", d.UniqueID)
		if d.Security.Valid {
			field(out, "security", d.Security.Value.SecurityName)
		}
		field(out, "check number", d.CheckNumber)
		field(out, "reference number", d.ReferenceNumber)
		field(out, "sic", d.StandardIndustrialCode)
		field(out, "payee id", d.PayeeID)
		field(out, "name", d.Name)
		field(out, "memo", d.Memo)
		return 0
	})
}

func field[T any](out *strings.Builder, name string, f ofxevent.Field[T]) {
	if f.Valid {
		fmt.Fprintf(out, "    %s: %v\n", name, f.Value)
	}
}

func dateField(out *strings.Builder, name string, f ofxevent.Field[time.Time]) {
	if f.Valid {
		fmt.Fprintf(out, "    %s: %s\n", name, f.Value.Format(time.RFC1123))
	}
}
