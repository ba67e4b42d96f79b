package main

import (
	"bytes"
	"fmt"
	"log"

	"github.com/rockstardevs/ofxevent"
)

func main() {
	data := []byte(`
        <OFX>
        <SIGNONMSGSRSV1><SONRS>
            <STATUS><CODE>0<SEVERITY>INFO</STATUS>
            <DTSERVER>20190923042445<LANGUAGE>ENG
            <FI><ORG>Test Bank</ORG><FID>123</FID></FI>
        </SONRS></SIGNONMSGSRSV1>
		<BANKMSGSRSV1><STMTTRNRS>
			<TRNUID>0
			<STATUS><CODE>0<SEVERITY>INFO</STATUS>
			<STMTRS>
				<CURDEF>USD
				<BANKACCTFROM><BANKID>456<ACCTID>789<ACCTTYPE>CREDITLINE</BANKACCTFROM>
				<BANKTRANLIST>
					<DTSTART>20190101120000.000[0:GMT]<DTEND>20190131120000.000[0:GMT]
					<STMTTRN><TRNTYPE>DEBIT<DTPOSTED>20190119090000<TRNAMT>-20.96<FITID>20190119090001<NAME>Sample Expense</STMTTRN>
					<STMTTRN><TRNTYPE>DEBIT<DTPOSTED>20191115090000<TRNAMT>-115.26<FITID>20190122090002<NAME>Another Expense</STMTTRN>
				</BANKTRANLIST>
				<LEDGERBAL>
					<BALAMT>315.50<DTASOF>20190131120000.000[0:GMT]
				</LEDGERBAL>
				<AVAILBAL>
					<BALAMT>315.50<DTASOF>20190131120000.000[-7:MST]
				</AVAILBAL>
			</STMTRS>
		</STMTTRNRS></BANKMSGSRSV1>
		</OFX>
	`)

	ctx := ofxevent.NewContext()
	ctx.SetStatusCallback(func(s ofxevent.StatusData) int {
		fmt.Printf("status of %s: %d %s\n", s.ElementName.Value, s.Code.Value, s.Name.Value)
		return 0
	})
	ctx.SetAccountCallback(func(a ofxevent.AccountData) int {
		fmt.Printf("account %q (%s)\n", a.AccountID.Value, a.AccountName.Value)
		return 0
	})
	ctx.SetTransactionCallback(func(t ofxevent.TransactionData) int {
		fmt.Printf("  %s %s %10.2f %s\n", t.DatePosted.Value.Format("2006-01-02"), t.TransactionType.Value, t.Amount.Value, t.Name.Value)
		return 0
	})
	ctx.SetStatementCallback(func(s ofxevent.StatementData) int {
		fmt.Printf("ledger balance %.2f\n", s.LedgerBalance.Value)
		return 0
	})

	if err := ctx.Process(bytes.NewReader(data)); err != nil {
		log.Fatalf("error parsing data file - %s", err)
	}
}
