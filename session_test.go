package ofxevent_test

import (
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/rockstardevs/ofxevent"
	"github.com/rockstardevs/ofxevent/sgml"
)

var _ = Describe("Session", func() {
	var (
		ctx *ofxevent.Context
		rec *recorder
		s   *ofxevent.Session
		e   events
		pst = time.FixedZone("PST", -8*60*60)
	)
	BeforeEach(func() {
		ctx, rec = newRecordingContext(ofxevent.WithLocation(pst))
		s = ctx.NewSession()
		e = events{s}
	})

	// bankStatement opens a bank statement with its account.
	bankStatement := func() events {
		return e.open("OFX", "BANKMSGSRSV1", "STMTTRNRS", "STMTRS").
			data("CURDEF", "USD").
			open("BANKACCTFROM").
			data("BANKID", "123").
			data("BRANCHID", "45").
			data("ACCTID", "6789").
			data("ACCTTYPE", "CHECKING").
			close("BANKACCTFROM").
			open("BANKTRANLIST")
	}
	closeBankStatement := func() {
		e.close("BANKTRANLIST", "STMTRS", "STMTTRNRS", "BANKMSGSRSV1", "OFX")
	}

	Describe("accounts", func() {
		It("should synthesize bank account ids", func() {
			bankStatement()
			closeBankStatement()
			Expect(rec.accounts).To(HaveLen(1))
			a := rec.accounts[0]
			Expect(a.AccountID).To(Equal(ofxevent.ValidField("123 45 6789")))
			Expect(a.AccountName.Value).To(HavePrefix("Bank account 6789"))
			Expect(a.AccountType.Value).To(Equal(ofxevent.AccountChecking))
			Expect(a.Currency).To(Equal(ofxevent.ValidField("USD")))
		})
		It("should synthesize credit card account ids", func() {
			e.open("OFX", "CCSTMTRS").
				open("CCACCTFROM").data("ACCTID", "4111").data("ACCTKEY", "99").close("CCACCTFROM").
				close("CCSTMTRS", "OFX")
			Expect(rec.accounts).To(HaveLen(1))
			Expect(rec.accounts[0].AccountID.Value).To(Equal("4111 99"))
			Expect(rec.accounts[0].AccountName.Value).To(Equal("Credit card 4111"))
			Expect(rec.accounts[0].AccountType.Value).To(Equal(ofxevent.AccountCreditCard))
		})
		It("should synthesize investment account ids", func() {
			e.open("OFX", "INVSTMTRS").
				open("INVACCTFROM").data("BROKERID", "broker.com").data("ACCTID", "42").close("INVACCTFROM").
				close("INVSTMTRS", "OFX")
			Expect(rec.accounts[0].AccountID.Value).To(Equal("broker.com 42"))
			Expect(rec.accounts[0].AccountName.Value).To(Equal("Investment account 42 at broker broker.com"))
		})
		It("should accept ACCTTYPE2 as ACCTTYPE", func() {
			e.open("OFX", "STMTRS", "BANKACCTFROM").data("ACCTTYPE2", "SAVINGS").close("BANKACCTFROM", "STMTRS", "OFX")
			Expect(rec.accounts[0].AccountType).To(Equal(ofxevent.ValidField(ofxevent.AccountSavings)))
		})
		It("should invalidate unknown account types", func() {
			e.open("OFX", "STMTRS", "BANKACCTFROM").data("ACCTTYPE", "PIGGYBANK").close("BANKACCTFROM", "STMTRS", "OFX")
			Expect(rec.accounts[0].AccountType.Valid).To(BeFalse())
		})
	})

	Describe("attribute routing", func() {
		It("should keep the last value of a duplicated element", func() {
			e.open("OFX", "STMTRS", "BANKACCTFROM").
				data("ACCTID", "1").
				data("ACCTID", "2").
				close("BANKACCTFROM", "STMTRS", "OFX")
			Expect(rec.accounts[0].AccountNumber).To(Equal(ofxevent.ValidField("2")))
		})
		It("should strip whitespace from values", func() {
			bankStatement().
				open("STMTTRN").data("TRNAMT", "\n  123.45\t\r").data("NAME", " Coffee\tShop ").close("STMTTRN")
			closeBankStatement()
			Expect(rec.transactions[0].Amount).To(Equal(ofxevent.ValidField(123.45)))
			Expect(rec.transactions[0].Name.Value).To(Equal("CoffeeShop"))
		})
		It("should concatenate character data chunks", func() {
			bankStatement().open("STMTTRN")
			s.StartElement("MEMO", sgml.MixedContent)
			s.CharacterData([]byte("half "))
			s.CharacterData([]byte("and half"))
			s.EndElement("MEMO")
			e.close("STMTTRN")
			closeBankStatement()
			Expect(rec.transactions[0].Memo.Value).To(Equal("half and half"))
		})
		It("should treat a number that can not be parsed as 0", func() {
			bankStatement().open("STMTTRN").data("TRNAMT", "n/a").close("STMTTRN")
			closeBankStatement()
			Expect(rec.transactions[0].Amount).To(Equal(ofxevent.ValidField(0.0)))
		})
	})

	Describe("bank transactions", func() {
		It("should record every field", func() {
			bankStatement().
				open("STMTTRN").
				data("TRNTYPE", "DEBIT").
				data("DTPOSTED", "20230615").
				data("DTUSER", "20230614").
				data("DTAVAIL", "20230616").
				data("TRNAMT", "-20,96").
				data("FITID", "F1").
				data("CORRECTFITID", "F0").
				data("CORRECTACTION", "REPLACE").
				data("SRVRTID2", "S1").
				data("CHECKNUM", "1001").
				data("REFNUM", "R1").
				data("SIC", "5812").
				data("PAYEEID2", "P1").
				data("NAME", "Cafe").
				data("MEMO2", "lunch").
				close("STMTTRN")
			closeBankStatement()

			Expect(rec.transactions).To(HaveLen(1))
			t := rec.transactions[0]
			Expect(t.AccountID.Value).To(Equal("123 45 6789"))
			Expect(t.TransactionType.Value).To(Equal(ofxevent.DEBIT))
			Expect(t.DatePosted.Value).To(Equal(time.Date(2023, 6, 15, 11, 59, 0, 0, pst)))
			Expect(t.DateInitiated.Valid).To(BeTrue())
			Expect(t.DateFundsAvailable.Valid).To(BeTrue())
			Expect(t.Amount.Value).To(BeNumerically("~", -20.96, 1e-9))
			Expect(t.Units.Value).To(BeNumerically("~", 20.96, 1e-9))
			Expect(t.UnitPrice).To(Equal(ofxevent.ValidField(1.0)))
			Expect(t.FITID.Value).To(Equal("F1"))
			Expect(t.CorrectFITID.Value).To(Equal("F0"))
			Expect(t.CorrectAction.Value).To(Equal(ofxevent.CorrectionReplace))
			Expect(t.ServerTransactionID.Value).To(Equal("S1"))
			Expect(t.CheckNumber.Value).To(Equal("1001"))
			Expect(t.ReferenceNumber.Value).To(Equal("R1"))
			Expect(t.StandardIndustrialCode).To(Equal(ofxevent.ValidField(5812)))
			Expect(t.PayeeID.Value).To(Equal("P1"))
			Expect(t.Name.Value).To(Equal("Cafe"))
			Expect(t.Memo.Value).To(Equal("lunch"))
			Expect(t.InvTransactionType.Valid).To(BeFalse())
		})
		It("should invalidate unknown transaction types and correction actions", func() {
			bankStatement().open("STMTTRN").data("TRNTYPE", "BARTER").data("CORRECTACTION", "UNDO").close("STMTTRN")
			closeBankStatement()
			Expect(rec.transactions[0].TransactionType.Valid).To(BeFalse())
			Expect(rec.transactions[0].CorrectAction.Valid).To(BeFalse())
		})
	})

	Describe("statements", func() {
		It("should merge balances and transaction list dates", func() {
			bankStatement().
				data("DTSTART", "20230101").
				data("DTEND", "20230131").
				close("BANKTRANLIST").
				open("LEDGERBAL").data("BALAMT", "315,50").data("DTASOF", "20230131").close("LEDGERBAL").
				open("AVAILBAL").data("BALAMT", "300.00").close("AVAILBAL").
				data("MKTGINFO", "Save more").
				close("STMTRS", "STMTTRNRS", "BANKMSGSRSV1", "OFX")

			Expect(rec.statements).To(HaveLen(1))
			st := rec.statements[0]
			Expect(st.AccountID.Value).To(Equal("123 45 6789"))
			Expect(st.Currency.Value).To(Equal("USD"))
			Expect(st.DateStart.Valid).To(BeTrue())
			Expect(st.DateEnd.Valid).To(BeTrue())
			Expect(st.LedgerBalance).To(Equal(ofxevent.ValidField(315.5)))
			Expect(st.LedgerBalanceDate.Valid).To(BeTrue())
			Expect(st.AvailableBalance).To(Equal(ofxevent.ValidField(300.0)))
			Expect(st.AvailableBalanceDate.Valid).To(BeFalse())
			Expect(st.MarketingInfo.Value).To(Equal("Save more"))
		})
		It("should emit the account, then its transactions, then the statement", func() {
			bankStatement().
				open("STMTTRN").data("FITID", "1").close("STMTTRN").
				open("STMTTRN").data("FITID", "2").close("STMTTRN")
			closeBankStatement()
			Expect(rec.order).To(Equal([]string{"ACCOUNT", "TRANSACTION", "TRANSACTION", "STATEMENT"}))
			Expect(rec.transactions[0].FITID.Value).To(Equal("1"))
			Expect(rec.transactions[1].FITID.Value).To(Equal("2"))
		})
	})

	Describe("orphans", func() {
		It("should drop statements and transactions without an account", func() {
			e.open("OFX", "STMTRS", "BANKTRANLIST", "STMTTRN").data("FITID", "1").
				close("STMTTRN", "BANKTRANLIST", "STMTRS", "OFX")
			Expect(rec.transactions).To(BeEmpty())
			Expect(rec.statements).To(BeEmpty())
			Expect(s.Errors()).To(Equal(0))
		})
		It("should drop balances outside of a statement", func() {
			e.open("OFX", "LEDGERBAL").data("BALAMT", "1").close("LEDGERBAL", "OFX")
			Expect(rec.order).To(BeEmpty())
		})
	})

	Describe("unknown tags", func() {
		It("should ignore unknown aggregates and elements", func() {
			bankStatement().
				open("STMTTRN").
				data("FITID", "1").
				open("PAYEE").data("NAME", "ignored").data("CITY", "Springfield").close("PAYEE").
				data("XFOO", "bar").
				close("STMTTRN")
			closeBankStatement()
			Expect(rec.transactions).To(HaveLen(1))
			Expect(rec.transactions[0].FITID.Value).To(Equal("1"))
			Expect(rec.transactions[0].Name.Valid).To(BeFalse())
			Expect(s.Errors()).To(Equal(0))
		})
	})

	Describe("investments", func() {
		investmentStatement := func(buy func(events)) {
			e.open("OFX", "INVSTMTMSGSRSV1", "INVSTMTTRNRS", "INVSTMTRS").
				data("CURDEF", "USD").
				open("INVACCTFROM").data("BROKERID", "b").data("ACCTID", "1").close("INVACCTFROM").
				open("INVTRANLIST").data("DTSTART", "20230101")
			buy(e)
			e.close("INVTRANLIST", "INVSTMTRS", "INVSTMTTRNRS", "INVSTMTMSGSRSV1")
			e.open("SECLISTMSGSRSV1", "SECLIST", "STOCKINFO", "SECINFO", "SECID").
				data("UNIQUEID", "US1234").data("UNIQUEIDTYPE", "CUSIP").
				close("SECID").
				data("SECNAME", "Acme").data("TICKER", "ACME").data("UNITPRICE", "10.5").
				close("SECINFO", "STOCKINFO", "SECLIST", "SECLISTMSGSRSV1", "OFX")
		}

		It("should forward push-up elements to the transaction", func() {
			investmentStatement(func(e events) {
				e.open("BUYSTOCK", "INVBUY", "INVTRAN").data("FITID", "T1").data("DTTRADE", "20230102").data("DTSETTLE", "20230104").close("INVTRAN").
					open("SECID").data("UNIQUEID", "US1234").data("UNIQUEIDTYPE", "CUSIP").close("SECID").
					data("UNITS", "100").data("UNITPRICE", "10.5").data("COMMISSION", "1").data("FEES", "0.5").
					data("TOTAL", "-1051.5").data("MKTVAL", "1050").
					close("INVBUY").data("BUYTYPE", "BUY").close("BUYSTOCK")
			})
			flat := rec.transactions

			ctx2, rec2 := newRecordingContext(ofxevent.WithLocation(pst))
			e = events{ctx2.NewSession()}
			investmentStatement(func(e events) {
				e.open("BUYSTOCK").data("FITID", "T1").data("DTTRADE", "20230102").data("DTSETTLE", "20230104").
					data("UNIQUEID", "US1234").data("UNIQUEIDTYPE", "CUSIP").
					data("UNITS", "100").data("UNITPRICE", "10.5").data("COMMISSION", "1").data("FEES", "0.5").
					data("TOTAL", "-1051.5").data("MKTVAL", "1050").
					data("BUYTYPE", "BUY").close("BUYSTOCK")
			})

			Expect(flat).To(HaveLen(1))
			Expect(rec2.transactions).To(Equal(flat))
			t := flat[0]
			Expect(t.InvTransactionType.Value).To(Equal(ofxevent.InvBuyStock))
			Expect(t.TransactionType.Value).To(Equal(ofxevent.OTHER))
			Expect(t.AccountID.Value).To(Equal("b 1"))
			Expect(t.Units.Value).To(Equal(100.0))
			Expect(t.UnitPrice.Value).To(Equal(10.5))
			Expect(t.Commission.Value).To(Equal(1.0))
			Expect(t.Fees.Value).To(Equal(0.5))
			Expect(t.Amount.Value).To(Equal(-1051.5))
			Expect(t.DateInitiated.Value).To(Equal(time.Date(2023, 1, 2, 11, 59, 0, 0, pst)))
			Expect(t.DatePosted.Value).To(Equal(time.Date(2023, 1, 4, 11, 59, 0, 0, pst)))
		})

		It("should resolve the security of a transaction", func() {
			investmentStatement(func(e events) {
				e.open("BUYSTOCK", "SECID").data("UNIQUEID", "US1234").close("SECID", "BUYSTOCK")
				e.open("SELLSTOCK", "SECID").data("UNIQUEID", "US9999").close("SECID", "SELLSTOCK")
			})
			Expect(rec.order).To(Equal([]string{"SECURITY", "ACCOUNT", "TRANSACTION", "TRANSACTION", "STATEMENT"}))
			Expect(rec.securities).To(HaveLen(1))
			Expect(rec.securities[0].SecurityName.Value).To(Equal("Acme"))
			Expect(rec.securities[0].UnitPrice.Value).To(Equal(10.5))

			Expect(rec.transactions[0].Security.Valid).To(BeTrue())
			Expect(rec.transactions[0].Security.Value.Ticker.Value).To(Equal("ACME"))
			Expect(rec.transactions[1].InvTransactionType.Value).To(Equal(ofxevent.InvSellStock))
			Expect(rec.transactions[1].Security.Valid).To(BeFalse())
		})

		It("should record split units", func() {
			investmentStatement(func(e events) {
				e.open("SPLIT").data("OLDUNITS", "10").data("NEWUNITS", "20").close("SPLIT")
			})
			Expect(rec.transactions[0].OldUnits.Value).To(Equal(10.0))
			Expect(rec.transactions[0].NewUnits.Value).To(Equal(20.0))
		})
	})

	Describe("status", func() {
		It("should emit statuses as soon as they close", func() {
			e.open("OFX", "SIGNONMSGSRSV1", "SONRS", "STATUS").
				data("CODE", "0").
				data("SEVERITY", "INFO").
				data("MESSAGE2", "hello").
				close("STATUS")
			Expect(rec.statuses).To(HaveLen(1))
			st := rec.statuses[0]
			Expect(st.ElementName.Value).To(Equal("SONRS"))
			Expect(st.Code).To(Equal(ofxevent.ValidField(0)))
			Expect(st.Name.Value).To(Equal("Success"))
			Expect(st.Severity.Value).To(Equal(ofxevent.SeverityInfo))
			Expect(st.ServerMessage.Value).To(Equal("hello"))
		})
		It("should fall back for unknown codes and severities", func() {
			e.open("OFX", "STATUS").data("CODE", "4242").data("SEVERITY", "FATAL").close("STATUS", "OFX")
			Expect(rec.statuses[0].Name.Value).To(Equal("Unknown code"))
			Expect(rec.statuses[0].Severity.Valid).To(BeFalse())
		})
	})

	Describe("structural errors", func() {
		It("should ignore a mismatched end tag below the root", func() {
			bankStatement().close("STMTTRN")
			closeBankStatement()
			Expect(s.Errors()).To(Equal(1))
			Expect(s.Cancelled()).To(BeFalse())
			Expect(rec.accounts).To(HaveLen(1))
		})
		It("should cancel on a mismatched end tag at the root", func() {
			e.open("OFX", "STMTRS", "BANKACCTFROM").data("ACCTID", "1").close("BANKACCTFROM", "STMTRS").
				close("OFC", "OFX")
			Expect(s.Cancelled()).To(BeTrue())
			Expect(s.Errors()).To(Equal(1))
			Expect(rec.order).To(BeEmpty())
		})
		It("should count parser errors but not warnings", func() {
			s.ParseError(sgml.SeverityWarning, "warning", sgml.Position{Line: 1, Column: 2})
			s.ParseError(sgml.SeverityInfo, "info", sgml.Position{})
			s.ParseError(sgml.SeverityIDRef, "idref", sgml.Position{})
			s.ParseError(sgml.SeverityOther, "other", sgml.Position{})
			Expect(s.Errors()).To(Equal(2))
		})
	})

	Describe("error limit", func() {
		It("should cancel once the parser reports too many errors", func() {
			ctx, rec = newRecordingContext(ofxevent.WithErrorLimit(1))
			s = ctx.NewSession()
			e = events{s}
			e.open("OFX", "STMTRS", "BANKACCTFROM").data("ACCTID", "1").close("BANKACCTFROM")
			s.ParseError(sgml.SeverityOther, "first", sgml.Position{})
			Expect(s.Cancelled()).To(BeFalse())
			s.ParseError(sgml.SeverityOther, "second", sgml.Position{})
			Expect(s.Cancelled()).To(BeTrue())
			e.close("STMTRS", "OFX")
			Expect(rec.order).To(BeEmpty())
			Expect(s.Errors()).To(Equal(2))
		})
	})

	Describe("end tag without an open aggregate", func() {
		It("should count an error and emit nothing", func() {
			e.close("OFX")
			Expect(s.Errors()).To(Equal(1))
			Expect(s.Cancelled()).To(BeFalse())
			Expect(rec.order).To(BeEmpty())
		})
	})

	Describe("FindSecurity()", func() {
		It("should find securities of the open document only", func() {
			e.open("OFX", "SECLIST", "MFINFO", "SECINFO", "SECID").data("UNIQUEID", "X1").close("SECID", "SECINFO", "MFINFO")
			sec, found := s.FindSecurity("X1")
			Expect(found).To(BeTrue())
			Expect(sec.UniqueID.Value).To(Equal("X1"))
			_, found = s.FindSecurity("X2")
			Expect(found).To(BeFalse())
			e.close("SECLIST", "OFX")
			_, found = s.FindSecurity("X1")
			Expect(found).To(BeFalse())
		})
	})
})

var _ = Describe("Push-up containers", func() {
	// record runs body inside a document root and returns what was emitted.
	record := func(body func(events)) *recorder {
		ctx, rec := newRecordingContext(ofxevent.WithLocation(time.UTC))
		e := events{ctx.NewSession()}
		e.open("OFX")
		body(e)
		e.close("OFX")
		return rec
	}

	DescribeTable("should forward elements as if they were written in the parent",
		func(nested, flat func(events)) {
			got := record(nested)
			Expect(got.order).NotTo(BeEmpty())
			Expect(got).To(Equal(record(flat)))
		},
		Entry("INVSELL and INVTRAN",
			func(e events) {
				e.open("INVSTMTRS", "INVACCTFROM").data("ACCTID", "1").close("INVACCTFROM").
					open("SELLSTOCK", "INVSELL", "INVTRAN").data("FITID", "S1").data("DTTRADE", "20230102").close("INVTRAN").
					data("UNITS", "-5").data("TOTAL", "500").close("INVSELL").data("SELLTYPE", "SELL").close("SELLSTOCK").
					close("INVSTMTRS")
			},
			func(e events) {
				e.open("INVSTMTRS", "INVACCTFROM").data("ACCTID", "1").close("INVACCTFROM").
					open("SELLSTOCK").data("FITID", "S1").data("DTTRADE", "20230102").
					data("UNITS", "-5").data("TOTAL", "500").data("SELLTYPE", "SELL").close("SELLSTOCK").
					close("INVSTMTRS")
			}),
		Entry("STMTRS inside ACCTSTMT",
			func(e events) {
				e.open("ACCTSTMT", "ACCTFROM").data("ACCTID", "1").close("ACCTFROM").
					open("STMTRS").data("DTSTART", "20230101").data("DTEND", "20230131").close("STMTRS").
					close("ACCTSTMT")
			},
			func(e events) {
				e.open("ACCTSTMT", "ACCTFROM").data("ACCTID", "1").close("ACCTFROM").
					data("DTSTART", "20230101").data("DTEND", "20230131").
					close("ACCTSTMT")
			}),
		Entry("BANKTRANLIST inside a statement",
			func(e events) {
				e.open("STMTRS", "BANKACCTFROM").data("ACCTID", "1").close("BANKACCTFROM").
					open("BANKTRANLIST").data("DTSTART", "20230101").data("DTEND", "20230131").close("BANKTRANLIST").
					close("STMTRS")
			},
			func(e events) {
				e.open("STMTRS", "BANKACCTFROM").data("ACCTID", "1").close("BANKACCTFROM").
					data("DTSTART", "20230101").data("DTEND", "20230131").
					close("STMTRS")
			}),
		Entry("INVTRANLIST inside a statement",
			func(e events) {
				e.open("INVSTMTRS", "INVACCTFROM").data("ACCTID", "1").close("INVACCTFROM").
					open("INVTRANLIST").data("DTSTART", "20230101").close("INVTRANLIST").
					close("INVSTMTRS")
			},
			func(e events) {
				e.open("INVSTMTRS", "INVACCTFROM").data("ACCTID", "1").close("INVACCTFROM").
					data("DTSTART", "20230101").
					close("INVSTMTRS")
			}),
		Entry("SECINFO inside STOCKINFO",
			func(e events) {
				e.open("SECLIST", "STOCKINFO", "SECINFO").data("UNIQUEID", "X1").data("SECNAME", "Acme").close("SECINFO").
					data("YIELD", "1.5").close("STOCKINFO", "SECLIST")
			},
			func(e events) {
				e.open("SECLIST", "STOCKINFO").data("UNIQUEID", "X1").data("SECNAME", "Acme").
					data("YIELD", "1.5").close("STOCKINFO", "SECLIST")
			}),
		Entry("GENTRN inside STMTTRN",
			func(e events) {
				e.open("ACCTSTMT", "ACCTFROM").data("ACCTID", "1").close("ACCTFROM").
					open("STMTRS", "STMTTRN", "GENTRN").data("FITID", "G1").data("TRNAMT", "-3").close("GENTRN", "STMTTRN", "STMTRS").
					close("ACCTSTMT")
			},
			func(e events) {
				e.open("ACCTSTMT", "ACCTFROM").data("ACCTID", "1").close("ACCTFROM").
					open("STMTTRN").data("FITID", "G1").data("TRNAMT", "-3").close("STMTTRN").
					close("ACCTSTMT")
			}),
	)
})
