package sgml

import (
	"strings"
	"sync"
)

var aggregatesMap map[string]struct{}
var initAggregatesMap sync.Once

var dataElementsMap map[string]struct{}
var initDataElementsMap sync.Once

// GetAggregates returns the singleton set of known OFX/OFC aggregate tags.
func GetAggregates() map[string]struct{} {
	initAggregatesMap.Do(func() {
		var aggregates = []string{
			// Document roots.
			"OFX", "OFC",
			// Signon.
			"SIGNONMSGSRQV1", "SIGNONMSGSRSV1", "SONRQ", "SONRS", "FI", "STATUS",
			"PINCHTRNRQ", "PINCHTRNRS", "PINCHRQ", "PINCHRS", "CHALLENGETRNRQ", "CHALLENGETRNRS",
			"CHALLENGERQ", "CHALLENGERS", "MFACHALLENGERQ", "MFACHALLENGERS",
			// Signup and account info.
			"SIGNUPMSGSRQV1", "SIGNUPMSGSRSV1", "ACCTINFOTRNRQ", "ACCTINFOTRNRS", "ACCTINFORQ",
			"ACCTINFORS", "ACCTINFO", "BANKACCTINFO", "CCACCTINFO", "INVACCTINFO", "BPACCTINFO",
			// Banking.
			"BANKMSGSRQV1", "BANKMSGSRSV1", "STMTTRNRQ", "STMTTRNRS", "STMTRQ", "STMTRS",
			"BANKACCTFROM", "BANKACCTTO", "CCACCTFROM", "CCACCTTO", "INCTRAN", "BANKTRANLIST",
			"STMTTRN", "LEDGERBAL", "AVAILBAL", "BALLIST", "BAL", "CURRENCY", "ORIGCURRENCY",
			"PAYEE", "EXTBANKACCTTO", "STMTENDTRNRQ", "STMTENDTRNRS", "STMTENDRQ", "STMTENDRS",
			"CLOSING",
			// Credit card.
			"CREDITCARDMSGSRQV1", "CREDITCARDMSGSRSV1", "CCSTMTTRNRQ", "CCSTMTTRNRS", "CCSTMTRQ",
			"CCSTMTRS", "CCSTMTENDTRNRQ", "CCSTMTENDTRNRS", "CCSTMTENDRQ", "CCSTMTENDRS",
			"CCCLOSING",
			// Investment.
			"INVSTMTMSGSRQV1", "INVSTMTMSGSRSV1", "INVSTMTTRNRQ", "INVSTMTTRNRS", "INVSTMTRQ",
			"INVSTMTRS", "INVACCTFROM", "INVACCTTO", "INCPOS", "INVTRANLIST", "INVBANKTRAN",
			"INVPOSLIST", "INVBAL", "INVOOLIST", "INV401K", "INV401KBAL",
			"BUYDEBT", "BUYMF", "BUYOPT", "BUYOTHER", "BUYSTOCK", "CLOSUREOPT", "INCOME",
			"INVEXPENSE", "JRNLFUND", "JRNLSEC", "MARGININTEREST", "REINVEST", "RETOFCAP",
			"SELLDEBT", "SELLMF", "SELLOPT", "SELLOTHER", "SELLSTOCK", "SPLIT", "TRANSFER",
			"INVBUY", "INVSELL", "INVTRAN", "SECID", "INVPOS", "POSDEBT", "POSMF", "POSOPT",
			"POSOTHER", "POSSTOCK", "MFASSETCLASS", "FIMFASSETCLASS", "PORTION", "FIPORTION",
			"OOBUYDEBT", "OOBUYMF", "OOBUYOPT", "OOBUYOTHER", "OOBUYSTOCK", "OOSELLDEBT",
			"OOSELLMF", "OOSELLOPT", "OOSELLOTHER", "OOSELLSTOCK", "SWITCHMF", "OO",
			// Securities.
			"SECLISTMSGSRQV1", "SECLISTMSGSRSV1", "SECLISTTRNRQ", "SECLISTTRNRS", "SECLISTRQ",
			"SECLISTRS", "SECRQ", "SECLIST", "SECINFO", "STOCKINFO", "MFINFO", "OPTINFO",
			"DEBTINFO", "OTHERINFO",
			// Bill pay.
			"BILLPAYMSGSRQV1", "BILLPAYMSGSRSV1", "PMTTRNRQ", "PMTTRNRS", "PMTRQ", "PMTRS",
			"PMTINFO", "PMTPRCSTS", "PMTINQTRNRQ", "PMTINQTRNRS", "PMTINQRQ", "PMTINQRS",
			"PAYEELSTTRNRQ", "PAYEELSTTRNRS", "EXTDPAYEE",
			// Profile and misc.
			"PROFMSGSRQV1", "PROFMSGSRSV1", "PROFTRNRQ", "PROFTRNRS", "PROFRQ", "PROFRS",
			"MSGSETLIST", "SIGNONINFOLIST", "SIGNONINFO", "EMAILMSGSRSV1", "MAILRS", "MAIL",
			// OFC.
			"ACCTSTMT", "ACCOUNT", "ACCTFROM", "GENTRN", "STMTTRNRS", "TRNRS",
		}
		aggregatesMap = make(map[string]struct{}, len(aggregates))
		for _, a := range aggregates {
			aggregatesMap[a] = struct{}{}
		}
	})
	return aggregatesMap
}

// GetDataElements returns the singleton set of known OFX/OFC data element tags.
func GetDataElements() map[string]struct{} {
	initDataElementsMap.Do(func() {
		var elements = []string{
			"CODE", "SEVERITY", "MESSAGE", "MESSAGE2", "DTSERVER", "DTCLIENT", "LANGUAGE",
			"DTPROFUP", "DTACCTUP", "ORG", "FID", "USERID", "USERPASS", "APPID", "APPVER",
			"SESSCOOKIE", "TRNUID", "CLTCOOKIE", "CURDEF", "MKTGINFO", "DTSTART", "DTEND",
			"DTASOF", "INCLUDE", "INCOO", "INCBAL", "BANKID", "BRANCHID", "ACCTID", "ACCTTYPE",
			"ACCTTYPE2", "ACCTKEY", "BROKERID", "TRNTYPE", "DTPOSTED", "DTUSER", "DTAVAIL",
			"TRNAMT", "FITID", "CORRECTFITID", "CORRECTACTION", "SRVRTID", "SRVRTID2",
			"CHECKNUM", "REFNUM", "SIC", "PAYEEID", "PAYEEID2", "NAME", "MEMO", "MEMO2",
			"BALAMT", "UNIQUEID", "UNIQUEIDTYPE", "SECNAME", "TICKER", "UNITPRICE", "UNITS",
			"MKTVAL", "TOTAL", "DTSETTLE", "DTTRADE", "COMMISSION", "FEES", "OLDUNITS",
			"NEWUNITS", "NUMERATOR", "DENOMINATOR", "SUBACCTSEC", "SUBACCTFUND", "SUBACCTTO",
			"SUBACCTFROM", "BUYTYPE", "SELLTYPE", "INCOMETYPE", "TFERACTION", "POSTYPE",
			"OPTACTION", "SHPERCTRCT", "RELFITID", "HELDINACCT", "AVAILCASH", "MARGINBALANCE",
			"SHORTBALANCE", "BUYPOWER", "DTPRICEASOF", "RATING", "CURRATE", "CURSYM",
			"ADDR1", "ADDR2", "ADDR3", "CITY", "STATE", "POSTALCODE", "COUNTRY", "PHONE",
			"PAYACCT", "DTDUE", "PMTPRCCODE", "DTPMTPRC", "DESC", "SVCSTATUS", "TRNSTATUS",
			"ACCTSTATUS", "VER", "ACCTNAME", "INTU.BID", "INTU.USERID",
		}
		dataElementsMap = make(map[string]struct{}, len(elements))
		for _, e := range elements {
			dataElementsMap[e] = struct{}{}
		}
	})
	return dataElementsMap
}

// IsAggregate returns true if the given tag is a known aggregate tag.
func IsAggregate(tag string) bool {
	_, found := GetAggregates()[strings.ToUpper(tag)]
	return found
}

// IsDataElement returns true if the given tag is a known data element tag.
func IsDataElement(tag string) bool {
	_, found := GetDataElements()[strings.ToUpper(tag)]
	return found
}
