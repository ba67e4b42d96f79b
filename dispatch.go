package ofxevent

import (
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// factory creates the container for an opening tag.
type factory func(s *Session, parent *container, tag string) *container

var dispatchTable map[string]factory
var initDispatchTable sync.Once

// getDispatchTable returns the singleton map of tags to the factory of their container.
func getDispatchTable() map[string]factory {
	initDispatchTable.Do(func() {
		dispatchTable = map[string]factory{
			"OFX":          newMainContainer,
			"OFC":          newMainContainer,
			"STATUS":       newStatusContainer,
			"ACCTSTMT":     newStatementContainer,
			"STMTRS":       newStatementContainer,
			"CCSTMTRS":     newStatementContainer,
			"INVSTMTRS":    newStatementContainer,
			"ACCOUNT":      newAccountContainer,
			"ACCTFROM":     newAccountContainer,
			"BANKACCTFROM": newAccountContainer,
			"CCACCTFROM":   newAccountContainer,
			"INVACCTFROM":  newAccountContainer,
			"STMTTRN":      newBankTransactionContainer,
			"GENTRN":       newBankTransactionContainer,
			"SECINFO":      newSecurityContainer,
			"STOCKINFO":    newSecurityContainer,
			"MFINFO":       newSecurityContainer,
			"OPTINFO":      newSecurityContainer,
			"DEBTINFO":     newSecurityContainer,
			"OTHERINFO":    newSecurityContainer,
			"LEDGERBAL":    newBalanceContainer,
			"AVAILBAL":     newBalanceContainer,
			"INVBUY":       newPushUpContainer,
			"INVSELL":      newPushUpContainer,
			"INVTRAN":      newPushUpContainer,
			"SECID":        newPushUpContainer,
			"BANKTRANLIST": newTransactionListContainer,
			"INVTRANLIST":  newTransactionListContainer,
		}
		for _, t := range invTransactionTypes {
			dispatchTable[string(t)] = newInvestmentTransactionContainer
		}
	})
	return dispatchTable
}

// newContainer creates the container for tag, falling back to a dummy container for unknown tags.
func newContainer(s *Session, parent *container, tag string) *container {
	if f, found := getDispatchTable()[tag]; found {
		return f(s, parent, tag)
	}
	return newDummyContainer(s, parent, tag)
}

// KnownTags returns the sorted list of tags that open a container other than a dummy one.
func KnownTags() []string {
	tags := maps.Keys(getDispatchTable())
	slices.Sort(tags)
	return tags
}
