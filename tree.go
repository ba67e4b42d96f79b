package ofxevent

// mainTree holds the entities of one document until it is emitted.
// Both forests keep document order.
type mainTree struct {
	securities []SecurityData
	accounts   []*accountNode
}

type accountNode struct {
	data     AccountData
	children []accountChild // Statements and transactions, in the order they closed.
}

// accountChild is a statement or a transaction owned by an account.
type accountChild interface {
	emit(t *mainTree, ctx *Context) bool
}

type statementNode struct {
	data StatementData
}

type transactionNode struct {
	data TransactionData
}

func newMainTree() *mainTree {
	return &mainTree{}
}

func (t *mainTree) addSecurity(data SecurityData) {
	message(msgStatus, "adding security %s", data.UniqueID.Value)
	t.securities = append(t.securities, data)
}

func (t *mainTree) addAccount(data AccountData) {
	message(msgStatus, "adding account %s", data.AccountID.Value)
	t.accounts = append(t.accounts, &accountNode{data: data})
}

// addStatement attaches the statement to the last account. It returns false when there is none.
func (t *mainTree) addStatement(data StatementData) bool {
	if len(t.accounts) == 0 {
		message(msgError, "statement has no enclosing account, discarding it")
		return false
	}
	last := t.accounts[len(t.accounts)-1]
	last.children = append(last.children, &statementNode{data: data})
	return true
}

// addTransaction attaches the transaction to the last account. It returns false when there is none.
func (t *mainTree) addTransaction(data TransactionData) bool {
	if len(t.accounts) == 0 {
		message(msgError, "transaction %s has no enclosing account, discarding it", data.FITID.Value)
		return false
	}
	last := t.accounts[len(t.accounts)-1]
	last.children = append(last.children, &transactionNode{data: data})
	return true
}

// findSecurity returns the first security with the given unique id.
func (t *mainTree) findSecurity(uniqueID string) (SecurityData, bool) {
	for _, s := range t.securities {
		if s.UniqueID.Valid && s.UniqueID.Value == uniqueID {
			return s, true
		}
	}
	return SecurityData{}, false
}

// emitAll emits every security, then every account followed by its statements and transactions.
func (t *mainTree) emitAll(ctx *Context) {
	for _, s := range t.securities {
		ctx.emitSecurity(s)
	}
	for _, a := range t.accounts {
		ctx.emitAccount(a.data)
		for _, child := range a.children {
			child.emit(t, ctx)
		}
	}
}

func (n *statementNode) emit(_ *mainTree, ctx *Context) bool {
	return ctx.emitStatement(n.data)
}

// emit resolves the security of the transaction before handing it over.
func (n *transactionNode) emit(t *mainTree, ctx *Context) bool {
	n.data.Security.Clear()
	if n.data.UniqueID.Valid {
		if security, found := t.findSecurity(n.data.UniqueID.Value); found {
			n.data.Security.Set(security)
		}
	}
	return ctx.emitTransaction(n.data)
}
