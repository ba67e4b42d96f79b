/*
Package ofxevent parses OFX and OFC financial data files into a stream of typed events.

Files that deviate from the OFX spec by omitting starting or ending tags are accepted. The
document is tokenized by package sgml; every aggregate opens a container that collects the data
elements it holds. Accounts, statements, transactions and securities are attached to a tree as
their containers close, and are emitted to the callbacks registered on a Context once the
document root closes:

	ctx := ofxevent.NewContext()
	ctx.SetTransactionCallback(func(t ofxevent.TransactionData) int {
		fmt.Println(t.FITID.Value, t.Amount.Value)
		return 0
	})
	err := ctx.ProcessFile("statement.ofx")

Securities are emitted first, then every account followed by its transactions and statements.
Statuses are emitted as soon as they close.
*/
package ofxevent
