package ofxevent

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/rockstardevs/ofxevent/preprocess"
	"github.com/rockstardevs/ofxevent/sgml"
)

// ErrorCount is returned by Process when a document was parsed with errors. Whatever could be
// parsed has still been emitted.
type ErrorCount int

func (e ErrorCount) Error() string {
	return fmt.Sprintf("error - %d errors while parsing", int(e))
}

// Callbacks receive the entities of a document. They return 0; other values are reserved.
type (
	AccountCallback     func(data AccountData) int
	StatementCallback   func(data StatementData) int
	TransactionCallback func(data TransactionData) int
	SecurityCallback    func(data SecurityData) int
	StatusCallback      func(data StatusData) int
)

// Context holds the configuration and the callbacks used to process documents.
// Every call to Process uses a new Session, so a Context may process several documents in turn.
type Context struct {
	location   *time.Location
	errorLimit int
	fileType   preprocess.FileType

	accountCallback     AccountCallback
	statementCallback   StatementCallback
	transactionCallback TransactionCallback
	securityCallback    SecurityCallback
	statusCallback      StatusCallback
}

// Option configures a Context.
type Option func(*Context)

// WithLocation sets the local timezone dates are converted to. It defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(c *Context) {
		c.location = loc
	}
}

// WithErrorLimit stops parsing once more than limit errors are reported. 0 means no limit.
func WithErrorLimit(limit int) Option {
	return func(c *Context) {
		c.errorLimit = limit
	}
}

// WithFileType skips file type detection.
func WithFileType(t preprocess.FileType) Option {
	return func(c *Context) {
		c.fileType = t
	}
}

// NewContext returns a context configured with opts.
func NewContext(opts ...Option) *Context {
	c := &Context{
		location: time.Local,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetAccountCallback registers the callback receiving accounts. A nil callback drops them.
func (c *Context) SetAccountCallback(cb AccountCallback) { c.accountCallback = cb }

// SetStatementCallback registers the callback receiving statements.
func (c *Context) SetStatementCallback(cb StatementCallback) { c.statementCallback = cb }

// SetTransactionCallback registers the callback receiving bank and investment transactions.
func (c *Context) SetTransactionCallback(cb TransactionCallback) { c.transactionCallback = cb }

// SetSecurityCallback registers the callback receiving securities.
func (c *Context) SetSecurityCallback(cb SecurityCallback) { c.securityCallback = cb }

// SetStatusCallback registers the callback receiving STATUS aggregates as soon as they close.
func (c *Context) SetStatusCallback(cb StatusCallback) { c.statusCallback = cb }

// ProcessFile parses the OFX or OFC file at path.
func (c *Context) ProcessFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	return errors.WithMessage(c.Process(f), path)
}

// Process parses an OFX or OFC document and emits its entities to the registered callbacks.
// It returns an ErrorCount when errors were found in the document.
func (c *Context) Process(r io.Reader) error {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}
	doc, err := preprocess.Prepare(data, c.fileType)
	if err != nil {
		return err
	}
	message(msgStatus, "processing %s document, xml: %t, header: %v", doc.Type, doc.XML, doc.Header)

	s := c.NewSession()
	n, err := sgml.Parse(bytes.NewReader(doc.Body), s, c.errorLimit)
	message(msgStatus, "tokenizer reported %d errors", n)
	if err == sgml.ErrTooManyErrors {
		s.cancel()
		return errors.Wrapf(err, "%d errors", s.Errors())
	}
	if err != nil {
		return errors.Wrap(err, "parsing document")
	}
	if s.Errors() > 0 {
		return ErrorCount(s.Errors())
	}
	return nil
}

func (c *Context) emitAccount(data AccountData) bool {
	return invoke[AccountData](c.accountCallback, data, "account")
}

func (c *Context) emitStatement(data StatementData) bool {
	return invoke[StatementData](c.statementCallback, data, "statement")
}

func (c *Context) emitTransaction(data TransactionData) bool {
	return invoke[TransactionData](c.transactionCallback, data, "transaction")
}

func (c *Context) emitSecurity(data SecurityData) bool {
	return invoke[SecurityData](c.securityCallback, data, "security")
}

func (c *Context) emitStatus(data StatusData) bool {
	return invoke[StatusData](c.statusCallback, data, "status")
}

// invoke calls cb with data and returns whether a callback was registered.
func invoke[T any](cb func(T) int, data T, kind string) bool {
	if cb == nil {
		return false
	}
	if rc := cb(data); rc != 0 {
		message(msgDebug, "%s callback returned %d", kind, rc)
	}
	return true
}
