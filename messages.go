package ofxevent

import (
	"fmt"

	"github.com/golang/glog"
)

// messageType is the kind of a diagnostic message.
type messageType int

const (
	msgParser  messageType = iota // Tokenizer and container traces.
	msgDebug                      // Detailed processing information.
	msgStatus                     // Progress information.
	msgInfo                       // Informational, e.g. unsupported tags.
	msgWarning                    // Recoverable problems in the input.
	msgError                      // Errors; the affected data is lost.
)

func (t messageType) String() string {
	switch t {
	case msgParser:
		return "PARSER"
	case msgDebug:
		return "DEBUG"
	case msgStatus:
		return "STATUS"
	case msgInfo:
		return "INFO"
	case msgWarning:
		return "WARNING"
	case msgError:
		return "ERROR"
	}
	return fmt.Sprintf("messageType(%d)", int(t))
}

// message writes a diagnostic to the glog severity or verbosity level matching t.
func message(t messageType, format string, args ...interface{}) {
	switch t {
	case msgParser:
		glog.V(3).Infof(format, args...)
	case msgDebug:
		glog.V(2).Infof(format, args...)
	case msgStatus:
		glog.V(1).Infof(format, args...)
	case msgInfo:
		glog.InfoDepth(1, fmt.Sprintf(format, args...))
	case msgWarning:
		glog.WarningDepth(1, fmt.Sprintf(format, args...))
	default:
		glog.ErrorDepth(1, fmt.Sprintf(format, args...))
	}
}
