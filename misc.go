package sha3

import (
	"fmt"
	goLog "log"
)

type errorImpl struct {
	msg   string
	inner error
}

func (err *errorImpl) Inner() error { return err.inner }

func (err *errorImpl) Error() string {
	if err.inner != nil {
		return fmt.Sprintf("%s: %s", err.msg, err.inner.Error())
	}
	return err.msg
}

// Formats a new error
func errorf(format string, a ...interface{}) *errorImpl {
	return &errorImpl{msg: fmt.Sprintf(format, a...)}
}

// Formats a new error that wraps another
func wrapErrorf(err error, format string, a ...interface{}) *errorImpl {
	return &errorImpl{msg: fmt.Sprintf(format, a...), inner: err}
}

type dummyLogger struct{}
type stdlibLogger struct{}

func (logger *dummyLogger) Logf(format string, a ...interface{}) {}

func (logger *stdlibLogger) Logf(format string, a ...interface{}) {
	goLog.Printf(format, a...)
}

var log Logger = &dummyLogger{}

type Logger interface {
	Logf(format string, a ...interface{})
}

// Enables logging to log package.  For more flexibility, see SetLogger().
func EnableLogging() {
	SetLogger(&stdlibLogger{})
}

// Enables logging.  Disable logging by passing nil.
//
// Use EnableLogging if you want to log to the log package.
func SetLogger(logger Logger) {
	if logger == nil {
		log = &dummyLogger{}
		return
	}
	log = logger
}
