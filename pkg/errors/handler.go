package errors

import (
	"runtime/debug"
	"sync/atomic"
	"time"
)

// handlerSlot lets an interface value live behind an atomic pointer.
type handlerSlot struct{ h ErrorHandler }

var installed atomic.Pointer[handlerSlot]

func init() {
	installed.Store(&handlerSlot{h: &LogHandler{}})
}

// SetHandler installs h as the process-wide handler for reported errors
// and recovered panics. Nil restores a LogHandler writing to stderr.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	installed.Store(&handlerSlot{h: h})
}

// Handler returns the installed handler. Safe for concurrent use.
func Handler() ErrorHandler {
	return installed.Load().h
}

// Report hands err to the installed handler, stamping the time if unset.
func Report(err *MotionError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportError reports err as is when it already carries a MotionError, or
// as a KindUnknown error of op otherwise.
func ReportError(op string, err error) {
	if err == nil {
		return
	}
	var me *MotionError
	if !As(err, &me) {
		me = &MotionError{Op: op, Kind: KindUnknown, Err: err}
	}
	Report(me)
}

// RecoverWithCallback must be deferred directly. A recovered panic goes
// to the installed handler with the panicking goroutine's stack, then to
// callback when one is given.
func RecoverWithCallback(op string, callback func(r any)) {
	r := recover()
	if r == nil {
		return
	}
	Handler().HandlePanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: string(debug.Stack()),
		Timestamp:  time.Now(),
	})
	if callback != nil {
		callback(r)
	}
}
