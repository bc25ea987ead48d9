package render

import (
	"fmt"

	"github.com/go-stack/stack"
	log "github.com/sirupsen/logrus"
)

// maxDrain bounds the error-queue drain; a lost context can keep
// reporting errors forever.
const maxDrain = 64

// ErrorReporter drains the driver's error queue and attributes any
// pending error to the call that raised it.
type ErrorReporter struct {
	driver Driver
	log    log.FieldLogger

	// Debug makes a failed check panic instead of only logging.
	// Constructors still release any handles they allocated.
	Debug bool
}

// NewErrorReporter returns a reporter reading errors from d.
func NewErrorReporter(d Driver, logger log.FieldLogger) *ErrorReporter {
	return &ErrorReporter{driver: d, log: logger}
}

// ClearErrors discards every pending error flag.
func (r *ErrorReporter) ClearErrors() {
	for i := 0; i < maxDrain; i++ {
		if r.driver.GetError() == NO_ERROR {
			return
		}
	}
}

// CheckAndLog drains the pending error flags. The first one is logged
// with its numeric code, description and location, and false is returned.
// It returns true if no error was pending.
func (r *ErrorReporter) CheckAndLog(description, location string) bool {
	var first uint32
	for i := 0; i < maxDrain; i++ {
		code := r.driver.GetError()
		if code == NO_ERROR {
			break
		}
		if first == NO_ERROR {
			first = code
		}
	}
	if first == NO_ERROR {
		return true
	}

	r.log.WithFields(log.Fields{
		"code":     fmt.Sprintf("0x%04x", first),
		"call":     description,
		"location": location,
	}).Error("OpenGL error")
	if r.Debug {
		panic(fmt.Sprintf("OpenGL error 0x%04x: %v at %v", first, description, location))
	}
	return false
}

// Call runs fn between ClearErrors and CheckAndLog, so any error reported
// belongs to fn. The location logged is the caller of Call.
func (r *ErrorReporter) Call(description string, fn func()) bool {
	return r.call(2, description, fn)
}

func (r *ErrorReporter) call(skip int, description string, fn func()) bool {
	r.ClearErrors()
	fn()
	return r.CheckAndLog(description, fmt.Sprintf("%+v", stack.Caller(skip)))
}
