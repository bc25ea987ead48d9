package render

import (
	"errors"

	log "github.com/sirupsen/logrus"
)

var (
	// ErrResourceCreate is returned when the driver could not allocate or
	// fill a GPU resource.
	ErrResourceCreate = errors.New("resource creation failed")
	// ErrEmptyData is returned when a resource would be created from no data.
	ErrEmptyData = errors.New("empty data")
	// ErrMissingStage is returned when a shader source lacks a section.
	ErrMissingStage = errors.New("missing shader stage")
	// ErrCompile is returned when a shader stage fails to compile.
	ErrCompile = errors.New("shader compilation failed")
	// ErrLink is returned when a program fails to link.
	ErrLink = errors.New("program link failed")
	// ErrUniformNotFound is returned by the uniform setters when the
	// program has no active uniform with the given name.
	ErrUniformNotFound = errors.New("uniform not found")
)

// Device carries the collaborators shared by every wrapper: the driver,
// its error reporter and the logger.
type Device struct {
	gl   Driver
	errs *ErrorReporter
	log  log.FieldLogger
}

// NewDevice returns a Device on top of d. A nil logger means the
// logrus standard logger.
func NewDevice(d Driver, logger log.FieldLogger) *Device {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Device{gl: d, errs: NewErrorReporter(d, logger), log: logger}
}

// Driver returns the device's driver.
func (dev *Device) Driver() Driver { return dev.gl }

// Errors returns the device's error reporter.
func (dev *Device) Errors() *ErrorReporter { return dev.errs }

// Logger returns the device's logger.
func (dev *Device) Logger() log.FieldLogger { return dev.log }

// call wraps one state-mutating driver call, attributing errors to the
// wrapper method that made it.
func (dev *Device) call(description string, fn func()) bool {
	return dev.errs.call(2, description, fn)
}
