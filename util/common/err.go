package common

import (
	"errors"
	"fmt"

	"hamlog/logger"
)

// NewErrorf formats an error message.
func NewErrorf(format string, a ...any) error {
	return fmt.Errorf(format, a...)
}

// NewError concatenates the string forms of its arguments into an error.
func NewError(a ...any) error {
	msg := fmt.Sprintln(a...)
	return errors.New(msg[:len(msg)-1])
}

// Combine joins non-nil errors into one, or returns nil when all are nil.
func Combine(errs ...error) error {
	var combined []error
	for _, err := range errs {
		if err != nil {
			combined = append(combined, err)
		}
	}
	return errors.Join(combined...)
}

// Recover logs a recovered panic value and returns it.
func Recover(msg string) any {
	panicErr := recover()
	if panicErr != nil {
		if msg != "" {
			logger.Error(msg, "panic:", panicErr)
		}
	}
	return panicErr
}
