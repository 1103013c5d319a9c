package eqd

import "fmt"

type parseError struct {
	error error
}

func (e *parseError) Error() string {
	return fmt.Sprintf("parse error: %s", e.error.Error())
}

type validationError struct {
	error error
}

func (e *validationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.error.Error())
}

type derivationError struct {
	error error
}

func (e *derivationError) Error() string {
	return fmt.Sprintf("derivation error: %s", e.error.Error())
}
