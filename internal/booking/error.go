package booking

import (
	"errors"
	"fmt"
)

var (
	ErrWrongStep      = errors.New("action not allowed on current step")
	ErrSubmitInFlight = errors.New("a submission is already in flight")
	ErrUnknownField   = errors.New("unknown draft field")
)

// SubmitError carries the backend's (or the transport's) message when a
// submission is refused. The wizard stays on the payment step and the draft
// is preserved so the guest can retry without re-entering anything.
type SubmitError struct {
	msg string
}

func IsSubmitError(err error) *SubmitError {
	if err == nil {
		return nil
	}

	var submitError *SubmitError

	if errors.As(err, &submitError) {
		return submitError
	}

	return nil
}

func (se *SubmitError) Error() string {
	return se.msg
}

type InputError struct {
	fields map[string][]string
}

func newInputError() *InputError {
	return &InputError{
		fields: make(map[string][]string),
	}
}

func IsInputError(err error) *InputError {
	if err == nil {
		return nil
	}

	var inputError *InputError

	if errors.As(err, &inputError) {
		return inputError
	}

	return nil
}

func (ie *InputError) fieldsCount() int {
	return len(ie.fields)
}

func (ie *InputError) addError(field, msg string) {
	ie.fields[field] = append(ie.fields[field], msg)
}

func (ie *InputError) Error() string {
	return fmt.Sprintf("%+v", ie.fields)
}

func (ie *InputError) Fields() map[string][]string {
	return ie.fields
}
