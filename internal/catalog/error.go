package catalog

import (
	"errors"
	"fmt"
)

var ErrUnknownIconKind = errors.New("unknown icon kind")

type ContentError struct {
	fields map[string][]string
}

func newContentError() *ContentError {
	return &ContentError{
		fields: make(map[string][]string),
	}
}

func IsContentError(err error) *ContentError {
	if err == nil {
		return nil
	}

	var contentError *ContentError

	if errors.As(err, &contentError) {
		return contentError
	}

	return nil
}

func (ce *ContentError) fieldsCount() int {
	return len(ce.fields)
}

func (ce *ContentError) addError(field, msg string) {
	ce.fields[field] = append(ce.fields[field], msg)
}

func (ce *ContentError) Error() string {
	return fmt.Sprintf("%+v", ce.fields)
}

func (ce *ContentError) Fields() map[string][]string {
	return ce.fields
}
