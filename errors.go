package quickspot

import (
	"errors"
	"fmt"

	"github.com/hupe1980/quickspot/record"
)

var (
	// ErrInvalidData is returned when raw data cannot be normalized into a
	// record sequence.
	ErrInvalidData = errors.New("data cannot be normalized into records")

	// ErrNoSource is returned when Open is called without a source URI.
	ErrNoSource = errors.New("no data source given")
)

// ErrUnsupportedData reports the Go type (and, for collections, the element)
// that could not be turned into records.
//
// It matches ErrInvalidData with errors.Is. The underlying error (if any) can
// be accessed via errors.Unwrap.
type ErrUnsupportedData struct {
	Type     string
	Position string
	cause    error
}

func (e *ErrUnsupportedData) Error() string {
	if e.Position == "" {
		return fmt.Sprintf("unsupported data of type %s: expected an array or keyed mapping of records", e.Type)
	}
	return fmt.Sprintf("unsupported record %s of type %s: expected an object", e.Position, e.Type)
}

func (e *ErrUnsupportedData) Is(target error) bool { return target == ErrInvalidData }

func (e *ErrUnsupportedData) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var te *record.TypeError
	if errors.As(err, &te) {
		return &ErrUnsupportedData{Type: te.Type, Position: te.Position, cause: err}
	}

	return err
}
