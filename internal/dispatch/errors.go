package dispatch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInputFormat classifies free-form input that could not be read as the
// expected kind of value.
var ErrInputFormat = errors.New("input string was not in a correct format")

// InputError records which attribute failed to parse and from what text.
type InputError struct {
	Field string
	Input string
	Err   error
}

func (e *InputError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s %q: %v", e.Field, e.Input, ErrInputFormat)
	if e.Err != nil && !errors.Is(e.Err, ErrInputFormat) {
		msg += fmt.Sprintf(" (%v)", e.Err)
	}
	return msg
}

func (e *InputError) Unwrap() []error {
	if e == nil {
		return nil
	}
	if e.Err == nil {
		return []error{ErrInputFormat}
	}
	return []error{ErrInputFormat, e.Err}
}

// ParseFloat parses s as a float attribute named field.
func ParseFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &InputError{Field: field, Input: s, Err: unwrapNum(err)}
	}
	return v, nil
}

// ParseInt parses s as an int attribute named field.
func ParseInt(field, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &InputError{Field: field, Input: s, Err: unwrapNum(err)}
	}
	return v, nil
}

// Arity checks that a constructor received exactly n attributes.
func Arity(variant string, args []string, names ...string) error {
	if len(args) != len(names) {
		return &InputError{
			Field: variant,
			Input: strings.Join(args, " "),
			Err:   fmt.Errorf("want %d attributes (%s), got %d", len(names), strings.Join(names, ", "), len(args)),
		}
	}
	return nil
}

// unwrapNum drops strconv's "strconv.ParseFloat: parsing ..." prefix.
func unwrapNum(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
