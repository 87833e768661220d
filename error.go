package enum

import (
	"fmt"
)

// UnknownValueError is returned by Value.Name if the value it holds
// was never declared as a member of its type.
type UnknownValueError struct {
	Type  *Type
	Value int64
}

func (err UnknownValueError) Error() string {
	return fmt.Sprintf("no name declared for value %v of %v", err.Value, err.Type)
}

// MixedTypesError is returned by Type.Normalize if it is given a
// value of a different enumeration type than the one expected.
type MixedTypesError struct {
	Want *Type
	Got  *Type
}

func (err MixedTypesError) Error() string {
	return fmt.Sprintf("can't mix enumeration values: got %v, want %v", err.Got, err.Want)
}
