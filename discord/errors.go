package discord

import "errors"

var (
	// ErrStructuralDecode is returned when a wire value's JSON type does not
	// match any accepted shape for the field being decoded.
	ErrStructuralDecode = errors.New("wire value does not match any accepted shape")

	// ErrMissingRequiredField is returned when a field with no default is
	// absent from the wire payload.
	ErrMissingRequiredField = errors.New("required field is missing")

	// ErrEncodeUnknownActivityType is returned when marshalling an activity
	// whose type was not recognised at decode time. Unknown types carry no
	// numeric code to write back.
	ErrEncodeUnknownActivityType = errors.New("cannot encode an unknown activity type")
)
