package types

import (
	"encoding/json"
	"errors"
)

// StringOrNumber accepts a JSON string or number and keeps its text form.
type StringOrNumber string

func (s *StringOrNumber) UnmarshalJSON(b []byte) error {
	var asStr string
	if err := json.Unmarshal(b, &asStr); err == nil {
		*s = StringOrNumber(asStr)
		return nil
	}

	var asNum json.Number
	if err := json.Unmarshal(b, &asNum); err == nil {
		*s = StringOrNumber(asNum.String())
		return nil
	}

	return errors.New("invalid string or number")
}
