package data_models

import (
	"bytes"
	"encoding/json"
	"time"
)

// NullableTime tells an absent JSON key apart from an explicit null.
// Set is true when the key was present; Value is nil for null.
type NullableTime struct {
	Set   bool
	Value *time.Time
}

func NullTime() NullableTime {
	return NullableTime{Set: true}
}

func TimeOf(t time.Time) NullableTime {
	return NullableTime{Set: true, Value: &t}
}

// IsZero lets `omitzero` drop the key when it was never set.
func (n NullableTime) IsZero() bool {
	return !n.Set
}

func (n NullableTime) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value.UTC())
}

func (n *NullableTime) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Value = nil
		return nil
	}

	var t time.Time
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	n.Value = &t
	return nil
}
