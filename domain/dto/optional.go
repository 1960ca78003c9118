package dto

import (
	"bytes"
	"encoding/json"
	"time"
)

// dateLayouts are accepted dueDate formats, most specific first.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// OptionalDate is a JSON date field that distinguishes three states the
// standard pointer idiom collapses: omitted (leave unchanged), explicit null
// (clear the field) and a concrete value. Parse failures are recorded rather
// than returned so the validation stage can report them with field context.
type OptionalDate struct {
	Present   bool
	Null      bool
	Value     *time.Time
	Raw       string
	Invalid   bool
	WrongType bool
}

func (d *OptionalDate) UnmarshalJSON(data []byte) error {
	d.Present = true

	if bytes.Equal(data, []byte("null")) {
		d.Null = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		d.WrongType = true
		d.Raw = string(data)
		return nil
	}

	d.Raw = s
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.Value = &t
			return nil
		}
	}

	d.Invalid = true
	return nil
}

func (d OptionalDate) MarshalJSON() ([]byte, error) {
	if !d.Present || d.Null || d.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(d.Value)
}
