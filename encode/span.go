package encode

import (
	"encoding/json"
	"strconv"
)

// Span is a run of runes written as a single string.
type Span []rune

func (s Span) String() string { return string(s) }

func (s Span) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *Span) UnmarshalJSON(d []byte) error {
	var v string
	if err := json.Unmarshal(d, &v); err != nil {
		return err
	}
	*s = Span(v)
	return nil
}

func (s Span) MarshalYAML() (any, error) {
	return string(s), nil
}

func (s *Span) UnmarshalYAML(unmarshal func(any) error) error {
	var v string
	if err := unmarshal(&v); err != nil {
		return err
	}
	*s = Span(v)
	return nil
}

func (s Span) quote() string {
	return strconv.Quote(string(s))
}
