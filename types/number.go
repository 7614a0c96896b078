package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexFloat decodes from a JSON number or a numeric string. Form inputs send "" for
// untouched fields, which decodes to zero.
type FlexFloat float64

func (f FlexFloat) Float64() float64 {
	return float64(f)
}

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s, err := numberText(data)
	if err != nil {
		return err
	}
	if s == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*f = FlexFloat(v)
	return nil
}

// FlexInt is FlexFloat for identifiers and counts.
type FlexInt int

func (i FlexInt) Int() int {
	return int(i)
}

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	s, err := numberText(data)
	if err != nil {
		return err
	}
	if s == "" {
		*i = 0
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid integer %q", s)
	}
	*i = FlexInt(v)
	return nil
}

func numberText(data []byte) (string, error) {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return "", nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return strings.TrimSpace(s), nil
	}
	return raw, nil
}
