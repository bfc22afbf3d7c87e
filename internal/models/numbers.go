package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexFloat is a float64 that also accepts JSON string encodings. The upstream
// API is not consistent about numeric fields: cost may arrive as 45.5 or "45.50".
// Unparsable values decode as 0 instead of failing the whole payload.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}

// FlexInt is the integer counterpart of FlexFloat, used for odometer readings.
type FlexInt int64

func (i *FlexInt) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*i = 0
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// odometer sometimes carries a decimal point
		fv, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			*i = 0
			return nil
		}
		*i = FlexInt(fv)
		return nil
	}
	*i = FlexInt(v)
	return nil
}

func (i FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(i))
}
