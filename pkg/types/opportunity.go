// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"strconv"
)

// Opportunity is a funding opportunity record as read from the input file.
// Sources spell the same field differently (opportunity_title, OpportunityTitle,
// title, ...), so the record stays an untyped mapping and fields are resolved
// by the fields package.
type Opportunity map[string]any

// Text renders a decoded JSON value as plain text. Strings are returned as-is,
// numbers in their literal form, and nil as the empty string. Objects and
// arrays are rendered as compact JSON.
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(data)
	}
}
