package platforms

import (
	perr "cpauth/internal/platform/errors"

	jsoniter "github.com/json-iterator/go"
)

// Document is a platform response body that was checked to be JSON.
// Each path is read on its own, so a field of an unexpected type only
// hides that field
type Document struct{ body []byte }

// ParseJSON returns a Decode error for a body that is not JSON at all
func ParseJSON(body []byte) (Document, error) {
	if !jsoniter.Valid(body) {
		return Document{}, perr.Decode(nil, "response is not valid JSON (%d bytes)", len(body))
	}
	return Document{body: body}, nil
}

// String returns the string at path; ok is false when the path is missing,
// null or holds anything other than a string. Path elements are object keys
// (string) or array indexes (int)
func (d Document) String(path ...any) (string, bool) {
	v := jsoniter.Get(d.body, path...)
	if v.ValueType() != jsoniter.StringValue {
		return "", false
	}
	return v.ToString(), true
}

// StringPtr is String for optional fields, nil when absent
func (d Document) StringPtr(path ...any) *string {
	s, ok := d.String(path...)
	if !ok {
		return nil
	}
	return &s
}
