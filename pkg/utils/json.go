package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson renders any value as indented JSON. Used for the debug and
// raw-payload blocks appended to tool responses.
func PrettyJson(in any) string {
	if raw, ok := in.([]byte); ok {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return string(raw)
		}
		in = decoded
	}

	buffer, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return ""
	}

	return string(buffer)
}

// CompactJson renders any value as compact JSON, the wire convention the
// Graph API expects for object-valued query parameters.
func CompactJson(in any) string {
	buffer, err := json.Marshal(in)
	if err != nil {
		return ""
	}

	return string(buffer)
}
