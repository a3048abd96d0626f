package compat

import (
	"fmt"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

// ReadFields reads a JSON object from iter and calls cb for each field with
// the iterator positioned at the field value. null is an object without
// fields. It returns false if cb returned false for any field; reading
// continues in that case so the iterator ends after the object.
func ReadFields(iter *jsoniter.Iterator, cb func(iter *jsoniter.Iterator, field string) bool) bool {
	switch valueType := iter.WhatIsNext(); valueType {
	case jsoniter.NilValue:
		iter.Skip()
		return true
	case jsoniter.ObjectValue:
		ok := true
		iter.ReadObjectCB(func(iter *jsoniter.Iterator, field string) bool {
			if !cb(iter, field) {
				ok = false
			}
			return iter.Error == nil
		})
		return ok
	default:
		iter.ReportError("ReadFields", "expect { or n, but found "+valueTypeName(valueType))
		return false
	}
}

// DecodeStringMap decodes a flat JSON object into a map, reading every field
// value with the lenient string decoder (numbers and booleans are kept as
// their text, null becomes the empty string).
func (c *Config) DecodeStringMap(data []byte) (map[string]string, error) {
	iter := jsoniter.ParseBytes(c.api, data)
	result := make(map[string]string)

	ReadFields(iter, func(iter *jsoniter.Iterator, field string) bool {
		var value string
		decodeString(unsafe.Pointer(&value), iter)
		result[field] = value
		return true
	})

	if iter.Error != nil {
		return nil, fmt.Errorf("failed to decode object: %w", iter.Error)
	}
	return result, nil
}
