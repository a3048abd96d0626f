package compat

import (
	"github.com/ValentinKolb/jstr/lib/jsonstr"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

// --------------------------------------------------------------------------
// String encoder
// --------------------------------------------------------------------------

// stringEncoder returns the string EncoderFunc for the given escape table.
// It writes through jsonstr into the stream, so the stream is the byte sink.
func stringEncoder(table *jsonstr.EscapeTable) EncoderFunc {
	return func(ptr unsafe.Pointer, stream *jsoniter.Stream) {
		value := *((*string)(ptr))
		if err := jsonstr.EncodeString(stream, value, table); err != nil && stream.Error == nil {
			log.Debugf("failed to encode string value: %v", err)
			stream.Error = err
		}
	}
}

func isEmptyString(ptr unsafe.Pointer) bool {
	return *((*string)(ptr)) == ""
}

// --------------------------------------------------------------------------
// Lenient decoders
// --------------------------------------------------------------------------

// decodeString accepts strings, numbers (kept as their literal text),
// booleans ("true"/"false") and null (empty string)
func decodeString(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	switch valueType := iter.WhatIsNext(); valueType {
	case jsoniter.StringValue:
		*((*string)(ptr)) = iter.ReadString()
	case jsoniter.NumberValue:
		*((*string)(ptr)) = string(iter.ReadNumber())
	case jsoniter.BoolValue:
		if iter.ReadBool() {
			*((*string)(ptr)) = "true"
		} else {
			*((*string)(ptr)) = "false"
		}
	case jsoniter.NilValue:
		iter.Skip()
		*((*string)(ptr)) = ""
	default:
		iter.ReportError("decode string", "expect string, but found "+valueTypeName(valueType))
	}
}

// decodeBool accepts booleans and null (false)
func decodeBool(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	switch valueType := iter.WhatIsNext(); valueType {
	case jsoniter.BoolValue:
		*((*bool)(ptr)) = iter.ReadBool()
	case jsoniter.NilValue:
		iter.Skip()
		*((*bool)(ptr)) = false
	default:
		iter.ReportError("decode bool", "expect boolean, but found "+valueTypeName(valueType))
	}
}

// decodeInt accepts numbers and null (0)
func decodeInt(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	switch valueType := iter.WhatIsNext(); valueType {
	case jsoniter.NumberValue:
		*((*int)(ptr)) = iter.ReadInt()
	case jsoniter.NilValue:
		iter.Skip()
		*((*int)(ptr)) = 0
	default:
		iter.ReportError("decode int", "expect int, but found "+valueTypeName(valueType))
	}
}

// decodeInt64 accepts numbers and null (0)
func decodeInt64(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	switch valueType := iter.WhatIsNext(); valueType {
	case jsoniter.NumberValue:
		*((*int64)(ptr)) = iter.ReadInt64()
	case jsoniter.NilValue:
		iter.Skip()
		*((*int64)(ptr)) = 0
	default:
		iter.ReportError("decode int64", "expect long, but found "+valueTypeName(valueType))
	}
}

// decodeFloat32 accepts numbers and null (0)
func decodeFloat32(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	switch valueType := iter.WhatIsNext(); valueType {
	case jsoniter.NumberValue:
		*((*float32)(ptr)) = iter.ReadFloat32()
	case jsoniter.NilValue:
		iter.Skip()
		*((*float32)(ptr)) = 0
	default:
		iter.ReportError("decode float32", "expect float, but found "+valueTypeName(valueType))
	}
}

// decodeFloat64 accepts numbers and null (0)
func decodeFloat64(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	switch valueType := iter.WhatIsNext(); valueType {
	case jsoniter.NumberValue:
		*((*float64)(ptr)) = iter.ReadFloat64()
	case jsoniter.NilValue:
		iter.Skip()
		*((*float64)(ptr)) = 0
	default:
		iter.ReportError("decode float64", "expect double, but found "+valueTypeName(valueType))
	}
}

// valueTypeName returns the name of a jsoniter.ValueType
func valueTypeName(t jsoniter.ValueType) string {
	switch t {
	case jsoniter.StringValue:
		return "STRING"
	case jsoniter.NumberValue:
		return "NUMBER"
	case jsoniter.NilValue:
		return "NULL"
	case jsoniter.BoolValue:
		return "BOOLEAN"
	case jsoniter.ArrayValue:
		return "ARRAY"
	case jsoniter.ObjectValue:
		return "OBJECT"
	default:
		return "INVALID"
	}
}
