package serializer

import (
	"encoding/json"
)

// NewStdSerializer creates a new serializer using encoding/json
func NewStdSerializer() ISerializer {
	return &stdSerializerImpl{}
}

// stdSerializerImpl implements the ISerializer interface using encoding/json
type stdSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.ISerializer)
// --------------------------------------------------------------------------

func (s stdSerializerImpl) Serialize(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (s stdSerializerImpl) Deserialize(b []byte, v any) error {
	return json.Unmarshal(b, v)
}

func (s stdSerializerImpl) Name() string {
	return NameStd
}
