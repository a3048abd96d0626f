package serializer

import (
	jsoniter "github.com/json-iterator/go"
)

// NewJSONIterSerializer creates a new serializer using json-iterator in its
// encoding/json compatible configuration
func NewJSONIterSerializer() ISerializer {
	return &jsoniterSerializerImpl{api: jsoniter.ConfigCompatibleWithStandardLibrary}
}

// jsoniterSerializerImpl implements the ISerializer interface using json-iterator
type jsoniterSerializerImpl struct {
	api jsoniter.API
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.ISerializer)
// --------------------------------------------------------------------------

func (j *jsoniterSerializerImpl) Serialize(v any) ([]byte, error) {
	return j.api.Marshal(v)
}

func (j *jsoniterSerializerImpl) Deserialize(b []byte, v any) error {
	return j.api.Unmarshal(b, v)
}

func (j *jsoniterSerializerImpl) Name() string {
	return NameJSONIter
}
