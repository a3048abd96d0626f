package serializer

import (
	"github.com/ValentinKolb/jstr/lib/compat"
)

// NewGsonSerializer creates a new serializer using the gson compatible configuration.
// If htmlSafe is false the default escape table is used.
func NewGsonSerializer(htmlSafe bool) ISerializer {
	b := compat.NewBuilder()
	if !htmlSafe {
		b.DisableHTMLEscaping()
	}
	return &gsonSerializerImpl{conf: b.Build()}
}

// gsonSerializerImpl implements the ISerializer interface using the compat config
type gsonSerializerImpl struct {
	conf *compat.Config
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.ISerializer)
// --------------------------------------------------------------------------

func (g *gsonSerializerImpl) Serialize(v any) ([]byte, error) {
	return g.conf.Marshal(v)
}

func (g *gsonSerializerImpl) Deserialize(b []byte, v any) error {
	return g.conf.Unmarshal(b, v)
}

func (g *gsonSerializerImpl) Name() string {
	if g.conf.HTMLSafe() {
		return NameGson
	}
	return NameGsonPlain
}
