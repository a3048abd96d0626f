package compat

import (
	"github.com/modern-go/reflect2"
	"github.com/puzpuzpuz/xsync/v3"
	"reflect"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

// EncoderFunc writes the value behind ptr to the stream. Errors are
// reported through stream.Error.
type EncoderFunc func(ptr unsafe.Pointer, stream *jsoniter.Stream)

// DecoderFunc reads the next value of iter into ptr. Errors are reported
// through iter.ReportError.
type DecoderFunc func(ptr unsafe.Pointer, iter *jsoniter.Iterator)

// Codec is a registered encoder/decoder pair. Either side may be nil, in
// which case jsoniter's default handling is used for that direction.
type Codec struct {
	Encoder EncoderFunc
	Decoder DecoderFunc
	IsEmpty func(ptr unsafe.Pointer) bool
}

// Registry maps Go types to codecs. It is safe for concurrent use; codecs
// must be registered before the first Marshal/Unmarshal of the type since
// jsoniter caches encoders per type.
type Registry struct {
	codecs *xsync.MapOf[reflect.Type, Codec]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		codecs: xsync.NewMapOf[reflect.Type, Codec](),
	}
}

// Register installs enc and dec for typ, replacing a previous registration
func (r *Registry) Register(typ reflect.Type, enc EncoderFunc, dec DecoderFunc) {
	r.RegisterCodec(typ, Codec{Encoder: enc, Decoder: dec})
}

// RegisterCodec installs codec for typ, replacing a previous registration
func (r *Registry) RegisterCodec(typ reflect.Type, codec Codec) {
	r.codecs.Store(typ, codec)
}

// Lookup returns the codec registered for typ
func (r *Registry) Lookup(typ reflect.Type) (Codec, bool) {
	return r.codecs.Load(typ)
}

// Len returns the number of registered types
func (r *Registry) Len() int {
	return r.codecs.Size()
}

// copy returns an independent registry with the same registrations
func (r *Registry) copy() *Registry {
	cp := NewRegistry()
	r.codecs.Range(func(typ reflect.Type, codec Codec) bool {
		cp.codecs.Store(typ, codec)
		return true
	})
	return cp
}

// --------------------------------------------------------------------------
// jsoniter extension
// --------------------------------------------------------------------------

// registryExtension exposes the registry to jsoniter
type registryExtension struct {
	jsoniter.DummyExtension
	registry *Registry
}

func (e *registryExtension) CreateEncoder(typ reflect2.Type) jsoniter.ValEncoder {
	codec, ok := e.registry.Lookup(typ.Type1())
	if !ok || codec.Encoder == nil {
		return nil
	}
	return &codecEncoder{codec: codec}
}

func (e *registryExtension) CreateDecoder(typ reflect2.Type) jsoniter.ValDecoder {
	codec, ok := e.registry.Lookup(typ.Type1())
	if !ok || codec.Decoder == nil {
		return nil
	}
	return &codecDecoder{decode: codec.Decoder}
}

// codecEncoder adapts a Codec to jsoniter.ValEncoder
type codecEncoder struct {
	codec Codec
}

func (e *codecEncoder) IsEmpty(ptr unsafe.Pointer) bool {
	if e.codec.IsEmpty == nil {
		return false
	}
	return e.codec.IsEmpty(ptr)
}

func (e *codecEncoder) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	e.codec.Encoder(ptr, stream)
}

// codecDecoder adapts a DecoderFunc to jsoniter.ValDecoder
type codecDecoder struct {
	decode DecoderFunc
}

func (d *codecDecoder) Decode(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	d.decode(ptr, iter)
}
