package compat

import (
	"fmt"
	"github.com/ValentinKolb/jstr/lib/jsonstr"
	"github.com/lni/dragonboat/v4/logger"
	"reflect"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var log = logger.GetLogger("compat")

const prettyIndentionStep = 2

// --------------------------------------------------------------------------
// Builder
// --------------------------------------------------------------------------

// Builder collects the options of a gson compatible configuration
type Builder struct {
	disableHTMLEscaping bool
	indentionStep       int
	registry            *Registry
}

// NewBuilder creates a builder with the gson defaults (HTML-safe escaping, compact output)
func NewBuilder() *Builder {
	return &Builder{registry: NewRegistry()}
}

// DisableHTMLEscaping selects the default escape table instead of the HTML-safe one
func (b *Builder) DisableHTMLEscaping() *Builder {
	b.disableHTMLEscaping = true
	return b
}

// SetPrettyPrinting enables indented output
func (b *Builder) SetPrettyPrinting() *Builder {
	b.indentionStep = prettyIndentionStep
	return b
}

// Register installs a custom codec for typ. Custom codecs take precedence
// over the built-in string codec and lenient decoders.
func (b *Builder) Register(typ reflect.Type, enc EncoderFunc, dec DecoderFunc) *Builder {
	b.registry.Register(typ, enc, dec)
	return b
}

// Copy returns an independent copy of the builder
func (b *Builder) Copy() *Builder {
	return &Builder{
		disableHTMLEscaping: b.disableHTMLEscaping,
		indentionStep:       b.indentionStep,
		registry:            b.registry.copy(),
	}
}

// Build freezes the builder into a Config. The builder can be reused afterwards.
func (b *Builder) Build() *Config {
	htmlSafe := !b.disableHTMLEscaping
	table := jsonstr.Table(htmlSafe)

	// built-in codecs first, user registrations override them
	registry := NewRegistry()
	registry.RegisterCodec(reflect.TypeOf(""), Codec{
		Encoder: stringEncoder(table),
		Decoder: decodeString,
		IsEmpty: isEmptyString,
	})
	registry.Register(reflect.TypeOf(false), nil, decodeBool)
	registry.Register(reflect.TypeOf(int(0)), nil, decodeInt)
	registry.Register(reflect.TypeOf(int64(0)), nil, decodeInt64)
	registry.Register(reflect.TypeOf(float32(0)), nil, decodeFloat32)
	registry.Register(reflect.TypeOf(float64(0)), nil, decodeFloat64)
	b.registry.codecs.Range(func(typ reflect.Type, codec Codec) bool {
		registry.RegisterCodec(typ, codec)
		return true
	})

	// jsoniter's own HTML escaping would shadow the registry string codec,
	// the escape table covers it instead
	api := jsoniter.Config{
		EscapeHTML:    false,
		IndentionStep: b.indentionStep,
	}.Froze()
	api.RegisterExtension(&registryExtension{registry: registry})

	conf := &Config{
		htmlSafe:      htmlSafe,
		indentionStep: b.indentionStep,
		table:         table,
		registry:      registry,
		api:           api,
	}
	log.Debugf("built gson compatible config (escape table %s, %d codecs)", table.Name(), registry.Len())
	return conf
}

// --------------------------------------------------------------------------
// Config
// --------------------------------------------------------------------------

// Config is a frozen gson compatible configuration. It is safe for concurrent use.
type Config struct {
	htmlSafe      bool
	indentionStep int
	table         *jsonstr.EscapeTable
	registry      *Registry
	api           jsoniter.API
}

// Default returns a config with the gson defaults
func Default() *Config {
	return NewBuilder().Build()
}

// API returns the underlying jsoniter API
func (c *Config) API() jsoniter.API {
	return c.api
}

// HTMLSafe reports whether the HTML-safe escape table is used
func (c *Config) HTMLSafe() bool {
	return c.htmlSafe
}

// Table returns the escape table used for string values
func (c *Config) Table() *jsonstr.EscapeTable {
	return c.table
}

// Registry returns the codec registry of the config
func (c *Config) Registry() *Registry {
	return c.registry
}

// Marshal encodes v to JSON
func (c *Config) Marshal(v any) ([]byte, error) {
	return c.api.Marshal(v)
}

// MarshalToString encodes v to a JSON string
func (c *Config) MarshalToString(v any) (string, error) {
	return c.api.MarshalToString(v)
}

// Unmarshal decodes data into v
func (c *Config) Unmarshal(data []byte, v any) error {
	return c.api.Unmarshal(data, v)
}

// String returns a formatted string representation of the config
func (c *Config) String() string {
	var sb strings.Builder

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	sb.WriteString("GSON COMPATIBILITY MODE\n")
	addField("Escape Table", c.table.Name())
	addField("Indention Step", fmt.Sprintf("%d", c.indentionStep))
	addField("Registered Codecs", fmt.Sprintf("%d", c.registry.Len()))
	return sb.String()
}
