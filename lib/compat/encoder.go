package compat

import (
	"github.com/ValentinKolb/jstr/lib/jsonstr"
	"io"
	"unicode/utf16"
)

// StringEncoder returns an IStringEncoder that encodes through the jsoniter
// API of the config. Code units are decoded to a Go string first, so lone
// surrogates reach the encoder as U+FFFD.
func (c *Config) StringEncoder() jsonstr.IStringEncoder {
	return &configEncoderImpl{conf: c}
}

// configEncoderImpl implements the jsonstr.IStringEncoder interface on top of a Config
type configEncoderImpl struct {
	conf *Config
}

// --------------------------------------------------------------------------
// Interface Methods (docu see jsonstr.IStringEncoder)
// --------------------------------------------------------------------------

func (e *configEncoderImpl) EncodeUnits(w io.Writer, units []uint16) error {
	return e.EncodeString(w, string(utf16.Decode(units)))
}

func (e *configEncoderImpl) EncodeString(w io.Writer, s string) error {
	data, err := e.conf.Marshal(s)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func (e *configEncoderImpl) SupportsFeature(feature jsonstr.Feature) bool {
	return jsonstr.FeatureHTMLSafe&feature == feature
}

func (e *configEncoderImpl) Table() *jsonstr.EscapeTable {
	return e.conf.Table()
}
