package fizz

import (
	"github.com/viant/fizz/format"
	"github.com/viant/fizz/marshal"
	"github.com/viant/fizz/unmarshal"
	"github.com/viant/fizz/value"
)

// Codec converts values to and from configured delimited notation.
// It owns one encoder and one decoder, each with its own hook pipeline.
type Codec struct {
	config  format.Config
	encoder *marshal.Engine
	decoder *unmarshal.Engine
	logger  *Logger
}

var defaultCodec = mustNew()

func mustNew(options ...Option) *Codec {
	ret, err := New(options...)
	if err != nil {
		panic(err)
	}
	return ret
}

// New creates a codec, hooks passed with options are registered in order
func New(options ...Option) (*Codec, error) {
	opts := defaultOptions()
	Options(options).Apply(opts)
	config, err := opts.resolveConfig()
	if err != nil {
		return nil, err
	}
	ret := &Codec{
		config:  config,
		encoder: marshal.New(config),
		decoder: unmarshal.New(config, unmarshal.WithScanner(opts.scanner)),
		logger:  opts.logger.WithConfig(config.Descriptor()),
	}
	for _, fn := range opts.encoderHooks {
		if _, err = ret.encoder.Hooks.AddAny(fn); err != nil {
			return nil, err
		}
	}
	for _, fn := range opts.decoderHooks {
		if _, err = ret.decoder.Hooks.AddAny(fn); err != nil {
			return nil, err
		}
	}
	ret.logger.Debug("codec created", "encoderHooks", ret.encoder.Hooks.Len(), "decoderHooks", ret.decoder.Hooks.Len())
	return ret, nil
}

// Config returns codec delimiters
func (c *Codec) Config() format.Config {
	return c.config
}

// Encoder returns owned encoder, use its Hooks to add or remove encoder hooks
func (c *Codec) Encoder() *marshal.Engine {
	return c.encoder
}

// Decoder returns owned decoder, use its Hooks to add or remove decoder hooks
func (c *Codec) Decoder() *unmarshal.Engine {
	return c.decoder
}

// Stringify encodes Go value, see value.Of for conversion rules
func (c *Codec) Stringify(v interface{}) (string, error) {
	converted, err := value.Of(v)
	if err != nil {
		return "", err
	}
	return c.StringifyValue(converted)
}

// StringifyValue encodes value
func (c *Codec) StringifyValue(v value.Value) (string, error) {
	ret, err := c.encoder.Encode(v)
	if err != nil {
		c.logger.Debug("stringify failed", "kind", v.Kind().String(), "error", err)
		return "", err
	}
	return ret, nil
}

// Parse decodes text
func (c *Codec) Parse(text string) (value.Value, error) {
	ret, err := c.decoder.DecodeString(text)
	if err != nil {
		c.logger.Debug("parse failed", "length", len(text), "error", err)
		return value.Value{}, err
	}
	return ret, nil
}

// TryParse decodes text, returns text as string value when it is not valid notation
func (c *Codec) TryParse(text string) value.Value {
	ret, err := c.Parse(text)
	if err != nil {
		return value.String(text)
	}
	return ret
}

// Stringify encodes Go value with default delimiters
func Stringify(v interface{}) (string, error) {
	return defaultCodec.Stringify(v)
}

// Parse decodes text with default delimiters
func Parse(text string) (value.Value, error) {
	return defaultCodec.Parse(text)
}
