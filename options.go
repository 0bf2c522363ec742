package fizz

import (
	"github.com/viant/fizz/format"
	"github.com/viant/fizz/unmarshal"
)

type options struct {
	config        *format.Config
	descriptor    string
	formatOptions []format.Option
	logger        *Logger
	encoderHooks  []interface{}
	decoderHooks  []interface{}
	scanner       unmarshal.Scanner
}

// Option codec option
type Option func(o *options)

// Options represents codec options
type Options []Option

// Apply applies options
func (o Options) Apply(opts *options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}
		opt(opts)
	}
}

func defaultOptions() *options {
	return &options{logger: NoopLogger()}
}

// resolveConfig starts from config or descriptor (default when neither is set) and applies format options on top
func (o *options) resolveConfig() (format.Config, error) {
	ret := format.Default()
	switch {
	case o.config != nil:
		ret = *o.config
	case o.descriptor != "":
		parsed, err := format.Parse(o.descriptor)
		if err != nil {
			return format.Config{}, err
		}
		ret = parsed
	}
	for _, opt := range o.formatOptions {
		if opt != nil {
			opt(&ret)
		}
	}
	if err := ret.Validate(); err != nil {
		return format.Config{}, err
	}
	return ret, nil
}

// WithConfig sets delimiters config
func WithConfig(config format.Config) Option {
	return func(o *options) {
		o.config = &config
	}
}

// WithDescriptor sets delimiters from textual descriptor, e.g. value=;,key=_,string=``,array=<>,object=()
func WithDescriptor(descriptor string) Option {
	return func(o *options) {
		o.descriptor = descriptor
	}
}

// WithSeparators overrides value and key separators
func WithSeparators(value, key string) Option {
	return func(o *options) {
		o.formatOptions = append(o.formatOptions, format.WithSeparators(value, key))
	}
}

// WithStringBrackets overrides string brackets
func WithStringBrackets(open, close string) Option {
	return func(o *options) {
		o.formatOptions = append(o.formatOptions, format.WithStringBrackets(open, close))
	}
}

// WithArrayBrackets overrides array brackets
func WithArrayBrackets(open, close string) Option {
	return func(o *options) {
		o.formatOptions = append(o.formatOptions, format.WithArrayBrackets(open, close))
	}
}

// WithObjectBrackets overrides object brackets
func WithObjectBrackets(open, close string) Option {
	return func(o *options) {
		o.formatOptions = append(o.formatOptions, format.WithObjectBrackets(open, close))
	}
}

// WithLogger sets codec logger
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithEncoderHook registers encoder hook, see hook.Adapt for supported signatures
func WithEncoderHook(fn interface{}) Option {
	return func(o *options) {
		o.encoderHooks = append(o.encoderHooks, fn)
	}
}

// WithDecoderHook registers decoder hook, see hook.Adapt for supported signatures
func WithDecoderHook(fn interface{}) Option {
	return func(o *options) {
		o.decoderHooks = append(o.decoderHooks, fn)
	}
}

// WithScanner sets decoder whitespace and string scanner
func WithScanner(scanner unmarshal.Scanner) Option {
	return func(o *options) {
		o.scanner = scanner
	}
}
