package marshal

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/viant/fizz/format"
	"github.com/viant/fizz/hook"
	"github.com/viant/fizz/value"
)

// ErrOmitted is returned when the root value encodes to nothing, e.g. a callable
var ErrOmitted = errors.New("marshal: root value omitted")

const maxSerializeDepth = 32

// Engine encodes values into the configured delimited notation.
type Engine struct {
	Hooks *hook.Pipeline

	config  format.Config
	null    []byte
	boolean [2][]byte
}

type encoderSession struct {
	buf []byte
}

var sessionPool = sync.Pool{New: func() interface{} { return &encoderSession{buf: make([]byte, 0, 256)} }}

// New creates an encoder with its own empty hook pipeline, config is expected to be valid
func New(config format.Config) *Engine {
	return &Engine{
		Hooks:   &hook.Pipeline{},
		config:  config,
		null:    []byte("null"),
		boolean: [2][]byte{[]byte("false"), []byte("true")},
	}
}

// Config returns engine configuration
func (e *Engine) Config() format.Config {
	return e.config
}

// Encode returns encoded text of v
func (e *Engine) Encode(v value.Value) (string, error) {
	sess := acquireSession()
	defer releaseSession(sess)
	if err := e.appendRoot(sess, v); err != nil {
		return "", err
	}
	return string(sess.buf), nil
}

// Append appends encoded v to dst and returns the resulting slice, dst is returned unchanged on error
func (e *Engine) Append(dst []byte, v value.Value) ([]byte, error) {
	sess := encoderSession{buf: dst}
	if err := e.appendRoot(&sess, v); err != nil {
		return dst, err
	}
	return sess.buf, nil
}

func (e *Engine) appendRoot(sess *encoderSession, v value.Value) error {
	omitted, err := e.appendValue(sess, value.RootKey(), v)
	if err != nil {
		return err
	}
	if omitted {
		return ErrOmitted
	}
	return nil
}

func acquireSession() *encoderSession {
	s := sessionPool.Get().(*encoderSession)
	s.buf = s.buf[:0]
	return s
}

func releaseSession(s *encoderSession) {
	const maxPooledCap = 64 << 10
	if cap(s.buf) > maxPooledCap {
		s.buf = make([]byte, 0, 256)
	}
	s.buf = s.buf[:0]
	sessionPool.Put(s)
}

// appendValue runs hooks and custom serialization for the node, then writes it; omitted nodes write nothing
func (e *Engine) appendValue(sess *encoderSession, key value.Key, v value.Value) (bool, error) {
	var err error
	for depth := 0; ; depth++ {
		if v, err = e.Hooks.Apply(key, v); err != nil {
			return false, err
		}
		if v.Kind() != value.KindCustom {
			break
		}
		if depth == maxSerializeDepth {
			return false, fmt.Errorf("marshal: custom serialization of %T exceeded depth %d", v.Custom(), maxSerializeDepth)
		}
		if v, err = v.Custom().Serialize(); err != nil {
			return false, err
		}
	}

	switch v.Kind() {
	case value.KindNull:
		sess.buf = append(sess.buf, e.null...)
	case value.KindBool:
		b, _ := v.AsBool()
		if b {
			sess.buf = append(sess.buf, e.boolean[1]...)
		} else {
			sess.buf = append(sess.buf, e.boolean[0]...)
		}
	case value.KindNumber:
		n, _ := v.AsNumber()
		sess.buf = e.appendNumber(sess.buf, n)
	case value.KindString:
		s, _ := v.AsString()
		sess.buf = e.appendString(sess.buf, s)
	case value.KindCallable:
		return true, nil
	case value.KindSequence:
		return false, e.appendSequence(sess, v)
	case value.KindMapping:
		return false, e.appendMapping(sess, v)
	default:
		return false, fmt.Errorf("marshal: unsupported value kind: %s", v.Kind())
	}
	return false, nil
}

func (e *Engine) appendSequence(sess *encoderSession, v value.Value) error {
	items, _ := v.AsSequence()
	sess.buf = append(sess.buf, e.config.Array.Open...)
	for i, item := range items {
		if i > 0 {
			sess.buf = append(sess.buf, e.config.Separators.Value...)
		}
		omitted, err := e.appendValue(sess, value.IndexKey(i), item)
		if err != nil {
			return err
		}
		if omitted {
			sess.buf = append(sess.buf, e.null...)
		}
	}
	sess.buf = append(sess.buf, e.config.Array.Close...)
	return nil
}

func (e *Engine) appendMapping(sess *encoderSession, v value.Value) error {
	m, _ := v.AsMapping()
	sess.buf = append(sess.buf, e.config.Object.Open...)
	written := 0
	for _, entry := range m.Entries() {
		mark := len(sess.buf)
		if written > 0 {
			sess.buf = append(sess.buf, e.config.Separators.Value...)
		}
		sess.buf = e.appendString(sess.buf, entry.Key)
		sess.buf = append(sess.buf, e.config.Separators.Key...)
		omitted, err := e.appendValue(sess, value.NameKey(entry.Key), entry.Value)
		if err != nil {
			return err
		}
		if omitted {
			sess.buf = sess.buf[:mark]
			continue
		}
		written++
	}
	sess.buf = append(sess.buf, e.config.Object.Close...)
	return nil
}

// appendNumber writes shortest decimal text, exponent form is used below 1e-6 and from 1e21
func (e *Engine) appendNumber(dst []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(dst, e.null...)
	}
	if f == 0 {
		return append(dst, '0')
	}
	abs := math.Abs(f)
	fmtByte := byte('f')
	if abs < 1e-6 || abs >= 1e21 {
		fmtByte = 'e'
	}
	dst = strconv.AppendFloat(dst, f, fmtByte, -1, 64)
	if fmtByte == 'e' {
		// clean up e-09 to e-9
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst
}

// appendString wraps s in string brackets, escaping backslash, the closing bracket and control characters
func (e *Engine) appendString(dst []byte, s string) []byte {
	closing := e.config.String.Close
	dst = append(dst, e.config.String.Open...)
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		var escaped byte
		switch c {
		case '\\':
			escaped = '\\'
		case '\b':
			escaped = 'b'
		case '\f':
			escaped = 'f'
		case '\n':
			escaped = 'n'
		case '\r':
			escaped = 'r'
		case '\t':
			escaped = 't'
		default:
			if c == closing[0] && hasPrefixAt(s, i, closing) {
				dst = append(dst, s[start:i]...)
				dst = append(dst, '\\')
				dst = append(dst, closing...)
				i += len(closing) - 1
				start = i + 1
			}
			continue
		}
		dst = append(dst, s[start:i]...)
		dst = append(dst, '\\', escaped)
		start = i + 1
	}
	dst = append(dst, s[start:]...)
	return append(dst, closing...)
}

func hasPrefixAt(s string, i int, prefix string) bool {
	return len(s)-i >= len(prefix) && s[i:i+len(prefix)] == prefix
}
