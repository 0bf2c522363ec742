package hook

import (
	"encoding/base64"
	"math"
	"time"

	"github.com/viant/fizz/value"
	"github.com/viant/tagly/format/text"
	ftime "github.com/viant/tagly/format/time"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultDateLayout is used by DateTime when date format is empty
const DefaultDateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

const maxUnixTime32 = math.MaxInt32

// UnixTime converts timestamps to unix seconds
func UnixTime() Func {
	return func(_ value.Key, v value.Value) (value.Value, error) {
		switch ts := v.Custom().(type) {
		case value.Timestamp:
			return value.Number(float64(ts.Time.Unix())), nil
		case *value.Timestamp:
			if ts != nil {
				return value.Number(float64(ts.Time.Unix())), nil
			}
		}
		return v, nil
	}
}

// Base64 encodes string values under the named keys, with no keys every string is encoded
func Base64(keys ...string) Func {
	match := keyMatcher(keys)
	return func(key value.Key, v value.Value) (value.Value, error) {
		s, err := v.AsString()
		if err != nil || !match(key) {
			return v, nil
		}
		return value.String(base64.StdEncoding.EncodeToString([]byte(s))), nil
	}
}

// Round rounds finite numbers to the given decimal places
func Round(places int) Func {
	scale := math.Pow(10, float64(places))
	return func(_ value.Key, v value.Value) (value.Value, error) {
		n, err := v.AsNumber()
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return v, nil
		}
		return value.Number(math.Round(n*scale) / scale), nil
	}
}

// SumProduct replaces a sequence under key with the sum of left*right over its mapping elements,
// elements missing either number are skipped
func SumProduct(key, left, right string) Func {
	return func(k value.Key, v value.Value) (value.Value, error) {
		items, err := v.AsSequence()
		if err != nil || !k.Is(key) {
			return v, nil
		}
		total := 0.0
		for _, item := range items {
			l, ok := numberAt(item, left)
			if !ok {
				continue
			}
			r, ok := numberAt(item, right)
			if !ok {
				continue
			}
			total += l * r
		}
		return value.Number(total), nil
	}
}

func numberAt(item value.Value, name string) (float64, bool) {
	v, ok := item.Get(name)
	if !ok {
		return 0, false
	}
	n, err := v.AsNumber()
	return n, err == nil
}

// CaseKeys re-cases mapping keys into the target case format, keys with undetected format are kept
func CaseKeys(target text.CaseFormat) Func {
	return func(_ value.Key, v value.Value) (value.Value, error) {
		m, err := v.AsMapping()
		if err != nil || !target.IsDefined() {
			return v, nil
		}
		ret := value.NewMap()
		m.Range(func(key string, item value.Value) bool {
			if source := text.DetectCaseFormat(key); source.IsDefined() && source != target {
				key = source.Format(key, target)
			}
			ret.Set(key, item)
			return true
		})
		return value.MappingOf(ret), nil
	}
}

// DateTime converts positive integral numbers within 32-bit unix time range into UTC date strings.
// dateFormat uses tagly date format notation (e.g. yyyy-MM-dd HH:mm:ss), empty uses DefaultDateLayout
func DateTime(dateFormat string) Func {
	layout := DefaultDateLayout
	if dateFormat != "" {
		layout = ftime.DateFormatToTimeLayout(dateFormat)
	}
	return func(_ value.Key, v value.Value) (value.Value, error) {
		n, err := v.AsNumber()
		if err != nil || n <= 0 || n >= maxUnixTime32 || n != math.Trunc(n) {
			return v, nil
		}
		return value.String(time.Unix(int64(n), 0).UTC().Format(layout)), nil
	}
}

// Localized formats numbers under the named keys as decimal text for the language, with no keys every number is formatted
func Localized(lang language.Tag, keys ...string) Func {
	printer := message.NewPrinter(lang)
	match := keyMatcher(keys)
	return func(key value.Key, v value.Value) (value.Value, error) {
		n, err := v.AsNumber()
		if err != nil || !match(key) || math.IsNaN(n) || math.IsInf(n, 0) {
			return v, nil
		}
		return value.String(printer.Sprintf("%v", number.Decimal(n))), nil
	}
}

func keyMatcher(keys []string) func(key value.Key) bool {
	if len(keys) == 0 {
		return func(value.Key) bool { return true }
	}
	index := make(map[string]bool, len(keys))
	for _, k := range keys {
		index[k] = true
	}
	return func(key value.Key) bool {
		name, ok := key.Name()
		return ok && index[name]
	}
}
