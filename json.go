package fizz

import (
	"net/url"
	"strings"

	"github.com/viant/fizz/value"
)

// FromJSON converts native JSON into codec notation, object key order is preserved
func (c *Codec) FromJSON(data []byte) (string, error) {
	v, err := value.FromJSON(data)
	if err != nil {
		return "", err
	}
	return c.StringifyValue(v)
}

// ToJSON converts codec notation into native JSON
func (c *Codec) ToJSON(text string) ([]byte, error) {
	v, err := c.Parse(text)
	if err != nil {
		return nil, err
	}
	return value.ToJSON(v)
}

// ParseQuery decodes URL query parameters in order, each value is tried as codec notation
// and kept as string otherwise; repeated parameters are collected into a sequence
func (c *Codec) ParseQuery(query string) (value.Value, error) {
	query = strings.TrimPrefix(query, "?")
	params := value.NewMap()
	repeated := map[string]bool{}
	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")
		key, err := url.PathUnescape(rawKey)
		if err != nil {
			return value.Value{}, err
		}
		text, err := url.PathUnescape(rawValue)
		if err != nil {
			return value.Value{}, err
		}
		item := c.TryParse(text)
		prev, ok := params.Get(key)
		switch {
		case !ok:
			params.Set(key, item)
		case repeated[key]:
			items, _ := prev.AsSequence()
			params.Set(key, value.Sequence(append(items, item)...))
		default:
			repeated[key] = true
			params.Set(key, value.Sequence(prev, item))
		}
	}
	return value.MappingOf(params), nil
}
