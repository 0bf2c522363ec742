package value

import (
	"bytes"
	"fmt"
	"math"

	"github.com/francoispqt/gojay"
)

// ToJSON encodes value as native JSON, mapping entries keep insertion order.
// Non-finite numbers become null, callables are dropped from mappings and become null in sequences.
func ToJSON(v Value) ([]byte, error) {
	v, err := normalize(v)
	if err != nil {
		return nil, err
	}
	switch v.kind {
	case KindMapping:
		return gojay.MarshalJSONObject(jsonObject{entries: v.mapping})
	case KindSequence:
		return gojay.MarshalJSONArray(jsonArray{items: v.items})
	case KindString:
		return gojay.Marshal(v.strVal)
	case KindBool:
		return gojay.Marshal(v.boolVal)
	case KindNumber:
		return gojay.Marshal(v.numberVal)
	}
	return []byte("null"), nil
}

// FromJSON decodes native JSON, object keys keep document order
func FromJSON(data []byte) (Value, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Value{}, fmt.Errorf("value: empty JSON input")
	}
	switch data[0] {
	case '{':
		obj := &jsonObjectDecoder{entries: NewMap()}
		if err := gojay.UnmarshalJSONObject(data, obj); err != nil {
			return Value{}, err
		}
		return MappingOf(obj.entries), nil
	case '[':
		arr := &jsonArrayDecoder{}
		if err := gojay.UnmarshalJSONArray(data, arr); err != nil {
			return Value{}, err
		}
		return Sequence(arr.items...), nil
	case '"':
		var s string
		if err := gojay.Unmarshal(data, &s); err != nil {
			return Value{}, err
		}
		return String(s), nil
	case 'n':
		if string(data) == "null" {
			return Null(), nil
		}
	case 't', 'f':
		switch string(data) {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		}
	default:
		var f float64
		if err := gojay.Unmarshal(data, &f); err != nil {
			return Value{}, err
		}
		return Number(f), nil
	}
	return Value{}, fmt.Errorf("value: invalid JSON literal: %s", data)
}

// normalize serializes custom values and drops what JSON can not carry,
// gojay marshalers can not report errors so this runs ahead of encoding
func normalize(v Value) (Value, error) {
	for v.kind == KindCustom {
		var err error
		if v, err = v.custom.Serialize(); err != nil {
			return Value{}, err
		}
	}
	switch v.kind {
	case KindNumber:
		if math.IsNaN(v.numberVal) || math.IsInf(v.numberVal, 0) {
			return Null(), nil
		}
	case KindCallable:
		return Null(), nil
	case KindSequence:
		items := make([]Value, len(v.items))
		for i, item := range v.items {
			var err error
			if items[i], err = normalize(item); err != nil {
				return Value{}, err
			}
		}
		return Sequence(items...), nil
	case KindMapping:
		m := NewMap()
		for _, entry := range v.mapping.entries {
			if entry.Value.kind == KindCallable {
				continue
			}
			item, err := normalize(entry.Value)
			if err != nil {
				return Value{}, err
			}
			m.Set(entry.Key, item)
		}
		return MappingOf(m), nil
	}
	return v, nil
}

type jsonObject struct {
	entries *Map
}

func (o jsonObject) MarshalJSONObject(enc *gojay.Encoder) {
	for _, entry := range o.entries.entries {
		item := entry.Value
		switch item.kind {
		case KindMapping:
			enc.ObjectKey(entry.Key, jsonObject{entries: item.mapping})
		case KindSequence:
			enc.ArrayKey(entry.Key, jsonArray{items: item.items})
		case KindString:
			enc.StringKey(entry.Key, item.strVal)
		case KindNumber:
			enc.Float64Key(entry.Key, item.numberVal)
		case KindBool:
			enc.BoolKey(entry.Key, item.boolVal)
		default:
			enc.NullKey(entry.Key)
		}
	}
}

func (o jsonObject) IsNil() bool {
	return false
}

type jsonArray struct {
	items []Value
}

func (a jsonArray) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range a.items {
		switch item.kind {
		case KindMapping:
			enc.Object(jsonObject{entries: item.mapping})
		case KindSequence:
			enc.Array(jsonArray{items: item.items})
		case KindString:
			enc.String(item.strVal)
		case KindNumber:
			enc.Float64(item.numberVal)
		case KindBool:
			enc.Bool(item.boolVal)
		default:
			enc.Null()
		}
	}
}

func (a jsonArray) IsNil() bool {
	return false
}

// decoders capture each element as embedded JSON and recurse, gojay decodes keys in document order
type jsonObjectDecoder struct {
	entries *Map
}

func (o *jsonObjectDecoder) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	var raw gojay.EmbeddedJSON
	if err := dec.EmbeddedJSON(&raw); err != nil {
		return err
	}
	item, err := FromJSON(raw)
	if err != nil {
		return err
	}
	o.entries.Set(key, item)
	return nil
}

func (o *jsonObjectDecoder) NKeys() int {
	return 0
}

type jsonArrayDecoder struct {
	items []Value
}

func (a *jsonArrayDecoder) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var raw gojay.EmbeddedJSON
	if err := dec.EmbeddedJSON(&raw); err != nil {
		return err
	}
	item, err := FromJSON(raw)
	if err != nil {
		return err
	}
	a.items = append(a.items, item)
	return nil
}
