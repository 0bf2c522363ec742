package tagutil

import (
	"reflect"
	"sync"

	"github.com/viant/tagly/format"
	ftime "github.com/viant/tagly/format/time"
)

// FormatTag captures `format` tag attributes used when converting struct fields
type FormatTag struct {
	Name          string
	HasNameOrCase bool
	OmitEmpty     bool
	Ignore        bool
	Inline        bool
	TimeLayout    string
}

// Field represents resolved struct field naming and encoding options
type Field struct {
	Name       string
	Explicit   bool
	OmitEmpty  bool
	Ignore     bool
	Inline     bool
	AsString   bool
	TimeLayout string
}

var formatTags sync.Map // map[string]FormatTag

// ParseFormatTag parses `format` tag, baseName is used when only case format is defined
func ParseFormatTag(sf reflect.StructField, baseName string) FormatTag {
	cached, ok := loadFormatTag(string(sf.Tag))
	if !ok {
		return FormatTag{}
	}
	ret := FormatTag{
		OmitEmpty:  cached.omitEmpty,
		Ignore:     cached.ignore,
		Inline:     cached.inline,
		TimeLayout: cached.timeLayout,
	}
	if cached.name != "" || cached.caseFormat != "" {
		tag := &format.Tag{Name: cached.name, CaseFormat: cached.caseFormat}
		if tag.Name == "" {
			tag.Name = baseName
		}
		ret.Name = tag.CaseFormatName("")
		ret.HasNameOrCase = ret.Name != ""
	}
	return ret
}

// ResolveField resolves precedence among fizz, json and format tags.
// fizz wins over json, an explicit name from either wins over format name or case.
// Ignore is enabled by "-" in fizz or json, or format:ignore.
func ResolveField(sf reflect.StructField) Field {
	tag := ParseTag(sf.Name, sf.Tag.Get("json"))
	if raw, ok := sf.Tag.Lookup("fizz"); ok {
		tag = ParseTag(sf.Name, raw)
	}
	fTag := ParseFormatTag(sf, tag.Name)
	name := tag.Name
	explicit := tag.Explicit
	if !explicit && fTag.HasNameOrCase {
		name = fTag.Name
		explicit = true
	}
	return Field{
		Name:       name,
		Explicit:   explicit,
		OmitEmpty:  tag.OmitEmpty || fTag.OmitEmpty,
		Ignore:     tag.Transient || fTag.Ignore,
		Inline:     (sf.Anonymous && !explicit) || fTag.Inline,
		AsString:   tag.String,
		TimeLayout: fTag.TimeLayout,
	}
}

type cachedFormatTag struct {
	name       string
	caseFormat string
	omitEmpty  bool
	ignore     bool
	inline     bool
	timeLayout string
}

func loadFormatTag(rawTag string) (cachedFormatTag, bool) {
	if v, ok := formatTags.Load(rawTag); ok {
		c := v.(cachedFormatTag)
		return c, c != cachedFormatTag{}
	}
	tag, err := format.Parse(reflect.StructTag(rawTag))
	if err != nil || tag == nil {
		formatTags.Store(rawTag, cachedFormatTag{})
		return cachedFormatTag{}, false
	}
	cached := cachedFormatTag{
		name:       tag.Name,
		caseFormat: tag.CaseFormat,
		omitEmpty:  tag.Omitempty,
		ignore:     tag.Ignore,
		inline:     tag.Inline,
		timeLayout: tag.TimeLayout,
	}
	if cached.timeLayout == "" && tag.DateFormat != "" {
		cached.timeLayout = ftime.DateFormatToTimeLayout(tag.DateFormat)
	}
	formatTags.Store(rawTag, cached)
	return cached, true
}
