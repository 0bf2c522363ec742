package tagutil

import "strings"

// Tag holds the name and options of a `fizz` struct tag. When a field has no
// `fizz` tag, ResolveField reads the same layout from its `json` tag instead.
type Tag struct {
	Name      string
	Explicit  bool // tag names the key, otherwise Name is the Go field name
	OmitEmpty bool
	Transient bool // bare "-"
	String    bool // numbers and booleans encode as text
}

// ParseTag splits raw into the key name and its comma separated options.
// An empty name falls back to defaultName; "-," names the key "-".
func ParseTag(defaultName string, raw string) Tag {
	ret := Tag{Name: defaultName}
	if raw == "" {
		return ret
	}
	if raw == "-" {
		return Tag{Name: raw, Explicit: true, Transient: true}
	}
	name, options, _ := strings.Cut(raw, ",")
	if name != "" {
		ret.Name, ret.Explicit = name, true
	}
	for options != "" {
		var option string
		option, options, _ = strings.Cut(options, ",")
		switch strings.TrimSpace(option) {
		case "omitempty":
			ret.OmitEmpty = true
		case "string":
			ret.String = true
		}
	}
	return ret
}
