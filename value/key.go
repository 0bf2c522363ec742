package value

import "strconv"

type keyKind uint8

const (
	keyRoot keyKind = iota
	keyIndex
	keyName
)

// Key represents hook context: object property name, array index or document root
type Key struct {
	kind  keyKind
	index int
	name  string
}

// RootKey returns the key of the document root, it is the zero Key
func RootKey() Key {
	return Key{}
}

// IndexKey returns sequence element key
func IndexKey(index int) Key {
	return Key{kind: keyIndex, index: index}
}

// NameKey returns mapping entry key
func NameKey(name string) Key {
	return Key{kind: keyName, name: name}
}

// IsRoot returns true at the document root
func (k Key) IsRoot() bool {
	return k.kind == keyRoot
}

// Index returns element index
func (k Key) Index() (int, bool) {
	return k.index, k.kind == keyIndex
}

// Name returns property name
func (k Key) Name() (string, bool) {
	return k.name, k.kind == keyName
}

// Is returns true if key is the named property
func (k Key) Is(name string) bool {
	return k.kind == keyName && k.name == name
}

// String returns key text, root key is empty
func (k Key) String() string {
	switch k.kind {
	case keyIndex:
		return strconv.Itoa(k.index)
	case keyName:
		return k.name
	}
	return ""
}
