package value

// Entry represents a mapping key/value pair.
type Entry struct {
	Key   string
	Value Value
}

// Field creates an Entry for use in Mapping construction.
func Field(key string, value Value) Entry {
	return Entry{Key: key, Value: value}
}

// Map represents insertion ordered string keyed map
type Map struct {
	entries []Entry
	index   map[string]int
}

// NewMap creates an empty map
func NewMap() *Map {
	return &Map{index: map[string]int{}}
}

// Len returns entry count
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Get returns value for the key
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	if i, ok := m.index[key]; ok {
		return m.entries[i].Value, true
	}
	return Value{}, false
}

// Set adds or replaces value, a replaced key keeps its original position
func (m *Map) Set(key string, value Value) {
	if m.index == nil {
		m.index = make(map[string]int, len(m.entries)+1)
	}
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = value
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, Entry{Key: key, Value: value})
}

// Delete removes key, returns false if key was absent
func (m *Map) Delete(key string) bool {
	if m == nil {
		return false
	}
	i, ok := m.index[key]
	if !ok {
		return false
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	delete(m.index, key)
	for j := i; j < len(m.entries); j++ {
		m.index[m.entries[j].Key] = j
	}
	return true
}

// Keys returns keys in insertion order
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	ret := make([]string, len(m.entries))
	for i, entry := range m.entries {
		ret[i] = entry.Key
	}
	return ret
}

// Entries returns a copy of entries in insertion order
func (m *Map) Entries() []Entry {
	if m == nil {
		return nil
	}
	ret := make([]Entry, len(m.entries))
	copy(ret, m.entries)
	return ret
}

// Range calls fn for each entry in insertion order until fn returns false
func (m *Map) Range(fn func(key string, value Value) bool) {
	if m == nil {
		return
	}
	for _, entry := range m.entries {
		if !fn(entry.Key, entry.Value) {
			return
		}
	}
}
