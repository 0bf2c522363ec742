package hook

import (
	"github.com/viant/fizz/value"
)

// Func transforms a value in the context of its key, it runs on every
// key/value pair visited by an encoder or decoder
type Func func(key value.Key, v value.Value) (value.Value, error)

// Handle identifies a registered hook
type Handle struct {
	id uint64
}

type entry struct {
	handle Handle
	fn     Func
}

// Pipeline represents ordered hook list, it is not safe for mutation while Apply runs
type Pipeline struct {
	entries []entry
	seq     uint64
}

// Add appends hook, every call returns a new handle, even for the same function
func (p *Pipeline) Add(fn Func) (Handle, error) {
	if fn == nil {
		return Handle{}, &InvalidHookError{}
	}
	p.seq++
	h := Handle{id: p.seq}
	p.entries = append(p.entries, entry{handle: h, fn: fn})
	return h, nil
}

// AddAny adapts and appends hook
func (p *Pipeline) AddAny(fn interface{}) (Handle, error) {
	adapted, err := Adapt(fn)
	if err != nil {
		return Handle{}, err
	}
	return p.Add(adapted)
}

// Remove removes hook, returns false when the handle is not registered
func (p *Pipeline) Remove(h Handle) bool {
	for i, e := range p.entries {
		if e.handle == h {
			p.entries = append(p.entries[:i:i], p.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Contains returns true if handle is registered
func (p *Pipeline) Contains(h Handle) bool {
	for _, e := range p.entries {
		if e.handle == h {
			return true
		}
	}
	return false
}

// Len returns registered hook count
func (p *Pipeline) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

// Reset removes all hooks
func (p *Pipeline) Reset() {
	p.entries = nil
}

// Apply folds v through hooks in registration order, the first error stops the pass
func (p *Pipeline) Apply(key value.Key, v value.Value) (value.Value, error) {
	if p == nil {
		return v, nil
	}
	var err error
	for _, e := range p.entries {
		if v, err = e.fn(key, v); err != nil {
			return value.Value{}, err
		}
	}
	return v, nil
}
