package value

import "time"

// Serializable is implemented by types that convert themselves before encoding.
// The encoder runs hooks again on the returned value.
type Serializable interface {
	Serialize() (Value, error)
}

// Timestamp represents time.Time, it serializes to a string formatted with Layout (RFC3339 by default)
type Timestamp struct {
	Time   time.Time
	Layout string
}

// Serialize returns formatted time
func (t Timestamp) Serialize() (Value, error) {
	layout := t.Layout
	if layout == "" {
		layout = time.RFC3339
	}
	return String(t.Time.Format(layout)), nil
}

// Time creates a custom timestamp value
func Time(t time.Time) Value {
	return Custom(Timestamp{Time: t})
}
