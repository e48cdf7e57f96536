package facet

import (
	"encoding/json"
	"fmt"
)

// Lifetime specifies how a registered component is reused across resolutions.
type Lifetime int

const (
	// Singleton specifies that a single instance of the component will be
	// created. The instance is constructed on first resolution and cached on
	// the registry for every later request.
	Singleton Lifetime = iota

	// Transient specifies that a new instance of the component will be
	// constructed on every resolution, with freshly resolved dependencies.
	Transient

	// Instance specifies a pre-built value supplied at registration time.
	// Resolution always returns that exact value; nothing is constructed.
	Instance
)

// String returns the string representation of the Lifetime.
func (l Lifetime) String() string {
	switch l {
	case Singleton:
		return "Singleton"
	case Transient:
		return "Transient"
	case Instance:
		return "Instance"
	default:
		return fmt.Sprintf("Unknown(%d)", int(l))
	}
}

// IsValid checks if the lifetime is valid.
func (l Lifetime) IsValid() bool {
	return l >= Singleton && l <= Instance
}

// MarshalText implements encoding.TextMarshaler.
func (l Lifetime) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Lifetime) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Singleton", "singleton":
		*l = Singleton
	case "Transient", "transient":
		*l = Transient
	case "Instance", "instance":
		*l = Instance
	default:
		return LifetimeError{Value: string(text)}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (l Lifetime) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Lifetime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	return l.UnmarshalText([]byte(s))
}
