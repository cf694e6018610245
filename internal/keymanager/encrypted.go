package keymanager

import "encoding/json"

// Encrypted wraps a value that must never appear in logs, error
// messages, or accidental JSON output. Call Reveal explicitly (after
// running it through Decrypt) to get the underlying value; String and
// MarshalJSON both redact.
type Encrypted[T any] struct {
	value T
	set   bool
}

// NewEncrypted wraps a decrypted value for in-memory handling.
func NewEncrypted[T any](v T) Encrypted[T] {
	return Encrypted[T]{value: v, set: true}
}

// Reveal returns the underlying value. Named distinctly from a plain
// getter so call sites read as an explicit, auditable disclosure.
func (e Encrypted[T]) Reveal() T {
	return e.value
}

func (e Encrypted[T]) String() string {
	if !e.set {
		return "<encrypted:unset>"
	}
	return "<encrypted>"
}

func (e Encrypted[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal("<encrypted>")
}
