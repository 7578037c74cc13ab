package datastructures

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

const maxPrealloc = 1024

var (
	_ msgpack.CustomEncoder = (*List[string])(nil)
	_ msgpack.CustomDecoder = (*List[string])(nil)
	_ yaml.Marshaler        = (*List[string])(nil)
	_ yaml.Unmarshaler      = (*List[string])(nil)
)

// EncodeMsgpack writes the list as a msgpack array, head first.
func (l *List[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(l.size); err != nil {
		return err
	}
	for n := l.head; n != nil; n = n.next {
		if err := enc.Encode(n.value); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack replaces the contents of the list with a msgpack array.
// A nil array yields an empty list.
func (l *List[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	size, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	// the declared length is untrusted until the elements arrive
	values := make([]T, 0, min(max(size, 0), maxPrealloc))
	for i := 0; i < size; i++ {
		var v T
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		values = append(values, v)
	}
	return l.replaceWith(values)
}

// MarshalYAML renders the list as a YAML sequence.
func (l *List[T]) MarshalYAML() (interface{}, error) {
	return l.Values(), nil
}

// UnmarshalYAML replaces the contents of the list with a YAML sequence.
func (l *List[T]) UnmarshalYAML(value *yaml.Node) error {
	var values []T
	if err := value.Decode(&values); err != nil {
		return err
	}
	return l.replaceWith(values)
}

// replaceWith swaps the list contents for values. Nothing changes unless
// every value is present.
func (l *List[T]) replaceWith(values []T) error {
	for i, v := range values {
		if isInvalid(v) {
			return fmt.Errorf("element %d: %w", i, ErrInvalidValue)
		}
	}
	fresh := NewList[T]()
	for _, v := range values {
		if err := fresh.Append(v); err != nil {
			return err
		}
	}
	*l = *fresh
	return nil
}
