package utils

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// EncodeRequest serializes a request map into a byte slice
func EncodeRequest(request map[string]interface{}) ([]byte, error) {
	return msgpack.Marshal(request)
}

// EncodeResponse serializes a response map into a byte slice
func EncodeResponse(response map[string]interface{}) ([]byte, error) {
	return msgpack.Marshal(response)
}

// NewMessageDecoder returns a decoder reading consecutive msgpack maps from r.
// Integers decode as int64/uint64 and floats as float64.
func NewMessageDecoder(r io.Reader) *msgpack.Decoder {
	dec := msgpack.NewDecoder(r)
	dec.UseLooseInterfaceDecoding(true)
	return dec
}

// ErrNotAMap is returned by ReadMessage when a complete message was read but
// it is not a map. The stream is still positioned at the next message.
var ErrNotAMap = errors.New("message is not a map")

// ReadMessage decodes the next map from dec.
func ReadMessage(dec *msgpack.Decoder) (map[string]interface{}, error) {
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	message, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotAMap, raw)
	}
	return message, nil
}
