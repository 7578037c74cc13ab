package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vskvj3/dllist/datastructures"
)

func run(t *testing.T, h *CommandHandler, request map[string]interface{}) map[string]interface{} {
	t.Helper()
	resp, err := h.HandleCommand(request)
	require.NoError(t, err)
	return resp
}

func TestHandleCommandPingEcho(t *testing.T) {
	h := NewCommandHandler(NewDatabase(0))

	assert.Equal(t, map[string]interface{}{"status": "OK", "message": "PONG"},
		run(t, h, map[string]interface{}{"command": "ping"}))
	assert.Equal(t, map[string]interface{}{"status": "OK", "message": "hi"},
		run(t, h, map[string]interface{}{"command": "ECHO", "message": "hi"}))
}

func TestHandleCommandListLifecycle(t *testing.T) {
	h := NewCommandHandler(NewDatabase(0))

	for _, v := range []string{"zero", "one", "three"} {
		run(t, h, map[string]interface{}{"command": "PUSH", "key": "k", "value": v})
	}
	resp := run(t, h, map[string]interface{}{"command": "INSERT", "key": "k", "index": int64(2), "value": "two"})
	assert.Equal(t, 4, resp["value"])

	resp = run(t, h, map[string]interface{}{"command": "GET", "key": "k", "index": "2"})
	assert.Equal(t, "two", resp["value"])

	resp = run(t, h, map[string]interface{}{"command": "RANGE", "key": "k"})
	assert.Equal(t, []string{"zero", "one", "two", "three"}, resp["value"])

	resp = run(t, h, map[string]interface{}{"command": "HEAD", "key": "k"})
	assert.Equal(t, "zero", resp["value"])
	resp = run(t, h, map[string]interface{}{"command": "TAIL", "key": "k"})
	assert.Equal(t, "three", resp["value"])

	resp = run(t, h, map[string]interface{}{"command": "INDEXOF", "key": "k", "value": "one"})
	assert.Equal(t, 1, resp["value"])
	resp = run(t, h, map[string]interface{}{"command": "INDEXOF", "key": "k", "value": "nope"})
	assert.Equal(t, -1, resp["value"])

	resp = run(t, h, map[string]interface{}{"command": "CONTAINS", "key": "k", "value": "nope"})
	assert.Equal(t, "NOT_FOUND", resp["status"])

	resp = run(t, h, map[string]interface{}{"command": "REMOVE", "key": "k", "index": uint8(1)})
	assert.Equal(t, "one", resp["value"])
	resp = run(t, h, map[string]interface{}{"command": "REMOVEVAL", "key": "k", "value": "two"})
	assert.Equal(t, "two", resp["value"])

	resp = run(t, h, map[string]interface{}{"command": "DUMP", "key": "k"})
	assert.Equal(t, "[ zero, three ]", resp["message"])
	resp = run(t, h, map[string]interface{}{"command": "LEN", "key": "k"})
	assert.Equal(t, 2, resp["value"])

	resp = run(t, h, map[string]interface{}{"command": "KEYS"})
	assert.Equal(t, []string{"k"}, resp["value"])
	resp = run(t, h, map[string]interface{}{"command": "DEL", "key": "k"})
	assert.Equal(t, "OK", resp["status"])
	resp = run(t, h, map[string]interface{}{"command": "DEL", "key": "k"})
	assert.Equal(t, "NOT_FOUND", resp["status"])
}

func TestHandleCommandErrors(t *testing.T) {
	h := NewCommandHandler(NewDatabase(0))

	tests := []struct {
		name    string
		request map[string]interface{}
		target  error
		message string
	}{
		{name: "missing command", request: map[string]interface{}{}, message: "invalid or missing 'command' field"},
		{name: "unknown command", request: map[string]interface{}{"command": "FLY"}, target: ErrUnknownCommand},
		{name: "push without value", request: map[string]interface{}{"command": "PUSH", "key": "k"}, message: "PUSH requires 'key', 'value' fields"},
		{name: "get without index", request: map[string]interface{}{"command": "GET", "key": "k"}, message: "GET requires an 'index' field (integer)"},
		{name: "non numeric index", request: map[string]interface{}{"command": "GET", "key": "k", "index": "x"}, message: `GET index "x" is not an integer`},
		{name: "float index", request: map[string]interface{}{"command": "GET", "key": "k", "index": 1.5}, message: "invalid type for GET index: float64"},
		{name: "get on empty list", request: map[string]interface{}{"command": "GET", "key": "k", "index": int64(0)}, target: datastructures.ErrIndexOutOfBounds},
		{name: "empty value", request: map[string]interface{}{"command": "PUSH", "key": "k", "value": ""}, target: ErrEmptyValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.HandleCommand(tt.request)
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
			if tt.message != "" {
				assert.EqualError(t, err, tt.message)
			}
		})
	}
}
