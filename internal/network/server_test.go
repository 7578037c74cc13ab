package network

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"github.com/vskvj3/dllist/internal/core"
	"github.com/vskvj3/dllist/internal/utils"
)

func startServer(t *testing.T) net.Addr {
	t.Helper()
	server, err := NewServer("0", core.NewCommandHandler(core.NewDatabase(0)))
	require.NoError(t, err)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(func() { _ = server.Close() })

	return listener.Addr()
}

// Helper function to send a serialized command and receive the deserialized response
func sendCommand(t *testing.T, conn net.Conn, dec *msgpack.Decoder, command map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, err := utils.EncodeRequest(command)
	require.NoError(t, err)
	_, err = conn.Write(data)
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	response, err := utils.ReadMessage(dec)
	require.NoError(t, err)
	return response
}

func TestServerListCommands(t *testing.T) {
	conn, err := net.Dial("tcp", startServer(t).String())
	require.NoError(t, err)
	defer conn.Close()
	dec := utils.NewMessageDecoder(conn)

	resp := sendCommand(t, conn, dec, map[string]interface{}{"command": "PING"})
	assert.Equal(t, "PONG", resp["message"])

	for _, v := range []string{"zero", "one", "two", "three"} {
		resp = sendCommand(t, conn, dec, map[string]interface{}{"command": "PUSH", "key": "k", "value": v})
		assert.Equal(t, "OK", resp["status"])
	}

	resp = sendCommand(t, conn, dec, map[string]interface{}{"command": "GET", "key": "k", "index": 3})
	assert.Equal(t, "three", resp["value"])

	resp = sendCommand(t, conn, dec, map[string]interface{}{"command": "RANGE", "key": "k"})
	assert.Equal(t, []interface{}{"zero", "one", "two", "three"}, resp["value"])

	resp = sendCommand(t, conn, dec, map[string]interface{}{"command": "LEN", "key": "k"})
	assert.Equal(t, int64(4), resp["value"])
}

func TestServerReportsErrorsAndKeepsConnection(t *testing.T) {
	conn, err := net.Dial("tcp", startServer(t).String())
	require.NoError(t, err)
	defer conn.Close()
	dec := utils.NewMessageDecoder(conn)

	resp := sendCommand(t, conn, dec, map[string]interface{}{"command": "GET", "key": "k", "index": 0})
	assert.Equal(t, "ERROR", resp["status"])
	assert.Contains(t, resp["message"], "index 0 is out of bounds")

	resp = sendCommand(t, conn, dec, map[string]interface{}{"command": "NOPE"})
	assert.Equal(t, "ERROR", resp["status"])

	resp = sendCommand(t, conn, dec, map[string]interface{}{"command": "PING"})
	assert.Equal(t, "OK", resp["status"])
}

func TestNewServerRequiresDatabase(t *testing.T) {
	_, err := NewServer("0", &core.CommandHandler{})
	assert.Error(t, err)
}

func TestServerKeepsConnectionAfterNonMapRequest(t *testing.T) {
	conn, err := net.Dial("tcp", startServer(t).String())
	require.NoError(t, err)
	defer conn.Close()
	dec := utils.NewMessageDecoder(conn)

	data, err := msgpack.Marshal("PING")
	require.NoError(t, err)
	_, err = conn.Write(data)
	require.NoError(t, err)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	resp, err := utils.ReadMessage(dec)
	require.NoError(t, err)
	assert.Equal(t, "ERROR", resp["status"])
	assert.Equal(t, "request must be a map", resp["message"])

	resp = sendCommand(t, conn, dec, map[string]interface{}{"command": "PING"})
	assert.Equal(t, "PONG", resp["message"])
}
