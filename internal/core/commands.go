package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vskvj3/dllist/internal/utils"
)

// ErrUnknownCommand is returned for commands the handler does not implement.
var ErrUnknownCommand = errors.New("unknown command")

type CommandHandler struct {
	Database *Database
}

// Create a new CommandHandler instance
func NewCommandHandler(db *Database) *CommandHandler {
	return &CommandHandler{Database: db}
}

// HandleCommand processes a client request and returns the response map.
// Failures come back as errors; the caller reports them to the client.
func (h *CommandHandler) HandleCommand(request map[string]interface{}) (map[string]interface{}, error) {
	logger := utils.GetLogger()

	command, ok := request["command"].(string)
	if !ok {
		return nil, errors.New("invalid or missing 'command' field")
	}
	command = strings.ToUpper(command)
	logger.Debug("Handling command", "command", command)

	switch command {
	case "PING":
		return map[string]interface{}{"status": "OK", "message": "PONG"}, nil

	case "ECHO":
		message, ok := request["message"].(string)
		if !ok {
			return nil, errors.New("ECHO requires a 'message' field")
		}
		return map[string]interface{}{"status": "OK", "message": message}, nil

	case "PUSH":
		key, value, err := keyValue(command, request)
		if err != nil {
			return nil, err
		}
		size, err := h.Database.Push(key, value)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK", "value": size}, nil

	case "INSERT":
		key, value, err := keyValue(command, request)
		if err != nil {
			return nil, err
		}
		index, err := indexField(command, request)
		if err != nil {
			return nil, err
		}
		size, err := h.Database.Insert(key, index, value)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK", "value": size}, nil

	case "GET":
		key, index, err := keyIndex(command, request)
		if err != nil {
			return nil, err
		}
		value, err := h.Database.Get(key, index)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK", "value": value}, nil

	case "HEAD", "TAIL":
		key, err := keyField(command, request)
		if err != nil {
			return nil, err
		}
		lookup := h.Database.Head
		if command == "TAIL" {
			lookup = h.Database.Tail
		}
		value, found, err := lookup(key)
		if err != nil {
			return nil, err
		}
		return lookupResponse(value, found), nil

	case "LEN":
		key, err := keyField(command, request)
		if err != nil {
			return nil, err
		}
		size, err := h.Database.Len(key)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK", "value": size}, nil

	case "CONTAINS":
		key, value, err := keyValue(command, request)
		if err != nil {
			return nil, err
		}
		found, ok, err := h.Database.Contains(key, value)
		if err != nil {
			return nil, err
		}
		return lookupResponse(found, ok), nil

	case "INDEXOF":
		key, value, err := keyValue(command, request)
		if err != nil {
			return nil, err
		}
		index, err := h.Database.IndexOf(key, value)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK", "value": index}, nil

	case "REMOVE":
		key, index, err := keyIndex(command, request)
		if err != nil {
			return nil, err
		}
		value, err := h.Database.RemoveAt(key, index)
		if err != nil {
			return nil, err
		}
		logger.Debug("Removed element", "key", key, "index", index)
		return map[string]interface{}{"status": "OK", "value": value}, nil

	case "REMOVEVAL":
		key, value, err := keyValue(command, request)
		if err != nil {
			return nil, err
		}
		removed, ok, err := h.Database.RemoveValue(key, value)
		if err != nil {
			return nil, err
		}
		return lookupResponse(removed, ok), nil

	case "RANGE":
		key, err := keyField(command, request)
		if err != nil {
			return nil, err
		}
		values, err := h.Database.Range(key)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK", "value": values}, nil

	case "DUMP":
		key, err := keyField(command, request)
		if err != nil {
			return nil, err
		}
		detailed, _ := request["detailed"].(bool)
		out, err := h.Database.Render(key, detailed)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK", "message": out}, nil

	case "DEL":
		key, err := keyField(command, request)
		if err != nil {
			return nil, err
		}
		if !h.Database.Delete(key) {
			return map[string]interface{}{"status": "NOT_FOUND"}, nil
		}
		return map[string]interface{}{"status": "OK"}, nil

	case "KEYS":
		return map[string]interface{}{"status": "OK", "value": h.Database.Keys()}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, command)
}

// lookupResponse builds the response for lookups that may miss.
func lookupResponse(value string, found bool) map[string]interface{} {
	if !found {
		return map[string]interface{}{"status": "NOT_FOUND"}
	}
	return map[string]interface{}{"status": "OK", "value": value}
}

func keyField(command string, request map[string]interface{}) (string, error) {
	key, ok := request["key"].(string)
	if !ok {
		return "", fmt.Errorf("%s requires a 'key' field", command)
	}
	return key, nil
}

func keyValue(command string, request map[string]interface{}) (string, string, error) {
	key, keyOk := request["key"].(string)
	value, valueOk := request["value"].(string)
	if !keyOk || !valueOk {
		return "", "", fmt.Errorf("%s requires 'key', 'value' fields", command)
	}
	return key, value, nil
}

func keyIndex(command string, request map[string]interface{}) (string, int, error) {
	key, err := keyField(command, request)
	if err != nil {
		return "", 0, err
	}
	index, err := indexField(command, request)
	if err != nil {
		return "", 0, err
	}
	return key, index, nil
}

// indexField reads the 'index' field, which may arrive as any msgpack
// integer or as a decimal string typed by a user.
func indexField(command string, request map[string]interface{}) (int, error) {
	raw, ok := request["index"]
	if !ok {
		return 0, fmt.Errorf("%s requires an 'index' field (integer)", command)
	}

	var index int64
	switch v := raw.(type) {
	case int:
		index = int64(v)
	case int8:
		index = int64(v)
	case int16:
		index = int64(v)
	case int32:
		index = int64(v)
	case int64:
		index = v
	case uint8:
		index = int64(v)
	case uint16:
		index = int64(v)
	case uint32:
		index = int64(v)
	case uint64:
		if v > math.MaxInt32 {
			return 0, fmt.Errorf("%s index %d is too large", command, v)
		}
		index = int64(v)
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("%s index %q is not an integer", command, v)
		}
		index = int64(parsed)
	default:
		return 0, fmt.Errorf("invalid type for %s index: %T", command, raw)
	}

	if index > math.MaxInt32 || index < math.MinInt32 {
		return 0, fmt.Errorf("%s index %d is too large", command, index)
	}
	return int(index), nil
}
