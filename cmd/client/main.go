package main

import (
	"bufio"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/vskvj3/dllist/internal/utils"
)

// argParser parses and validates the command and its arguments
func argParser(input string) (map[string]interface{}, error) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil, fmt.Errorf("no command entered")
	}

	command := strings.ToUpper(parts[0])
	request := map[string]interface{}{
		"command": command,
	}
	args := parts[1:]

	switch command {
	case "PING", "KEYS":
		if len(args) > 0 {
			return nil, fmt.Errorf("%s does not require any arguments", command)
		}

	case "ECHO":
		// ECHO requires a message
		if len(args) < 1 {
			return nil, fmt.Errorf("ECHO requires a message")
		}
		request["message"] = strings.Join(args, " ")

	case "HEAD", "TAIL", "LEN", "RANGE", "DEL":
		if len(args) != 1 {
			return nil, fmt.Errorf("%s requires a key", command)
		}
		request["key"] = args[0]

	case "DUMP":
		if len(args) < 1 || len(args) > 2 {
			return nil, fmt.Errorf("DUMP requires a key and an optional 'detailed'")
		}
		request["key"] = args[0]
		if len(args) == 2 {
			if !strings.EqualFold(args[1], "detailed") {
				return nil, fmt.Errorf("unknown DUMP option: %s", args[1])
			}
			request["detailed"] = true
		}

	case "PUSH", "CONTAINS", "INDEXOF", "REMOVEVAL":
		if len(args) < 2 {
			return nil, fmt.Errorf("%s requires a key and value", command)
		}
		request["key"] = args[0]
		request["value"] = strings.Join(args[1:], " ")

	case "GET", "REMOVE":
		if len(args) != 2 {
			return nil, fmt.Errorf("%s requires a key and index", command)
		}
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("index must be an integer")
		}
		request["key"] = args[0]
		request["index"] = index

	case "INSERT":
		if len(args) < 3 {
			return nil, fmt.Errorf("INSERT requires a key, index and value")
		}
		index, err := strconv.Atoi(args[1])
		if err != nil {
			return nil, fmt.Errorf("index must be an integer")
		}
		request["key"] = args[0]
		request["index"] = index
		request["value"] = strings.Join(args[2:], " ")

	default:
		// Unknown command
		return nil, fmt.Errorf("unknown command: %s", command)
	}

	return request, nil
}

func main() {
	addr := flag.String("addr", "localhost:6379", "Server address")
	flag.Parse()

	conn, err := net.Dial("tcp", *addr)
	if err != nil {
		fmt.Println("Error connecting to server:", err)
		return
	}
	defer conn.Close()

	fmt.Println("Connected to server. Type commands (e.g., PUSH key value, GET key 0, RANGE key) and press Enter.")
	reader := bufio.NewReader(os.Stdin)
	dec := utils.NewMessageDecoder(conn)

	for {
		fmt.Print(">> ")
		// Read user input
		input, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		// Parse and validate the input
		request, err := argParser(input)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}

		// Serialize the request using MessagePack
		data, err := utils.EncodeRequest(request)
		if err != nil {
			fmt.Println("Error serializing request:", err)
			continue
		}

		// Send the serialized request to the server
		if _, err = conn.Write(data); err != nil {
			fmt.Println("Error sending to server:", err)
			return
		}

		// Read the server's response
		serverResponse, err := utils.ReadMessage(dec)
		if err != nil {
			fmt.Println("Error reading from server:", err)
			return
		}

		// Print the server's response
		switch serverResponse["status"] {
		case "OK":
			if message, ok := serverResponse["message"].(string); ok {
				fmt.Println("Server:", message)
			} else if value, ok := serverResponse["value"]; ok {
				fmt.Println("Server:", value)
			} else {
				fmt.Println("Server: OK")
			}
		case "NOT_FOUND":
			fmt.Println("Server: (not found)")
		case "ERROR":
			fmt.Println("Server Error:", serverResponse["message"])
		default:
			fmt.Println("Unexpected server response:", serverResponse)
		}
	}
}
