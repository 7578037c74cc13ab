package network

import (
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/vskvj3/dllist/internal/core"
	"github.com/vskvj3/dllist/internal/utils"
)

type Server struct {
	CommandHandler *core.CommandHandler
	Port           string

	mu       sync.Mutex
	listener net.Listener
	closed   bool
}

func NewServer(port string, handler *core.CommandHandler) (*Server, error) {
	if handler == nil || handler.Database == nil {
		return nil, fmt.Errorf("database is not initialized")
	}
	utils.GetLogger().Info("TCP server initialized", "port", port)
	return &Server{CommandHandler: handler, Port: port}, nil
}

// Start binds the configured port and serves until Close is called.
func (s *Server) Start() error {
	logger := utils.GetLogger()

	// Attempt to bind to the configured port
	listener, err := net.Listen("tcp", ":"+s.Port)
	if err != nil {
		logger.Warn("Port unavailable, selecting a random port", "port", s.Port)
		listener, err = net.Listen("tcp", ":0")
		if err != nil {
			return fmt.Errorf("error starting server: %w", err)
		}
	}
	return s.Serve(listener)
}

// Serve accepts connections on listener until Close is called.
func (s *Server) Serve(listener net.Listener) error {
	logger := utils.GetLogger()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		listener.Close()
		return net.ErrClosed
	}
	s.listener = listener
	s.mu.Unlock()
	defer listener.Close()

	logger.Info("Server is listening", "addr", listener.Addr().String())

	// Accept incoming connections
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			logger.Error("Error accepting connection", "err", err)
			continue
		}
		logger.Info("Accepted client", "remote", conn.RemoteAddr().String())
		go s.HandleConnection(conn)
	}
}

// Addr returns the bound address, or nil before Serve runs.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Close stops accepting connections.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.listener == nil {
		return nil
	}
	return s.listener.Close()
}

// Handle an incoming client connection
func (s *Server) HandleConnection(conn net.Conn) {
	logger := utils.GetLogger().With("remote", conn.RemoteAddr().String())
	defer func() {
		logger.Info("Client disconnected")
		conn.Close()
	}()

	dec := utils.NewMessageDecoder(conn)
	for {
		request, err := utils.ReadMessage(dec)
		if err != nil {
			if errors.Is(err, utils.ErrNotAMap) {
				logger.Warn("Rejected request", "err", err)
				s.sendError(conn, "request must be a map")
				continue
			}
			if errors.Is(err, io.EOF) {
				logger.Info("Client closed the connection")
			} else {
				logger.Error("Failed to decode request", "err", err)
				s.sendError(conn, "malformed request")
			}
			return
		}

		logger.Debug("Received request", "command", request["command"])

		response, err := s.CommandHandler.HandleCommand(request)
		if err != nil {
			s.sendError(conn, err.Error())
			continue
		}
		s.sendResponse(conn, response)
	}
}

// sendResponse serializes the response and sends it to the client
func (s *Server) sendResponse(conn net.Conn, response map[string]interface{}) {
	logger := utils.GetLogger()
	data, err := utils.EncodeResponse(response)
	if err != nil {
		logger.Error("Failed to encode response", "err", err)
		return
	}
	_, err = conn.Write(data)
	if err != nil {
		logger.Error("Failed to send response", "err", err)
	}
}

// sendError sends an error message to the client
func (s *Server) sendError(conn net.Conn, errorMessage string) {
	response := map[string]interface{}{"status": "ERROR", "message": errorMessage}
	s.sendResponse(conn, response)
}
