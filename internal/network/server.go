package network

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"

	"github.com/Adnangad/RDBMS/internal/engine"
	"github.com/Adnangad/RDBMS/internal/executor"
)

type Request struct {
	Query string `json:"query"`
}

// Start starts the TCP database server. All connections share the one
// engine, which serializes statements internally.
func Start(port int, eng *engine.Engine) {
	addr := fmt.Sprintf(":%d", port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		slog.Error("Failed to bind to port", "port", port, "error", err)
		return
	}
	defer listener.Close()

	slog.Info("Running on port", "port", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			slog.Error("Failed to accept connection", "error", err)
			continue
		}
		go handleConnection(conn, eng)
	}
}

func handleConnection(conn net.Conn, eng *engine.Engine) {
	defer conn.Close()

	// Use Decoder instead of Scanner for network streams
	decoder := json.NewDecoder(conn)
	encoder := json.NewEncoder(conn)

	for {
		var req Request
		if err := decoder.Decode(&req); err != nil {
			if err == io.EOF {
				return // Connection closed gracefully
			}
			slog.Error("decode error", "error", err)

			errResult := &executor.Result{
				Error: fmt.Sprintf("Invalid request format: %v", err),
			}
			_ = encoder.Encode(errResult)
			return
		}

		if req.Query == "exit" || req.Query == "\\q" {
			return
		}

		result, err := eng.Execute(req.Query)
		if err != nil {
			// Return error as a Result object
			errResult := &executor.Result{
				Error: err.Error(),
			}
			if err := encoder.Encode(errResult); err != nil {
				slog.Error("encode error", "error", err)
				return
			}
			continue
		}

		if err := encoder.Encode(result); err != nil {
			slog.Error("encode error", "error", err)
			return
		}
	}
}
