package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/senso-ai/senso-mcp/internal/client"
	"github.com/senso-ai/senso-mcp/internal/config"
	"github.com/senso-ai/senso-mcp/internal/logger"
	"github.com/senso-ai/senso-mcp/internal/mcp"
)

// maxLineBytes bounds a single request line. Inline file uploads ride in
// tool arguments, so the bound is generous.
const maxLineBytes = 10 << 20

func main() {
	// Read from stdin, write to stdout
	// IMPORTANT: Only JSON should go to stdout for MCP protocol
	// All errors/logs go to stderr
	cfg, err := config.Load(config.GetConfigPath("config.yml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Must(cfg.Logging.Level, cfg.Logging.Format)
	defer func() { _ = log.Sync() }()

	senso := client.NewWithConfig(
		cfg.API.BaseURL,
		cfg.API.Key,
		time.Duration(cfg.API.TimeoutSeconds)*time.Second,
		log,
	)

	server := mcp.NewServer(senso, log)

	log.Info("senso-mcp server starting",
		logger.String("base_url", cfg.API.BaseURL),
		logger.Int("timeout_seconds", cfg.API.TimeoutSeconds),
	)

	run(server, os.Stdin, os.Stdout, log)
}

// run processes newline-delimited requests until stdin closes. Each line
// is parsed independently so a malformed line is discarded with a
// ParseError response and the stream resumes on the next line.
// MCP clients expect compact JSON, so no indentation on the encoder.
func run(server *mcp.Server, in io.Reader, out io.Writer, log logger.Logger) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	encoder := json.NewEncoder(out)
	ctx := context.Background()

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var request mcp.Request
		if err := json.Unmarshal(line, &request); err != nil {
			// For parse errors we can't recover the request ID.
			// JSON-RPC requires ID to be string or number, not null
			sendError(encoder, 0, mcp.ParseError, "Failed to parse request", log)
			continue
		}

		// JSON-RPC notifications (requests without ID) don't require responses
		response := server.HandleRequest(ctx, &request)
		if response == nil || request.ID == nil {
			continue
		}
		if response.ID == nil {
			response.ID = request.ID
		}
		if encodeErr := encoder.Encode(response); encodeErr != nil {
			log.Error("failed to encode response", logger.Error(encodeErr))
		}
	}

	if err := scanner.Err(); err != nil {
		log.Error("failed to read request stream", logger.Error(err))
	}
}

func sendError(encoder *json.Encoder, id any, code int, message string, log logger.Logger) {
	errorResponse := mcp.ErrorResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: mcp.ErrorObject{
			Code:    code,
			Message: message,
		},
	}
	if encodeErr := encoder.Encode(errorResponse); encodeErr != nil {
		log.Error("failed to encode error response", logger.Error(encodeErr))
	}
}
