// Package server implements MessagePack IPC for board-solve requests.
package server

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"reflect"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tilegraph/boggle/pkg/board"
	"github.com/tilegraph/boggle/pkg/config"
	"github.com/tilegraph/boggle/pkg/dictionary"
	"github.com/tilegraph/boggle/pkg/solver"
)

// Server handles solve requests and dictionary stats over msgpack IPC.
type Server struct {
	store      *dictionary.Store
	config     *config.Config
	configPath string

	decoder      *msgpack.Decoder
	writeMutex   sync.Mutex
	requestCount int64
}

// NewServer creates a server bound to a loaded dictionary store.
func NewServer(store *dictionary.Store, cfg *config.Config, configPath string) *Server {
	server := &Server{
		store:      store,
		config:     cfg,
		configPath: configPath,
		decoder:    msgpack.NewDecoder(os.Stdin),
	}
	log.Debugf("Creating server with %d loaded words", store.WordCount())
	return server
}

// reloadConfig reloads configuration from the TOML file.
func (s *Server) reloadConfig() error {
	newConfig, err := config.LoadConfig(s.configPath)
	if err != nil {
		log.Warnf("Failed to reload config, keeping current: %v", err)
		return err
	}
	s.config = newConfig
	log.Debugf("Config reloaded from: %s", s.configPath)
	return nil
}

// Start begins listening for solve requests on stdin.
func (s *Server) Start() error {
	log.Debug("Starting MessagePack solve server")
	for {
		if err := s.processRequest(); err != nil {
			if err == io.EOF {
				log.Debug("Client disconnected")
				return nil
			}
			continue
		}
	}
}

// processRequest handles a single incoming message.
func (s *Server) processRequest() error {
	s.requestCount++
	if s.requestCount%100 == 0 {
		s.reloadConfig()
	}

	var raw map[string]interface{}
	log.Debug("Waiting for request...")
	if err := s.decoder.Decode(&raw); err != nil {
		log.Debugf("Decode error: %v", err)
		return err
	}

	if action, exists := raw["action"]; exists {
		return s.processStatsRequest(raw, action.(string))
	}

	var req SolveRequest
	if id, ok := raw["id"].(string); ok {
		req.ID = id
	}
	if boardStr, ok := raw["b"].(string); ok {
		req.Board = boardStr
	}
	// msgpack decodes integers into interface{} at their wire width
	// (int8, uint16, int64, ...), so accept any numeric kind.
	toInt := func(v interface{}) int {
		rv := reflect.ValueOf(v)
		switch {
		case rv.CanInt():
			return int(rv.Int())
		case rv.CanUint():
			return int(rv.Uint())
		case rv.CanFloat():
			return int(rv.Float())
		}
		return 0
	}
	req.Width = toInt(raw["w"])
	req.Height = toInt(raw["h"])

	log.Debugf("Received solve request: w=%d h=%d board=%q", req.Width, req.Height, req.Board)

	b, err := board.Prepare([]byte(req.Board), req.Width, req.Height)
	if err != nil {
		return s.sendError(req.ID, fmt.Sprintf("invalid board: %v", err), 400)
	}

	start := time.Now()
	result, err := solver.FindWords(s.store, b)
	if err != nil {
		return s.sendError(req.ID, err.Error(), 500)
	}
	elapsed := time.Since(start)

	words := make([]string, len(result.Words))
	copy(words, result.Words)
	resp := &SolveResponse{
		ID:        req.ID,
		Words:     words,
		Count:     result.Count,
		Score:     result.Score,
		TimeTaken: elapsed.Microseconds(),
	}
	solver.FreeWords(result)
	return s.sendResponse(resp)
}

// sendResponse encodes and writes a MessagePack response to stdout atomically.
func (s *Server) sendResponse(response any) error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	var buf bytes.Buffer
	encoder := msgpack.NewEncoder(&buf)
	if err := encoder.Encode(response); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	os.Stdout.Sync()
	return nil
}

// sendError sends a MessagePack error response.
func (s *Server) sendError(id string, message string, code int) error {
	return s.sendResponse(&SolveError{ID: id, Error: message, Code: code})
}

// processStatsRequest handles dictionary statistics requests.
func (s *Server) processStatsRequest(raw map[string]interface{}, action string) error {
	var id string
	if rawID, ok := raw["id"]; ok {
		id, _ = rawID.(string)
	}

	switch action {
	case "word_count":
		return s.sendResponse(&StatsResponse{ID: id, Status: "ok", WordCount: s.store.WordCount()})
	case "shard_loads":
		return s.sendResponse(&StatsResponse{ID: id, Status: "ok", ShardLoads: s.store.ShardLoads()})
	default:
		return s.sendResponse(&StatsResponse{ID: id, Status: "error", Error: fmt.Sprintf("unknown action: %s", action)})
	}
}
