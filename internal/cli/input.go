// Package cli handles command-line REPL input for interactive board queries.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tilegraph/boggle/pkg/board"
	"github.com/tilegraph/boggle/pkg/dictionary"
	"github.com/tilegraph/boggle/pkg/solver"
)

// InputHandler reads "WIDTH HEIGHT BOARD" lines from stdin and prints the
// words found on each board, against a loaded dictionary store.
type InputHandler struct {
	store        *dictionary.Store
	requestCount int
}

// NewInputHandler builds an InputHandler bound to a loaded dictionary store.
func NewInputHandler(store *dictionary.Store) *InputHandler {
	return &InputHandler{store: store}
}

// Start begins the interface loop. It continuously prompts for input, reads
// a line from stdin, and passes it to handleLine for processing. The loop
// terminates if an error occurs while reading from stdin.
func (h *InputHandler) Start() error {
	log.Print("boggle CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("enter a query as: WIDTH HEIGHT BOARD  (Ctrl+C to exit):")

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleLine(line)
	}
}

// handleLine parses one "WIDTH HEIGHT BOARD" query and prints the words
// found, their count, score, and the time taken.
func (h *InputHandler) handleLine(line string) {
	h.requestCount++

	fields := strings.Fields(line)
	if len(fields) != 3 {
		log.Errorf("expected 'WIDTH HEIGHT BOARD', got: %q", line)
		return
	}

	width, err := strconv.Atoi(fields[0])
	if err != nil {
		log.Errorf("invalid width: %q", fields[0])
		return
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil {
		log.Errorf("invalid height: %q", fields[1])
		return
	}

	b, err := board.Prepare([]byte(fields[2]), width, height)
	if err != nil {
		log.Errorf("invalid board: %v", err)
		return
	}

	start := time.Now()
	result, err := solver.FindWords(h.store, b)
	if err != nil {
		log.Errorf("solve failed: %v", err)
		return
	}
	elapsed := time.Since(start)
	log.Debugf("took [ %v ] for board %q", elapsed, fields[2])

	if result.Count == 0 {
		log.Warnf("no words found on board %q", fields[2])
		solver.FreeWords(result)
		return
	}

	log.Printf("found %d words (score %d) on board %q:", result.Count, result.Score, fields[2])
	for i, w := range result.Words {
		colored := fmt.Sprintf("\033[38;5;75m%s\033[0m", w)
		log.Printf("%2d. %-20s (score: %d)", i+1, colored, solver.ScoreForLength(len(w)))
	}
	solver.FreeWords(result)
}
