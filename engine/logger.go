package engine

import (
	"fmt"
	"os"
	"time"
)

// SearchLogEntry is one completed-iteration record: enough to reconstruct
// what the search found and how it got there without replaying it.
type SearchLogEntry struct {
	Timestamp time.Time
	Move      string
	Depth     int
	Score     int
	Nodes     int64
	Elapsed   time.Duration
	BoardHex  string
}

// Logger writes search summaries to a file from a single background
// goroutine, so logging never blocks a search worker. A full queue drops
// the entry rather than stalling the caller.
type Logger struct {
	file  *os.File
	queue chan SearchLogEntry
	done  chan struct{}
}

// NewLogger opens (or creates) filename for append and starts its writer
// goroutine.
func NewLogger(filename string) (*Logger, error) {
	file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		file:  file,
		queue: make(chan SearchLogEntry, 256),
		done:  make(chan struct{}),
	}
	go l.writer()
	return l, nil
}

// Log enqueues a completed-iteration record. Safe to call from any
// worker goroutine.
func (l *Logger) Log(entry SearchLogEntry) {
	if l == nil {
		return
	}
	select {
	case l.queue <- entry:
	default:
		fmt.Fprintln(os.Stderr, "gomoku: search log queue full, dropping entry")
	}
}

// Close drains the queue and closes the underlying file. Blocks until
// the writer goroutine has flushed everything queued before the call.
func (l *Logger) Close() error {
	close(l.queue)
	<-l.done
	return l.file.Close()
}

func (l *Logger) writer() {
	for entry := range l.queue {
		line := fmt.Sprintf("%s | depth %2d | move %-7s | score %-8d | nodes %-10d | elapsed %s | board %s\n",
			entry.Timestamp.Format("2006-01-02 15:04:05.000"),
			entry.Depth,
			entry.Move,
			entry.Score,
			entry.Nodes,
			entry.Elapsed.Round(time.Millisecond),
			entry.BoardHex,
		)
		_, _ = l.file.WriteString(line)
	}
	close(l.done)
}
