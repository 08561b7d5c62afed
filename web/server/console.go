package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/df07/go-raycaster/pkg/core"
)

// ConsoleMessage represents a console message with timestamp
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger by sending messages to a console channel
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		renderID:    renderID,
		consoleChan: consoleChan,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	// Also write to stdout for server logs
	fmt.Printf("[%s] %s", wl.renderID, message)

	// Send to web console if channel is available (non-blocking)
	if wl.consoleChan != nil {
		select {
		case wl.consoleChan <- ConsoleMessage{
			Message:   message,
			Timestamp: time.Now(),
			Level:     levelOf(message),
		}:
		default:
			// Channel full, skip (don't block)
		}
	}
}

// levelOf guesses a severity from the message text
func levelOf(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "error"), strings.Contains(lower, "failed"):
		return "error"
	case strings.Contains(lower, "cancel"), strings.Contains(lower, "warning"):
		return "warning"
	default:
		return "info"
	}
}

// forwardConsole publishes console messages to the hub until the channel is closed
func forwardConsole(hub *Hub, renderID string, consoleChan <-chan ConsoleMessage, done chan<- struct{}) {
	defer close(done)
	for msg := range consoleChan {
		hub.Publish(Event{
			Type:      "console",
			RenderID:  renderID,
			Message:   msg.Message,
			Level:     msg.Level,
			Timestamp: msg.Timestamp,
		})
	}
}
