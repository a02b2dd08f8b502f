package hub

import (
	"time"

	"github.com/jasonrohrer/Chessamphetamine-sub000/internal/input"
)

// WSMessage represents a WebSocket message sent from server to overlay.
type WSMessage struct {
	Type      string              `json:"type"`      // "full" or "delta"
	Seq       int64               `json:"seq"`       // Sequence number for ordering
	Timestamp int64               `json:"timestamp"` // Unix timestamp in milliseconds
	Data      *input.Snapshot     `json:"data,omitempty"`
	Changes   *input.DeltaChanges `json:"changes,omitempty"`
}

// NewFullMessage creates a "full" type message containing a complete snapshot.
func NewFullMessage(seq int64, s *input.Snapshot) *WSMessage {
	return &WSMessage{
		Type:      "full",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Data:      s,
	}
}

// NewDeltaMessage creates a "delta" type message containing only changed groups.
func NewDeltaMessage(seq int64, changes *input.DeltaChanges) *WSMessage {
	return &WSMessage{
		Type:      "delta",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Changes:   changes,
	}
}

// ClientMessage represents a message sent from the overlay to the server.
// "capture" arms the live-remap press capture.
type ClientMessage struct {
	Type string `json:"type"`
}
