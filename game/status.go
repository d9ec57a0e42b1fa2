package game

import "fmt"

// Status is the coarse state of a run.
type Status uint8

const (
	StatusReady Status = iota
	StatusPlaying
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game_over"
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

// Cause records why a run ended.
type Cause uint8

const (
	CauseNone Cause = iota
	CauseFell
	CauseSpike
)

func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseFell:
		return "fell"
	case CauseSpike:
		return "spike"
	}
	return fmt.Sprintf("cause(%d)", uint8(c))
}

// EventStatus is the world event type pushed on every status change. Its Data
// is a StatusChange.
const EventStatus = "status"

type StatusChange struct {
	From  Status
	To    Status
	Cause Cause
}
