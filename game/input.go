package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is one player intent, decoupled from the key that produced it.
type Command uint8

const (
	CommandNone Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandJump
	CommandReset
)

func (c Command) String() string {
	switch c {
	case CommandNone:
		return "wait"
	case CommandMoveLeft:
		return "left"
	case CommandMoveRight:
		return "right"
	case CommandJump:
		return "jump"
	case CommandReset:
		return "reset"
	}
	return fmt.Sprintf("command(%d)", uint8(c))
}

// ParseCommand accepts the String form plus a few aliases.
func ParseCommand(s string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "wait", "none", "idle":
		return CommandNone, nil
	case "left":
		return CommandMoveLeft, nil
	case "right":
		return CommandMoveRight, nil
	case "jump", "space", "up":
		return CommandJump, nil
	case "reset", "r", "restart":
		return CommandReset, nil
	}
	return CommandNone, fmt.Errorf("game: unknown command %q", s)
}

// ParseScript turns "right*30,jump,wait*10" into one command per tick.
func ParseScript(s string) ([]Command, error) {
	var out []Command
	if strings.TrimSpace(s) == "" {
		return out, nil
	}
	for _, item := range strings.Split(s, ",") {
		name, count := item, 1
		if i := strings.IndexByte(item, '*'); i >= 0 {
			n, err := strconv.Atoi(strings.TrimSpace(item[i+1:]))
			if err != nil || n < 0 {
				return nil, fmt.Errorf("game: bad repeat in %q", item)
			}
			name, count = item[:i], n
		}
		cmd, err := ParseCommand(name)
		if err != nil {
			return nil, err
		}
		for j := 0; j < count; j++ {
			out = append(out, cmd)
		}
	}
	return out, nil
}

// KeyRepeat mimics OS keydown repeat in ticks: fire on the first tick a key
// is held, then every Interval ticks once Delay ticks have passed.
type KeyRepeat struct {
	Delay    int
	Interval int
}

// DefaultKeyRepeat is roughly 500ms delay and 30Hz repeat at 60 TPS.
var DefaultKeyRepeat = KeyRepeat{Delay: 30, Interval: 2}

// Fires reports whether a key held for duration ticks should fire this tick.
func (r KeyRepeat) Fires(duration int) bool {
	if duration <= 0 {
		return false
	}
	if duration == 1 {
		return true
	}
	if r.Interval <= 0 || duration <= r.Delay {
		return false
	}
	return (duration-r.Delay)%r.Interval == 0
}
