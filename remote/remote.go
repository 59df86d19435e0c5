// Package remote defines the remote-control side of the bridge: the callback
// table a player proxy implements, the server it talks to, and the data
// exchanged with remote clients.
package remote

import (
	"fmt"
	"strings"

	"github.com/remuco-cli/remuco/status"
)

// Callbacks is implemented by the player proxy. A Server only ever invokes
// them from the proxy's own goroutine, by handing it a Call.
type Callbacks interface {
	Synchronize(dst *status.Snapshot)
	GetLibrary() Library
	GetPlob(id string) *Plob
	GetPloblist(id string) []string
	PlayPloblist(id string)
	SimpleControl(cmd Command, param int)
	Notify(ev Event)
}

// Call is a unit of work a server wants run against the callbacks.
type Call func(Callbacks)

// Server is the remote-control server as seen by the player proxy.
type Server interface {
	// Notify raises the "something changed" edge. Remote clients pull a
	// fresh snapshot in response.
	Notify()

	// Shutdown starts an orderly teardown. It returns immediately and is
	// answered later by EventDown. Calling it more than once is harmless.
	Shutdown()

	Calls() <-chan Call
	Events() <-chan Event
}

// Event is a server lifecycle event.
type Event int

const (
	// EventError means the server failed and should be shut down.
	EventError Event = iota + 1
	// EventDown means the shutdown is complete.
	EventDown
)

func (e Event) String() string {
	switch e {
	case EventError:
		return "error"
	case EventDown:
		return "down"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// Command is a simple control command sent by a remote client.
type Command int

const (
	CommandJump Command = iota + 1
	CommandNext
	CommandPrev
	CommandPlayPause
	CommandStop
	CommandRestart
	CommandVolume
	CommandRate
)

var commandNames = map[Command]string{
	CommandJump:      "jump",
	CommandNext:      "next",
	CommandPrev:      "prev",
	CommandPlayPause: "play-pause",
	CommandStop:      "stop",
	CommandRestart:   "restart",
	CommandVolume:    "volume",
	CommandRate:      "rate",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(c))
}

// ParseCommand resolves a command by name, case-insensitively.
func ParseCommand(name string) (Command, error) {
	for cmd, n := range commandNames {
		if strings.EqualFold(n, name) {
			return cmd, nil
		}
	}
	return 0, fmt.Errorf("unknown command %q", name)
}

// CommandNames lists every command name.
func CommandNames() []string {
	names := make([]string, 0, len(commandNames))
	for cmd := CommandJump; cmd <= CommandRate; cmd++ {
		names = append(names, commandNames[cmd])
	}
	return names
}
