// Package ipctest provides a scripted in-memory player for tests of ipc clients.
package ipctest

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/samber/lo"
)

// Request is one command received by the fake player.
type Request struct {
	ID      uint64
	Command string
	Args    []any
}

// Reply is what the fake player answers to a command.
type Reply struct {
	Data  any
	Error string
}

// Player speaks the player side of the wire protocol over a net.Pipe.
type Player struct {
	conn net.Conn

	writeMu sync.Mutex
	enc     *json.Encoder

	mu       sync.Mutex
	replies  map[string]Reply
	held     map[string]bool
	requests []Request
}

// New returns the fake player and the client end of its connection.
//
// Commands without a scripted reply are answered with success and no data.
func New() (*Player, net.Conn) {
	server, client := net.Pipe()

	p := &Player{
		conn:    server,
		enc:     json.NewEncoder(server),
		replies: make(map[string]Reply),
		held:    make(map[string]bool),
	}

	go p.serve()
	return p, client
}

// Reply scripts the answer to every future command.
func (p *Player) Reply(command string, reply Reply) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.replies[command] = reply
	delete(p.held, command)
}

// Hold makes the player record command without answering it.
func (p *Player) Hold(command string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.held[command] = true
}

// Requests returns every command received so far, in order.
func (p *Player) Requests() []Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Request(nil), p.requests...)
}

// Commands returns the names of every command received so far, excluding broadcast subscriptions.
func (p *Player) Commands() []string {
	return lo.FilterMap(p.Requests(), func(r Request, _ int) (string, bool) {
		return r.Command, r.Command != "broadcast"
	})
}

// Find returns the last request for command.
func (p *Player) Find(command string) (Request, bool) {
	r, _, ok := lo.FindLastIndexOf(p.Requests(), func(r Request) bool {
		return r.Command == command
	})
	return r, ok
}

// WaitFor blocks until command has been received or timeout passes.
func (p *Player) WaitFor(command string, timeout time.Duration) (Request, error) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if r, ok := p.Find(command); ok {
			return r, nil
		}
		time.Sleep(2 * time.Millisecond)
	}
	return Request{}, fmt.Errorf("no %s request within %s", command, timeout)
}

// Respond answers a held request.
func (p *Player) Respond(id uint64, reply Reply) error {
	return p.write(map[string]any{
		"request_id": id,
		"error":      lo.Ternary(reply.Error == "", "success", reply.Error),
		"data":       reply.Data,
	})
}

// Broadcast pushes an unsolicited notification.
func (p *Player) Broadcast(kind string, data any) error {
	return p.write(map[string]any{"event": kind, "data": data})
}

// Close drops the connection, which the client observes as a disconnect.
func (p *Player) Close() error {
	return p.conn.Close()
}

func (p *Player) write(v any) error {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()
	return p.enc.Encode(v)
}

func (p *Player) serve() {
	scanner := bufio.NewScanner(p.conn)
	for scanner.Scan() {
		var req struct {
			Command   []any  `json:"command"`
			RequestID uint64 `json:"request_id"`
		}
		if err := json.Unmarshal(scanner.Bytes(), &req); err != nil || len(req.Command) == 0 {
			continue
		}

		name, _ := req.Command[0].(string)
		r := Request{ID: req.RequestID, Command: name, Args: req.Command[1:]}

		p.mu.Lock()
		p.requests = append(p.requests, r)
		held := p.held[name]
		reply := p.replies[name]
		p.mu.Unlock()

		if held {
			continue
		}

		if err := p.Respond(r.ID, reply); err != nil {
			return
		}
	}
}
