package ipc

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"sync"

	"github.com/remuco-cli/remuco/log"
)

const (
	frameBuffer  = 256
	maxFrameSize = 4 << 20

	// DefaultPort is the player's tcp port when an address omits it.
	DefaultPort = "9667"
)

// Client is one connection to the player.
type Client struct {
	conn    net.Conn
	writeMu sync.Mutex
	enc     *json.Encoder

	mu            sync.Mutex
	nextID        uint64
	pending       map[uint64]*Result
	subscriptions map[Broadcast]func(*Result)
	onDisconnect  []func()
	disconnected  bool

	frames    chan *Frame
	done      chan struct{}
	closeOnce sync.Once
}

// Connect dials address, which is unix:///path, tcp://host[:port] or a bare socket path.
func Connect(ctx context.Context, address string) (*Client, error) {
	network, addr, err := parseAddress(address)
	if err != nil {
		return nil, err
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, fmt.Errorf("connect to player at %s: %w", address, err)
	}

	log.Infof("connected to player at %s", address)
	return NewClient(conn), nil
}

func parseAddress(address string) (network, addr string, err error) {
	u, err := url.Parse(address)
	if err != nil {
		return "", "", fmt.Errorf("parse player address: %w", err)
	}

	switch u.Scheme {
	case "unix":
		if u.Path == "" {
			return "", "", fmt.Errorf("player address %q has no socket path", address)
		}
		return "unix", u.Path, nil
	case "tcp":
		if u.Hostname() == "" {
			return "", "", fmt.Errorf("player address %q has no host", address)
		}
		port := u.Port()
		if port == "" {
			port = DefaultPort
		}
		return "tcp", net.JoinHostPort(u.Hostname(), port), nil
	case "":
		if u.Path == "" {
			return "", "", errors.New("player address is empty")
		}
		return "unix", u.Path, nil
	default:
		return "", "", fmt.Errorf("unsupported player address scheme %q", u.Scheme)
	}
}

// NewClient wraps an established connection and starts reading from it.
func NewClient(conn net.Conn) *Client {
	c := &Client{
		conn:          conn,
		enc:           json.NewEncoder(conn),
		pending:       make(map[uint64]*Result),
		subscriptions: make(map[Broadcast]func(*Result)),
		frames:        make(chan *Frame, frameBuffer),
		done:          make(chan struct{}),
	}

	go c.read()
	return c
}

// read decodes frames until the connection fails, then closes the frame channel.
func (c *Client) read() {
	defer close(c.frames)

	scanner := bufio.NewScanner(c.conn)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFrameSize)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		frame := new(Frame)
		if err := json.Unmarshal(line, frame); err != nil {
			log.Warnf("ipc: skipping malformed frame: %v", err)
			continue
		}

		select {
		case c.frames <- frame:
		case <-c.done:
			return
		}
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, net.ErrClosed) && !errors.Is(err, io.ErrClosedPipe) {
		log.Warnf("ipc: read: %v", err)
	}
}

// Frames is closed once the connection is gone.
// Receive from it in a select and hand every receive to Dispatch.
func (c *Client) Frames() <-chan *Frame {
	return c.frames
}

// Dispatch completes the request a frame answers or runs the broadcast handler.
// ok is the second value of the channel receive; false marks the disconnect.
func (c *Client) Dispatch(f *Frame, ok bool) {
	if !ok {
		c.disconnect()
		return
	}

	if f.IsBroadcast() {
		c.mu.Lock()
		handler := c.subscriptions[f.Event]
		c.mu.Unlock()

		if handler == nil {
			log.Debugf("ipc: unhandled broadcast %s", f.Event)
			return
		}

		r := newResult(string(f.Event))
		r.notifier = handler
		r.complete(f)
		r.Release()
		return
	}

	c.mu.Lock()
	r, found := c.pending[f.RequestID]
	delete(c.pending, f.RequestID)
	c.mu.Unlock()

	if !found {
		log.Debugf("ipc: reply for unknown request #%d", f.RequestID)
		return
	}

	log.Tracef("ipc: <- %s #%d", r.op, f.RequestID)
	r.complete(f)
}

// Iterate waits for one frame of this connection and dispatches it.
// Nothing but this connection is serviced while it blocks.
func (c *Client) Iterate(ctx context.Context) error {
	select {
	case f, ok := <-c.frames:
		c.Dispatch(f, ok)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) disconnect() {
	c.mu.Lock()
	if c.disconnected {
		c.mu.Unlock()
		return
	}
	c.disconnected = true
	callbacks := c.onDisconnect
	c.pending = make(map[uint64]*Result)
	c.mu.Unlock()

	log.Warn("ipc: player disconnected")
	for _, fn := range callbacks {
		fn()
	}
}

// Disconnected reports whether Dispatch has observed the end of the connection.
func (c *Client) Disconnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disconnected
}

// OnDisconnect registers fn to run once, from Dispatch, when the connection ends.
func (c *Client) OnDisconnect(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onDisconnect = append(c.onDisconnect, fn)
}

// Subscribe asks the player for kind broadcasts and routes them to handler.
func (c *Client) Subscribe(kind Broadcast, handler func(*Result)) {
	c.mu.Lock()
	c.subscriptions[kind] = handler
	c.mu.Unlock()

	c.request("broadcast", string(kind)).Discard()
}

// Forget stops waiting for the reply to r. A reply that still arrives is dropped.
func (c *Client) Forget(r *Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending[r.id] == r {
		delete(c.pending, r.id)
	}
}

// Pending is the number of requests still waiting for a reply.
func (c *Client) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Close stops the reader and closes the connection.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		err = c.conn.Close()
	})
	return err
}

func (c *Client) request(op string, args ...any) *Result {
	c.mu.Lock()
	if c.disconnected {
		c.mu.Unlock()
		return failedResult(op, ErrDisconnected)
	}
	c.nextID++
	id := c.nextID
	r := newResult(op)
	r.id = id
	c.pending[id] = r
	c.mu.Unlock()

	c.writeMu.Lock()
	err := c.enc.Encode(request{Command: append([]any{op}, args...), RequestID: id})
	c.writeMu.Unlock()

	if err != nil {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
		return failedResult(op, fmt.Errorf("write %s: %w", op, err))
	}

	log.Tracef("ipc: -> %s #%d", op, id)
	return r
}
