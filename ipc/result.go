package ipc

import (
	"encoding/json"

	"github.com/remuco-cli/remuco/log"
	"github.com/samber/mo"
)

// Result is the future of one request or the payload of one broadcast.
type Result struct {
	id       uint64
	op       string
	ready    bool
	released bool
	err      error
	data     json.RawMessage
	notifier func(*Result)
}

func newResult(op string) *Result {
	return &Result{op: op}
}

// failedResult is a result that is ready from the start, e.g. when the request could not be written.
func failedResult(op string, err error) *Result {
	return &Result{op: op, ready: true, err: err}
}

func (r *Result) complete(f *Frame) {
	r.ready = true
	r.data = f.Data
	if f.failed() {
		r.err = &ResultError{Op: r.op, Message: f.Error}
	}
	if r.notifier != nil {
		r.notifier(r)
	}
}

// Op names the request this result belongs to.
func (r *Result) Op() string {
	return r.op
}

// Notify installs fn as the completion handler, replacing any previous one.
// If the result is already ready fn runs immediately.
func (r *Result) Notify(fn func(*Result)) {
	r.notifier = fn
	if r.ready {
		fn(r)
	}
}

// Discard drops interest in the reply. Errors are logged, then the result is released.
func (r *Result) Discard() {
	r.Notify(func(r *Result) {
		if r.IsError() {
			log.Warnf("ipc: %v", r.Err())
		}
		r.Release()
	})
}

func (r *Result) Ready() bool {
	return r.ready
}

func (r *Result) IsError() bool {
	return r.err != nil
}

func (r *Result) Err() error {
	return r.err
}

// Release frees the payload. Accessors fail with ErrReleased afterwards.
func (r *Result) Release() {
	r.released = true
	r.data = nil
}

func (r *Result) Released() bool {
	return r.released
}

func decode[T any](r *Result, want string) (T, error) {
	var v T
	switch {
	case r.released:
		return v, ErrReleased
	case !r.ready:
		return v, ErrNotReady
	case r.err != nil:
		return v, r.err
	}

	if len(r.data) == 0 || string(r.data) == "null" {
		return v, &DecodeError{Op: r.op, Want: want, Err: ErrMissingValue}
	}
	if err := json.Unmarshal(r.data, &v); err != nil {
		return v, &DecodeError{Op: r.op, Want: want, Err: err}
	}
	return v, nil
}

func (r *Result) Uint() (uint, error) {
	return decode[uint](r, "uint")
}

func (r *Result) Text() (string, error) {
	return decode[string](r, "string")
}

func (r *Result) UintList() ([]uint, error) {
	return decode[[]uint](r, "uint list")
}

func (r *Result) StringList() ([]string, error) {
	return decode[[]string](r, "string list")
}

func (r *Result) Dict() (Dict, error) {
	return decode[Dict](r, "dict")
}

// PlaybackStatus decodes the player's playback status enumeration.
func (r *Result) PlaybackStatus() (PlaybackStatus, error) {
	v, err := r.Uint()
	return PlaybackStatus(v), err
}

// Volume decodes a channel volume dict. Channels that are missing or malformed are absent.
func (r *Result) Volume() (Volume, error) {
	d, err := r.Dict()
	if err != nil {
		return Volume{}, err
	}
	return Volume{Left: d.Uint("left"), Right: d.Uint("right")}, nil
}

// MediaInfo decodes a medialib entry.
func (r *Result) MediaInfo() (MediaInfo, error) {
	d, err := r.Dict()
	if err != nil {
		return MediaInfo{}, err
	}
	return MediaInfo{
		Artist:   d.String("artist"),
		Album:    d.String("album"),
		Title:    d.String("title"),
		Genre:    d.String("genre"),
		Comment:  d.String("comment"),
		TrackNr:  d.Int("tracknr"),
		Duration: d.Int("duration"),
		Bitrate:  d.Int("bitrate"),
		Rating:   d.Int("rating"),
		Art:      d.String("album_front_small"),
	}, nil
}

// Dict is a string-keyed reply whose values are decoded on access.
type Dict map[string]json.RawMessage

func lookup[T any](d Dict, key string) mo.Option[T] {
	raw, ok := d[key]
	if !ok || string(raw) == "null" {
		return mo.None[T]()
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return mo.None[T]()
	}
	return mo.Some(v)
}

func (d Dict) Int(key string) mo.Option[int] {
	return lookup[int](d, key)
}

func (d Dict) Uint(key string) mo.Option[uint] {
	return lookup[uint](d, key)
}

func (d Dict) String(key string) mo.Option[string] {
	return lookup[string](d, key)
}
