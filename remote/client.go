package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/remuco-cli/remuco/constant"
	"github.com/remuco-cli/remuco/log"
	"github.com/remuco-cli/remuco/network"
	"github.com/remuco-cli/remuco/status"
)

const (
	clientTimeout  = 10 * time.Second
	clientRetryMax = 3
)

// ErrNotFound is returned when the bridge has no such plob.
var ErrNotFound = errors.New("not found")

// Client talks to a running bridge over its HTTP API.
type Client struct {
	base string
	http *retryablehttp.Client
}

func NewClient(base string) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = clientRetryMax
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = time.Second
	rc.HTTPClient.Timeout = clientTimeout
	rc.HTTPClient.Transport = network.Transport()
	rc.Logger = log.NewKV("ctl")

	return &Client{base: strings.TrimRight(base, "/"), http: rc}
}

func (c *Client) Descriptor(ctx context.Context) (Descriptor, error) {
	var d Descriptor
	err := c.do(ctx, http.MethodGet, "/descriptor", &d)
	return d, err
}

func (c *Client) Status(ctx context.Context) (status.Snapshot, error) {
	var snap status.Snapshot
	err := c.do(ctx, http.MethodGet, "/status", &snap)
	return snap, err
}

func (c *Client) Library(ctx context.Context) (Library, error) {
	var lib Library
	err := c.do(ctx, http.MethodGet, "/library", &lib)
	return lib, err
}

func (c *Client) Plob(ctx context.Context, id string) (*Plob, error) {
	var plob Plob
	if err := c.do(ctx, http.MethodGet, "/plob/"+url.PathEscape(id), &plob); err != nil {
		return nil, err
	}
	return &plob, nil
}

func (c *Client) Ploblist(ctx context.Context, id string) ([]string, error) {
	var ids []string
	err := c.do(ctx, http.MethodGet, "/ploblist/"+url.PathEscape(id), &ids)
	return ids, err
}

func (c *Client) PlayPloblist(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/ploblist/"+url.PathEscape(id)+"/play", nil)
}

func (c *Client) Control(ctx context.Context, cmd Command, param int) error {
	path := fmt.Sprintf("/control/%s?param=%d", url.PathEscape(cmd.String()), param)
	return c.do(ctx, http.MethodPost, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, out any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.base+path, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr apiError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)

		if resp.StatusCode == http.StatusNotFound {
			return errors.Wrap(ErrNotFound, apiErr.Error)
		}
		return errors.Errorf("%s %s: %s (%d)", method, path, apiErr.Error, resp.StatusCode)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	return errors.Wrap(json.NewDecoder(resp.Body).Decode(out), "decode response")
}
