// Package apiclient talks to the remote forest statistics API.
//
// It only issues requests and classifies failures; retrying is left to the
// query layer.
package apiclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/ougirez/forestwatch/internal/pkg/logger"
)

const (
	DefaultPostTimeout = 60 * time.Second
	maxBodyBytes       = 32 << 20
)

var codec = sonic.ConfigStd

type Client struct {
	baseURL     string
	httpClient  *http.Client
	getTimeout  time.Duration
	postTimeout time.Duration
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithGetTimeout(d time.Duration) Option {
	return func(c *Client) { c.getTimeout = d }
}

func WithPostTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.postTimeout = d
		}
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{},
		getTimeout:  30 * time.Second,
		postTimeout: DefaultPostTimeout,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get requests base+path with the encoded query and decodes the JSON answer into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("url.Parse: %w", err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	tctx := ctx
	if c.getTimeout > 0 {
		var cancel context.CancelFunc
		tctx, cancel = context.WithTimeout(ctx, c.getTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(tctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.classify(ctx, tctx, http.MethodGet, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return c.classify(ctx, tctx, http.MethodGet, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Debugf(ctx, "GET %s: status %d", path, resp.StatusCode)
		return newHTTPError(resp.StatusCode, body)
	}

	if err := codec.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// Post sends body as JSON under a deadline (the client default when timeout is 0).
// A missed deadline yields *TimeoutError and an upstream 504 *GatewayTimeoutError.
func (c *Client) Post(ctx context.Context, path string, body interface{}, out interface{}, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = c.postTimeout
	}

	payload, err := codec.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(tctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.classify(ctx, tctx, http.MethodPost, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return c.classify(ctx, tctx, http.MethodPost, path, err)
	}

	if resp.StatusCode == http.StatusGatewayTimeout {
		logger.Warnf(ctx, "POST %s: upstream gateway timeout", path)
		return &GatewayTimeoutError{Path: path, Message: newHTTPError(resp.StatusCode, respBody).Message}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newHTTPError(resp.StatusCode, respBody)
	}

	if err := codec.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Client) classify(parent, tctx context.Context, method, path string, err error) error {
	switch {
	case parent.Err() != nil:
		return fmt.Errorf("%s %s: %w", method, path, parent.Err())
	case errors.Is(tctx.Err(), context.DeadlineExceeded):
		logger.Warnf(parent, "%s %s: local deadline exceeded", method, path)
		return &TimeoutError{Path: path}
	default:
		return &NetworkError{Path: path, Err: err}
	}
}
