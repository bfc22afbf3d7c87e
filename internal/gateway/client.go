package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client is the shared HTTP plumbing under every resource gateway. It owns the
// upstream base URL and timeout and converts every outcome, including panics
// of the transport layer, into an Envelope.
type Client struct {
	baseURL string
	hc      *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path, token string, query url.Values, payload any) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// upstreamBody covers the response shapes the API is known to produce: a bare
// value, or a wrapper carrying the value under "data" or "records".
type upstreamBody struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Records json.RawMessage `json:"records"`
}

func decodePayload[T any](body []byte) (T, string, error) {
	var out T

	var wrapper upstreamBody
	if err := json.Unmarshal(body, &wrapper); err == nil {
		raw := wrapper.Data
		if len(raw) == 0 || string(raw) == "null" {
			raw = wrapper.Records
		}
		if len(raw) > 0 && string(raw) != "null" {
			if err := json.Unmarshal(raw, &out); err == nil {
				return out, wrapper.Message, nil
			}
		}
	}

	if err := json.Unmarshal(body, &out); err != nil {
		var zero T
		return zero, "", err
	}
	return out, wrapper.Message, nil
}

// exchange performs an authenticated request. An empty token short-circuits to
// a not-authenticated failure without touching the network.
func exchange[T any](c *Client, ctx context.Context, method, path, token string, query url.Values, payload any) Envelope[T] {
	if token == "" {
		return failure[T](MsgNotAuthenticated, "")
	}
	return roundTrip[T](c, ctx, method, path, token, query, payload)
}

// exchangePublic is exchange without the session requirement, for the auth
// endpoints that establish the session in the first place.
func exchangePublic[T any](c *Client, ctx context.Context, method, path string, payload any) Envelope[T] {
	return roundTrip[T](c, ctx, method, path, "", nil, payload)
}

func roundTrip[T any](c *Client, ctx context.Context, method, path, token string, query url.Values, payload any) Envelope[T] {
	req, err := c.newRequest(ctx, method, path, token, query, payload)
	if err != nil {
		return failure[T](MsgConnectivity, "")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return failure[T](MsgConnectivity, "")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure[T](MsgConnectivity, "")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		// A 204 (or any empty-body success) is as good as a JSON success body.
		if len(bytes.TrimSpace(body)) == 0 {
			var zero T
			return Envelope[T]{Success: true, Data: zero}
		}
		data, msg, err := decodePayload[T](body)
		if err != nil {
			return failure[T](MsgConnectivity, "")
		}
		return Envelope[T]{Success: true, Data: data, Message: msg}
	}

	var eb struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &eb); err != nil || eb.Message == "" {
		return failure[T](MsgConnectivity, "")
	}
	return failure[T](eb.Message, strconv.Itoa(resp.StatusCode))
}
