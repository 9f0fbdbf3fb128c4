// Package api implements the HTTP client for the messaging service. Server
// failure envelopes are translated back to the shared sentinel errors so
// callers can match with errors.Is.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/messagely/messagely/internal/common"
)

// Client talks to the messaging service. The token obtained at login is
// attached to every subsequent request as the _token query parameter.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) SetToken(token string) { c.token = token }

func (c *Client) Token() string { return c.token }

type errorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (c *Client) requestURL(path string) string {
	u := c.baseURL + path
	if c.token != "" {
		u += "?" + url.Values{common.TokenField: {c.token}}.Encode()
	}
	return u
}

// doJSON performs one request against the API. A non-nil in is sent as the
// JSON body; a non-nil out receives the decoded response. Failure envelopes
// map to the shared sentinels by status code.
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.requestURL(path), body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)

		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return common.ErrorUnauthorized
		case http.StatusConflict:
			return common.ErrorDuplicateUsername
		case http.StatusNotFound:
			return common.ErrorNotFound
		default:
			if eb.Message != "" {
				return fmt.Errorf("server error: %s", eb.Message)
			}
			return fmt.Errorf("server error: status %d", resp.StatusCode)
		}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Register creates an account and stores the returned token on the client.
func (c *Client) Register(ctx context.Context, p RegisterParams) error {
	var tr tokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/register", p, &tr); err != nil {
		return err
	}
	c.token = tr.Token
	return nil
}

// Login verifies credentials and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, username, password string) error {
	in := map[string]string{"username": username, "password": password}
	var tr tokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/login", in, &tr); err != nil {
		return err
	}
	c.token = tr.Token
	return nil
}

// Logout drops the stored token.
func (c *Client) Logout() { c.token = "" }

func (c *Client) Users(ctx context.Context) ([]PublicUser, error) {
	var out struct {
		Users []PublicUser `json:"users"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

func (c *Client) User(ctx context.Context, username string) (*User, error) {
	var out struct {
		User *User `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/users/"+url.PathEscape(username), nil, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

func (c *Client) Inbox(ctx context.Context, username string) ([]InboxMessage, error) {
	var out struct {
		Messages []InboxMessage `json:"messages"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/users/"+url.PathEscape(username)+"/to", nil, &out); err != nil {
		return nil, err
	}
	return out.Messages, nil
}

func (c *Client) Outbox(ctx context.Context, username string) ([]OutboxMessage, error) {
	var out struct {
		Messages []OutboxMessage `json:"messages"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/users/"+url.PathEscape(username)+"/from", nil, &out); err != nil {
		return nil, err
	}
	return out.Messages, nil
}

func (c *Client) Message(ctx context.Context, id int64) (*Detail, error) {
	var out struct {
		Message *Detail `json:"message"`
	}
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/messages/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return out.Message, nil
}

func (c *Client) Send(ctx context.Context, to, body string) (*Message, error) {
	in := map[string]string{"to_username": to, "body": body}
	var out struct {
		Message *Message `json:"message"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/messages", in, &out); err != nil {
		return nil, err
	}
	return out.Message, nil
}

func (c *Client) MarkRead(ctx context.Context, id int64) (*ReadReceipt, error) {
	var out struct {
		Message *ReadReceipt `json:"message"`
	}
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/messages/%d/read", id), nil, &out); err != nil {
		return nil, err
	}
	return out.Message, nil
}
