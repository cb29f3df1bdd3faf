// Package push delivers best-effort push messages over the FCM legacy HTTP
// endpoint.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Client struct {
	endpoint  string
	serverKey string
	client    *http.Client
}

func New(endpoint, serverKey string) *Client {
	return &Client{
		endpoint:  endpoint,
		serverKey: serverKey,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

type message struct {
	To           string       `json:"to"`
	Notification notification `json:"notification"`
}

type notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Send delivers one message to a device token. Any transport failure or
// non-2xx response is returned as an error; callers treat that as an
// invalidated token.
func (c *Client) Send(ctx context.Context, token, title, body string) error {
	payload, err := json.Marshal(message{
		To: token,
		Notification: notification{
			Title: title,
			Body:  body,
		},
	})
	if err != nil {
		return fmt.Errorf("encoding push message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating push request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+c.serverKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending push message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("push delivery failed with status %d", resp.StatusCode)
	}

	return nil
}
