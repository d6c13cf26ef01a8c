package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/AlessioVisconti/HotelBear/internal/domain"
)

// TokenSource supplies the bearer token for the current session, or "" when
// the caller is not logged in.
type TokenSource func() string

type authMode int

const (
	authNone authMode = iota
	authOptional
	authRequired
)

// Client is the shared HTTP wrapper for all hotel API gateways. It attaches
// the bearer token, refuses token-requiring calls before any network I/O when
// the session has none, and maps non-2xx responses to domain.APIError with
// the server's message field when one is present.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Token   TokenSource
}

func NewClient(baseURL string, timeout time.Duration, token TokenSource) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
		Token:   token,
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

func (c *Client) token() string {
	if c.Token == nil {
		return ""
	}
	return strings.TrimSpace(c.Token())
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, mode authMode, operation string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}

	token := c.token()
	switch mode {
	case authRequired:
		if token == "" {
			return nil, domain.UnauthenticatedError{Operation: operation}
		}
		req.Header.Set("Authorization", "Bearer "+token)
	case authOptional:
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

// doJSON sends body (when non-nil) as JSON and decodes the response into out
// (when non-nil).
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any, mode authMode, operation string) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := c.newRequest(ctx, method, path, reader, mode, operation)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decoding response: %w", operation, err)
	}
	return nil
}

// doRaw returns the raw body and content type for binary endpoints (PDF).
func (c *Client) doRaw(ctx context.Context, method, path string, mode authMode, operation string) ([]byte, string, error) {
	req, err := c.newRequest(ctx, method, path, nil, mode, operation)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", apiError(resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("%s: reading response: %w", operation, err)
	}
	return raw, resp.Header.Get("Content-Type"), nil
}

// doMultipart posts a multipart form with one file part plus string fields.
func (c *Client) doMultipart(ctx context.Context, path, fieldName, fileName string, file io.Reader, fields map[string]string, operation string) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return err
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, &buf, authRequired, operation)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp)
	}
	return nil
}

// apiError extracts the human-readable message the error convention promises:
// a JSON body with "error" or "message", surfaced verbatim when present.
func apiError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))

	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	message := ""
	if len(raw) > 0 && json.Unmarshal(raw, &body) == nil {
		if body.Error != "" {
			message = body.Error
		} else {
			message = body.Message
		}
	}
	return domain.APIError{Status: resp.StatusCode, Message: strings.TrimSpace(message)}
}
