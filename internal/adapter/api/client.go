package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/manikandan032/plant-disease-detection/internal/app/config"
	"github.com/manikandan032/plant-disease-detection/internal/platform/logger"
)

// ErrUnauthorized is returned when the backend rejects the bearer token on
// any endpoint other than login. The registered unauthorized handler has
// already run by the time the caller sees it, so the call produced no usable
// result.
var ErrUnauthorized = errors.New("unauthorized")

// Error is an application-level rejection carrying the backend's message.
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Detail)
}

// errorBody matches the backend's rejection payloads, which use either
// "detail" (FastAPI convention) or "message".
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// Client is the HTTP client for the PlantShield backend. It attaches the
// bearer token to every request, normalizes 401 responses into a forced
// logout through the registered handler, and converts non-2xx responses into
// *Error values with the server's message.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	log            logger.Logger
	tokenProvider  func() string
	onUnauthorized func()
}

func NewClient(cfg config.APIConfig, log logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

// SetTokenProvider registers the source of the current bearer token. An
// empty token means the request goes out unauthenticated.
func (c *Client) SetTokenProvider(fn func() string) {
	c.tokenProvider = fn
}

// SetUnauthorizedHandler registers the hook invoked on a 401 from any
// endpoint except login.
func (c *Client) SetUnauthorizedHandler(fn func()) {
	c.onUnauthorized = fn
}

func (c *Client) token() string {
	if c.tokenProvider == nil {
		return ""
	}
	return c.tokenProvider()
}

// do issues one request and decodes a 2xx response body into out (when out
// is non-nil). isLogin suppresses the 401 logout hook for the login call
// itself.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}, isLogin bool, header http.Header) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request %s %s: %w", method, path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Errorf("Request %s %s failed: %v", method, path, err)
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && !isLogin {
		c.log.Warnf("Unauthorized response on %s %s, ending session", method, path)
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.rejectionError(resp, method, path)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response of %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) rejectionError(resp *http.Response, method, path string) error {
	detail := "request failed, please try again"
	var eb errorBody
	if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil {
		if eb.Detail != "" {
			detail = eb.Detail
		} else if eb.Message != "" {
			detail = eb.Message
		}
	}
	c.log.Warnf("Rejected %s %s: status=%d detail=%q", method, path, resp.StatusCode, detail)
	return &Error{Status: resp.StatusCode, Detail: detail}
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out interface{}, isLogin bool, header http.Header) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request body for %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, body, contentType, out, isLogin, header)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out, false, nil)
}

func (c *Client) post(ctx context.Context, path string, in, out interface{}) error {
	return c.doJSON(ctx, http.MethodPost, path, in, out, false, nil)
}

func (c *Client) put(ctx context.Context, path string, in, out interface{}) error {
	return c.doJSON(ctx, http.MethodPut, path, in, out, false, nil)
}

// doMultipart uploads a single file as the "file" form field.
func (c *Client) doMultipart(ctx context.Context, path, filename string, file io.Reader, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("failed to create multipart field for %s: %w", path, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to copy file content for %s: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body for %s: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, path, &buf, writer.FormDataContentType(), out, false, nil)
}
