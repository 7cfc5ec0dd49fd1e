package authapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/khanghh/authportal/params"
)

const requestIDHeader = "X-Request-Id"

// Client calls the remote authentication API.
type Client struct {
	baseURL string
	timeout time.Duration
}

// NewClient returns a client for the auth API served at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = params.AuthAPIRequestTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		timeout: timeout,
	}
}

func (c *Client) requestTimeout(ctx context.Context) time.Duration {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	return timeout
}

// post sends body as JSON to path and returns the response status and body.
func (c *Client) post(ctx context.Context, path string, body any) (int, []byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, err
	}
	requestID := uuid.NewString()
	agent := fiber.Post(c.baseURL + path)
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	agent.Set(requestIDHeader, requestID)
	agent.Timeout(c.requestTimeout(ctx))
	agent.JSON(body)

	start := time.Now()
	code, respBody, errs := agent.Bytes()
	if len(errs) > 0 {
		err := errors.Join(errs...)
		slog.Warn("Auth API request failed", "path", path, "requestID", requestID, "error", err)
		return 0, nil, fmt.Errorf("authapi: POST %s: %w", path, err)
	}
	slog.Debug("Auth API request", "path", path, "requestID", requestID, "status", code, "elapsed", time.Since(start))
	return code, respBody, nil
}

// Login exchanges credentials for a token. Any 2xx status is a success; the
// body of a failed login is not inspected.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	code, body, err := c.post(ctx, params.AuthLoginPath, req)
	if err != nil {
		return nil, err
	}
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return nil, &APIError{StatusCode: code}
	}

	var resp LoginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("authapi: decode login response: %w", err)
	}
	if resp.Token == "" {
		return nil, ErrMissingToken
	}
	return &resp, nil
}

// Signup registers a new account. Only 201 Created is a success; any other
// status yields an *APIError carrying the server message when the body has one.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	code, body, err := c.post(ctx, params.AuthSignupPath, req)
	if err != nil {
		return nil, err
	}
	if code != fiber.StatusCreated {
		var errResp errorResponse
		if err := json.Unmarshal(body, &errResp); err != nil {
			return nil, &APIError{StatusCode: code}
		}
		return nil, &APIError{StatusCode: code, Message: errResp.Message}
	}

	var resp SignupResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("authapi: decode signup response: %w", err)
	}
	if resp.Token == "" {
		return nil, ErrMissingToken
	}
	return &resp, nil
}
