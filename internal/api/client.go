// Package api implements the typed HTTP client for the labeling service.
// Each operation is a direct request/response mapping with no retry,
// batching, or caching; an expired session surfaces as a failed request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/annolab/labelctl/internal/conf"
	"github.com/annolab/labelctl/internal/errors"
	"github.com/annolab/labelctl/internal/logging"
	"github.com/annolab/labelctl/internal/session"
)

const userAgent = "labelctl"

// Connection pool settings for the shared transport.
const (
	maxIdleConns        = 10
	maxIdleConnsPerHost = 4
	idleConnTimeout     = 90 * time.Second
	dialTimeout         = 30 * time.Second
	tlsHandshakeTimeout = 10 * time.Second
)

// Client talks to the labeling service. Every request attaches the bearer
// token from the injected session store when one is present. Safe for
// concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	store   *session.Store
	log     *slog.Logger
}

// NewClient creates a client from settings and an explicit session store.
func NewClient(settings *conf.Settings, store *session.Store) *Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: dialTimeout,
		}).DialContext,
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
		TLSHandshakeTimeout: tlsHandshakeTimeout,
	}

	return &Client{
		baseURL: strings.TrimRight(settings.Server.URL, "/"),
		http: &http.Client{
			Timeout:   settings.RequestTimeout(),
			Transport: transport,
		},
		store: store,
		log:   logging.ForService("api"),
	}
}

// HTTPClient exposes the underlying HTTP client so tests can install a
// mock transport.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

// Login authenticates with the service. The session is not persisted here;
// the caller decides what to do with the returned token.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	var out LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/login", &LoginRequest{
		Username: username,
		Password: password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// LabelText submits text for classification. A busy server rejects the call
// with HTTP 423, which IsBusy distinguishes from other failures.
func (c *Client) LabelText(ctx context.Context, text, modelName string) (*LabelResult, error) {
	var out LabelResult
	err := c.doJSON(ctx, http.MethodPost, "/label", &LabelRequest{
		Text:      text,
		ModelName: modelName,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitFeedback records a human judgment on a prior prediction.
// correctedLabel must be empty when the prediction is supported.
func (c *Client) SubmitFeedback(ctx context.Context, requestID int, isSupported bool, correctedLabel string) (*FeedbackResponse, error) {
	var out FeedbackResponse
	err := c.doJSON(ctx, http.MethodPost, "/feedback", &FeedbackRequest{
		RequestID:      requestID,
		IsSupported:    isSupported,
		CorrectedLabel: correctedLabel,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetStatus fetches the current processing status.
func (c *Client) GetStatus(ctx context.Context) (*SystemStatus, error) {
	var out SystemStatus
	if err := c.doJSON(ctx, http.MethodGet, "/status", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLabels fetches the set of valid labels.
func (c *Client) GetLabels(ctx context.Context) ([]string, error) {
	var out LabelsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/labels", nil, &out); err != nil {
		return nil, err
	}
	return out.Labels, nil
}

// errorDetail is the shape of the server's error responses.
type errorDetail struct {
	Detail string `json:"detail"`
}

// doJSON performs one request/response cycle: marshal body, attach bearer
// token, decode the response or the server's {detail} error payload.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	requestID := uuid.NewString()

	var reqBody io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.New(fmt.Errorf("error marshaling request: %w", err)).
				Component("api").
				Category(errors.CategoryState).
				Context("path", path).
				Build()
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.New(fmt.Errorf("error creating request: %w", err)).
			Component("api").
			Category(errors.CategoryState).
			Context("path", path).
			Build()
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")
	if token := c.store.GetToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug("Sending request", "request_id", requestID, "method", method, "path", path)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("Request failed", "request_id", requestID, "path", path, "error", err)
		return errors.New(fmt.Errorf("error calling %s: %w", path, err)).
			Component("api").
			Category(errors.CategoryNetwork).
			Context("path", path).
			Build()
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.New(fmt.Errorf("error reading response body: %w", err)).
			Component("api").
			Category(errors.CategoryNetwork).
			Context("path", path).
			Build()
	}

	c.log.Debug("Received response",
		"request_id", requestID,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var detail errorDetail
		if json.Unmarshal(respBody, &detail) == nil {
			apiErr.Detail = detail.Detail
		}
		return errors.New(apiErr).
			Component("api").
			Category(categoryFor(resp.StatusCode)).
			Context("path", path).
			Context("status", resp.StatusCode).
			Build()
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return errors.New(fmt.Errorf("error unmarshaling response: %w", err)).
				Component("api").
				Category(errors.CategoryNetwork).
				Context("path", path).
				Build()
		}
	}
	return nil
}
