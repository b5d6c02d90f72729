package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

const (
	HeaderAuthorization = "authorization"
	HeaderContentType   = "Content-Type"
	HeaderRequestID     = "X-Request-ID"

	contentTypeJSON = "application/json"
)

// Request is a single call to the game server.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Response carries the status and raw body of a completed call.
type Response struct {
	StatusCode int
	Body       []byte
}

func (that *Response) IsSuccess() bool {
	return that.StatusCode >= http.StatusOK && that.StatusCode < http.StatusMultipleChoices
}

type Client struct {
	logger *slog.Logger

	baseURL    *url.URL
	httpClient *http.Client
}

func New(logger *slog.Logger, host, port string, timeout time.Duration) *Client {
	return &Client{
		logger: logger.With("component", "transport"),
		baseURL: &url.URL{
			Scheme: "http",
			Host:   net.JoinHostPort(host, port),
			Path:   "/",
		},
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Do - sends the request and returns the response whatever its status.
// Only failures to obtain a response are reported as errors.
func (that *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	requestID := uuid.NewString()
	log := that.logger.With("request_id", requestID, "method", req.Method, "path", req.Path)

	target := that.baseURL.JoinPath(req.Path)
	if len(req.Query) > 0 {
		target.RawQuery = req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	for name, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(name, value)
		}
	}
	httpReq.Header.Set(HeaderContentType, contentTypeJSON)
	httpReq.Header.Set(HeaderRequestID, requestID)

	start := time.Now()

	httpResp, err := that.httpClient.Do(httpReq)
	if err != nil {
		log.Debug("request failed", "error", err, "duration", time.Since(start).String())
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	log.Debug("request completed", "status", httpResp.StatusCode, "duration", time.Since(start).String())

	return &Response{
		StatusCode: httpResp.StatusCode,
		Body:       respBody,
	}, nil
}
