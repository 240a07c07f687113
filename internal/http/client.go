// Package http implements the request execution pipeline: request
// construction, credential attachment, dispatch, and classification of the
// outcome into the typed error taxonomy of pkg/github.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/forgeapi-io/gh3/internal/auth"
	"github.com/forgeapi-io/gh3/internal/constants"
	"github.com/forgeapi-io/gh3/pkg/github"
)

// Request describes one API call. A Request is constructed fresh per call
// and never reused.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	Body    interface{}
}

// Response is the raw outcome of a call: status, headers, and body bytes.
// Decoding into typed values happens at the caller.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client executes API requests against a fixed base URL.
type Client struct {
	baseURL        string
	provider       auth.Provider
	httpClient     *retryablehttp.Client
	userAgent      string
	rateLimitReset string
	logger         github.Logger
	debug          bool
	interceptors   *github.InterceptorChain
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(logger github.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig opts into retries for transient failures. Without it a
// logical call maps to exactly one physical request.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithRateLimitResetHeader overrides the header consulted for the reset
// time of an exhausted rate limit window.
func WithRateLimitResetHeader(header string) Option {
	return func(c *Client) {
		c.rateLimitReset = header
	}
}

// WithInterceptors attaches an interceptor chain run around every request.
func WithInterceptors(chain *github.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a client for the given base URL. A nil provider sends
// requests unauthenticated.
func NewClient(baseURL string, provider auth.Provider, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil

	client := &Client{
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		provider:       provider,
		httpClient:     retryClient,
		userAgent:      constants.DefaultUserAgent,
		rateLimitReset: constants.DefaultRateLimitResetHeader,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes a request and classifies the outcome. Non-2xx responses
// return both the raw response and a typed error, so callers can inspect
// headers even on failure.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, bodyBytes, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	interceptReq := &github.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: httpReq.Header,
		Body:    bodyBytes,
	}

	if c.interceptors != nil {
		err = c.interceptors.ExecuteRequestInterceptors(ctx, interceptReq)
		if err != nil {
			return nil, err
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    httpReq.URL.String(),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	response := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         httpReq.URL.String(),
			"status_code": response.StatusCode,
		})
	}

	var classified error
	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		classified = c.classifyError(response)
	}

	if c.interceptors != nil {
		interceptResp := &github.Response{
			StatusCode: response.StatusCode,
			Headers:    response.Headers,
			Body:       response.Body,
			Error:      classified,
		}

		err = c.interceptors.ExecuteResponseInterceptors(ctx, interceptReq, interceptResp)
		if err != nil {
			return response, err
		}
	}

	return response, classified
}

// buildRequest assembles the outgoing request: URL resolution, body
// serialization, content headers, and credential attachment. A body that
// fails to serialize is reported before any network I/O.
func (c *Client) buildRequest(ctx context.Context, req *Request) (*retryablehttp.Request, []byte, error) {
	fullURL, err := c.resolveURL(req.Path, req.Query)
	if err != nil {
		return nil, nil, err
	}

	var bodyBytes []byte

	if req.Body != nil {
		bodyBytes, err = json.Marshal(req.Body)
		if err != nil {
			return nil, nil, &github.DecodeError{Err: fmt.Errorf("marshaling request body: %w", err)}
		}
	}

	var bodyReader io.Reader
	if bodyBytes != nil {
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyReader)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set(constants.HeaderAccept, constants.MediaTypeV3)
	httpReq.Header.Set(constants.HeaderUserAgent, c.userAgent)

	if bodyBytes != nil {
		httpReq.Header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.provider != nil {
		c.provider.Apply(httpReq.Request)
	}

	return httpReq, bodyBytes, nil
}

// resolveURL joins a host-relative path to the base URL, or accepts an
// absolute URL as-is (pagination cursors are absolute). Query parameters
// are merged into whatever the URL already carries.
func (c *Client) resolveURL(path string, query url.Values) (string, error) {
	raw := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		raw = c.baseURL + path
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %s", github.ErrBaseURLRequired, raw)
	}

	if len(query) > 0 {
		merged := parsed.Query()
		for key, values := range query {
			merged[key] = values
		}

		parsed.RawQuery = merged.Encode()
	}

	return parsed.String(), nil
}

// classifyError maps a non-2xx response onto the error taxonomy. An
// unparseable error body still yields an APIError carrying the status, so
// classification never fails silently.
func (c *Client) classifyError(resp *Response) error {
	if c.isRateLimited(resp) {
		return &github.RateLimitError{Reset: c.rateLimitResetTime(resp)}
	}

	clientErr, err := github.ParseClientError(resp.Body)
	if err != nil || clientErr.Message == "" {
		return &github.APIError{
			StatusCode:  resp.StatusCode,
			ClientError: github.ClientError{Message: statusMessage(resp.StatusCode)},
		}
	}

	return &github.APIError{
		StatusCode:  resp.StatusCode,
		ClientError: *clientErr,
	}
}

// isRateLimited recognizes an exhausted quota: a 429, or the API's
// convention of a 403 with a zero remaining-requests header.
func (c *Client) isRateLimited(resp *Response) bool {
	if resp.StatusCode == http.StatusTooManyRequests {
		return true
	}

	return resp.StatusCode == http.StatusForbidden &&
		resp.Headers.Get(constants.HeaderRateLimitRemaining) == "0"
}

// rateLimitResetTime reads the configured reset header; zero time when the
// header is absent or malformed.
func (c *Client) rateLimitResetTime(resp *Response) time.Time {
	raw := resp.Headers.Get(c.rateLimitReset)
	if raw == "" {
		return time.Time{}
	}

	epoch, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}
	}

	return time.Unix(epoch, 0).UTC()
}

func statusMessage(statusCode int) string {
	text := http.StatusText(statusCode)
	if text == "" {
		text = fmt.Sprintf("HTTP %d", statusCode)
	}

	return text
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request with an optional JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
