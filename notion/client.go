// Package notion is a typed client for the Notion API. It decodes the API's
// polymorphic JSON (blocks, properties, rich text) into tagged Go values,
// treating unknown variant tags as data rather than errors so new upstream
// features never break decoding.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"golang.org/x/oauth2"
)

const (
	defaultBaseURL = "https://api.notion.com"
	defaultVersion = "2022-06-28"
	defaultTimeout = 30 * time.Second
)

// ExecuteFunc runs one prepared request and returns its raw response. The
// client calls it exactly once per operation; injecting a custom hook is how
// callers add retry, rate limiting, or instrumentation without touching the
// decoders.
type ExecuteFunc func(*http.Request) (*http.Response, error)

// Client is a typed Notion API client. Configuration is fixed at
// construction and never mutated, so a single client is safe for concurrent
// use across goroutines.
type Client struct {
	baseURL   string
	version   string
	execute   ExecuteFunc
	transport http.RoundTripper

	Pages     *PagesService
	Blocks    *BlocksService
	Databases *DatabasesService
	Users     *UsersService
	Search    *SearchService
}

type service struct {
	client *Client
}

// Option configures a Client at construction.
type Option func(*Client)

// WithBaseURL points the client at a different API host, typically a test
// server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithVersion overrides the Notion-Version header.
func WithVersion(version string) Option {
	return func(c *Client) { c.version = version }
}

// WithHTTPClient replaces the underlying HTTP client entirely. The given
// client must supply its own authorization.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.execute = hc.Do }
}

// WithExecute replaces the request-execution hook entirely. The hook must
// supply its own authorization.
func WithExecute(fn ExecuteFunc) Option {
	return func(c *Client) { c.execute = fn }
}

// WithBaseTransport replaces the transport under the bearer-token layer,
// keeping authorization intact. Use this to plug in a retrying or
// instrumented round tripper.
func WithBaseTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.transport = rt }
}

// NewClient creates a Notion client authenticated with the given token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		version: defaultVersion,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.execute == nil {
		base := c.transport
		if base == nil {
			base = cleanhttp.DefaultPooledTransport()
		}
		c.execute = authClient(token, base).Do
	}

	c.Pages = &PagesService{service{client: c}}
	c.Blocks = &BlocksService{service{client: c}}
	c.Databases = &DatabasesService{service{client: c}}
	c.Users = &UsersService{service{client: c}}
	c.Search = &SearchService{service{client: c}}

	return c
}

// authClient wraps a base transport with a static bearer-token layer.
func authClient(token string, base http.RoundTripper) *http.Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &http.Client{
		Timeout:   defaultTimeout,
		Transport: &oauth2.Transport{Source: ts, Base: base},
	}
}

// newRequest builds one API request with the fixed protocol headers.
func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Notion-Version", c.version)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// do runs one request through the execution hook, classifies the outcome by
// status, and decodes the body into result.
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.execute(req)
	if err != nil {
		return wrapTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return classifyStatus(resp.StatusCode, respBody)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// PagesService retrieves pages.
type PagesService struct {
	service
}

// Get fetches a page by id. The id may be any accepted reference form.
func (s *PagesService) Get(ctx context.Context, pageID string) (*Page, error) {
	var page Page
	path := "/v1/pages/" + NormalizeID(pageID)

	if err := s.client.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// BlocksService retrieves blocks and their children.
type BlocksService struct {
	service
}

// Children fetches one page of a block's children. Pass the previous
// response's NextCursor to continue; "" starts from the beginning.
func (s *BlocksService) Children(ctx context.Context, blockID, cursor string) (*BlockListResponse, error) {
	var response BlockListResponse
	path := "/v1/blocks/" + NormalizeID(blockID) + "/children"
	if cursor != "" {
		path += "?start_cursor=" + url.QueryEscape(cursor)
	}

	if err := s.client.do(ctx, http.MethodGet, path, nil, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// AllChildren fetches every child of a block, following cursors.
func (s *BlocksService) AllChildren(ctx context.Context, blockID string) ([]Block, error) {
	var all []Block
	cursor := ""

	for {
		response, err := s.Children(ctx, blockID, cursor)
		if err != nil {
			return nil, err
		}

		all = append(all, response.Results...)

		if !response.HasMore {
			return all, nil
		}
		cursor = response.NextCursor
	}
}

// DatabasesService retrieves and queries databases.
type DatabasesService struct {
	service
}

// Get fetches database metadata and schema.
func (s *DatabasesService) Get(ctx context.Context, databaseID string) (*Database, error) {
	var database Database
	path := "/v1/databases/" + NormalizeID(databaseID)

	if err := s.client.do(ctx, http.MethodGet, path, nil, &database); err != nil {
		return nil, err
	}

	return &database, nil
}

// Query fetches one page of a database query.
func (s *DatabasesService) Query(ctx context.Context, databaseID string, req *DatabaseQueryRequest) (*PageListResponse, error) {
	var response PageListResponse
	path := "/v1/databases/" + NormalizeID(databaseID) + "/query"

	if req == nil {
		req = &DatabaseQueryRequest{}
	}

	if err := s.client.do(ctx, http.MethodPost, path, req, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// QueryAll queries a database and returns all matching pages, following
// cursors.
func (s *DatabasesService) QueryAll(ctx context.Context, databaseID string, req *DatabaseQueryRequest) ([]Page, error) {
	var all []Page
	cursor := ""

	for {
		currentReq := DatabaseQueryRequest{}
		if req != nil {
			currentReq = *req
		}
		currentReq.StartCursor = cursor

		response, err := s.Query(ctx, databaseID, &currentReq)
		if err != nil {
			return nil, err
		}

		all = append(all, response.Results...)

		if !response.HasMore {
			return all, nil
		}
		cursor = response.NextCursor
	}
}

// UsersService lists workspace users.
type UsersService struct {
	service
}

// List fetches one page of workspace users.
func (s *UsersService) List(ctx context.Context, cursor string) (*UserListResponse, error) {
	var response UserListResponse
	path := "/v1/users"
	if cursor != "" {
		path += "?start_cursor=" + url.QueryEscape(cursor)
	}

	if err := s.client.do(ctx, http.MethodGet, path, nil, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

// SearchService searches pages and databases shared with the integration.
type SearchService struct {
	service
}

// Do runs one search request and returns one page of results.
func (s *SearchService) Do(ctx context.Context, req *SearchRequest) (*SearchResponse, error) {
	var response SearchResponse

	if req == nil {
		req = &SearchRequest{}
	}

	if err := s.client.do(ctx, http.MethodPost, "/v1/search", req, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
