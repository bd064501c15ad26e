package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shopfront/shopfront/internal/client/models"
	"github.com/shopfront/shopfront/internal/logging"
)

// HTTPClient is the HTTP/JSON implementation of Client.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
	log     logging.Logger
}

// NewHTTPClient builds a client for the API rooted at baseURL
// (e.g. "http://localhost:8080/api"). A zero timeout leaves the runtime's
// own network bound as the only limit.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log.With("component", "api"),
	}
}

// envelope is the fixed response shape of every API endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// do issues a single request and decodes the envelope. When out is non-nil,
// the envelope's data payload is unmarshalled into it. authed calls are
// rejected before any network I/O if no token is present.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, authed bool, out any) error {
	var token string
	if authed {
		token = c.tokens.Token()
		if token == "" {
			return &Error{Kind: KindUnauthenticated, Message: "no session token available"}
		}
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindTransport, Err: err}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return &Error{Kind: KindTransport, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	c.log.Debug(ctx, "request sent", "method", method, "path", path, "request_id", requestID)

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Debug(ctx, "request failed", "path", path, "request_id", requestID, "error", err)
		return &Error{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindTransport, Err: err}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.log.Debug(ctx, "malformed response", "path", path, "request_id", requestID, "status", resp.StatusCode)
		return &Error{Kind: KindMalformed, Err: err}
	}

	if !env.Success {
		c.log.Debug(ctx, "server reported failure", "path", path, "request_id", requestID, "message", env.Message)
		return &Error{Kind: KindServer, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &Error{Kind: KindMalformed, Err: err}
		}
	}

	c.log.Debug(ctx, "request ok", "path", path, "request_id", requestID)
	return nil
}

func (c *HTTPClient) Login(ctx context.Context, username string, password []byte) (*models.LoginResult, error) {
	body := map[string]string{"username": username, "password": string(password)}
	var result models.LoginResult
	if err := c.do(ctx, http.MethodPost, "/login", body, false, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Register(ctx context.Context, username string, password []byte, email string) error {
	body := map[string]string{"username": username, "password": string(password), "email": email}
	return c.do(ctx, http.MethodPost, "/register", body, false, nil)
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, true, nil)
}

func (c *HTTPClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, false, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *HTTPClient) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {
	var products []models.Product
	path := "/products/search/" + url.PathEscape(query)
	if err := c.do(ctx, http.MethodGet, path, nil, false, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *HTTPClient) ProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	var products []models.Product
	path := "/products/category/" + url.PathEscape(category)
	if err := c.do(ctx, http.MethodGet, path, nil, false, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *HTTPClient) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.do(ctx, http.MethodGet, "/categories", nil, false, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *HTTPClient) GetProfile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/profile", nil, true, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, newPassword []byte) error {
	body := map[string]string{"password": string(newPassword)}
	return c.do(ctx, http.MethodPut, "/profile", body, true, nil)
}

func (c *HTTPClient) DeleteProfile(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/profile", nil, true, nil)
}

func (c *HTTPClient) Close() error {
	c.httpc.CloseIdleConnections()
	return nil
}
