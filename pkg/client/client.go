// Package client talks to the recipe finder API and keeps the terminal
// client's session and view state.
package client

import (
	"Recipe-Finder/domain"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultServerURL = "http://localhost:3000/api"
	DefaultTimeout   = 30 * time.Second
)

var ErrNotLoggedIn = errors.New("login required")

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" && e.Detail != e.Message {
		return fmt.Sprintf("%s: %s (HTTP %d)", e.Message, e.Detail, e.StatusCode)
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.StatusCode)
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	DB      string `json:"db,omitempty"`
	Message string `json:"message,omitempty"`
}

type Client struct {
	baseURL string
	token   string
	timeout time.Duration
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultServerURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Register(req domain.UserRegisterRequest) (domain.UserRegisterResponse, error) {
	var res domain.UserRegisterResponse
	err := c.call(fiber.MethodPost, "/register", nil, req, &res)
	return res, err
}

// Login accepts an email address or a username as identifier.
func (c *Client) Login(identifier, password string) (domain.UserLoginResponse, error) {
	var res domain.UserLoginResponse
	req := domain.UserLoginRequest{Email: identifier, Password: password}
	if err := c.call(fiber.MethodPost, "/login", nil, req, &res); err != nil {
		return res, err
	}
	c.token = res.Token
	return res, nil
}

func (c *Client) SearchRecipes(req domain.RecipeSearchRequest) ([]domain.SearchResultItem, error) {
	query := url.Values{}
	query.Set("q", req.Query)
	query.Set("diet", req.Diet)
	query.Set("cuisine", req.Cuisine)
	query.Set("type", req.Type)

	var res domain.RecipeSearchResponse
	if err := c.call(fiber.MethodGet, "/recipes", query, nil, &res); err != nil {
		return nil, err
	}
	return res.Results, nil
}

func (c *Client) GetRecipe(id string) (*domain.RecipeDetail, error) {
	var res domain.RecipeDetail
	if err := c.call(fiber.MethodGet, "/recipes/"+url.PathEscape(id), nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) GetReviews(recipeID string) ([]domain.ReviewResponse, error) {
	var res []domain.ReviewResponse
	if err := c.call(fiber.MethodGet, "/reviews/"+url.PathEscape(recipeID), nil, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) PostReview(req domain.ReviewCreateRequest) (domain.ReviewResponse, error) {
	var res domain.ReviewResponse
	if c.token == "" {
		return res, ErrNotLoggedIn
	}
	err := c.call(fiber.MethodPost, "/reviews", nil, req, &res)
	return res, err
}

// Health reports the server's database connectivity. The health route is
// not enveloped, so its body is decoded directly.
func (c *Client) Health() (HealthStatus, error) {
	var res HealthStatus
	code, body, err := c.send(fiber.MethodGet, "/health", nil, nil)
	if err != nil {
		return res, err
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return res, fmt.Errorf("decode health: %w", err)
	}
	if code != fiber.StatusOK {
		return res, &APIError{StatusCode: code, Message: res.Status, Detail: res.Message}
	}
	return res, nil
}

func (c *Client) call(method, path string, query url.Values, body, out any) error {
	code, raw, err := c.send(method, path, query, body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if code < 200 || code > 299 {
			return &APIError{StatusCode: code, Message: strings.TrimSpace(string(raw))}
		}
		return fmt.Errorf("decode response: %w", err)
	}

	if code < 200 || code > 299 {
		return &APIError{StatusCode: code, Message: env.Message, Detail: env.Error}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode data: %w", err)
	}
	return nil
}

func (c *Client) send(method, path string, query url.Values, body any) (int, []byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	agent := fiber.AcquireAgent()
	req := agent.Request()
	req.Header.SetMethod(method)
	req.SetRequestURI(target)
	agent.Timeout(c.timeout)
	if c.token != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+c.token)
	}
	if body != nil {
		agent.JSON(body)
	}

	if err := agent.Parse(); err != nil {
		fiber.ReleaseAgent(agent)
		return 0, nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	code, raw, errs := agent.Bytes()
	if len(errs) > 0 {
		return 0, nil, fmt.Errorf("%s %s: %w", method, path, errors.Join(errs...))
	}
	return code, raw, nil
}
