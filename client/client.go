// Package client is a Go mirror of the platform API. It caches the
// caller's auth token, decodes the server's response envelope into the
// shared models, and substitutes the injected fallback data when the
// server cannot be reached so views can still render.
package client

import (
	"codelearn/fallback"
	"codelearn/models"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// envelope is the server's standard JSON response shape.
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type Client struct {
	http     *resty.Client
	fallback fallback.Provider
	token    string
}

// New builds a client for the given server. The fallback provider is
// required; pass fallback.Empty() to disable sample data.
func New(baseURL string, provider fallback.Provider) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10 * time.Second),
		fallback: provider,
	}
}

// SetToken installs a previously obtained auth token.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) request() *resty.Request {
	req := c.http.R()
	if c.token != "" {
		req.SetHeader("Authorization", "Bearer "+c.token)
	}
	return req
}

func decode(resp *resty.Response, out interface{}) error {
	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("malformed response: %w", err)
	}
	if !env.Status {
		return fmt.Errorf("request failed (%d): %s", resp.StatusCode(), env.Message)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

// authPayload is the data shape of register and login responses.
type authPayload struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Register creates an account and stores the returned token.
func (c *Client) Register(username, email, password string) (models.User, error) {
	resp, err := c.request().
		SetBody(map[string]string{"username": username, "email": email, "password": password}).
		Post("/api/users/register")
	if err != nil {
		return models.User{}, err
	}

	var payload authPayload
	if err := decode(resp, &payload); err != nil {
		return models.User{}, err
	}
	c.token = payload.Token
	return payload.User, nil
}

// Login authenticates and stores the returned token.
func (c *Client) Login(email, password string) (models.User, error) {
	resp, err := c.request().
		SetBody(map[string]string{"email": email, "password": password}).
		Post("/api/users/login")
	if err != nil {
		return models.User{}, err
	}

	var payload authPayload
	if err := decode(resp, &payload); err != nil {
		return models.User{}, err
	}
	c.token = payload.Token
	return payload.User, nil
}

// Logout drops the cached token. The server call is best-effort since
// tokens are stateless.
func (c *Client) Logout() {
	if c.token != "" {
		_, _ = c.request().Post("/api/users/logout")
	}
	c.token = ""
}

// Profile fetches the current user. On transport failure the sample
// user is returned and the second result is true.
func (c *Client) Profile() (models.User, bool, error) {
	resp, err := c.request().Get("/api/users/profile")
	if err != nil {
		return c.fallback.SampleUser(), true, nil
	}

	var user models.User
	if err := decode(resp, &user); err != nil {
		return models.User{}, false, err
	}
	return user, false, nil
}

// ContentByLanguage lists catalog entries for a language. Network
// failures are non-fatal: the fallback sample set is substituted and
// the second result reports it.
func (c *Client) ContentByLanguage(language, contentType, difficulty string) ([]models.Content, bool, error) {
	req := c.request()
	if contentType != "" {
		req.SetQueryParam("type", contentType)
	}
	if difficulty != "" {
		req.SetQueryParam("difficulty", difficulty)
	}

	resp, err := req.Get("/api/content/language/" + language)
	if err != nil || resp.StatusCode() >= 500 {
		return c.fallback.ContentForLanguage(language), true, nil
	}

	var payload struct {
		Content []models.Content `json:"content"`
	}
	if err := decode(resp, &payload); err != nil {
		return nil, false, err
	}
	return payload.Content, false, nil
}

// ContentByID fetches a single content item (the server counts the view).
func (c *Client) ContentByID(id uint) (models.Content, error) {
	resp, err := c.request().Get(fmt.Sprintf("/api/content/%d", id))
	if err != nil {
		return models.Content{}, err
	}

	var content models.Content
	if err := decode(resp, &content); err != nil {
		return models.Content{}, err
	}
	return content, nil
}

// Search runs a ranked full-text search over published content.
func (c *Client) Search(query, language, contentType, difficulty string) ([]models.Content, error) {
	resp, err := c.request().
		SetQueryParams(map[string]string{
			"query":      query,
			"language":   language,
			"type":       contentType,
			"difficulty": difficulty,
		}).
		Get("/api/content/search")
	if err != nil {
		return nil, err
	}

	var payload struct {
		Content []models.Content `json:"content"`
	}
	if err := decode(resp, &payload); err != nil {
		return nil, err
	}
	return payload.Content, nil
}

// CompleteTopic marks a topic complete and returns the updated user.
func (c *Client) CompleteTopic(language, topicID string) (models.User, error) {
	resp, err := c.request().
		SetBody(map[string]string{"language": language, "topicId": topicID}).
		Put("/api/users/progress")
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err := decode(resp, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// AddReview appends a review and returns the content with the
// recomputed average rating.
func (c *Client) AddReview(contentID uint, rating int, comment string) (models.Content, error) {
	resp, err := c.request().
		SetBody(map[string]interface{}{"rating": rating, "comment": comment}).
		Post(fmt.Sprintf("/api/content/%d/reviews", contentID))
	if err != nil {
		return models.Content{}, err
	}

	var content models.Content
	if err := decode(resp, &content); err != nil {
		return models.Content{}, err
	}
	return content, nil
}
