// Package client talks to the social API the way the web frontend does and
// keeps the login session in a local file.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-social/internal/models"
)

// ErrNotLoggedIn is returned by protected calls when no session is saved.
var ErrNotLoggedIn = errors.New("not logged in")

// APIError is a non-2xx answer of the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// Client calls the API rooted at baseURL, e.g. http://localhost:8080/api.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   *SessionStore
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a Client.
func New(baseURL string, sessions *SessionStore, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		sessions:   sessions,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the saved session or ErrNotLoggedIn.
func (c *Client) Session() (*Session, error) {
	session, err := c.sessions.Load()
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNotLoggedIn
	}
	return session, nil
}

type messageBody struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, auth bool, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		session, err := c.Session()
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var msg messageBody
		_ = json.NewDecoder(resp.Body).Decode(&msg)
		return &APIError{StatusCode: resp.StatusCode, Message: msg.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func idPath(format string, id int64) string {
	return fmt.Sprintf(format, strconv.FormatInt(id, 10))
}

// Register creates an account and returns its id. profilePictureURL may be empty.
func (c *Client) Register(ctx context.Context, username, email, password, profilePictureURL string) (int64, error) {
	in := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}
	if profilePictureURL != "" {
		in["profilePictureUrl"] = profilePictureURL
	}

	var out struct {
		UserID int64 `json:"userId"`
	}
	if err := c.do(ctx, http.MethodPost, "/register", false, in, &out); err != nil {
		return 0, err
	}
	return out.UserID, nil
}

// Login authenticates and saves the session.
func (c *Client) Login(ctx context.Context, username, password string) (*models.UserSummary, error) {
	in := map[string]string{"username": username, "password": password}

	var out struct {
		Token string              `json:"token"`
		User  *models.UserSummary `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/login", false, in, &out); err != nil {
		return nil, err
	}
	if out.User == nil {
		return nil, errors.New("login response without user")
	}

	if err := c.sessions.Save(&Session{Token: out.Token, UserID: out.User.ID}); err != nil {
		return nil, err
	}
	return out.User, nil
}

// Logout forgets the saved session.
func (c *Client) Logout() error {
	return c.sessions.Clear()
}

// Feed returns the newest posts.
func (c *Client) Feed(ctx context.Context) ([]models.FeedPostDB, error) {
	var out []models.FeedPostDB
	if err := c.do(ctx, http.MethodGet, "/posts/feed", true, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePost publishes a post and returns its id. imageURL may be empty.
func (c *Client) CreatePost(ctx context.Context, content, imageURL string) (int64, error) {
	in := map[string]string{"content": content}
	if imageURL != "" {
		in["imageUrl"] = imageURL
	}

	var out struct {
		PostID int64 `json:"postId"`
	}
	if err := c.do(ctx, http.MethodPost, "/posts", true, in, &out); err != nil {
		return 0, err
	}
	return out.PostID, nil
}

// Post returns a post with its comments.
func (c *Client) Post(ctx context.Context, postID int64) (*models.PostDetail, error) {
	var out models.PostDetail
	if err := c.do(ctx, http.MethodGet, idPath("/posts/%s", postID), true, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddComment comments a post and returns the comment id.
func (c *Client) AddComment(ctx context.Context, postID int64, content string) (int64, error) {
	var out struct {
		CommentID int64 `json:"commentId"`
	}
	in := map[string]string{"content": content}
	if err := c.do(ctx, http.MethodPost, idPath("/posts/%s/comments", postID), true, in, &out); err != nil {
		return 0, err
	}
	return out.CommentID, nil
}

// ToggleLike flips the like on a post and returns the new state.
func (c *Client) ToggleLike(ctx context.Context, postID int64) (bool, error) {
	var out struct {
		Liked bool `json:"liked"`
	}
	if err := c.do(ctx, http.MethodPost, idPath("/posts/%s/like", postID), true, nil, &out); err != nil {
		return false, err
	}
	return out.Liked, nil
}

// LikeStatus reports whether the logged in user likes a post.
func (c *Client) LikeStatus(ctx context.Context, postID int64) (bool, error) {
	var out struct {
		Liked bool `json:"liked"`
	}
	if err := c.do(ctx, http.MethodGet, idPath("/posts/%s/like-status", postID), true, nil, &out); err != nil {
		return false, err
	}
	return out.Liked, nil
}

// Profile returns a public user profile.
func (c *Client) Profile(ctx context.Context, userID int64) (*models.Profile, error) {
	var out models.Profile
	if err := c.do(ctx, http.MethodGet, idPath("/users/%s", userID), false, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Follow makes the logged in user follow userID.
func (c *Client) Follow(ctx context.Context, userID int64) error {
	in := map[string]string{"followedId": strconv.FormatInt(userID, 10)}
	return c.do(ctx, http.MethodPost, "/users/follow", true, in, nil)
}

// Unfollow removes the follow edge to userID.
func (c *Client) Unfollow(ctx context.Context, userID int64) error {
	return c.do(ctx, http.MethodDelete, idPath("/users/%s/unfollow", userID), true, nil, nil)
}

// IsFollowing reports whether the logged in user follows userID.
func (c *Client) IsFollowing(ctx context.Context, userID int64) (bool, error) {
	var out struct {
		IsFollowing bool `json:"isFollowing"`
	}
	if err := c.do(ctx, http.MethodGet, idPath("/users/%s/is-following", userID), true, nil, &out); err != nil {
		return false, err
	}
	return out.IsFollowing, nil
}

// ToggleFollow follows userID if not followed yet and unfollows otherwise.
// It returns the new state.
func (c *Client) ToggleFollow(ctx context.Context, userID int64) (bool, error) {
	following, err := c.IsFollowing(ctx, userID)
	if err != nil {
		return false, err
	}
	if following {
		if err := c.Unfollow(ctx, userID); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := c.Follow(ctx, userID); err != nil {
		return false, err
	}
	return true, nil
}
