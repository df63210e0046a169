package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI mimics the server routes with in-memory state.
type fakeAPI struct {
	token     string
	liked     bool
	following bool
	lastBody  map[string]any
}

func (f *fakeAPI) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+f.token {
			writeTestJSON(w, http.StatusForbidden, map[string]any{"message": "Invalid or expired token."})
			return
		}
		next(w, r)
	}
}

func (f *fakeAPI) readBody(r *http.Request) {
	f.lastBody = map[string]any{}
	_ = json.NewDecoder(r.Body).Decode(&f.lastBody)
}

func writeTestJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeAPI) router() http.Handler {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/register", func(w http.ResponseWriter, r *http.Request) {
			f.readBody(r)
			if f.lastBody["username"] == "taken" {
				writeTestJSON(w, http.StatusConflict, map[string]any{"message": "Username or email already exists."})
				return
			}
			writeTestJSON(w, http.StatusCreated, map[string]any{"message": "User registered successfully!", "userId": 1})
		})
		r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
			f.readBody(r)
			if f.lastBody["password"] != "secret" {
				writeTestJSON(w, http.StatusUnauthorized, map[string]any{"message": "Invalid username or password."})
				return
			}
			writeTestJSON(w, http.StatusOK, map[string]any{
				"message": "Login successful!",
				"token":   f.token,
				"user":    map[string]any{"id": 1, "username": "alice"},
			})
		})
		r.Get("/users/{userId}", func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(w, http.StatusOK, map[string]any{
				"id": 2, "username": "bob", "email": "bob@example.com",
				"postCount": 1, "followerCount": 3, "followingCount": 0,
			})
		})
		r.Post("/users/follow", f.authed(func(w http.ResponseWriter, r *http.Request) {
			f.readBody(r)
			f.following = true
			writeTestJSON(w, http.StatusOK, map[string]any{"message": "User followed successfully."})
		}))
		r.Delete("/users/{followedId}/unfollow", f.authed(func(w http.ResponseWriter, r *http.Request) {
			f.following = false
			writeTestJSON(w, http.StatusOK, map[string]any{"message": "User unfollowed successfully."})
		}))
		r.Get("/users/{userId}/is-following", f.authed(func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(w, http.StatusOK, map[string]any{"isFollowing": f.following})
		}))
		r.Get("/posts/feed", f.authed(func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(w, http.StatusOK, []map[string]any{
				{"id": 1, "user_id": 1, "content": "hello", "username": "alice", "likeCount": 0, "commentCount": 0},
			})
		}))
		r.Post("/posts", f.authed(func(w http.ResponseWriter, r *http.Request) {
			f.readBody(r)
			writeTestJSON(w, http.StatusCreated, map[string]any{"message": "Post created successfully!", "postId": 5})
		}))
		r.Get("/posts/{postId}", f.authed(func(w http.ResponseWriter, r *http.Request) {
			if chi.URLParam(r, "postId") != "5" {
				writeTestJSON(w, http.StatusNotFound, map[string]any{"message": "Post not found."})
				return
			}
			writeTestJSON(w, http.StatusOK, map[string]any{
				"id": 5, "content": "hello", "likeCount": 1,
				"comments": []map[string]any{{"id": 1, "content": "first"}, {"id": 2, "content": "second"}},
			})
		}))
		r.Post("/posts/{postId}/comments", f.authed(func(w http.ResponseWriter, r *http.Request) {
			f.readBody(r)
			writeTestJSON(w, http.StatusCreated, map[string]any{"message": "Comment added successfully!", "commentId": 9})
		}))
		r.Post("/posts/{postId}/like", f.authed(func(w http.ResponseWriter, r *http.Request) {
			f.liked = !f.liked
			writeTestJSON(w, http.StatusOK, map[string]any{"liked": f.liked})
		}))
		r.Get("/posts/{postId}/like-status", f.authed(func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(w, http.StatusOK, map[string]any{"liked": f.liked})
		}))
	})
	return r
}

func newTestClient(t *testing.T) (*Client, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{token: "JWT_TOKEN"}
	srv := httptest.NewServer(api.router())
	t.Cleanup(srv.Close)

	store := NewSessionStore(filepath.Join(t.TempDir(), "session.json"))
	return New(srv.URL+"/api/", store, WithHTTPClient(srv.Client())), api
}

func TestClient_RegisterAndLogin(t *testing.T) {
	c, api := newTestClient(t)
	ctx := context.Background()

	id, err := c.Register(ctx, "alice", "alice@example.com", "secret", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	assert.NotContains(t, api.lastBody, "profilePictureUrl")

	_, err = c.Register(ctx, "taken", "t@example.com", "secret", "http://img")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Username or email already exists.", apiErr.Message)
	assert.Equal(t, "http://img", api.lastBody["profilePictureUrl"])

	_, err = c.Login(ctx, "alice", "wrong")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	_, err = c.Session()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	user, err := c.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	session, err := c.Session()
	require.NoError(t, err)
	assert.Equal(t, &Session{Token: "JWT_TOKEN", UserID: 1}, session)

	require.NoError(t, c.Logout())
	_, err = c.Session()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClient_ProtectedWithoutSession(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.Feed(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	err = c.Follow(context.Background(), 2)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClient_Posts(t *testing.T) {
	c, api := newTestClient(t)
	ctx := context.Background()
	_, err := c.Login(ctx, "alice", "secret")
	require.NoError(t, err)

	feed, err := c.Feed(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "hello", feed[0].Content)
	assert.Equal(t, int64(0), feed[0].LikeCount)

	postID, err := c.CreatePost(ctx, "hello", "http://img/1.png")
	require.NoError(t, err)
	assert.Equal(t, int64(5), postID)
	assert.Equal(t, map[string]any{"content": "hello", "imageUrl": "http://img/1.png"}, api.lastBody)

	post, err := c.Post(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), post.LikeCount)
	require.Len(t, post.Comments, 2)
	assert.Equal(t, "first", post.Comments[0].Content)

	_, err = c.Post(ctx, 6)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.EqualError(t, err, "api error: status 404: Post not found.")

	commentID, err := c.AddComment(ctx, 5, "nice")
	require.NoError(t, err)
	assert.Equal(t, int64(9), commentID)

	for _, want := range []bool{true, false, true} {
		liked, err := c.ToggleLike(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, want, liked)

		status, err := c.LikeStatus(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, want, status)
	}
}

func TestClient_Users(t *testing.T) {
	c, api := newTestClient(t)
	ctx := context.Background()

	profile, err := c.Profile(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "bob", profile.Username)
	assert.Equal(t, int64(3), profile.FollowerCount)

	_, err = c.Login(ctx, "alice", "secret")
	require.NoError(t, err)

	following, err := c.ToggleFollow(ctx, 2)
	require.NoError(t, err)
	assert.True(t, following)
	assert.Equal(t, "2", api.lastBody["followedId"])

	following, err = c.IsFollowing(ctx, 2)
	require.NoError(t, err)
	assert.True(t, following)

	following, err = c.ToggleFollow(ctx, 2)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestClient_InvalidToken(t *testing.T) {
	c, api := newTestClient(t)
	require.NoError(t, c.sessions.Save(&Session{Token: "stale", UserID: 1}))

	_, err := c.Feed(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.NotEqual(t, "stale", api.token)
}
