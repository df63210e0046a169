package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-social/internal/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	tc.SkipIfProviderIsNotHealthy(t)

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, migrations.Apply(context.Background(), db))
	// applying twice must be harmless
	require.NoError(t, migrations.Apply(context.Background(), db))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestPostgres_SocialFlow(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	userWrite := NewUserWriteRepository(db)
	userRead := NewUserReadRepository(db)
	postWrite := NewPostWriteRepository(db)
	postRead := NewPostReadRepository(db)
	commentWrite := NewCommentWriteRepository(db)
	commentRead := NewCommentReadRepository(db)
	likeRead := NewLikeReadRepository(db, nil)
	likeWrite := NewLikeWriteRepository(db, nil)
	followRead := NewFollowReadRepository(db)
	followWrite := NewFollowWriteRepository(db)

	alice, err := userWrite.Save(ctx, "alice", "a@x.com", "hash-a", nil)
	require.NoError(t, err)
	bob, err := userWrite.Save(ctx, "bob", "b@x.com", "hash-b", nil)
	require.NoError(t, err)

	t.Run("unique username and email", func(t *testing.T) {
		_, err := userWrite.Save(ctx, "alice", "other@x.com", "h", nil)
		assert.ErrorIs(t, err, ErrUniqueViolation)
		_, err = userWrite.Save(ctx, "other", "a@x.com", "h", nil)
		assert.ErrorIs(t, err, ErrUniqueViolation)
	})

	t.Run("lookup users", func(t *testing.T) {
		u, err := userRead.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, alice, u.UserID)
		assert.Equal(t, "hash-a", u.Password)

		u, err = userRead.GetByID(ctx, bob)
		require.NoError(t, err)
		assert.Equal(t, "bob", u.Username)

		u, err = userRead.GetByID(ctx, 424242)
		assert.NoError(t, err)
		assert.Nil(t, u)
	})

	var first, second, third int64
	t.Run("feed is newest first", func(t *testing.T) {
		first, err = postWrite.Save(ctx, alice, "one", nil)
		require.NoError(t, err)
		img := "http://img"
		second, err = postWrite.Save(ctx, bob, "two", &img)
		require.NoError(t, err)
		third, err = postWrite.Save(ctx, alice, "three", nil)
		require.NoError(t, err)

		feed, err := postRead.List(ctx, 100)
		require.NoError(t, err)
		require.Len(t, feed, 3)
		assert.Equal(t, []int64{third, second, first}, []int64{feed[0].PostID, feed[1].PostID, feed[2].PostID})
		assert.Equal(t, "bob", feed[1].Username)
		assert.Equal(t, "http://img", *feed[1].ImageURL)

		limited, err := postRead.List(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, limited, 2)

		count, err := postRead.CountByUser(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("empty content is rejected by the schema", func(t *testing.T) {
		_, err := postWrite.Save(ctx, alice, "", nil)
		assert.Error(t, err)
	})

	t.Run("comments are ascending", func(t *testing.T) {
		c1, err := commentWrite.Save(ctx, first, bob, "c1")
		require.NoError(t, err)
		c2, err := commentWrite.Save(ctx, first, alice, "c2")
		require.NoError(t, err)

		comments, err := commentRead.ListByPost(ctx, first)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, c1, comments[0].CommentID)
		assert.Equal(t, c2, comments[1].CommentID)
		assert.Equal(t, "bob", comments[0].Username)

		_, err = commentWrite.Save(ctx, 999999, bob, "orphan")
		assert.Error(t, err)
	})

	t.Run("likes are unique per pair", func(t *testing.T) {
		require.NoError(t, likeWrite.Save(ctx, first, bob))
		assert.ErrorIs(t, likeWrite.Save(ctx, first, bob), ErrUniqueViolation)

		like, err := likeRead.Get(ctx, first, bob)
		require.NoError(t, err)
		assert.NotNil(t, like)

		count, err := likeRead.CountByPost(ctx, first)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		require.NoError(t, likeWrite.Delete(ctx, first, bob))
		like, err = likeRead.Get(ctx, first, bob)
		require.NoError(t, err)
		assert.Nil(t, like)
	})

	t.Run("follow edges", func(t *testing.T) {
		before, err := followRead.CountFollowers(ctx, bob)
		require.NoError(t, err)

		require.NoError(t, followWrite.Save(ctx, alice, bob))
		assert.ErrorIs(t, followWrite.Save(ctx, alice, bob), ErrUniqueViolation)
		assert.Error(t, followWrite.Save(ctx, alice, alice))

		after, err := followRead.CountFollowers(ctx, bob)
		require.NoError(t, err)
		assert.Equal(t, before+1, after)

		following, err := followRead.CountFollowing(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, int64(1), following)

		deleted, err := followWrite.Delete(ctx, alice, bob)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = followWrite.Delete(ctx, alice, bob)
		require.NoError(t, err)
		assert.False(t, deleted)

		after, err = followRead.CountFollowers(ctx, bob)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("deleting a user cascades", func(t *testing.T) {
		_, err := db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", bob)
		require.NoError(t, err)

		post, err := postRead.GetByID(ctx, second)
		require.NoError(t, err)
		assert.Nil(t, post)

		comments, err := commentRead.ListByPost(ctx, first)
		require.NoError(t, err)
		assert.Len(t, comments, 1)
	})
}
