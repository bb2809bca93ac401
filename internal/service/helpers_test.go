package service

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"blog-platform/internal/repository"
	"blog-platform/internal/repository/sqlite"
)

type testRepos struct {
	users    repository.UserRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
}

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestRepos(t *testing.T) testRepos {
	t.Helper()
	db := newTestDB(t)
	ctx := context.Background()

	repos := testRepos{
		users:    sqlite.NewUserRepository(db),
		posts:    sqlite.NewPostRepository(db),
		comments: sqlite.NewCommentRepository(db),
	}
	require.NoError(t, repos.users.Init(ctx))
	require.NoError(t, repos.posts.Init(ctx))
	require.NoError(t, repos.comments.Init(ctx))
	return repos
}

// newTestUserService uses the minimum bcrypt cost to keep tests fast.
func newTestUserService(repos testRepos) UserService {
	return NewUserService(repos.users, bcrypt.MinCost)
}
