package service

import (
	"context"
	"math/rand"

	"github.com/google/uuid"

	"blog-platform/internal/auth"
	"blog-platform/internal/domain"
	"blog-platform/internal/repository"
)

// postColors is the palette a new post's card color is drawn from.
var postColors = []string{
	"#fce4ec", "#e3f2fd", "#e8f5e9", "#fff3e0", "#f3e5f5",
	"#f9fbe7", "#e0f7fa", "#fffde7", "#ede7f6", "#f1f8e9",
}

// PostService coordinates post level operations backed by repositories.
// Reads are public; every mutation is gated on the author identity.
type PostService interface {
	Create(ctx context.Context, identity auth.Identity, title, body string) (*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	Update(ctx context.Context, identity auth.Identity, id string, title, body *string) (*domain.Post, error)
	Delete(ctx context.Context, identity auth.Identity, id string) error
}

type postService struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
}

func NewPostService(posts repository.PostRepository, comments repository.CommentRepository) PostService {
	return &postService{
		posts:    posts,
		comments: comments,
	}
}

func (s *postService) Create(ctx context.Context, identity auth.Identity, title, body string) (*domain.Post, error) {
	if err := validatePostInput(title, body); err != nil {
		return nil, err
	}

	post := &domain.Post{
		ID:       uuid.NewString(),
		Title:    title,
		Body:     body,
		Color:    postColors[rand.Intn(len(postColors))],
		AuthorID: identity.UserID,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.Get(ctx, post.ID)
}

func (s *postService) Get(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.posts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByPost(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Comments = comments
	return post, nil
}

func (s *postService) List(ctx context.Context) ([]domain.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		comments, err := s.comments.ListByPost(ctx, posts[i].ID)
		if err != nil {
			return nil, err
		}
		posts[i].Comments = comments
	}

	return posts, nil
}

func (s *postService) Update(ctx context.Context, identity auth.Identity, id string, title, body *string) (*domain.Post, error) {
	post, err := s.posts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.AuthorizeOwner(identity, post.AuthorID, auth.ActionEdit, "post"); err != nil {
		return nil, err
	}

	if title != nil {
		post.Title = *title
	}
	if body != nil {
		post.Body = *body
	}
	if err := validatePostInput(post.Title, post.Body); err != nil {
		return nil, err
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *postService) Delete(ctx context.Context, identity auth.Identity, id string) error {
	post, err := s.posts.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.AuthorizeOwner(identity, post.AuthorID, auth.ActionDelete, "post"); err != nil {
		return err
	}

	// comments go with the post via the FK cascade
	return s.posts.Delete(ctx, id)
}
