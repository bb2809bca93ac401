package service

import (
	"context"

	"github.com/google/uuid"

	"blog-platform/internal/auth"
	"blog-platform/internal/domain"
	"blog-platform/internal/repository"
)

// CommentService manages comments under posts.
type CommentService interface {
	Create(ctx context.Context, identity auth.Identity, postID, body string) (*domain.Comment, error)
	Update(ctx context.Context, identity auth.Identity, id, body string) (*domain.Comment, error)
	Delete(ctx context.Context, identity auth.Identity, id string) error
}

type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
}

func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository) CommentService {
	return &commentService{
		comments: comments,
		posts:    posts,
	}
}

func (s *commentService) Create(ctx context.Context, identity auth.Identity, postID, body string) (*domain.Comment, error) {
	if err := validateCommentBody(body); err != nil {
		return nil, err
	}

	// commenting requires the post to still exist
	if _, err := s.posts.Get(ctx, postID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:       uuid.NewString(),
		PostID:   postID,
		AuthorID: identity.UserID,
		Body:     body,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.comments.Get(ctx, comment.ID)
}

func (s *commentService) Update(ctx context.Context, identity auth.Identity, id, body string) (*domain.Comment, error) {
	comment, err := s.comments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := auth.AuthorizeOwner(identity, comment.AuthorID, auth.ActionEdit, "comment"); err != nil {
		return nil, err
	}
	if err := validateCommentBody(body); err != nil {
		return nil, err
	}

	comment.Body = body
	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return s.comments.Get(ctx, id)
}

func (s *commentService) Delete(ctx context.Context, identity auth.Identity, id string) error {
	comment, err := s.comments.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := auth.AuthorizeOwner(identity, comment.AuthorID, auth.ActionDelete, "comment"); err != nil {
		return err
	}

	return s.comments.Delete(ctx, id)
}
