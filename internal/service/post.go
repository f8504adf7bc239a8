package service

import (
	"context"

	"github.com/circlesapp/server/internal/domain"
	"github.com/circlesapp/server/internal/repository"
)

type postService struct {
	posts repository.PostRepository
}

func NewPostService(posts repository.PostRepository) PostService {
	return &postService{posts: posts}
}

func (s *postService) Write(ctx context.Context, actor *domain.User, club *domain.Club, post *domain.Post) (*domain.Post, error) {
	if err := requireCapability(actor, club, domain.PermPostCreate); err != nil {
		return nil, err
	}
	post.ClubID = club.ID
	post.OwnerID = actor.ID
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) List(ctx context.Context, actor *domain.User, club *domain.Club) ([]domain.Post, error) {
	if err := requireCapability(actor, club, domain.PermPostRead); err != nil {
		return nil, err
	}
	return s.posts.ListByClub(ctx, club.ID)
}

// ListPublic returns the posts the club shares with everyone; no
// membership or capability applies.
func (s *postService) ListPublic(ctx context.Context, club *domain.Club) ([]domain.Post, error) {
	return s.posts.ListPublicByClub(ctx, club.ID)
}

// Modify patches a post through the field allowlist. The capability
// admits the actor to the operation; touching someone else's post
// additionally requires an admin rank.
func (s *postService) Modify(ctx context.Context, actor *domain.User, club *domain.Club, postID string, changes domain.PostUpdate) (*domain.Post, error) {
	if err := requireCapability(actor, club, domain.PermPostCreate); err != nil {
		return nil, err
	}
	post, err := s.resolve(ctx, club, postID)
	if err != nil {
		return nil, err
	}
	if err := requireAuthorOrAdmin(actor, club, post.OwnerID); err != nil {
		return nil, err
	}
	changes.Apply(post)
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post. The capability alone is not enough: a member
// may delete their own posts, while removing another member's post is
// moderation and needs an admin rank.
func (s *postService) Delete(ctx context.Context, actor *domain.User, club *domain.Club, postID string) error {
	if err := requireCapability(actor, club, domain.PermPostDelete); err != nil {
		return err
	}
	post, err := s.resolve(ctx, club, postID)
	if err != nil {
		return err
	}
	if err := requireAuthorOrAdmin(actor, club, post.OwnerID); err != nil {
		return err
	}
	return s.posts.Delete(ctx, post.ID)
}

func (s *postService) resolve(ctx context.Context, club *domain.Club, postID string) (*domain.Post, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.ClubID != club.ID {
		return nil, domain.NotFound("post not found")
	}
	return post, nil
}
