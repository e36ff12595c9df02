package serviceImp

import (
	"context"
	"strings"

	"potager/entities"
	"potager/pkg/apperr"
	repo "potager/pkg/community/repository"
	"potager/pkg/community/service"
)

const listLimit = 100

type communitySvc struct{ r repo.CommunityRepository }

func NewCommunityService(r repo.CommunityRepository) service.CommunityService {
	return &communitySvc{r: r}
}

func (s *communitySvc) List(ctx context.Context, category string) ([]entities.CommunityPost, error) {
	return s.r.ListPosts(ctx, strings.TrimSpace(category), listLimit)
}

func (s *communitySvc) Publish(ctx context.Context, user *entities.User, in service.PostInput) (*entities.CommunityPost, error) {
	title, content := strings.TrimSpace(in.Title), strings.TrimSpace(in.Content)
	if title == "" || content == "" {
		return nil, apperr.BadRequest("title and content are required")
	}
	p := &entities.CommunityPost{
		UserID:        user.ID,
		AuthorName:    user.Name,
		Title:         title,
		Content:       content,
		ImageBase64:   in.ImageBase64,
		PlantCategory: in.PlantCategory,
	}
	if err := s.r.CreatePost(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *communitySvc) ToggleLike(ctx context.Context, user *entities.User, postID string) (*service.LikeResult, error) {
	liked, n, err := s.r.ToggleLike(ctx, postID, user.ID)
	if err != nil {
		return nil, err
	}
	return &service.LikeResult{Liked: liked, LikesCount: n}, nil
}

func (s *communitySvc) Comment(ctx context.Context, user *entities.User, postID string, in service.CommentInput) (*entities.CommunityComment, error) {
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, apperr.BadRequest("content is required")
	}
	c := &entities.CommunityComment{PostID: postID, UserID: user.ID, AuthorName: user.Name, Content: content}
	if err := s.r.AddComment(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *communitySvc) Comments(ctx context.Context, postID string) ([]entities.CommunityComment, error) {
	return s.r.ListComments(ctx, postID)
}
