package repositoryImp

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"potager/entities"
	"potager/pkg/apperr"
	"potager/pkg/community/repository"
)

type communityRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CommunityRepository { return &communityRepo{db} }

func (r *communityRepo) ListPosts(ctx context.Context, category string, limit int) ([]entities.CommunityPost, error) {
	q := r.db.WithContext(ctx).Model(&entities.CommunityPost{})
	if category != "" {
		q = q.Where("plant_category = ?", category)
	}
	var out []entities.CommunityPost
	err := q.Order("created_at DESC, id DESC").Limit(limit).Find(&out).Error
	return out, err
}

func (r *communityRepo) CreatePost(ctx context.Context, p *entities.CommunityPost) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *communityRepo) FindPost(ctx context.Context, id string) (*entities.CommunityPost, error) {
	return findPost(r.db.WithContext(ctx), id)
}

func findPost(db *gorm.DB, id string) (*entities.CommunityPost, error) {
	var p entities.CommunityPost
	err := db.Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Post not found")
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *communityRepo) ToggleLike(ctx context.Context, postID, userID string) (bool, int, error) {
	var liked bool
	var likes int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findPost(tx, postID); err != nil {
			return err
		}
		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&entities.PostLike{})
		if res.Error != nil {
			return res.Error
		}
		delta := -1
		if res.RowsAffected == 0 {
			if err := tx.Create(&entities.PostLike{PostID: postID, UserID: userID}).Error; err != nil {
				return err
			}
			delta = 1
			liked = true
		}
		if err := tx.Model(&entities.CommunityPost{}).Where("id = ?", postID).
			Update("likes_count", gorm.Expr("likes_count + ?", delta)).Error; err != nil {
			return err
		}
		p, err := findPost(tx, postID)
		if err != nil {
			return err
		}
		likes = p.LikesCount
		return nil
	})
	return liked, likes, err
}

func (r *communityRepo) AddComment(ctx context.Context, c *entities.CommunityComment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findPost(tx, c.PostID); err != nil {
			return err
		}
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		return tx.Model(&entities.CommunityPost{}).Where("id = ?", c.PostID).
			Update("comments_count", gorm.Expr("comments_count + 1")).Error
	})
}

func (r *communityRepo) ListComments(ctx context.Context, postID string) ([]entities.CommunityComment, error) {
	if _, err := r.FindPost(ctx, postID); err != nil {
		return nil, err
	}
	var out []entities.CommunityComment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}
