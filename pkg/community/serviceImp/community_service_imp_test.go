package serviceImp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"potager/pkg/apperr"
	"potager/pkg/community/repositoryImp"
	"potager/pkg/community/service"
	"potager/pkg/testutil"
)

func TestPublishAndList(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewCommunityService(repositoryImp.New(db))
	ctx := context.Background()
	user := testutil.SeedUser(t, db, "zoe@example.com", false)

	_, err := svc.Publish(ctx, user, service.PostInput{Title: "Mes tomates", Content: "Premières récoltes", PlantCategory: "potager"})
	require.NoError(t, err)
	_, err = svc.Publish(ctx, user, service.PostInput{Title: "Rosiers", Content: "Pucerons ?", PlantCategory: "ornement"})
	require.NoError(t, err)

	_, err = svc.Publish(ctx, user, service.PostInput{Title: "  "})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	potager, err := svc.List(ctx, "potager")
	require.NoError(t, err)
	require.Len(t, potager, 1)
	assert.Equal(t, "zoe", potager[0].AuthorName)
}

func TestToggleLikeIsSymmetric(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewCommunityService(repositoryImp.New(db))
	ctx := context.Background()
	author := testutil.SeedUser(t, db, "author@example.com", false)
	fan := testutil.SeedUser(t, db, "fan@example.com", false)
	other := testutil.SeedUser(t, db, "other@example.com", false)

	post, err := svc.Publish(ctx, author, service.PostInput{Title: "Salades", Content: "Semis de printemps"})
	require.NoError(t, err)

	res, err := svc.ToggleLike(ctx, fan, post.ID)
	require.NoError(t, err)
	assert.Equal(t, &service.LikeResult{Liked: true, LikesCount: 1}, res)

	res, err = svc.ToggleLike(ctx, other, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, res.LikesCount)

	res, err = svc.ToggleLike(ctx, fan, post.ID)
	require.NoError(t, err)
	assert.Equal(t, &service.LikeResult{Liked: false, LikesCount: 1}, res)

	_, err = svc.ToggleLike(ctx, fan, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCommentsBumpCount(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repositoryImp.New(db)
	svc := NewCommunityService(repo)
	ctx := context.Background()
	user := testutil.SeedUser(t, db, "hugo@example.com", false)

	post, err := svc.Publish(ctx, user, service.PostInput{Title: "Compost", Content: "Astuces"})
	require.NoError(t, err)

	_, err = svc.Comment(ctx, user, post.ID, service.CommentInput{Content: "Merci !"})
	require.NoError(t, err)
	_, err = svc.Comment(ctx, user, post.ID, service.CommentInput{Content: ""})
	assert.ErrorIs(t, err, apperr.ErrBadRequest)
	_, err = svc.Comment(ctx, user, "missing", service.CommentInput{Content: "?"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	comments, err := svc.Comments(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Merci !", comments[0].Content)

	got, err := repo.FindPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CommentsCount)
}
