package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/partnerportal/internal/learningmaterial/domain"
	"github.com/smallbiznis/partnerportal/internal/learningmaterial/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.LearningMaterial{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func TestCreate_RequiresTitleCategoryURL(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), domain.CreateRequest{
		Category: "sales",
		URL:      "https://portal.example/decks/intro",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTitle)

	_, err = svc.Create(context.Background(), domain.CreateRequest{
		Title: "Intro Deck",
		URL:   "https://portal.example/decks/intro",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	_, err = svc.Create(context.Background(), domain.CreateRequest{
		Title:    "Intro Deck",
		Category: "sales",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidURL)
}

func TestList_PublishedOnlyHidesDrafts(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), domain.CreateRequest{
		Title:     "Intro Deck",
		Category:  "sales",
		URL:       "https://portal.example/decks/intro",
		Published: true,
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), domain.CreateRequest{
		Title:    "Draft Battlecard",
		Category: "sales",
		URL:      "https://portal.example/decks/battlecard",
	})
	require.NoError(t, err)

	resp, err := svc.List(context.Background(), domain.ListRequest{PublishedOnly: true})
	require.NoError(t, err)
	require.Len(t, resp.Materials, 1)
	assert.Equal(t, "Intro Deck", resp.Materials[0].Title)

	resp, err = svc.List(context.Background(), domain.ListRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Materials, 2)
}

func TestUpdate_PartialFields(t *testing.T) {
	svc := newTestService(t)

	material, err := svc.Create(context.Background(), domain.CreateRequest{
		Title:    "Intro Deck",
		Category: "sales",
		URL:      "https://portal.example/decks/intro",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), domain.UpdateRequest{
		ID:        material.ID.String(),
		Title:     strPtr("Intro Deck v2"),
		Published: boolPtr(true),
	})
	require.NoError(t, err)

	assert.Equal(t, "Intro Deck v2", updated.Title)
	assert.Equal(t, "sales", updated.Category)
	assert.True(t, updated.Published)

	_, err = svc.Update(context.Background(), domain.UpdateRequest{
		ID:    material.ID.String(),
		Title: strPtr("   "),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTitle)
}

func TestDelete_RemovesMaterial(t *testing.T) {
	svc := newTestService(t)

	material, err := svc.Create(context.Background(), domain.CreateRequest{
		Title:    "Intro Deck",
		Category: "sales",
		URL:      "https://portal.example/decks/intro",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), domain.DeleteRequest{ID: material.ID.String()}))

	_, err = svc.GetByID(context.Background(), domain.GetRequest{ID: material.ID.String()})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = svc.Delete(context.Background(), domain.DeleteRequest{ID: material.ID.String()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
