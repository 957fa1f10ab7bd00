package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/partnerportal/internal/dealreg/domain"
	"github.com/smallbiznis/partnerportal/internal/dealreg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.DealRegistration{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func TestCreate_RequiresSubjectAndCustomer(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), domain.CreateRequest{
		CustomerName: "Initech",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidSubject)

	_, err = svc.Create(context.Background(), domain.CreateRequest{
		Subject: "user-1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCustomer)

	_, err = svc.Create(context.Background(), domain.CreateRequest{
		Subject:         "user-1",
		CustomerName:    "Initech",
		ExpectedCameras: -4,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCameras)
}

func TestCreate_StartsSubmitted(t *testing.T) {
	svc := newTestService(t)

	reg, err := svc.Create(context.Background(), domain.CreateRequest{
		Subject:         "user-1",
		CustomerName:    "Initech",
		CustomerEmail:   "ops@initech.example",
		ExpectedCameras: 40,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusSubmitted, reg.Status)
	assert.Equal(t, 40, reg.ExpectedCameras)
	assert.NotZero(t, reg.ID)
}

func TestList_ScopedToSubject(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), domain.CreateRequest{
		Subject:      "user-1",
		CustomerName: "Initech",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), domain.CreateRequest{
		Subject:      "user-2",
		CustomerName: "Hooli",
	})
	require.NoError(t, err)

	resp, err := svc.List(context.Background(), domain.ListRequest{Subject: "user-1"})
	require.NoError(t, err)
	require.Len(t, resp.Registrations, 1)
	assert.Equal(t, "Initech", resp.Registrations[0].CustomerName)

	// Empty subject is the admin view across all partners.
	resp, err = svc.List(context.Background(), domain.ListRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Registrations, 2)
}

func TestGetByID_ForeignSubjectHidden(t *testing.T) {
	svc := newTestService(t)

	reg, err := svc.Create(context.Background(), domain.CreateRequest{
		Subject:      "user-1",
		CustomerName: "Initech",
	})
	require.NoError(t, err)

	got, err := svc.GetByID(context.Background(), domain.GetRequest{Subject: "user-1", ID: reg.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, reg.ID, got.ID)

	_, err = svc.GetByID(context.Background(), domain.GetRequest{Subject: "user-2", ID: reg.ID.String()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatus_AdminTransitions(t *testing.T) {
	svc := newTestService(t)

	reg, err := svc.Create(context.Background(), domain.CreateRequest{
		Subject:      "user-1",
		CustomerName: "Initech",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), domain.UpdateStatusRequest{
		ID:     reg.ID.String(),
		Status: "approved",
		Notes:  "registered first",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, updated.Status)

	_, err = svc.UpdateStatus(context.Background(), domain.UpdateStatusRequest{
		ID:     reg.ID.String(),
		Status: "escalated",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}
