package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/smallbiznis/partnerportal/internal/partnerapplication/domain"
	"github.com/smallbiznis/partnerportal/internal/partnerapplication/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.PartnerApplication{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func TestCreate_SubmitsPending(t *testing.T) {
	svc := newTestService(t)

	app, err := svc.Create(context.Background(), domain.CreateRequest{
		CompanyName: "  Acme Logistics  ",
		ContactName: "Jordan Reyes",
		Email:       "jordan@acme.example",
		Country:     "US",
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme Logistics", app.CompanyName)
	assert.Equal(t, domain.StatusPending, app.Status)
	assert.NotZero(t, app.ID)
}

func TestCreate_RequiresContactFields(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), domain.CreateRequest{
		ContactName: "Jordan Reyes",
		Email:       "jordan@acme.example",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCompany)

	_, err = svc.Create(context.Background(), domain.CreateRequest{
		CompanyName: "Acme Logistics",
		Email:       "jordan@acme.example",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidContact)

	_, err = svc.Create(context.Background(), domain.CreateRequest{
		CompanyName: "Acme Logistics",
		ContactName: "Jordan Reyes",
		Email:       "not-an-email",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
}

func TestUpdateStatus_Approves(t *testing.T) {
	svc := newTestService(t)

	app, err := svc.Create(context.Background(), domain.CreateRequest{
		CompanyName: "Acme Logistics",
		ContactName: "Jordan Reyes",
		Email:       "jordan@acme.example",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), domain.UpdateStatusRequest{
		ID:     app.ID.String(),
		Status: "approved",
		Notes:  "verified references",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusApproved, updated.Status)
	assert.Equal(t, "verified references", updated.Notes)

	got, err := svc.GetByID(context.Background(), domain.GetRequest{ID: app.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, got.Status)
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	svc := newTestService(t)

	app, err := svc.Create(context.Background(), domain.CreateRequest{
		CompanyName: "Acme Logistics",
		ContactName: "Jordan Reyes",
		Email:       "jordan@acme.example",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), domain.UpdateStatusRequest{
		ID:     app.ID.String(),
		Status: "archived",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestList_FiltersByStatus(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.Create(context.Background(), domain.CreateRequest{
		CompanyName: "Acme Logistics",
		ContactName: "Jordan Reyes",
		Email:       "jordan@acme.example",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), domain.CreateRequest{
		CompanyName: "Globex Retail",
		ContactName: "Sam Patel",
		Email:       "sam@globex.example",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), domain.UpdateStatusRequest{
		ID:     first.ID.String(),
		Status: "approved",
	})
	require.NoError(t, err)

	resp, err := svc.List(context.Background(), domain.ListRequest{Status: "approved"})
	require.NoError(t, err)
	require.Len(t, resp.Applications, 1)
	assert.Equal(t, "Acme Logistics", resp.Applications[0].CompanyName)

	resp, err = svc.List(context.Background(), domain.ListRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Applications, 2)

	_, err = svc.List(context.Background(), domain.ListRequest{Status: "archived"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestGetByID_UnknownID(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetByID(context.Background(), domain.GetRequest{ID: "999999999"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetByID(context.Background(), domain.GetRequest{ID: "not-a-number"})
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
