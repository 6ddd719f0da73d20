package service_test

import (
	"context"
	"errors"
	"testing"

	"capi-onboarding-backend/internal/database/models"
	apperrors "capi-onboarding-backend/internal/errors"
	"capi-onboarding-backend/internal/mocks"
	"capi-onboarding-backend/internal/repository/memory"
	"capi-onboarding-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func intPtr(i int) *int { return &i }

func TestNoteService_StepAndItemNotes(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(false)
	notes := service.NewNoteService(store.Notes, service.NewValidator())

	saved, err := notes.SaveNote(ctx, &service.SaveNoteRequest{
		ClientID: "c1", Platform: "core", StepID: "core.pixel_setup",
		Note: strPtr("Pixel id shared by email"), UpdatedBy: "am@agency.test",
	})
	require.NoError(t, err)
	assert.Nil(t, saved.ItemIndex)
	assert.False(t, saved.UpdatedAt.IsZero())

	_, err = notes.SaveNote(ctx, &service.SaveNoteRequest{
		ClientID: "c1", Platform: "core", StepID: "core.pixel_setup",
		Note: strPtr("Use the staging pixel first"), ItemIndex: intPtr(1),
	})
	require.NoError(t, err)

	stepNotes, err := notes.GetNotes(ctx, "c1", "core", "core.pixel_setup", nil)
	require.NoError(t, err)
	require.Len(t, stepNotes, 1)
	assert.Equal(t, "Pixel id shared by email", stepNotes[0].Note)

	itemNotes, err := notes.GetNotes(ctx, "c1", "core", "core.pixel_setup", intPtr(1))
	require.NoError(t, err)
	require.Len(t, itemNotes, 1)
	assert.Equal(t, "Use the staging pixel first", itemNotes[0].Note)

	none, err := notes.GetNotes(ctx, "c1", "core", "core.access_token", nil)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestNoteService_DeleteSavesEmptyNote(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(false)
	notes := service.NewNoteService(store.Notes, service.NewValidator())

	_, err := notes.SaveNote(ctx, &service.SaveNoteRequest{ClientID: "c1", Platform: "core", StepID: "core.prerequisites", Note: strPtr("draft")})
	require.NoError(t, err)

	deleted, err := notes.DeleteNote(ctx, &service.DeleteNoteRequest{ClientID: "c1", Platform: "core", StepID: "core.prerequisites"})
	require.NoError(t, err)
	assert.True(t, deleted)

	found, err := notes.GetNotes(ctx, "c1", "core", "core.prerequisites", nil)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "", found[0].Note)

	deleted, err = notes.DeleteNote(ctx, &service.DeleteNoteRequest{ClientID: "c1", Platform: "core", StepID: "core.prerequisites", Purge: true})
	require.NoError(t, err)
	assert.True(t, deleted)
	found, err = notes.GetNotes(ctx, "c1", "core", "core.prerequisites", nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestNoteService_DeleteWithoutNoteStillReportsDeleted(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore(false)
	notes := service.NewNoteService(store.Notes, service.NewValidator())
	item := 1

	deleted, err := notes.DeleteNote(ctx, &service.DeleteNoteRequest{ClientID: "c1", Platform: "core", StepID: "core.pixel_setup", ItemIndex: &item})
	require.NoError(t, err)
	assert.True(t, deleted)

	found, err := notes.GetNotes(ctx, "c1", "core", "core.pixel_setup", &item)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "", found[0].Note)

	deleted, err = notes.DeleteNote(ctx, &service.DeleteNoteRequest{ClientID: "c1", Platform: "core", StepID: "core.access_token", Purge: true})
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestNoteService_Validation(t *testing.T) {
	ctx := context.Background()
	notes := service.NewNoteService(memory.NewStore(false).Notes, service.NewValidator())

	_, err := notes.SaveNote(ctx, &service.SaveNoteRequest{ClientID: "c1", Platform: "core", StepID: "core.prerequisites"})
	assert.True(t, apperrors.IsValidation(err))
	assert.Contains(t, err.Error(), "note")

	_, err = notes.SaveNote(ctx, &service.SaveNoteRequest{ClientID: "c1", Platform: "core", Note: strPtr("x")})
	assert.True(t, apperrors.IsValidation(err))

	_, err = notes.SaveNote(ctx, &service.SaveNoteRequest{ClientID: "c1", Platform: "core", StepID: "s", Note: strPtr("x"), ItemIndex: intPtr(-2)})
	assert.True(t, apperrors.IsValidation(err))

	_, err = notes.GetNotes(ctx, "", "core", "core.prerequisites", nil)
	assert.True(t, apperrors.IsValidation(err))
}

func TestNoteService_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockNotes := mocks.NewMockNoteRepositoryInterface(ctrl)
	notes := service.NewNoteService(mockNotes, service.NewValidator())

	mockNotes.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(&models.Note{})).Return(errors.New("write failed")).Times(1)

	_, err := notes.SaveNote(context.Background(), &service.SaveNoteRequest{ClientID: "c1", Platform: "core", StepID: "s", Note: strPtr("x")})
	assert.True(t, apperrors.IsPersistence(err))
}
