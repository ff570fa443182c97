package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/petcare-service/internal/domain"
	"github.com/spec-kit/petcare-service/internal/events"
)

func TestUpdateProfilePartial(t *testing.T) {
	users := newMemUserRepo(&domain.User{
		ID: "user-1", Name: "Priya", Email: "priya@example.com",
		Role: domain.RoleOwner, Phone: "111", Verified: true,
	})
	svc := NewUserService(users, nil)

	phone := "222"
	updated, err := svc.UpdateProfile(context.Background(), "user-1", ProfileUpdateInput{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "222", updated.Phone)
	// Fields left nil are untouched.
	assert.Equal(t, "Priya", updated.Name)
	assert.Equal(t, "priya@example.com", updated.Email)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc := NewUserService(newMemUserRepo(), nil)

	name := "Ghost"
	_, err := svc.UpdateProfile(context.Background(), "user-404", ProfileUpdateInput{Name: &name})
	requireStatus(t, err, http.StatusNotFound)
}

func TestListCaretakersOnlyVerified(t *testing.T) {
	users := newMemUserRepo(
		&domain.User{ID: "c-1", Role: domain.RoleCaretaker, Verified: true},
		&domain.User{ID: "c-2", Role: domain.RoleCaretaker, Verified: false},
		&domain.User{ID: "o-1", Role: domain.RoleOwner, Verified: true},
	)
	svc := NewUserService(users, nil)

	directory, err := svc.ListCaretakers(context.Background())
	require.NoError(t, err)
	require.Len(t, directory, 1)
	assert.Equal(t, "c-1", directory[0].ID)
}

func TestSetVerifiedPublishesForCaretakers(t *testing.T) {
	users := newMemUserRepo(
		&domain.User{ID: "c-1", Role: domain.RoleCaretaker, Verified: false},
		&domain.User{ID: "o-1", Role: domain.RoleOwner, Verified: true},
	)
	dispatcher := &recordingDispatcher{}
	svc := NewUserService(users, dispatcher)
	admin := &domain.User{ID: "admin-1", Role: domain.RoleAdmin}

	caretaker, err := svc.SetVerified(context.Background(), admin, "c-1", true)
	require.NoError(t, err)
	assert.True(t, caretaker.Verified)

	published := dispatcher.recorded()
	require.Len(t, published, 1)
	assert.Equal(t, events.EventCaretakerVerified, published[0].Type)
	assert.Equal(t, "c-1", published[0].SubjectID)
	assert.Equal(t, admin.ID, published[0].Actor.UserID)

	// Flipping an owner's flag emits nothing.
	_, err = svc.SetVerified(context.Background(), admin, "o-1", false)
	require.NoError(t, err)
	assert.Len(t, dispatcher.recorded(), 1)

	_, err = svc.SetVerified(context.Background(), admin, "user-404", true)
	requireStatus(t, err, http.StatusNotFound)
}
