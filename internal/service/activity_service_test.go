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

type activityFixture struct {
	*careRequestFixture
	svc     *ActivityService
	request *domain.CareRequest
}

func newActivityFixture(t *testing.T) *activityFixture {
	t.Helper()

	crf := newCareRequestFixture()
	request, err := crf.svc.Create(context.Background(), crf.owner, validCreateInput(crf))
	require.NoError(t, err)

	return &activityFixture{
		careRequestFixture: crf,
		svc:                NewActivityService(&memActivityRepo{}, crf.svc, crf.dispatcher),
		request:            request,
	}
}

func (f *activityFixture) accept(t *testing.T) {
	t.Helper()
	_, err := f.careRequestFixture.svc.UpdateStatus(context.Background(), f.caretaker, f.request.ID, domain.CareRequestAccepted)
	require.NoError(t, err)
}

func TestActivityLog(t *testing.T) {
	f := newActivityFixture(t)
	f.accept(t)

	activity, err := f.svc.Log(context.Background(), f.caretaker, ActivityLogInput{
		CareRequestID: f.request.ID,
		Type:          domain.ActivityWalking,
		Description:   "morning walk around the park",
		Location:      &domain.Location{Latitude: 12.97, Longitude: 77.59, Address: "Cubbon Park"},
		Photos:        []string{"walks/2026-09-01.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, f.request.ID, activity.CareRequestID)
	assert.Equal(t, f.pet.ID, activity.PetID)
	assert.Equal(t, f.caretaker.ID, activity.CaretakerID)

	var logged *events.Event
	for _, e := range f.dispatcher.recorded() {
		if e.Type == events.EventActivityLogged {
			logged = &e
			break
		}
	}
	require.NotNil(t, logged)
	payload, ok := logged.Payload.(events.ActivityLoggedPayload)
	require.True(t, ok)
	assert.True(t, payload.HasLocation)
	assert.Equal(t, 1, payload.PhotoCount)
}

func TestActivityLogNilPhotos(t *testing.T) {
	f := newActivityFixture(t)
	f.accept(t)

	activity, err := f.svc.Log(context.Background(), f.caretaker, ActivityLogInput{
		CareRequestID: f.request.ID,
		Type:          domain.ActivityFeeding,
		Description:   "dinner, full bowl",
	})
	require.NoError(t, err)
	assert.NotNil(t, activity.Photos)
	assert.Empty(t, activity.Photos)
	assert.Nil(t, activity.Location)
}

func TestActivityLogRequiresAcceptedRequest(t *testing.T) {
	f := newActivityFixture(t)

	// Request is still pending.
	_, err := f.svc.Log(context.Background(), f.caretaker, ActivityLogInput{
		CareRequestID: f.request.ID,
		Type:          domain.ActivityFeeding,
		Description:   "breakfast",
	})
	requireStatus(t, err, http.StatusConflict)
}

func TestActivityLogValidation(t *testing.T) {
	f := newActivityFixture(t)
	f.accept(t)

	t.Run("unknown type", func(t *testing.T) {
		_, err := f.svc.Log(context.Background(), f.caretaker, ActivityLogInput{
			CareRequestID: f.request.ID,
			Type:          domain.ActivityType("grooming"),
			Description:   "brushed coat",
		})
		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("blank description", func(t *testing.T) {
		_, err := f.svc.Log(context.Background(), f.caretaker, ActivityLogInput{
			CareRequestID: f.request.ID,
			Type:          domain.ActivityFeeding,
			Description:   "   ",
		})
		requireStatus(t, err, http.StatusBadRequest)
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := f.svc.Log(context.Background(), f.caretaker, ActivityLogInput{
			CareRequestID: "req-404",
			Type:          domain.ActivityFeeding,
			Description:   "breakfast",
		})
		requireStatus(t, err, http.StatusNotFound)
	})

	t.Run("unassigned caretaker", func(t *testing.T) {
		other := &domain.User{ID: "caretaker-2", Role: domain.RoleCaretaker, Verified: true}
		_, err := f.svc.Log(context.Background(), other, ActivityLogInput{
			CareRequestID: f.request.ID,
			Type:          domain.ActivityFeeding,
			Description:   "breakfast",
		})
		requireStatus(t, err, http.StatusForbidden)
	})
}

func TestActivityListVisibility(t *testing.T) {
	f := newActivityFixture(t)
	f.accept(t)

	_, err := f.svc.Log(context.Background(), f.caretaker, ActivityLogInput{
		CareRequestID: f.request.ID,
		Type:          domain.ActivityPlaying,
		Description:   "fetch in the yard",
	})
	require.NoError(t, err)

	for _, caller := range []*domain.User{f.owner, f.caretaker, f.admin} {
		feed, err := f.svc.ListByCareRequest(context.Background(), caller, f.request.ID)
		require.NoError(t, err)
		assert.Len(t, feed, 1)
	}

	stranger := &domain.User{ID: "owner-2", Role: domain.RoleOwner, Verified: true}
	_, err = f.svc.ListByCareRequest(context.Background(), stranger, f.request.ID)
	requireStatus(t, err, http.StatusForbidden)
}
