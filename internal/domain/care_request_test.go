package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCareRequestTransitions(t *testing.T) {
	cases := []struct {
		from, to CareRequestStatus
		ok       bool
	}{
		{CareRequestPending, CareRequestAccepted, true},
		{CareRequestPending, CareRequestRejected, true},
		{CareRequestPending, CareRequestCompleted, false},
		{CareRequestAccepted, CareRequestCompleted, true},
		{CareRequestAccepted, CareRequestRejected, false},
		{CareRequestAccepted, CareRequestPending, false},
		{CareRequestRejected, CareRequestAccepted, false},
		{CareRequestCompleted, CareRequestPending, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestValidCareRequestStatus(t *testing.T) {
	for _, s := range []CareRequestStatus{CareRequestPending, CareRequestAccepted, CareRequestRejected, CareRequestCompleted} {
		assert.True(t, ValidCareRequestStatus(s))
	}
	assert.False(t, ValidCareRequestStatus("paused"))
}

func TestValidRole(t *testing.T) {
	for _, r := range []Role{RoleOwner, RoleCaretaker, RoleAdmin} {
		assert.True(t, ValidRole(r))
	}
	assert.False(t, ValidRole("superuser"))
	assert.False(t, ValidRole(""))
}
