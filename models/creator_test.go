package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionStatus(t *testing.T) {
	cases := []struct {
		name    string
		from    CreatorStatus
		to      CreatorStatus
		allowed bool
	}{
		{"pending to approved", CreatorStatusPending, CreatorStatusApproved, true},
		{"pending to rejected", CreatorStatusPending, CreatorStatusRejected, true},
		{"approved to rejected", CreatorStatusApproved, CreatorStatusRejected, true},
		{"rejected to approved", CreatorStatusRejected, CreatorStatusApproved, true},
		{"approved back to pending", CreatorStatusApproved, CreatorStatusPending, false},
		{"rejected back to pending", CreatorStatusRejected, CreatorStatusPending, false},
		{"pending to pending", CreatorStatusPending, CreatorStatusPending, false},
		{"approved to approved", CreatorStatusApproved, CreatorStatusApproved, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, CanTransitionStatus(tc.from, tc.to))
		})
	}
}

func TestValidFollowerRange(t *testing.T) {
	for _, v := range []FollowerRange{"1k-10k", "10k-50k", "50k-100k", "100k-500k", "500k-1m", "1m+"} {
		assert.True(t, ValidFollowerRange(v), string(v))
	}
	assert.False(t, ValidFollowerRange("5k-10k"))
	assert.False(t, ValidFollowerRange(""))
}

func TestValidAudienceType(t *testing.T) {
	for _, v := range []AudienceType{"couples", "singles", "mixed"} {
		assert.True(t, ValidAudienceType(v), string(v))
	}
	assert.False(t, ValidAudienceType("families"))
	assert.False(t, ValidAudienceType(""))
}

func TestCreatorPublicOmitsInternalFields(t *testing.T) {
	creator := Creator{
		ID:             "creator-1",
		Name:           "Jane",
		Email:          "jane@example.com",
		ReferralCode:   "LB-AAAAAA",
		ReferredByCode: "LB-BBBBBB",
		Status:         CreatorStatusPending,
		Earnings:       100,
	}

	public := creator.Public()
	assert.Equal(t, "creator-1", public.ID)
	assert.Equal(t, "Jane", public.Name)
	assert.Equal(t, "jane@example.com", public.Email)
	assert.Equal(t, "LB-AAAAAA", public.ReferralCode)
	assert.Equal(t, CreatorStatusPending, public.Status)
}
