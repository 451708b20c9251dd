package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCenter_GeocodeQuery(t *testing.T) {
	tests := []struct {
		name   string
		center Center
		want   string
	}{
		{
			name: "full address",
			center: Center{
				Address:    "Urheilukatu 1",
				City:       "Helsinki",
				PostalCode: "00250",
				Country:    "Finland",
			},
			want: "Urheilukatu 1, Helsinki, 00250, Finland",
		},
		{
			name: "skips empty components",
			center: Center{
				Address: "Urheilukatu 1",
				Country: "Finland",
			},
			want: "Urheilukatu 1, Finland",
		},
		{
			name:   "empty address yields empty query",
			center: Center{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.center.GeocodeQuery())
		})
	}
}

func TestProfile_EffectiveRole(t *testing.T) {
	centerID := uuid.New()

	tests := []struct {
		name    string
		profile Profile
		want    Role
	}{
		{name: "explicit role wins", profile: Profile{Role: RoleAdmin, CenterID: &centerID}, want: RoleAdmin},
		{name: "center link implies center", profile: Profile{CenterID: &centerID}, want: RoleCenter},
		{name: "unknown role with no link is user", profile: Profile{Role: Role("manager")}, want: RoleUser},
		{name: "empty profile is user", profile: Profile{}, want: RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.profile.EffectiveRole())
		})
	}
}

func TestReviewAction_Status(t *testing.T) {
	status, ok := ReviewActionApprove.Status()
	assert.True(t, ok)
	assert.Equal(t, CenterStatusActive, status)

	status, ok = ReviewActionReject.Status()
	assert.True(t, ok)
	assert.Equal(t, CenterStatusRejected, status)

	_, ok = ReviewAction("archive").Status()
	assert.False(t, ok)
}
