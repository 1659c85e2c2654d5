package request

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baolive/camping-api/internal/domain"
)

func TestCreateActivityRequest_Validate(t *testing.T) {
	req := CreateActivityRequest{
		Name:        "Archery",
		SessionTime: "Saturday 14:00",
		Cost:        4.5,
	}
	assert.NoError(t, req.Validate())

	req.Cost = -1
	assert.Error(t, req.Validate())

	req.Cost = 0
	req.Name = ""
	assert.Error(t, req.Validate())

	req.Name = "Archery"
	req.AllowedAges = "toddlers"
	assert.Error(t, req.Validate())
}

func TestCreateActivityRequest_ToDomain_DefaultsAges(t *testing.T) {
	req := CreateActivityRequest{Name: "Archery", SessionTime: "a"}

	activity := req.ToDomain()
	assert.Equal(t, domain.AgesBoth, activity.AllowedAges)
	assert.True(t, activity.Available)
}

func TestUpdateActivityRequest_Fields(t *testing.T) {
	cost := 3.5
	name := "Climbing"
	req := UpdateActivityRequest{Name: &name, Cost: &cost}

	fields := req.Fields()
	assert.Equal(t, map[string]interface{}{"name": "Climbing", "cost": 3.5}, fields)

	empty := UpdateActivityRequest{}
	assert.Empty(t, empty.Fields())
}

func TestActivityAvailabilityRequest_Validate(t *testing.T) {
	assert.Error(t, (&ActivityAvailabilityRequest{}).Validate())

	available := false
	assert.NoError(t, (&ActivityAvailabilityRequest{Available: &available}).Validate())
}
