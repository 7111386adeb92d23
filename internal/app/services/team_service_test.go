package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aaryan/councilhub/internal/app/models"
)

func TestSortByRolePriority(t *testing.T) {
	members := []models.TeamMember{
		{Name: "vol", Role: "Volunteer"},
		{Name: "core", Role: "Core member"},
		{Name: "faculty", Role: "Faculty coordinator"},
		{Name: "president", Role: "Student president"},
	}

	sortByRolePriority(members)

	got := make([]string, len(members))
	for i, m := range members {
		got[i] = m.Name
	}
	assert.Equal(t, []string{"faculty", "president", "core", "vol"}, got)
}

func TestSortByRolePriorityUnknownRolesRankLast(t *testing.T) {
	members := []models.TeamMember{
		{Name: "mystery", Role: "Mascot"},
		{Name: "vol", Role: "Volunteer"},
		{Name: "advisor", Role: "Advisor"},
	}

	sortByRolePriority(members)

	assert.Equal(t, "vol", members[0].Name)
	// Unknown roles keep their insertion order behind every known role.
	assert.Equal(t, "mystery", members[1].Name)
	assert.Equal(t, "advisor", members[2].Name)
}

func TestSortByRolePriorityIsStable(t *testing.T) {
	members := []models.TeamMember{
		{Name: "core-a", Role: "Core member"},
		{Name: "core-b", Role: "Core member"},
		{Name: "faculty", Role: "Faculty coordinator"},
		{Name: "core-c", Role: "Core member"},
	}

	sortByRolePriority(members)

	got := make([]string, len(members))
	for i, m := range members {
		got[i] = m.Name
	}
	assert.Equal(t, []string{"faculty", "core-a", "core-b", "core-c"}, got)
}

func TestRolePriority(t *testing.T) {
	assert.Equal(t, 0, rolePriority("Faculty coordinator"))
	assert.Equal(t, 3, rolePriority("Volunteer"))
	assert.Equal(t, len(models.TeamRoleOrder), rolePriority("Unknown role"))
}
