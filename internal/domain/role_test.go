package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/azgroup/delega/internal/domain"
)

func actorAt(id string, level int) *domain.Actor {
	return &domain.Actor{ID: id, Username: id, RoleLevel: level}
}

// CanAssignTo holds iff the candidate is strictly more junior.
func TestCanAssignTo(t *testing.T) {
	for senior := 0; senior <= 3; senior++ {
		for junior := 0; junior <= 3; junior++ {
			a := actorAt("a", senior)
			b := actorAt("b", junior)
			assert.Equal(t, junior > senior, a.CanAssignTo(b),
				"levels %d -> %d", senior, junior)
		}
	}
}

func TestCanAssignTo_Self(t *testing.T) {
	a := actorAt("a", 1)
	assert.False(t, a.CanAssignTo(a))
}

func TestIsTopAdministrator(t *testing.T) {
	assert.True(t, actorAt("a", 0).IsTopAdministrator())
	assert.False(t, actorAt("b", 1).IsTopAdministrator())
	assert.False(t, actorAt("c", 3).IsTopAdministrator())
}

func TestEligibleAssignees(t *testing.T) {
	roster := []*domain.Actor{
		{ID: "1", Username: "zed", RoleLevel: 2},
		{ID: "2", Username: "amy", RoleLevel: 3},
		{ID: "3", Username: "boss", RoleLevel: 0},
		{ID: "4", Username: "peer", RoleLevel: 1},
	}

	eligible := domain.EligibleAssignees(actorAt("me", 1), roster)
	assert.Len(t, eligible, 2)
	// Ordered by display name.
	assert.Equal(t, "amy", eligible[0].Username)
	assert.Equal(t, "zed", eligible[1].Username)
}

// The most junior actor has no one to delegate to; empty is valid.
func TestEligibleAssignees_Empty(t *testing.T) {
	roster := []*domain.Actor{
		actorAt("1", 0),
		actorAt("2", 1),
		actorAt("3", 2),
	}

	eligible := domain.EligibleAssignees(actorAt("me", 2), roster)
	assert.Empty(t, eligible)
}

func TestDisplayName(t *testing.T) {
	withName := &domain.Actor{Username: "jdoe", FullName: "Jane Doe"}
	assert.Equal(t, "Jane Doe", withName.DisplayName())

	withoutName := &domain.Actor{Username: "jdoe"}
	assert.Equal(t, "jdoe", withoutName.DisplayName())
}
