package domain

import "sort"

// Role levels are small non-negative integers where lower is more senior.
// Level 0 is the top administrator. All seniority comparisons in the
// codebase go through this file; nothing else branches on raw levels.
const TopAdministratorLevel = 0

// IsTopAdministrator reports whether the actor holds the top
// administrator role. The top administrator is the sole approver of
// completed work and has unrestricted task visibility.
func (a *Actor) IsTopAdministrator() bool {
	return a.RoleLevel == TopAdministratorLevel
}

// CanAssignTo reports whether the actor may create tasks for the
// candidate assignee. Delegation is strictly downward: the candidate
// must be strictly more junior. Self, lateral and upward assignment are
// all rejected.
func (a *Actor) CanAssignTo(candidate *Actor) bool {
	return candidate.RoleLevel > a.RoleLevel
}

// EligibleAssignees filters the roster to actors strictly junior to the
// given actor, ordered by display name. An empty result is valid: the
// most junior actors can delegate to no one.
func EligibleAssignees(actor *Actor, roster []*Actor) []*Actor {
	eligible := make([]*Actor, 0, len(roster))
	for _, candidate := range roster {
		if actor.CanAssignTo(candidate) {
			eligible = append(eligible, candidate)
		}
	}
	sort.Slice(eligible, func(i, j int) bool {
		return eligible[i].DisplayName() < eligible[j].DisplayName()
	})
	return eligible
}
