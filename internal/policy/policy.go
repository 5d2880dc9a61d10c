// Package policy is the authorization core: a closed capability table over
// roles and actions, plus the visibility rules for case submissions. It is
// pure; every route-level role check in the API goes through this table
// instead of inline role comparisons.
package policy

import "court/internal/model"

// Action is something a user may attempt against the case or jury surface.
type Action string

const (
	ActionSubmit       Action = "submit"
	ActionEdit         Action = "edit"
	ActionApprove      Action = "approve"
	ActionReject       Action = "reject"
	ActionDelete       Action = "delete"
	ActionSearchByName Action = "search_by_name"
	ActionVote         Action = "vote"
	ActionViewResults  Action = "view_results"
)

// Actions lists every known action, useful for exhaustiveness checks.
var Actions = []Action{
	ActionSubmit,
	ActionEdit,
	ActionApprove,
	ActionReject,
	ActionDelete,
	ActionSearchByName,
	ActionVote,
	ActionViewResults,
}

// capabilities maps role x action to permit. Absent entries deny.
// Judges review but never submit; jurors vote but never mutate.
var capabilities = map[model.Role]map[Action]bool{
	model.RolePlaintiff: {
		ActionSubmit: true,
	},
	model.RoleDefendant: {
		ActionSubmit: true,
	},
	model.RoleJuror: {
		ActionSearchByName: true,
		ActionVote:         true,
		ActionViewResults:  true,
	},
	model.RoleJudge: {
		ActionEdit:        true,
		ActionApprove:     true,
		ActionReject:      true,
		ActionDelete:      true,
		ActionViewResults: true,
	},
}

// Can reports whether a role is permitted to perform an action. Unknown
// roles and unknown actions deny.
func Can(role model.Role, action Action) bool {
	return capabilities[role][action]
}

// CanView reports whether a user may see a single submission. Judges see
// everything; plaintiffs and defendants see their own submissions in any
// status plus anything approved; jurors see approved submissions only.
func CanView(user *model.User, s *model.CaseSubmission) bool {
	switch user.Role {
	case model.RoleJudge:
		return true
	case model.RolePlaintiff, model.RoleDefendant:
		return s.SubmittedByUserID == user.ID || s.Status == model.StatusApproved
	case model.RoleJuror:
		return s.Status == model.StatusApproved
	default:
		return false
	}
}

// FilterVisible returns the subset of submissions the user may see,
// preserving order. The result is never nil.
func FilterVisible(user *model.User, subs []model.CaseSubmission) []model.CaseSubmission {
	visible := make([]model.CaseSubmission, 0, len(subs))
	for i := range subs {
		if CanView(user, &subs[i]) {
			visible = append(visible, subs[i])
		}
	}
	return visible
}
