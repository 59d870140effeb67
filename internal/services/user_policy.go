package services

import "github.com/studentbridge/buddydesk/internal/models"

// CanUserDeleteUser evaluates the deletion rules in order; the first failing
// rule decides the outcome and supplies the reason.
func CanUserDeleteUser(actor *models.User, target *models.User, menteeCount int64, assetCount int64) Decision {
	if actor == nil || target == nil {
		return Deny("User not found")
	}
	if actor.ID == target.ID {
		return Deny("You can not delete yourself")
	}
	if target.Role == models.RoleAdmin {
		return Deny("ADMIN users can not be deleted")
	}
	if !actor.Role.Above(target.Role) {
		return Deny("You can only delete users with a role below your own")
	}
	if menteeCount > 0 {
		return Deny("User still has mentees assigned")
	}
	if assetCount > 0 {
		return Deny("User still has assets signed out")
	}
	return Allow()
}
