package services

import "github.com/studentbridge/buddydesk/internal/models"

// CanUserMutateMentee allows every role above BUDDY. Buddies are read-only
// on mentee records; the handlers additionally let the assigned buddy set
// status and write notes (see CanUserAccessMentee).
func CanUserMutateMentee(user *models.User) bool {
	return user != nil && user.Role.Above(models.RoleBuddy)
}

// CanUserMutateNote allows the note's author, and anyone above BUDDY.
func CanUserMutateNote(user *models.User, note *models.Note) bool {
	if user == nil || note == nil {
		return false
	}
	if user.ID == note.AuthorID {
		return true
	}
	return user.Role.Above(models.RoleBuddy)
}

// CanUserAccessMentee is the read/status/note scope: privileged roles see
// everything, a buddy only their assigned mentees.
func CanUserAccessMentee(user *models.User, mentee *models.Mentee) bool {
	if user == nil || mentee == nil {
		return false
	}
	if CanUserMutateMentee(user) {
		return true
	}
	return mentee.BuddyID == user.ID
}
