package services

import (
	"testing"

	"github.com/studentbridge/buddydesk/internal/models"
)

func TestCanUserMutateMenteePerRole(t *testing.T) {
	if CanUserMutateMentee(policyUser("buddy@example.com", models.RoleBuddy)) {
		t.Fatal("buddies must not mutate mentee records")
	}
	for _, role := range []models.Role{models.RoleHR, models.RolePresident, models.RoleAdmin} {
		if !CanUserMutateMentee(policyUser("user@example.com", role)) {
			t.Fatalf("expected role %s to mutate mentees", role.Label())
		}
	}
	if CanUserMutateMentee(nil) {
		t.Fatal("nil user must not mutate mentees")
	}
}

func TestCanUserMutateNoteAuthorship(t *testing.T) {
	author := policyUser("author@example.com", models.RoleBuddy)
	other := policyUser("other@example.com", models.RoleBuddy)
	hr := policyUser("hr@example.com", models.RoleHR)
	note := &models.Note{ID: "n1", AuthorID: author.ID}

	if !CanUserMutateNote(author, note) {
		t.Fatal("expected the authoring buddy to mutate their note")
	}
	if CanUserMutateNote(other, note) {
		t.Fatal("expected a non-author buddy to be denied")
	}
	if !CanUserMutateNote(hr, note) {
		t.Fatal("expected HR to mutate any note")
	}
}

func TestCanUserAccessMenteeScopesBuddies(t *testing.T) {
	buddy := policyUser("buddy@example.com", models.RoleBuddy)
	stranger := policyUser("stranger@example.com", models.RoleBuddy)
	hr := policyUser("hr@example.com", models.RoleHR)
	mentee := &models.Mentee{ID: "m1", BuddyID: buddy.ID}

	if !CanUserAccessMentee(buddy, mentee) {
		t.Fatal("expected the assigned buddy to access their mentee")
	}
	if CanUserAccessMentee(stranger, mentee) {
		t.Fatal("expected an unassigned buddy to be denied")
	}
	if !CanUserAccessMentee(hr, mentee) {
		t.Fatal("expected HR to access every mentee")
	}
}
