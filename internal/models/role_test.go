package models

import "testing"

func TestRoleOrderMatchesWireEncoding(t *testing.T) {
	ordered := AllRoles()
	for index := 1; index < len(ordered); index++ {
		lower := ordered[index-1]
		higher := ordered[index]
		if !higher.Above(lower) {
			t.Fatalf("expected %s above %s", higher.Label(), lower.Label())
		}
		if lower.Above(higher) {
			t.Fatalf("did not expect %s above %s", lower.Label(), higher.Label())
		}
		if string(lower) >= string(higher) {
			t.Fatalf("wire encoding out of order: %q vs %q", lower, higher)
		}
	}
}

func TestRoleLabels(t *testing.T) {
	expected := map[Role]string{
		RoleBuddy:     "BUDDY",
		RoleHR:        "HR",
		RolePresident: "PRESIDENT",
		RoleAdmin:     "ADMIN",
	}
	for role, label := range expected {
		if role.Label() != label {
			t.Fatalf("expected label %s for role %q, got %s", label, role, role.Label())
		}
	}
}

func TestUnknownRoleRanksBelowBuddy(t *testing.T) {
	corrupted := Role("9")
	if corrupted.Valid() {
		t.Fatal("expected role 9 to be invalid")
	}
	if corrupted.AtLeast(RoleBuddy) {
		t.Fatal("corrupted role must not reach BUDDY level")
	}
}

func TestMenteeStatusValidation(t *testing.T) {
	for _, status := range AllMenteeStatuses() {
		if !status.Valid() {
			t.Fatalf("expected status %q to be valid", status)
		}
	}
	if MenteeStatus("graduated").Valid() {
		t.Fatal("unexpected status accepted")
	}
	if MenteeStatus("").Valid() {
		t.Fatal("empty status accepted")
	}
}
