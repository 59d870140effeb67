package models

import "testing"

func TestUserKeyLowercasesEmail(t *testing.T) {
	key := UserKey("  Maria.Lopez@Example.COM ")
	if got := key.String(); got != "User#maria.lopez@example.com" {
		t.Fatalf("expected lowercased user key, got %q", got)
	}
}

func TestKeyWireFormats(t *testing.T) {
	if got := MenteeKey("abc-123").String(); got != "Mentee#abc-123" {
		t.Fatalf("unexpected mentee key %q", got)
	}
	if got := NoteKey("n-9").String(); got != "Note#n-9" {
		t.Fatalf("unexpected note key %q", got)
	}
	if NoteKeyPrefix() != "Note#" {
		t.Fatalf("unexpected note key prefix %q", NoteKeyPrefix())
	}
}

func TestParseRecordKeyRoundTrip(t *testing.T) {
	keys := []RecordKey{
		UserKey("buddy@example.com"),
		MenteeKey("7c7a1f8e"),
		NoteKey("11aa22bb"),
	}
	for _, key := range keys {
		parsed, err := ParseRecordKey(key.String())
		if err != nil {
			t.Fatalf("parse %q: %v", key.String(), err)
		}
		if parsed.Kind != key.Kind || parsed.ID != key.ID {
			t.Fatalf("round trip mismatch: %#v became %#v", key, parsed)
		}
	}
}

func TestParseRecordKeyRejectsUnknownPrefix(t *testing.T) {
	if _, err := ParseRecordKey("Asset#x"); err == nil {
		t.Fatal("expected error for unknown key prefix")
	}
	if _, err := ParseRecordKey(""); err == nil {
		t.Fatal("expected error for empty key")
	}
}
