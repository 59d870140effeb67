package models

import (
	"fmt"
	"strings"
)

// KeyKind tags a record key with the collection-level type it addresses.
type KeyKind int

const (
	KeyKindUser KeyKind = iota
	KeyKindMentee
	KeyKindNote
)

const (
	userKeyPrefix   = "User#"
	menteeKeyPrefix = "Mentee#"
	noteKeyPrefix   = "Note#"
)

// RecordKey is the single place that knows how composite document keys are
// spelled on the wire. Everything else passes RecordKey values around.
type RecordKey struct {
	Kind KeyKind
	ID   string
}

func UserKey(email string) RecordKey {
	return RecordKey{Kind: KeyKindUser, ID: strings.ToLower(strings.TrimSpace(email))}
}

func MenteeKey(menteeID string) RecordKey {
	return RecordKey{Kind: KeyKindMentee, ID: menteeID}
}

func NoteKey(noteID string) RecordKey {
	return RecordKey{Kind: KeyKindNote, ID: noteID}
}

func (key RecordKey) String() string {
	switch key.Kind {
	case KeyKindUser:
		return userKeyPrefix + key.ID
	case KeyKindMentee:
		return menteeKeyPrefix + key.ID
	case KeyKindNote:
		return noteKeyPrefix + key.ID
	}
	return key.ID
}

// NoteKeyPrefix is the sort-key prefix selecting every note within a mentee
// partition.
func NoteKeyPrefix() string {
	return noteKeyPrefix
}

func ParseRecordKey(raw string) (RecordKey, error) {
	trimmed := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(trimmed, userKeyPrefix):
		return RecordKey{Kind: KeyKindUser, ID: strings.TrimPrefix(trimmed, userKeyPrefix)}, nil
	case strings.HasPrefix(trimmed, menteeKeyPrefix):
		return RecordKey{Kind: KeyKindMentee, ID: strings.TrimPrefix(trimmed, menteeKeyPrefix)}, nil
	case strings.HasPrefix(trimmed, noteKeyPrefix):
		return RecordKey{Kind: KeyKindNote, ID: strings.TrimPrefix(trimmed, noteKeyPrefix)}, nil
	}
	return RecordKey{}, fmt.Errorf("unrecognized record key %q", raw)
}
