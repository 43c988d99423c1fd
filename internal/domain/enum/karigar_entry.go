package enum

// KarigarEntryKind marks the direction of a karigar metal movement: raw
// metal issued to the goldsmith, or finished/unused metal received back.
type KarigarEntryKind string

const (
	KarigarIssue   KarigarEntryKind = "issue"
	KarigarReceive KarigarEntryKind = "receive"
)

func (k KarigarEntryKind) Valid() bool {
	return k == KarigarIssue || k == KarigarReceive
}
