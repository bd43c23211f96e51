package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DraftKeyNew is the entity key of a draft for a system that does not exist yet.
const DraftKeyNew = "new"

// FormDraft is an autosaved form state. Seq grows monotonically per key;
// a nil Payload marks a discarded draft that still remembers its Seq.
type FormDraft struct {
	UserID    uuid.UUID
	EntityKey string
	Seq       int64
	Payload   json.RawMessage
	UpdatedAt time.Time
}

// IsDiscarded reports whether the draft is a tombstone.
func (d *FormDraft) IsDiscarded() bool {
	return d.Payload == nil
}

// DraftKey returns the draft entity key for an optional system id.
func DraftKey(systemID *uuid.UUID) string {
	if systemID == nil {
		return DraftKeyNew
	}
	return systemID.String()
}
