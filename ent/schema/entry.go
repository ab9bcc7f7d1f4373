package schema

import (
	"encoding/json"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Entry is one durable storage record of the persistent quiz store.
// Keys are composite (kind, entityId, subKind) strings; the kind is also
// stored as its own column so TTL sweeps and capacity eviction can scan
// one kind without parsing keys.
type Entry struct {
	ent.Schema
}

func (Entry) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			Comment("Composite kind_entityId_subKind storage key"),
		field.String("kind").
			NotEmpty().
			Comment("Entry kind, e.g. quiz_progress or temp_result"),
		field.JSON("payload", json.RawMessage{}).
			Comment("Caller payload as JSON"),
		field.Int64("stored_at").
			Comment("Write timestamp in epoch milliseconds"),
	}
}

func (Entry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
		index.Fields("stored_at"),
		index.Fields("kind", "stored_at"),
	}
}
