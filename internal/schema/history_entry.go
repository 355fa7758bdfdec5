package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// HistoryEntry is one event in a patient's clinical and administrative
// timeline. Clinical entries (prescriptions, diagnoses, studies, notes,
// payments) can be corrected in place; appointment events are written
// by the scheduling flows.
type HistoryEntry struct {
	ent.Schema
}

func (HistoryEntry) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (HistoryEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}),

		field.Enum("type").
			Values(
				"appointment_booked",
				"appointment_cancelled",
				"appointment_completed",
				"appointment_rescheduled",
				"patient_created",
				"patient_edited",
				"prescription_issued",
				"diagnosis_recorded",
				"study_recorded",
				"medical_note_recorded",
				"payment_recorded",
			),

		field.JSON("payload", map[string]any{}).
			Optional().
			Comment("Type-specific detail; shape depends on the entry type"),
	}
}

func (HistoryEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("history").
			Unique().
			Required().
			Field("patient_id"),
	}
}

func (HistoryEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "created_at"),
		index.Fields("type", "created_at"),
	}
}
