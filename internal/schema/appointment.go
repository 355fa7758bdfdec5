package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a patient's claim on a (date, time) slot.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}),

		field.String("date").
			MaxLen(10).
			Comment("YYYY-MM-DD"),

		field.String("time").
			MaxLen(8).
			Comment("HH:MM:SS, start of the one-hour slot"),

		field.Enum("status").
			Values("active", "completed").
			Default("active"),

		field.Time("completed_at").
			Optional().
			Nillable(),

		field.Text("reason").
			Optional(),
	}
}

func (Appointment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("appointments").
			Unique().
			Required().
			Field("patient_id"),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("date", "time"),
		index.Fields("patient_id", "date"),
		index.Fields("status", "date"),
	}
}
