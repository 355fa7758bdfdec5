package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/drvaldez/consultorio_backend/internal/store"
)

// Patient is the clinic's master record for a person: identity fields
// the RFC is derived from, plus the clinical intake data.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.String("given_name").
			MaxLen(255),

		field.String("paternal_surname").
			MaxLen(255),

		field.String("maternal_surname").
			Optional().
			MaxLen(255),

		field.String("birth_date").
			MaxLen(10).
			Comment("YYYY-MM-DD"),

		field.Enum("sex").
			Values("masculino", "femenino").
			Optional(),

		field.String("phone").
			Optional().
			MaxLen(20).
			Comment("E.164"),

		field.String("rfc").
			Optional().
			MaxLen(13).
			Comment("Derived from name and birth date; recomputed on edit"),

		field.JSON("allergies", []string{}).
			Optional(),

		field.JSON("chronic_conditions", []string{}).
			Optional(),

		field.JSON("current_medications", []string{}).
			Optional(),

		field.JSON("prior_surgeries", []store.Surgery{}).
			Optional().
			Comment("Ordered list of {date, procedure, complication}"),

		field.Text("family_history").
			Optional(),

		field.Enum("substance_use").
			Values("yes", "no", "unset").
			Default("unset"),

		field.JSON("substance_detail", &store.SubstanceDetail{}).
			Optional().
			Comment("{name, frequency} when substance_use is yes"),

		field.Text("consultation_reason").
			Optional(),

		field.Text("initial_symptoms").
			Optional(),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("appointments", Appointment.Type),
		edge.To("history", HistoryEntry.Type),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("paternal_surname", "maternal_surname", "given_name"),
		index.Fields("rfc"),
	}
}
