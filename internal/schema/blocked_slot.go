package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BlockedSlot marks a (date, time) slot as unavailable for booking.
// Booking an appointment blocks its slot; the slot is released when no
// active appointment references it anymore.
type BlockedSlot struct {
	ent.Schema
}

func (BlockedSlot) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (BlockedSlot) Fields() []ent.Field {
	return []ent.Field{
		field.String("date").
			MaxLen(10).
			Comment("YYYY-MM-DD"),

		field.String("time").
			MaxLen(8).
			Comment("HH:MM:SS"),
	}
}

func (BlockedSlot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("date", "time").Unique(),
		index.Fields("date"),
	}
}
