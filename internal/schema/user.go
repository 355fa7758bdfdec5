package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is a login account. The clinic runs single-doctor, so in
// practice there is one row with role "medico".
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("username").
			MaxLen(100).
			Unique(),

		field.String("password_hash").
			MaxLen(255).
			Sensitive(),

		field.String("role").
			MaxLen(50).
			Default("medico"),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username").Unique(),
	}
}
