// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/drvaldez/consultorio_backend/internal/repo/blockedslot"
	"github.com/google/uuid"
)

// BlockedSlot is the model entity for the BlockedSlot schema.
type BlockedSlot struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// YYYY-MM-DD
	Date string `json:"date,omitempty"`
	// HH:MM:SS
	Time         string `json:"time,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BlockedSlot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case blockedslot.FieldDate, blockedslot.FieldTime:
			values[i] = new(sql.NullString)
		case blockedslot.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case blockedslot.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BlockedSlot fields.
func (_m *BlockedSlot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case blockedslot.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case blockedslot.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case blockedslot.FieldDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.String
			}
		case blockedslot.FieldTime:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field time", values[i])
			} else if value.Valid {
				_m.Time = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BlockedSlot.
// This includes values selected through modifiers, order, etc.
func (_m *BlockedSlot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BlockedSlot.
// Note that you need to call BlockedSlot.Unwrap() before calling this method if this BlockedSlot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BlockedSlot) Update() *BlockedSlotUpdateOne {
	return NewBlockedSlotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BlockedSlot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BlockedSlot) Unwrap() *BlockedSlot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: BlockedSlot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BlockedSlot) String() string {
	var builder strings.Builder
	builder.WriteString("BlockedSlot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date)
	builder.WriteString(", ")
	builder.WriteString("time=")
	builder.WriteString(_m.Time)
	builder.WriteByte(')')
	return builder.String()
}

// BlockedSlots is a parsable slice of BlockedSlot.
type BlockedSlots []*BlockedSlot
