// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/drvaldez/consultorio_backend/internal/repo/blockedslot"
	"github.com/drvaldez/consultorio_backend/internal/repo/predicate"
)

// BlockedSlotUpdate is the builder for updating BlockedSlot entities.
type BlockedSlotUpdate struct {
	config
	hooks    []Hook
	mutation *BlockedSlotMutation
}

// Where appends a list predicates to the BlockedSlotUpdate builder.
func (_u *BlockedSlotUpdate) Where(ps ...predicate.BlockedSlot) *BlockedSlotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDate sets the "date" field.
func (_u *BlockedSlotUpdate) SetDate(v string) *BlockedSlotUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *BlockedSlotUpdate) SetNillableDate(v *string) *BlockedSlotUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetTime sets the "time" field.
func (_u *BlockedSlotUpdate) SetTime(v string) *BlockedSlotUpdate {
	_u.mutation.SetTime(v)
	return _u
}

// SetNillableTime sets the "time" field if the given value is not nil.
func (_u *BlockedSlotUpdate) SetNillableTime(v *string) *BlockedSlotUpdate {
	if v != nil {
		_u.SetTime(*v)
	}
	return _u
}

// Mutation returns the BlockedSlotMutation object of the builder.
func (_u *BlockedSlotUpdate) Mutation() *BlockedSlotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BlockedSlotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlockedSlotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BlockedSlotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlockedSlotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlockedSlotUpdate) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := blockedslot.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "BlockedSlot.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Time(); ok {
		if err := blockedslot.TimeValidator(v); err != nil {
			return &ValidationError{Name: "time", err: fmt.Errorf(`repo: validator failed for field "BlockedSlot.time": %w`, err)}
		}
	}
	return nil
}

func (_u *BlockedSlotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blockedslot.Table, blockedslot.Columns, sqlgraph.NewFieldSpec(blockedslot.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(blockedslot.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Time(); ok {
		_spec.SetField(blockedslot.FieldTime, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blockedslot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BlockedSlotUpdateOne is the builder for updating a single BlockedSlot entity.
type BlockedSlotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BlockedSlotMutation
}

// SetDate sets the "date" field.
func (_u *BlockedSlotUpdateOne) SetDate(v string) *BlockedSlotUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *BlockedSlotUpdateOne) SetNillableDate(v *string) *BlockedSlotUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetTime sets the "time" field.
func (_u *BlockedSlotUpdateOne) SetTime(v string) *BlockedSlotUpdateOne {
	_u.mutation.SetTime(v)
	return _u
}

// SetNillableTime sets the "time" field if the given value is not nil.
func (_u *BlockedSlotUpdateOne) SetNillableTime(v *string) *BlockedSlotUpdateOne {
	if v != nil {
		_u.SetTime(*v)
	}
	return _u
}

// Mutation returns the BlockedSlotMutation object of the builder.
func (_u *BlockedSlotUpdateOne) Mutation() *BlockedSlotMutation {
	return _u.mutation
}

// Where appends a list predicates to the BlockedSlotUpdate builder.
func (_u *BlockedSlotUpdateOne) Where(ps ...predicate.BlockedSlot) *BlockedSlotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BlockedSlotUpdateOne) Select(field string, fields ...string) *BlockedSlotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BlockedSlot entity.
func (_u *BlockedSlotUpdateOne) Save(ctx context.Context) (*BlockedSlot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlockedSlotUpdateOne) SaveX(ctx context.Context) *BlockedSlot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BlockedSlotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlockedSlotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlockedSlotUpdateOne) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := blockedslot.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "BlockedSlot.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Time(); ok {
		if err := blockedslot.TimeValidator(v); err != nil {
			return &ValidationError{Name: "time", err: fmt.Errorf(`repo: validator failed for field "BlockedSlot.time": %w`, err)}
		}
	}
	return nil
}

func (_u *BlockedSlotUpdateOne) sqlSave(ctx context.Context) (_node *BlockedSlot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(blockedslot.Table, blockedslot.Columns, sqlgraph.NewFieldSpec(blockedslot.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "BlockedSlot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, blockedslot.FieldID)
		for _, f := range fields {
			if !blockedslot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != blockedslot.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(blockedslot.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Time(); ok {
		_spec.SetField(blockedslot.FieldTime, field.TypeString, value)
	}
	_node = &BlockedSlot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{blockedslot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
