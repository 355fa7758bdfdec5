// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/drvaldez/consultorio_backend/internal/repo/blockedslot"
	"github.com/google/uuid"
)

// BlockedSlotCreate is the builder for creating a BlockedSlot entity.
type BlockedSlotCreate struct {
	config
	mutation *BlockedSlotMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *BlockedSlotCreate) SetCreatedAt(v time.Time) *BlockedSlotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BlockedSlotCreate) SetNillableCreatedAt(v *time.Time) *BlockedSlotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDate sets the "date" field.
func (_c *BlockedSlotCreate) SetDate(v string) *BlockedSlotCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetTime sets the "time" field.
func (_c *BlockedSlotCreate) SetTime(v string) *BlockedSlotCreate {
	_c.mutation.SetTime(v)
	return _c
}

// SetID sets the "id" field.
func (_c *BlockedSlotCreate) SetID(v uuid.UUID) *BlockedSlotCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BlockedSlotCreate) SetNillableID(v *uuid.UUID) *BlockedSlotCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the BlockedSlotMutation object of the builder.
func (_c *BlockedSlotCreate) Mutation() *BlockedSlotMutation {
	return _c.mutation
}

// Save creates the BlockedSlot in the database.
func (_c *BlockedSlotCreate) Save(ctx context.Context) (*BlockedSlot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlockedSlotCreate) SaveX(ctx context.Context) *BlockedSlot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlockedSlotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlockedSlotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BlockedSlotCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := blockedslot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := blockedslot.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlockedSlotCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "BlockedSlot.created_at"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`repo: missing required field "BlockedSlot.date"`)}
	}
	if v, ok := _c.mutation.Date(); ok {
		if err := blockedslot.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`repo: validator failed for field "BlockedSlot.date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Time(); !ok {
		return &ValidationError{Name: "time", err: errors.New(`repo: missing required field "BlockedSlot.time"`)}
	}
	if v, ok := _c.mutation.Time(); ok {
		if err := blockedslot.TimeValidator(v); err != nil {
			return &ValidationError{Name: "time", err: fmt.Errorf(`repo: validator failed for field "BlockedSlot.time": %w`, err)}
		}
	}
	return nil
}

func (_c *BlockedSlotCreate) sqlSave(ctx context.Context) (*BlockedSlot, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BlockedSlotCreate) createSpec() (*BlockedSlot, *sqlgraph.CreateSpec) {
	var (
		_node = &BlockedSlot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(blockedslot.Table, sqlgraph.NewFieldSpec(blockedslot.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(blockedslot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(blockedslot.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.Time(); ok {
		_spec.SetField(blockedslot.FieldTime, field.TypeString, value)
		_node.Time = value
	}
	return _node, _spec
}

// BlockedSlotCreateBulk is the builder for creating many BlockedSlot entities in bulk.
type BlockedSlotCreateBulk struct {
	config
	err      error
	builders []*BlockedSlotCreate
}

// Save creates the BlockedSlot entities in the database.
func (_c *BlockedSlotCreateBulk) Save(ctx context.Context) ([]*BlockedSlot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BlockedSlot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlockedSlotMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BlockedSlotCreateBulk) SaveX(ctx context.Context) []*BlockedSlot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlockedSlotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlockedSlotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
