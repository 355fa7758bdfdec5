// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/drvaldez/consultorio_backend/internal/repo/appointment"
	"github.com/drvaldez/consultorio_backend/internal/repo/historyentry"
	"github.com/drvaldez/consultorio_backend/internal/repo/patient"
	"github.com/drvaldez/consultorio_backend/internal/store"
	"github.com/google/uuid"
)

// PatientCreate is the builder for creating a Patient entity.
type PatientCreate struct {
	config
	mutation *PatientMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientCreate) SetCreatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableCreatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PatientCreate) SetUpdatedAt(v time.Time) *PatientCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PatientCreate) SetNillableUpdatedAt(v *time.Time) *PatientCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetGivenName sets the "given_name" field.
func (_c *PatientCreate) SetGivenName(v string) *PatientCreate {
	_c.mutation.SetGivenName(v)
	return _c
}

// SetPaternalSurname sets the "paternal_surname" field.
func (_c *PatientCreate) SetPaternalSurname(v string) *PatientCreate {
	_c.mutation.SetPaternalSurname(v)
	return _c
}

// SetMaternalSurname sets the "maternal_surname" field.
func (_c *PatientCreate) SetMaternalSurname(v string) *PatientCreate {
	_c.mutation.SetMaternalSurname(v)
	return _c
}

// SetNillableMaternalSurname sets the "maternal_surname" field if the given value is not nil.
func (_c *PatientCreate) SetNillableMaternalSurname(v *string) *PatientCreate {
	if v != nil {
		_c.SetMaternalSurname(*v)
	}
	return _c
}

// SetBirthDate sets the "birth_date" field.
func (_c *PatientCreate) SetBirthDate(v string) *PatientCreate {
	_c.mutation.SetBirthDate(v)
	return _c
}

// SetSex sets the "sex" field.
func (_c *PatientCreate) SetSex(v patient.Sex) *PatientCreate {
	_c.mutation.SetSex(v)
	return _c
}

// SetNillableSex sets the "sex" field if the given value is not nil.
func (_c *PatientCreate) SetNillableSex(v *patient.Sex) *PatientCreate {
	if v != nil {
		_c.SetSex(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *PatientCreate) SetPhone(v string) *PatientCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *PatientCreate) SetNillablePhone(v *string) *PatientCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetRfc sets the "rfc" field.
func (_c *PatientCreate) SetRfc(v string) *PatientCreate {
	_c.mutation.SetRfc(v)
	return _c
}

// SetNillableRfc sets the "rfc" field if the given value is not nil.
func (_c *PatientCreate) SetNillableRfc(v *string) *PatientCreate {
	if v != nil {
		_c.SetRfc(*v)
	}
	return _c
}

// SetAllergies sets the "allergies" field.
func (_c *PatientCreate) SetAllergies(v []string) *PatientCreate {
	_c.mutation.SetAllergies(v)
	return _c
}

// SetChronicConditions sets the "chronic_conditions" field.
func (_c *PatientCreate) SetChronicConditions(v []string) *PatientCreate {
	_c.mutation.SetChronicConditions(v)
	return _c
}

// SetCurrentMedications sets the "current_medications" field.
func (_c *PatientCreate) SetCurrentMedications(v []string) *PatientCreate {
	_c.mutation.SetCurrentMedications(v)
	return _c
}

// SetPriorSurgeries sets the "prior_surgeries" field.
func (_c *PatientCreate) SetPriorSurgeries(v []store.Surgery) *PatientCreate {
	_c.mutation.SetPriorSurgeries(v)
	return _c
}

// SetFamilyHistory sets the "family_history" field.
func (_c *PatientCreate) SetFamilyHistory(v string) *PatientCreate {
	_c.mutation.SetFamilyHistory(v)
	return _c
}

// SetNillableFamilyHistory sets the "family_history" field if the given value is not nil.
func (_c *PatientCreate) SetNillableFamilyHistory(v *string) *PatientCreate {
	if v != nil {
		_c.SetFamilyHistory(*v)
	}
	return _c
}

// SetSubstanceUse sets the "substance_use" field.
func (_c *PatientCreate) SetSubstanceUse(v patient.SubstanceUse) *PatientCreate {
	_c.mutation.SetSubstanceUse(v)
	return _c
}

// SetNillableSubstanceUse sets the "substance_use" field if the given value is not nil.
func (_c *PatientCreate) SetNillableSubstanceUse(v *patient.SubstanceUse) *PatientCreate {
	if v != nil {
		_c.SetSubstanceUse(*v)
	}
	return _c
}

// SetSubstanceDetail sets the "substance_detail" field.
func (_c *PatientCreate) SetSubstanceDetail(v *store.SubstanceDetail) *PatientCreate {
	_c.mutation.SetSubstanceDetail(v)
	return _c
}

// SetConsultationReason sets the "consultation_reason" field.
func (_c *PatientCreate) SetConsultationReason(v string) *PatientCreate {
	_c.mutation.SetConsultationReason(v)
	return _c
}

// SetNillableConsultationReason sets the "consultation_reason" field if the given value is not nil.
func (_c *PatientCreate) SetNillableConsultationReason(v *string) *PatientCreate {
	if v != nil {
		_c.SetConsultationReason(*v)
	}
	return _c
}

// SetInitialSymptoms sets the "initial_symptoms" field.
func (_c *PatientCreate) SetInitialSymptoms(v string) *PatientCreate {
	_c.mutation.SetInitialSymptoms(v)
	return _c
}

// SetNillableInitialSymptoms sets the "initial_symptoms" field if the given value is not nil.
func (_c *PatientCreate) SetNillableInitialSymptoms(v *string) *PatientCreate {
	if v != nil {
		_c.SetInitialSymptoms(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientCreate) SetID(v uuid.UUID) *PatientCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PatientCreate) SetNillableID(v *uuid.UUID) *PatientCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddAppointmentIDs adds the "appointments" edge to the Appointment entity by IDs.
func (_c *PatientCreate) AddAppointmentIDs(ids ...uuid.UUID) *PatientCreate {
	_c.mutation.AddAppointmentIDs(ids...)
	return _c
}

// AddAppointments adds the "appointments" edges to the Appointment entity.
func (_c *PatientCreate) AddAppointments(v ...*Appointment) *PatientCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAppointmentIDs(ids...)
}

// AddHistoryIDs adds the "history" edge to the HistoryEntry entity by IDs.
func (_c *PatientCreate) AddHistoryIDs(ids ...uuid.UUID) *PatientCreate {
	_c.mutation.AddHistoryIDs(ids...)
	return _c
}

// AddHistory adds the "history" edges to the HistoryEntry entity.
func (_c *PatientCreate) AddHistory(v ...*HistoryEntry) *PatientCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddHistoryIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_c *PatientCreate) Mutation() *PatientMutation {
	return _c.mutation
}

// Save creates the Patient in the database.
func (_c *PatientCreate) Save(ctx context.Context) (*Patient, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientCreate) SaveX(ctx context.Context) *Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patient.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := patient.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.SubstanceUse(); !ok {
		v := patient.DefaultSubstanceUse
		_c.mutation.SetSubstanceUse(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := patient.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Patient.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Patient.updated_at"`)}
	}
	if _, ok := _c.mutation.GivenName(); !ok {
		return &ValidationError{Name: "given_name", err: errors.New(`repo: missing required field "Patient.given_name"`)}
	}
	if v, ok := _c.mutation.GivenName(); ok {
		if err := patient.GivenNameValidator(v); err != nil {
			return &ValidationError{Name: "given_name", err: fmt.Errorf(`repo: validator failed for field "Patient.given_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PaternalSurname(); !ok {
		return &ValidationError{Name: "paternal_surname", err: errors.New(`repo: missing required field "Patient.paternal_surname"`)}
	}
	if v, ok := _c.mutation.PaternalSurname(); ok {
		if err := patient.PaternalSurnameValidator(v); err != nil {
			return &ValidationError{Name: "paternal_surname", err: fmt.Errorf(`repo: validator failed for field "Patient.paternal_surname": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MaternalSurname(); ok {
		if err := patient.MaternalSurnameValidator(v); err != nil {
			return &ValidationError{Name: "maternal_surname", err: fmt.Errorf(`repo: validator failed for field "Patient.maternal_surname": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BirthDate(); !ok {
		return &ValidationError{Name: "birth_date", err: errors.New(`repo: missing required field "Patient.birth_date"`)}
	}
	if v, ok := _c.mutation.BirthDate(); ok {
		if err := patient.BirthDateValidator(v); err != nil {
			return &ValidationError{Name: "birth_date", err: fmt.Errorf(`repo: validator failed for field "Patient.birth_date": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Sex(); ok {
		if err := patient.SexValidator(v); err != nil {
			return &ValidationError{Name: "sex", err: fmt.Errorf(`repo: validator failed for field "Patient.sex": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := patient.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Patient.phone": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Rfc(); ok {
		if err := patient.RfcValidator(v); err != nil {
			return &ValidationError{Name: "rfc", err: fmt.Errorf(`repo: validator failed for field "Patient.rfc": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubstanceUse(); !ok {
		return &ValidationError{Name: "substance_use", err: errors.New(`repo: missing required field "Patient.substance_use"`)}
	}
	if v, ok := _c.mutation.SubstanceUse(); ok {
		if err := patient.SubstanceUseValidator(v); err != nil {
			return &ValidationError{Name: "substance_use", err: fmt.Errorf(`repo: validator failed for field "Patient.substance_use": %w`, err)}
		}
	}
	return nil
}

func (_c *PatientCreate) sqlSave(ctx context.Context) (*Patient, error) {
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

func (_c *PatientCreate) createSpec() (*Patient, *sqlgraph.CreateSpec) {
	var (
		_node = &Patient{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patient.Table, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patient.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.GivenName(); ok {
		_spec.SetField(patient.FieldGivenName, field.TypeString, value)
		_node.GivenName = value
	}
	if value, ok := _c.mutation.PaternalSurname(); ok {
		_spec.SetField(patient.FieldPaternalSurname, field.TypeString, value)
		_node.PaternalSurname = value
	}
	if value, ok := _c.mutation.MaternalSurname(); ok {
		_spec.SetField(patient.FieldMaternalSurname, field.TypeString, value)
		_node.MaternalSurname = value
	}
	if value, ok := _c.mutation.BirthDate(); ok {
		_spec.SetField(patient.FieldBirthDate, field.TypeString, value)
		_node.BirthDate = value
	}
	if value, ok := _c.mutation.Sex(); ok {
		_spec.SetField(patient.FieldSex, field.TypeEnum, value)
		_node.Sex = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(patient.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Rfc(); ok {
		_spec.SetField(patient.FieldRfc, field.TypeString, value)
		_node.Rfc = value
	}
	if value, ok := _c.mutation.Allergies(); ok {
		_spec.SetField(patient.FieldAllergies, field.TypeJSON, value)
		_node.Allergies = value
	}
	if value, ok := _c.mutation.ChronicConditions(); ok {
		_spec.SetField(patient.FieldChronicConditions, field.TypeJSON, value)
		_node.ChronicConditions = value
	}
	if value, ok := _c.mutation.CurrentMedications(); ok {
		_spec.SetField(patient.FieldCurrentMedications, field.TypeJSON, value)
		_node.CurrentMedications = value
	}
	if value, ok := _c.mutation.PriorSurgeries(); ok {
		_spec.SetField(patient.FieldPriorSurgeries, field.TypeJSON, value)
		_node.PriorSurgeries = value
	}
	if value, ok := _c.mutation.FamilyHistory(); ok {
		_spec.SetField(patient.FieldFamilyHistory, field.TypeString, value)
		_node.FamilyHistory = value
	}
	if value, ok := _c.mutation.SubstanceUse(); ok {
		_spec.SetField(patient.FieldSubstanceUse, field.TypeEnum, value)
		_node.SubstanceUse = value
	}
	if value, ok := _c.mutation.SubstanceDetail(); ok {
		_spec.SetField(patient.FieldSubstanceDetail, field.TypeJSON, value)
		_node.SubstanceDetail = value
	}
	if value, ok := _c.mutation.ConsultationReason(); ok {
		_spec.SetField(patient.FieldConsultationReason, field.TypeString, value)
		_node.ConsultationReason = value
	}
	if value, ok := _c.mutation.InitialSymptoms(); ok {
		_spec.SetField(patient.FieldInitialSymptoms, field.TypeString, value)
		_node.InitialSymptoms = value
	}
	if nodes := _c.mutation.AppointmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AppointmentsTable,
			Columns: []string{patient.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.HistoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.HistoryTable,
			Columns: []string{patient.HistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(historyentry.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PatientCreateBulk is the builder for creating many Patient entities in bulk.
type PatientCreateBulk struct {
	config
	err      error
	builders []*PatientCreate
}

// Save creates the Patient entities in the database.
func (_c *PatientCreateBulk) Save(ctx context.Context) ([]*Patient, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Patient, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientMutation)
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
func (_c *PatientCreateBulk) SaveX(ctx context.Context) []*Patient {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
