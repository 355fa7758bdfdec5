// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/drvaldez/consultorio_backend/internal/repo/appointment"
	"github.com/drvaldez/consultorio_backend/internal/repo/historyentry"
	"github.com/drvaldez/consultorio_backend/internal/repo/patient"
	"github.com/drvaldez/consultorio_backend/internal/repo/predicate"
	"github.com/drvaldez/consultorio_backend/internal/store"
	"github.com/google/uuid"
)

// PatientUpdate is the builder for updating Patient entities.
type PatientUpdate struct {
	config
	hooks    []Hook
	mutation *PatientMutation
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdate) Where(ps ...predicate.Patient) *PatientUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdate) SetUpdatedAt(v time.Time) *PatientUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetGivenName sets the "given_name" field.
func (_u *PatientUpdate) SetGivenName(v string) *PatientUpdate {
	_u.mutation.SetGivenName(v)
	return _u
}

// SetNillableGivenName sets the "given_name" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableGivenName(v *string) *PatientUpdate {
	if v != nil {
		_u.SetGivenName(*v)
	}
	return _u
}

// SetPaternalSurname sets the "paternal_surname" field.
func (_u *PatientUpdate) SetPaternalSurname(v string) *PatientUpdate {
	_u.mutation.SetPaternalSurname(v)
	return _u
}

// SetNillablePaternalSurname sets the "paternal_surname" field if the given value is not nil.
func (_u *PatientUpdate) SetNillablePaternalSurname(v *string) *PatientUpdate {
	if v != nil {
		_u.SetPaternalSurname(*v)
	}
	return _u
}

// SetMaternalSurname sets the "maternal_surname" field.
func (_u *PatientUpdate) SetMaternalSurname(v string) *PatientUpdate {
	_u.mutation.SetMaternalSurname(v)
	return _u
}

// SetNillableMaternalSurname sets the "maternal_surname" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableMaternalSurname(v *string) *PatientUpdate {
	if v != nil {
		_u.SetMaternalSurname(*v)
	}
	return _u
}

// ClearMaternalSurname clears the value of the "maternal_surname" field.
func (_u *PatientUpdate) ClearMaternalSurname() *PatientUpdate {
	_u.mutation.ClearMaternalSurname()
	return _u
}

// SetBirthDate sets the "birth_date" field.
func (_u *PatientUpdate) SetBirthDate(v string) *PatientUpdate {
	_u.mutation.SetBirthDate(v)
	return _u
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableBirthDate(v *string) *PatientUpdate {
	if v != nil {
		_u.SetBirthDate(*v)
	}
	return _u
}

// SetSex sets the "sex" field.
func (_u *PatientUpdate) SetSex(v patient.Sex) *PatientUpdate {
	_u.mutation.SetSex(v)
	return _u
}

// SetNillableSex sets the "sex" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableSex(v *patient.Sex) *PatientUpdate {
	if v != nil {
		_u.SetSex(*v)
	}
	return _u
}

// ClearSex clears the value of the "sex" field.
func (_u *PatientUpdate) ClearSex() *PatientUpdate {
	_u.mutation.ClearSex()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *PatientUpdate) SetPhone(v string) *PatientUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *PatientUpdate) SetNillablePhone(v *string) *PatientUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *PatientUpdate) ClearPhone() *PatientUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetRfc sets the "rfc" field.
func (_u *PatientUpdate) SetRfc(v string) *PatientUpdate {
	_u.mutation.SetRfc(v)
	return _u
}

// SetNillableRfc sets the "rfc" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableRfc(v *string) *PatientUpdate {
	if v != nil {
		_u.SetRfc(*v)
	}
	return _u
}

// ClearRfc clears the value of the "rfc" field.
func (_u *PatientUpdate) ClearRfc() *PatientUpdate {
	_u.mutation.ClearRfc()
	return _u
}

// SetAllergies sets the "allergies" field.
func (_u *PatientUpdate) SetAllergies(v []string) *PatientUpdate {
	_u.mutation.SetAllergies(v)
	return _u
}

// AppendAllergies appends value to the "allergies" field.
func (_u *PatientUpdate) AppendAllergies(v []string) *PatientUpdate {
	_u.mutation.AppendAllergies(v)
	return _u
}

// ClearAllergies clears the value of the "allergies" field.
func (_u *PatientUpdate) ClearAllergies() *PatientUpdate {
	_u.mutation.ClearAllergies()
	return _u
}

// SetChronicConditions sets the "chronic_conditions" field.
func (_u *PatientUpdate) SetChronicConditions(v []string) *PatientUpdate {
	_u.mutation.SetChronicConditions(v)
	return _u
}

// AppendChronicConditions appends value to the "chronic_conditions" field.
func (_u *PatientUpdate) AppendChronicConditions(v []string) *PatientUpdate {
	_u.mutation.AppendChronicConditions(v)
	return _u
}

// ClearChronicConditions clears the value of the "chronic_conditions" field.
func (_u *PatientUpdate) ClearChronicConditions() *PatientUpdate {
	_u.mutation.ClearChronicConditions()
	return _u
}

// SetCurrentMedications sets the "current_medications" field.
func (_u *PatientUpdate) SetCurrentMedications(v []string) *PatientUpdate {
	_u.mutation.SetCurrentMedications(v)
	return _u
}

// AppendCurrentMedications appends value to the "current_medications" field.
func (_u *PatientUpdate) AppendCurrentMedications(v []string) *PatientUpdate {
	_u.mutation.AppendCurrentMedications(v)
	return _u
}

// ClearCurrentMedications clears the value of the "current_medications" field.
func (_u *PatientUpdate) ClearCurrentMedications() *PatientUpdate {
	_u.mutation.ClearCurrentMedications()
	return _u
}

// SetPriorSurgeries sets the "prior_surgeries" field.
func (_u *PatientUpdate) SetPriorSurgeries(v []store.Surgery) *PatientUpdate {
	_u.mutation.SetPriorSurgeries(v)
	return _u
}

// AppendPriorSurgeries appends value to the "prior_surgeries" field.
func (_u *PatientUpdate) AppendPriorSurgeries(v []store.Surgery) *PatientUpdate {
	_u.mutation.AppendPriorSurgeries(v)
	return _u
}

// ClearPriorSurgeries clears the value of the "prior_surgeries" field.
func (_u *PatientUpdate) ClearPriorSurgeries() *PatientUpdate {
	_u.mutation.ClearPriorSurgeries()
	return _u
}

// SetFamilyHistory sets the "family_history" field.
func (_u *PatientUpdate) SetFamilyHistory(v string) *PatientUpdate {
	_u.mutation.SetFamilyHistory(v)
	return _u
}

// SetNillableFamilyHistory sets the "family_history" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableFamilyHistory(v *string) *PatientUpdate {
	if v != nil {
		_u.SetFamilyHistory(*v)
	}
	return _u
}

// ClearFamilyHistory clears the value of the "family_history" field.
func (_u *PatientUpdate) ClearFamilyHistory() *PatientUpdate {
	_u.mutation.ClearFamilyHistory()
	return _u
}

// SetSubstanceUse sets the "substance_use" field.
func (_u *PatientUpdate) SetSubstanceUse(v patient.SubstanceUse) *PatientUpdate {
	_u.mutation.SetSubstanceUse(v)
	return _u
}

// SetNillableSubstanceUse sets the "substance_use" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableSubstanceUse(v *patient.SubstanceUse) *PatientUpdate {
	if v != nil {
		_u.SetSubstanceUse(*v)
	}
	return _u
}

// SetSubstanceDetail sets the "substance_detail" field.
func (_u *PatientUpdate) SetSubstanceDetail(v *store.SubstanceDetail) *PatientUpdate {
	_u.mutation.SetSubstanceDetail(v)
	return _u
}

// ClearSubstanceDetail clears the value of the "substance_detail" field.
func (_u *PatientUpdate) ClearSubstanceDetail() *PatientUpdate {
	_u.mutation.ClearSubstanceDetail()
	return _u
}

// SetConsultationReason sets the "consultation_reason" field.
func (_u *PatientUpdate) SetConsultationReason(v string) *PatientUpdate {
	_u.mutation.SetConsultationReason(v)
	return _u
}

// SetNillableConsultationReason sets the "consultation_reason" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableConsultationReason(v *string) *PatientUpdate {
	if v != nil {
		_u.SetConsultationReason(*v)
	}
	return _u
}

// ClearConsultationReason clears the value of the "consultation_reason" field.
func (_u *PatientUpdate) ClearConsultationReason() *PatientUpdate {
	_u.mutation.ClearConsultationReason()
	return _u
}

// SetInitialSymptoms sets the "initial_symptoms" field.
func (_u *PatientUpdate) SetInitialSymptoms(v string) *PatientUpdate {
	_u.mutation.SetInitialSymptoms(v)
	return _u
}

// SetNillableInitialSymptoms sets the "initial_symptoms" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableInitialSymptoms(v *string) *PatientUpdate {
	if v != nil {
		_u.SetInitialSymptoms(*v)
	}
	return _u
}

// ClearInitialSymptoms clears the value of the "initial_symptoms" field.
func (_u *PatientUpdate) ClearInitialSymptoms() *PatientUpdate {
	_u.mutation.ClearInitialSymptoms()
	return _u
}

// AddAppointmentIDs adds the "appointments" edge to the Appointment entity by IDs.
func (_u *PatientUpdate) AddAppointmentIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.AddAppointmentIDs(ids...)
	return _u
}

// AddAppointments adds the "appointments" edges to the Appointment entity.
func (_u *PatientUpdate) AddAppointments(v ...*Appointment) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAppointmentIDs(ids...)
}

// AddHistoryIDs adds the "history" edge to the HistoryEntry entity by IDs.
func (_u *PatientUpdate) AddHistoryIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.AddHistoryIDs(ids...)
	return _u
}

// AddHistory adds the "history" edges to the HistoryEntry entity.
func (_u *PatientUpdate) AddHistory(v ...*HistoryEntry) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHistoryIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdate) Mutation() *PatientMutation {
	return _u.mutation
}

// ClearAppointments clears all "appointments" edges to the Appointment entity.
func (_u *PatientUpdate) ClearAppointments() *PatientUpdate {
	_u.mutation.ClearAppointments()
	return _u
}

// RemoveAppointmentIDs removes the "appointments" edge to Appointment entities by IDs.
func (_u *PatientUpdate) RemoveAppointmentIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.RemoveAppointmentIDs(ids...)
	return _u
}

// RemoveAppointments removes "appointments" edges to Appointment entities.
func (_u *PatientUpdate) RemoveAppointments(v ...*Appointment) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAppointmentIDs(ids...)
}

// ClearHistory clears all "history" edges to the HistoryEntry entity.
func (_u *PatientUpdate) ClearHistory() *PatientUpdate {
	_u.mutation.ClearHistory()
	return _u
}

// RemoveHistoryIDs removes the "history" edge to HistoryEntry entities by IDs.
func (_u *PatientUpdate) RemoveHistoryIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.RemoveHistoryIDs(ids...)
	return _u
}

// RemoveHistory removes "history" edges to HistoryEntry entities.
func (_u *PatientUpdate) RemoveHistory(v ...*HistoryEntry) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHistoryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdate) check() error {
	if v, ok := _u.mutation.GivenName(); ok {
		if err := patient.GivenNameValidator(v); err != nil {
			return &ValidationError{Name: "given_name", err: fmt.Errorf(`repo: validator failed for field "Patient.given_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaternalSurname(); ok {
		if err := patient.PaternalSurnameValidator(v); err != nil {
			return &ValidationError{Name: "paternal_surname", err: fmt.Errorf(`repo: validator failed for field "Patient.paternal_surname": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaternalSurname(); ok {
		if err := patient.MaternalSurnameValidator(v); err != nil {
			return &ValidationError{Name: "maternal_surname", err: fmt.Errorf(`repo: validator failed for field "Patient.maternal_surname": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BirthDate(); ok {
		if err := patient.BirthDateValidator(v); err != nil {
			return &ValidationError{Name: "birth_date", err: fmt.Errorf(`repo: validator failed for field "Patient.birth_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sex(); ok {
		if err := patient.SexValidator(v); err != nil {
			return &ValidationError{Name: "sex", err: fmt.Errorf(`repo: validator failed for field "Patient.sex": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := patient.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Patient.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rfc(); ok {
		if err := patient.RfcValidator(v); err != nil {
			return &ValidationError{Name: "rfc", err: fmt.Errorf(`repo: validator failed for field "Patient.rfc": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubstanceUse(); ok {
		if err := patient.SubstanceUseValidator(v); err != nil {
			return &ValidationError{Name: "substance_use", err: fmt.Errorf(`repo: validator failed for field "Patient.substance_use": %w`, err)}
		}
	}
	return nil
}

func (_u *PatientUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GivenName(); ok {
		_spec.SetField(patient.FieldGivenName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PaternalSurname(); ok {
		_spec.SetField(patient.FieldPaternalSurname, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaternalSurname(); ok {
		_spec.SetField(patient.FieldMaternalSurname, field.TypeString, value)
	}
	if _u.mutation.MaternalSurnameCleared() {
		_spec.ClearField(patient.FieldMaternalSurname, field.TypeString)
	}
	if value, ok := _u.mutation.BirthDate(); ok {
		_spec.SetField(patient.FieldBirthDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sex(); ok {
		_spec.SetField(patient.FieldSex, field.TypeEnum, value)
	}
	if _u.mutation.SexCleared() {
		_spec.ClearField(patient.FieldSex, field.TypeEnum)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(patient.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(patient.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Rfc(); ok {
		_spec.SetField(patient.FieldRfc, field.TypeString, value)
	}
	if _u.mutation.RfcCleared() {
		_spec.ClearField(patient.FieldRfc, field.TypeString)
	}
	if value, ok := _u.mutation.Allergies(); ok {
		_spec.SetField(patient.FieldAllergies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllergies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldAllergies, value)
		})
	}
	if _u.mutation.AllergiesCleared() {
		_spec.ClearField(patient.FieldAllergies, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChronicConditions(); ok {
		_spec.SetField(patient.FieldChronicConditions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChronicConditions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldChronicConditions, value)
		})
	}
	if _u.mutation.ChronicConditionsCleared() {
		_spec.ClearField(patient.FieldChronicConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentMedications(); ok {
		_spec.SetField(patient.FieldCurrentMedications, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCurrentMedications(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldCurrentMedications, value)
		})
	}
	if _u.mutation.CurrentMedicationsCleared() {
		_spec.ClearField(patient.FieldCurrentMedications, field.TypeJSON)
	}
	if value, ok := _u.mutation.PriorSurgeries(); ok {
		_spec.SetField(patient.FieldPriorSurgeries, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPriorSurgeries(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldPriorSurgeries, value)
		})
	}
	if _u.mutation.PriorSurgeriesCleared() {
		_spec.ClearField(patient.FieldPriorSurgeries, field.TypeJSON)
	}
	if value, ok := _u.mutation.FamilyHistory(); ok {
		_spec.SetField(patient.FieldFamilyHistory, field.TypeString, value)
	}
	if _u.mutation.FamilyHistoryCleared() {
		_spec.ClearField(patient.FieldFamilyHistory, field.TypeString)
	}
	if value, ok := _u.mutation.SubstanceUse(); ok {
		_spec.SetField(patient.FieldSubstanceUse, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SubstanceDetail(); ok {
		_spec.SetField(patient.FieldSubstanceDetail, field.TypeJSON, value)
	}
	if _u.mutation.SubstanceDetailCleared() {
		_spec.ClearField(patient.FieldSubstanceDetail, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConsultationReason(); ok {
		_spec.SetField(patient.FieldConsultationReason, field.TypeString, value)
	}
	if _u.mutation.ConsultationReasonCleared() {
		_spec.ClearField(patient.FieldConsultationReason, field.TypeString)
	}
	if value, ok := _u.mutation.InitialSymptoms(); ok {
		_spec.SetField(patient.FieldInitialSymptoms, field.TypeString, value)
	}
	if _u.mutation.InitialSymptomsCleared() {
		_spec.ClearField(patient.FieldInitialSymptoms, field.TypeString)
	}
	if _u.mutation.AppointmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAppointmentsIDs(); len(nodes) > 0 && !_u.mutation.AppointmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppointmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHistoryIDs(); len(nodes) > 0 && !_u.mutation.HistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HistoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientUpdateOne is the builder for updating a single Patient entity.
type PatientUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdateOne) SetUpdatedAt(v time.Time) *PatientUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetGivenName sets the "given_name" field.
func (_u *PatientUpdateOne) SetGivenName(v string) *PatientUpdateOne {
	_u.mutation.SetGivenName(v)
	return _u
}

// SetNillableGivenName sets the "given_name" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableGivenName(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetGivenName(*v)
	}
	return _u
}

// SetPaternalSurname sets the "paternal_surname" field.
func (_u *PatientUpdateOne) SetPaternalSurname(v string) *PatientUpdateOne {
	_u.mutation.SetPaternalSurname(v)
	return _u
}

// SetNillablePaternalSurname sets the "paternal_surname" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillablePaternalSurname(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetPaternalSurname(*v)
	}
	return _u
}

// SetMaternalSurname sets the "maternal_surname" field.
func (_u *PatientUpdateOne) SetMaternalSurname(v string) *PatientUpdateOne {
	_u.mutation.SetMaternalSurname(v)
	return _u
}

// SetNillableMaternalSurname sets the "maternal_surname" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableMaternalSurname(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetMaternalSurname(*v)
	}
	return _u
}

// ClearMaternalSurname clears the value of the "maternal_surname" field.
func (_u *PatientUpdateOne) ClearMaternalSurname() *PatientUpdateOne {
	_u.mutation.ClearMaternalSurname()
	return _u
}

// SetBirthDate sets the "birth_date" field.
func (_u *PatientUpdateOne) SetBirthDate(v string) *PatientUpdateOne {
	_u.mutation.SetBirthDate(v)
	return _u
}

// SetNillableBirthDate sets the "birth_date" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableBirthDate(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetBirthDate(*v)
	}
	return _u
}

// SetSex sets the "sex" field.
func (_u *PatientUpdateOne) SetSex(v patient.Sex) *PatientUpdateOne {
	_u.mutation.SetSex(v)
	return _u
}

// SetNillableSex sets the "sex" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableSex(v *patient.Sex) *PatientUpdateOne {
	if v != nil {
		_u.SetSex(*v)
	}
	return _u
}

// ClearSex clears the value of the "sex" field.
func (_u *PatientUpdateOne) ClearSex() *PatientUpdateOne {
	_u.mutation.ClearSex()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *PatientUpdateOne) SetPhone(v string) *PatientUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillablePhone(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *PatientUpdateOne) ClearPhone() *PatientUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetRfc sets the "rfc" field.
func (_u *PatientUpdateOne) SetRfc(v string) *PatientUpdateOne {
	_u.mutation.SetRfc(v)
	return _u
}

// SetNillableRfc sets the "rfc" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableRfc(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetRfc(*v)
	}
	return _u
}

// ClearRfc clears the value of the "rfc" field.
func (_u *PatientUpdateOne) ClearRfc() *PatientUpdateOne {
	_u.mutation.ClearRfc()
	return _u
}

// SetAllergies sets the "allergies" field.
func (_u *PatientUpdateOne) SetAllergies(v []string) *PatientUpdateOne {
	_u.mutation.SetAllergies(v)
	return _u
}

// AppendAllergies appends value to the "allergies" field.
func (_u *PatientUpdateOne) AppendAllergies(v []string) *PatientUpdateOne {
	_u.mutation.AppendAllergies(v)
	return _u
}

// ClearAllergies clears the value of the "allergies" field.
func (_u *PatientUpdateOne) ClearAllergies() *PatientUpdateOne {
	_u.mutation.ClearAllergies()
	return _u
}

// SetChronicConditions sets the "chronic_conditions" field.
func (_u *PatientUpdateOne) SetChronicConditions(v []string) *PatientUpdateOne {
	_u.mutation.SetChronicConditions(v)
	return _u
}

// AppendChronicConditions appends value to the "chronic_conditions" field.
func (_u *PatientUpdateOne) AppendChronicConditions(v []string) *PatientUpdateOne {
	_u.mutation.AppendChronicConditions(v)
	return _u
}

// ClearChronicConditions clears the value of the "chronic_conditions" field.
func (_u *PatientUpdateOne) ClearChronicConditions() *PatientUpdateOne {
	_u.mutation.ClearChronicConditions()
	return _u
}

// SetCurrentMedications sets the "current_medications" field.
func (_u *PatientUpdateOne) SetCurrentMedications(v []string) *PatientUpdateOne {
	_u.mutation.SetCurrentMedications(v)
	return _u
}

// AppendCurrentMedications appends value to the "current_medications" field.
func (_u *PatientUpdateOne) AppendCurrentMedications(v []string) *PatientUpdateOne {
	_u.mutation.AppendCurrentMedications(v)
	return _u
}

// ClearCurrentMedications clears the value of the "current_medications" field.
func (_u *PatientUpdateOne) ClearCurrentMedications() *PatientUpdateOne {
	_u.mutation.ClearCurrentMedications()
	return _u
}

// SetPriorSurgeries sets the "prior_surgeries" field.
func (_u *PatientUpdateOne) SetPriorSurgeries(v []store.Surgery) *PatientUpdateOne {
	_u.mutation.SetPriorSurgeries(v)
	return _u
}

// AppendPriorSurgeries appends value to the "prior_surgeries" field.
func (_u *PatientUpdateOne) AppendPriorSurgeries(v []store.Surgery) *PatientUpdateOne {
	_u.mutation.AppendPriorSurgeries(v)
	return _u
}

// ClearPriorSurgeries clears the value of the "prior_surgeries" field.
func (_u *PatientUpdateOne) ClearPriorSurgeries() *PatientUpdateOne {
	_u.mutation.ClearPriorSurgeries()
	return _u
}

// SetFamilyHistory sets the "family_history" field.
func (_u *PatientUpdateOne) SetFamilyHistory(v string) *PatientUpdateOne {
	_u.mutation.SetFamilyHistory(v)
	return _u
}

// SetNillableFamilyHistory sets the "family_history" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableFamilyHistory(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetFamilyHistory(*v)
	}
	return _u
}

// ClearFamilyHistory clears the value of the "family_history" field.
func (_u *PatientUpdateOne) ClearFamilyHistory() *PatientUpdateOne {
	_u.mutation.ClearFamilyHistory()
	return _u
}

// SetSubstanceUse sets the "substance_use" field.
func (_u *PatientUpdateOne) SetSubstanceUse(v patient.SubstanceUse) *PatientUpdateOne {
	_u.mutation.SetSubstanceUse(v)
	return _u
}

// SetNillableSubstanceUse sets the "substance_use" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableSubstanceUse(v *patient.SubstanceUse) *PatientUpdateOne {
	if v != nil {
		_u.SetSubstanceUse(*v)
	}
	return _u
}

// SetSubstanceDetail sets the "substance_detail" field.
func (_u *PatientUpdateOne) SetSubstanceDetail(v *store.SubstanceDetail) *PatientUpdateOne {
	_u.mutation.SetSubstanceDetail(v)
	return _u
}

// ClearSubstanceDetail clears the value of the "substance_detail" field.
func (_u *PatientUpdateOne) ClearSubstanceDetail() *PatientUpdateOne {
	_u.mutation.ClearSubstanceDetail()
	return _u
}

// SetConsultationReason sets the "consultation_reason" field.
func (_u *PatientUpdateOne) SetConsultationReason(v string) *PatientUpdateOne {
	_u.mutation.SetConsultationReason(v)
	return _u
}

// SetNillableConsultationReason sets the "consultation_reason" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableConsultationReason(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetConsultationReason(*v)
	}
	return _u
}

// ClearConsultationReason clears the value of the "consultation_reason" field.
func (_u *PatientUpdateOne) ClearConsultationReason() *PatientUpdateOne {
	_u.mutation.ClearConsultationReason()
	return _u
}

// SetInitialSymptoms sets the "initial_symptoms" field.
func (_u *PatientUpdateOne) SetInitialSymptoms(v string) *PatientUpdateOne {
	_u.mutation.SetInitialSymptoms(v)
	return _u
}

// SetNillableInitialSymptoms sets the "initial_symptoms" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableInitialSymptoms(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetInitialSymptoms(*v)
	}
	return _u
}

// ClearInitialSymptoms clears the value of the "initial_symptoms" field.
func (_u *PatientUpdateOne) ClearInitialSymptoms() *PatientUpdateOne {
	_u.mutation.ClearInitialSymptoms()
	return _u
}

// AddAppointmentIDs adds the "appointments" edge to the Appointment entity by IDs.
func (_u *PatientUpdateOne) AddAppointmentIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.AddAppointmentIDs(ids...)
	return _u
}

// AddAppointments adds the "appointments" edges to the Appointment entity.
func (_u *PatientUpdateOne) AddAppointments(v ...*Appointment) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAppointmentIDs(ids...)
}

// AddHistoryIDs adds the "history" edge to the HistoryEntry entity by IDs.
func (_u *PatientUpdateOne) AddHistoryIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.AddHistoryIDs(ids...)
	return _u
}

// AddHistory adds the "history" edges to the HistoryEntry entity.
func (_u *PatientUpdateOne) AddHistory(v ...*HistoryEntry) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHistoryIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdateOne) Mutation() *PatientMutation {
	return _u.mutation
}

// ClearAppointments clears all "appointments" edges to the Appointment entity.
func (_u *PatientUpdateOne) ClearAppointments() *PatientUpdateOne {
	_u.mutation.ClearAppointments()
	return _u
}

// RemoveAppointmentIDs removes the "appointments" edge to Appointment entities by IDs.
func (_u *PatientUpdateOne) RemoveAppointmentIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.RemoveAppointmentIDs(ids...)
	return _u
}

// RemoveAppointments removes "appointments" edges to Appointment entities.
func (_u *PatientUpdateOne) RemoveAppointments(v ...*Appointment) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAppointmentIDs(ids...)
}

// ClearHistory clears all "history" edges to the HistoryEntry entity.
func (_u *PatientUpdateOne) ClearHistory() *PatientUpdateOne {
	_u.mutation.ClearHistory()
	return _u
}

// RemoveHistoryIDs removes the "history" edge to HistoryEntry entities by IDs.
func (_u *PatientUpdateOne) RemoveHistoryIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.RemoveHistoryIDs(ids...)
	return _u
}

// RemoveHistory removes "history" edges to HistoryEntry entities.
func (_u *PatientUpdateOne) RemoveHistory(v ...*HistoryEntry) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHistoryIDs(ids...)
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdateOne) Where(ps ...predicate.Patient) *PatientUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientUpdateOne) Select(field string, fields ...string) *PatientUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Patient entity.
func (_u *PatientUpdateOne) Save(ctx context.Context) (*Patient, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdateOne) SaveX(ctx context.Context) *Patient {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdateOne) check() error {
	if v, ok := _u.mutation.GivenName(); ok {
		if err := patient.GivenNameValidator(v); err != nil {
			return &ValidationError{Name: "given_name", err: fmt.Errorf(`repo: validator failed for field "Patient.given_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaternalSurname(); ok {
		if err := patient.PaternalSurnameValidator(v); err != nil {
			return &ValidationError{Name: "paternal_surname", err: fmt.Errorf(`repo: validator failed for field "Patient.paternal_surname": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaternalSurname(); ok {
		if err := patient.MaternalSurnameValidator(v); err != nil {
			return &ValidationError{Name: "maternal_surname", err: fmt.Errorf(`repo: validator failed for field "Patient.maternal_surname": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BirthDate(); ok {
		if err := patient.BirthDateValidator(v); err != nil {
			return &ValidationError{Name: "birth_date", err: fmt.Errorf(`repo: validator failed for field "Patient.birth_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Sex(); ok {
		if err := patient.SexValidator(v); err != nil {
			return &ValidationError{Name: "sex", err: fmt.Errorf(`repo: validator failed for field "Patient.sex": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := patient.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "Patient.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rfc(); ok {
		if err := patient.RfcValidator(v); err != nil {
			return &ValidationError{Name: "rfc", err: fmt.Errorf(`repo: validator failed for field "Patient.rfc": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubstanceUse(); ok {
		if err := patient.SubstanceUseValidator(v); err != nil {
			return &ValidationError{Name: "substance_use", err: fmt.Errorf(`repo: validator failed for field "Patient.substance_use": %w`, err)}
		}
	}
	return nil
}

func (_u *PatientUpdateOne) sqlSave(ctx context.Context) (_node *Patient, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Patient.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patient.FieldID)
		for _, f := range fields {
			if !patient.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != patient.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GivenName(); ok {
		_spec.SetField(patient.FieldGivenName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PaternalSurname(); ok {
		_spec.SetField(patient.FieldPaternalSurname, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaternalSurname(); ok {
		_spec.SetField(patient.FieldMaternalSurname, field.TypeString, value)
	}
	if _u.mutation.MaternalSurnameCleared() {
		_spec.ClearField(patient.FieldMaternalSurname, field.TypeString)
	}
	if value, ok := _u.mutation.BirthDate(); ok {
		_spec.SetField(patient.FieldBirthDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sex(); ok {
		_spec.SetField(patient.FieldSex, field.TypeEnum, value)
	}
	if _u.mutation.SexCleared() {
		_spec.ClearField(patient.FieldSex, field.TypeEnum)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(patient.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(patient.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Rfc(); ok {
		_spec.SetField(patient.FieldRfc, field.TypeString, value)
	}
	if _u.mutation.RfcCleared() {
		_spec.ClearField(patient.FieldRfc, field.TypeString)
	}
	if value, ok := _u.mutation.Allergies(); ok {
		_spec.SetField(patient.FieldAllergies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllergies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldAllergies, value)
		})
	}
	if _u.mutation.AllergiesCleared() {
		_spec.ClearField(patient.FieldAllergies, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChronicConditions(); ok {
		_spec.SetField(patient.FieldChronicConditions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChronicConditions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldChronicConditions, value)
		})
	}
	if _u.mutation.ChronicConditionsCleared() {
		_spec.ClearField(patient.FieldChronicConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentMedications(); ok {
		_spec.SetField(patient.FieldCurrentMedications, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCurrentMedications(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldCurrentMedications, value)
		})
	}
	if _u.mutation.CurrentMedicationsCleared() {
		_spec.ClearField(patient.FieldCurrentMedications, field.TypeJSON)
	}
	if value, ok := _u.mutation.PriorSurgeries(); ok {
		_spec.SetField(patient.FieldPriorSurgeries, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPriorSurgeries(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldPriorSurgeries, value)
		})
	}
	if _u.mutation.PriorSurgeriesCleared() {
		_spec.ClearField(patient.FieldPriorSurgeries, field.TypeJSON)
	}
	if value, ok := _u.mutation.FamilyHistory(); ok {
		_spec.SetField(patient.FieldFamilyHistory, field.TypeString, value)
	}
	if _u.mutation.FamilyHistoryCleared() {
		_spec.ClearField(patient.FieldFamilyHistory, field.TypeString)
	}
	if value, ok := _u.mutation.SubstanceUse(); ok {
		_spec.SetField(patient.FieldSubstanceUse, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SubstanceDetail(); ok {
		_spec.SetField(patient.FieldSubstanceDetail, field.TypeJSON, value)
	}
	if _u.mutation.SubstanceDetailCleared() {
		_spec.ClearField(patient.FieldSubstanceDetail, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConsultationReason(); ok {
		_spec.SetField(patient.FieldConsultationReason, field.TypeString, value)
	}
	if _u.mutation.ConsultationReasonCleared() {
		_spec.ClearField(patient.FieldConsultationReason, field.TypeString)
	}
	if value, ok := _u.mutation.InitialSymptoms(); ok {
		_spec.SetField(patient.FieldInitialSymptoms, field.TypeString, value)
	}
	if _u.mutation.InitialSymptomsCleared() {
		_spec.ClearField(patient.FieldInitialSymptoms, field.TypeString)
	}
	if _u.mutation.AppointmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAppointmentsIDs(); len(nodes) > 0 && !_u.mutation.AppointmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppointmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHistoryIDs(); len(nodes) > 0 && !_u.mutation.HistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HistoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Patient{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
