// Code generated by ent, DO NOT EDIT.

package repo

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/drvaldez/consultorio_backend/internal/repo/patient"
	"github.com/drvaldez/consultorio_backend/internal/store"
	"github.com/google/uuid"
)

// Patient is the model entity for the Patient schema.
type Patient struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// GivenName holds the value of the "given_name" field.
	GivenName string `json:"given_name,omitempty"`
	// PaternalSurname holds the value of the "paternal_surname" field.
	PaternalSurname string `json:"paternal_surname,omitempty"`
	// MaternalSurname holds the value of the "maternal_surname" field.
	MaternalSurname string `json:"maternal_surname,omitempty"`
	// YYYY-MM-DD
	BirthDate string `json:"birth_date,omitempty"`
	// Sex holds the value of the "sex" field.
	Sex patient.Sex `json:"sex,omitempty"`
	// E.164
	Phone string `json:"phone,omitempty"`
	// Derived from name and birth date; recomputed on edit
	Rfc string `json:"rfc,omitempty"`
	// Allergies holds the value of the "allergies" field.
	Allergies []string `json:"allergies,omitempty"`
	// ChronicConditions holds the value of the "chronic_conditions" field.
	ChronicConditions []string `json:"chronic_conditions,omitempty"`
	// CurrentMedications holds the value of the "current_medications" field.
	CurrentMedications []string `json:"current_medications,omitempty"`
	// Ordered list of {date, procedure, complication}
	PriorSurgeries []store.Surgery `json:"prior_surgeries,omitempty"`
	// FamilyHistory holds the value of the "family_history" field.
	FamilyHistory string `json:"family_history,omitempty"`
	// SubstanceUse holds the value of the "substance_use" field.
	SubstanceUse patient.SubstanceUse `json:"substance_use,omitempty"`
	// {name, frequency} when substance_use is yes
	SubstanceDetail *store.SubstanceDetail `json:"substance_detail,omitempty"`
	// ConsultationReason holds the value of the "consultation_reason" field.
	ConsultationReason string `json:"consultation_reason,omitempty"`
	// InitialSymptoms holds the value of the "initial_symptoms" field.
	InitialSymptoms string `json:"initial_symptoms,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PatientQuery when eager-loading is set.
	Edges        PatientEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PatientEdges holds the relations/edges for other nodes in the graph.
type PatientEdges struct {
	// Appointments holds the value of the appointments edge.
	Appointments []*Appointment `json:"appointments,omitempty"`
	// History holds the value of the history edge.
	History []*HistoryEntry `json:"history,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AppointmentsOrErr returns the Appointments value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) AppointmentsOrErr() ([]*Appointment, error) {
	if e.loadedTypes[0] {
		return e.Appointments, nil
	}
	return nil, &NotLoadedError{edge: "appointments"}
}

// HistoryOrErr returns the History value or an error if the edge
// was not loaded in eager-loading.
func (e PatientEdges) HistoryOrErr() ([]*HistoryEntry, error) {
	if e.loadedTypes[1] {
		return e.History, nil
	}
	return nil, &NotLoadedError{edge: "history"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Patient) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case patient.FieldAllergies, patient.FieldChronicConditions, patient.FieldCurrentMedications, patient.FieldPriorSurgeries, patient.FieldSubstanceDetail:
			values[i] = new([]byte)
		case patient.FieldGivenName, patient.FieldPaternalSurname, patient.FieldMaternalSurname, patient.FieldBirthDate, patient.FieldSex, patient.FieldPhone, patient.FieldRfc, patient.FieldFamilyHistory, patient.FieldSubstanceUse, patient.FieldConsultationReason, patient.FieldInitialSymptoms:
			values[i] = new(sql.NullString)
		case patient.FieldCreatedAt, patient.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case patient.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Patient fields.
func (_m *Patient) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case patient.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case patient.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case patient.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case patient.FieldGivenName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field given_name", values[i])
			} else if value.Valid {
				_m.GivenName = value.String
			}
		case patient.FieldPaternalSurname:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field paternal_surname", values[i])
			} else if value.Valid {
				_m.PaternalSurname = value.String
			}
		case patient.FieldMaternalSurname:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field maternal_surname", values[i])
			} else if value.Valid {
				_m.MaternalSurname = value.String
			}
		case patient.FieldBirthDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field birth_date", values[i])
			} else if value.Valid {
				_m.BirthDate = value.String
			}
		case patient.FieldSex:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sex", values[i])
			} else if value.Valid {
				_m.Sex = patient.Sex(value.String)
			}
		case patient.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case patient.FieldRfc:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rfc", values[i])
			} else if value.Valid {
				_m.Rfc = value.String
			}
		case patient.FieldAllergies:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field allergies", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Allergies); err != nil {
					return fmt.Errorf("unmarshal field allergies: %w", err)
				}
			}
		case patient.FieldChronicConditions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field chronic_conditions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ChronicConditions); err != nil {
					return fmt.Errorf("unmarshal field chronic_conditions: %w", err)
				}
			}
		case patient.FieldCurrentMedications:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field current_medications", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CurrentMedications); err != nil {
					return fmt.Errorf("unmarshal field current_medications: %w", err)
				}
			}
		case patient.FieldPriorSurgeries:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field prior_surgeries", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PriorSurgeries); err != nil {
					return fmt.Errorf("unmarshal field prior_surgeries: %w", err)
				}
			}
		case patient.FieldFamilyHistory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field family_history", values[i])
			} else if value.Valid {
				_m.FamilyHistory = value.String
			}
		case patient.FieldSubstanceUse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field substance_use", values[i])
			} else if value.Valid {
				_m.SubstanceUse = patient.SubstanceUse(value.String)
			}
		case patient.FieldSubstanceDetail:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field substance_detail", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SubstanceDetail); err != nil {
					return fmt.Errorf("unmarshal field substance_detail: %w", err)
				}
			}
		case patient.FieldConsultationReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field consultation_reason", values[i])
			} else if value.Valid {
				_m.ConsultationReason = value.String
			}
		case patient.FieldInitialSymptoms:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field initial_symptoms", values[i])
			} else if value.Valid {
				_m.InitialSymptoms = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Patient.
// This includes values selected through modifiers, order, etc.
func (_m *Patient) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAppointments queries the "appointments" edge of the Patient entity.
func (_m *Patient) QueryAppointments() *AppointmentQuery {
	return NewPatientClient(_m.config).QueryAppointments(_m)
}

// QueryHistory queries the "history" edge of the Patient entity.
func (_m *Patient) QueryHistory() *HistoryEntryQuery {
	return NewPatientClient(_m.config).QueryHistory(_m)
}

// Update returns a builder for updating this Patient.
// Note that you need to call Patient.Unwrap() before calling this method if this Patient
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Patient) Update() *PatientUpdateOne {
	return NewPatientClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Patient entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Patient) Unwrap() *Patient {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Patient is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Patient) String() string {
	var builder strings.Builder
	builder.WriteString("Patient(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("given_name=")
	builder.WriteString(_m.GivenName)
	builder.WriteString(", ")
	builder.WriteString("paternal_surname=")
	builder.WriteString(_m.PaternalSurname)
	builder.WriteString(", ")
	builder.WriteString("maternal_surname=")
	builder.WriteString(_m.MaternalSurname)
	builder.WriteString(", ")
	builder.WriteString("birth_date=")
	builder.WriteString(_m.BirthDate)
	builder.WriteString(", ")
	builder.WriteString("sex=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sex))
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("rfc=")
	builder.WriteString(_m.Rfc)
	builder.WriteString(", ")
	builder.WriteString("allergies=")
	builder.WriteString(fmt.Sprintf("%v", _m.Allergies))
	builder.WriteString(", ")
	builder.WriteString("chronic_conditions=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChronicConditions))
	builder.WriteString(", ")
	builder.WriteString("current_medications=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentMedications))
	builder.WriteString(", ")
	builder.WriteString("prior_surgeries=")
	builder.WriteString(fmt.Sprintf("%v", _m.PriorSurgeries))
	builder.WriteString(", ")
	builder.WriteString("family_history=")
	builder.WriteString(_m.FamilyHistory)
	builder.WriteString(", ")
	builder.WriteString("substance_use=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubstanceUse))
	builder.WriteString(", ")
	builder.WriteString("substance_detail=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubstanceDetail))
	builder.WriteString(", ")
	builder.WriteString("consultation_reason=")
	builder.WriteString(_m.ConsultationReason)
	builder.WriteString(", ")
	builder.WriteString("initial_symptoms=")
	builder.WriteString(_m.InitialSymptoms)
	builder.WriteByte(')')
	return builder.String()
}

// Patients is a parsable slice of Patient.
type Patients []*Patient
