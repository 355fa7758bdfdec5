// Code generated by ent, DO NOT EDIT.

package patient

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the patient type in the database.
	Label = "patient"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldGivenName holds the string denoting the given_name field in the database.
	FieldGivenName = "given_name"
	// FieldPaternalSurname holds the string denoting the paternal_surname field in the database.
	FieldPaternalSurname = "paternal_surname"
	// FieldMaternalSurname holds the string denoting the maternal_surname field in the database.
	FieldMaternalSurname = "maternal_surname"
	// FieldBirthDate holds the string denoting the birth_date field in the database.
	FieldBirthDate = "birth_date"
	// FieldSex holds the string denoting the sex field in the database.
	FieldSex = "sex"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldRfc holds the string denoting the rfc field in the database.
	FieldRfc = "rfc"
	// FieldAllergies holds the string denoting the allergies field in the database.
	FieldAllergies = "allergies"
	// FieldChronicConditions holds the string denoting the chronic_conditions field in the database.
	FieldChronicConditions = "chronic_conditions"
	// FieldCurrentMedications holds the string denoting the current_medications field in the database.
	FieldCurrentMedications = "current_medications"
	// FieldPriorSurgeries holds the string denoting the prior_surgeries field in the database.
	FieldPriorSurgeries = "prior_surgeries"
	// FieldFamilyHistory holds the string denoting the family_history field in the database.
	FieldFamilyHistory = "family_history"
	// FieldSubstanceUse holds the string denoting the substance_use field in the database.
	FieldSubstanceUse = "substance_use"
	// FieldSubstanceDetail holds the string denoting the substance_detail field in the database.
	FieldSubstanceDetail = "substance_detail"
	// FieldConsultationReason holds the string denoting the consultation_reason field in the database.
	FieldConsultationReason = "consultation_reason"
	// FieldInitialSymptoms holds the string denoting the initial_symptoms field in the database.
	FieldInitialSymptoms = "initial_symptoms"
	// EdgeAppointments holds the string denoting the appointments edge name in mutations.
	EdgeAppointments = "appointments"
	// EdgeHistory holds the string denoting the history edge name in mutations.
	EdgeHistory = "history"
	// Table holds the table name of the patient in the database.
	Table = "patients"
	// AppointmentsTable is the table that holds the appointments relation/edge.
	AppointmentsTable = "appointments"
	// AppointmentsInverseTable is the table name for the Appointment entity.
	// It exists in this package in order to avoid circular dependency with the "appointment" package.
	AppointmentsInverseTable = "appointments"
	// AppointmentsColumn is the table column denoting the appointments relation/edge.
	AppointmentsColumn = "patient_id"
	// HistoryTable is the table that holds the history relation/edge.
	HistoryTable = "history_entries"
	// HistoryInverseTable is the table name for the HistoryEntry entity.
	// It exists in this package in order to avoid circular dependency with the "historyentry" package.
	HistoryInverseTable = "history_entries"
	// HistoryColumn is the table column denoting the history relation/edge.
	HistoryColumn = "patient_id"
)

// Columns holds all SQL columns for patient fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldGivenName,
	FieldPaternalSurname,
	FieldMaternalSurname,
	FieldBirthDate,
	FieldSex,
	FieldPhone,
	FieldRfc,
	FieldAllergies,
	FieldChronicConditions,
	FieldCurrentMedications,
	FieldPriorSurgeries,
	FieldFamilyHistory,
	FieldSubstanceUse,
	FieldSubstanceDetail,
	FieldConsultationReason,
	FieldInitialSymptoms,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// GivenNameValidator is a validator for the "given_name" field. It is called by the builders before save.
	GivenNameValidator func(string) error
	// PaternalSurnameValidator is a validator for the "paternal_surname" field. It is called by the builders before save.
	PaternalSurnameValidator func(string) error
	// MaternalSurnameValidator is a validator for the "maternal_surname" field. It is called by the builders before save.
	MaternalSurnameValidator func(string) error
	// BirthDateValidator is a validator for the "birth_date" field. It is called by the builders before save.
	BirthDateValidator func(string) error
	// PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	PhoneValidator func(string) error
	// RfcValidator is a validator for the "rfc" field. It is called by the builders before save.
	RfcValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Sex defines the type for the "sex" enum field.
type Sex string

// Sex values.
const (
	SexMasculino Sex = "masculino"
	SexFemenino  Sex = "femenino"
)

func (s Sex) String() string {
	return string(s)
}

// SexValidator is a validator for the "sex" field enum values. It is called by the builders before save.
func SexValidator(s Sex) error {
	switch s {
	case SexMasculino, SexFemenino:
		return nil
	default:
		return fmt.Errorf("patient: invalid enum value for sex field: %q", s)
	}
}

// SubstanceUse defines the type for the "substance_use" enum field.
type SubstanceUse string

// SubstanceUseUnset is the default value of the SubstanceUse enum.
const DefaultSubstanceUse = SubstanceUseUnset

// SubstanceUse values.
const (
	SubstanceUseYes   SubstanceUse = "yes"
	SubstanceUseNo    SubstanceUse = "no"
	SubstanceUseUnset SubstanceUse = "unset"
)

func (su SubstanceUse) String() string {
	return string(su)
}

// SubstanceUseValidator is a validator for the "substance_use" field enum values. It is called by the builders before save.
func SubstanceUseValidator(su SubstanceUse) error {
	switch su {
	case SubstanceUseYes, SubstanceUseNo, SubstanceUseUnset:
		return nil
	default:
		return fmt.Errorf("patient: invalid enum value for substance_use field: %q", su)
	}
}

// OrderOption defines the ordering options for the Patient queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByGivenName orders the results by the given_name field.
func ByGivenName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGivenName, opts...).ToFunc()
}

// ByPaternalSurname orders the results by the paternal_surname field.
func ByPaternalSurname(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaternalSurname, opts...).ToFunc()
}

// ByMaternalSurname orders the results by the maternal_surname field.
func ByMaternalSurname(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaternalSurname, opts...).ToFunc()
}

// ByBirthDate orders the results by the birth_date field.
func ByBirthDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBirthDate, opts...).ToFunc()
}

// BySex orders the results by the sex field.
func BySex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSex, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByRfc orders the results by the rfc field.
func ByRfc(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRfc, opts...).ToFunc()
}

// ByFamilyHistory orders the results by the family_history field.
func ByFamilyHistory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFamilyHistory, opts...).ToFunc()
}

// BySubstanceUse orders the results by the substance_use field.
func BySubstanceUse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubstanceUse, opts...).ToFunc()
}

// ByConsultationReason orders the results by the consultation_reason field.
func ByConsultationReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConsultationReason, opts...).ToFunc()
}

// ByInitialSymptoms orders the results by the initial_symptoms field.
func ByInitialSymptoms(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInitialSymptoms, opts...).ToFunc()
}

// ByAppointmentsCount orders the results by appointments count.
func ByAppointmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAppointmentsStep(), opts...)
	}
}

// ByAppointments orders the results by appointments terms.
func ByAppointments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAppointmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByHistoryCount orders the results by history count.
func ByHistoryCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newHistoryStep(), opts...)
	}
}

// ByHistory orders the results by history terms.
func ByHistory(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHistoryStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAppointmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AppointmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AppointmentsTable, AppointmentsColumn),
	)
}
func newHistoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HistoryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, HistoryTable, HistoryColumn),
	)
}
