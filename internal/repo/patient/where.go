// Code generated by ent, DO NOT EDIT.

package patient

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/drvaldez/consultorio_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUpdatedAt, v))
}

// GivenName applies equality check predicate on the "given_name" field. It's identical to GivenNameEQ.
func GivenName(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldGivenName, v))
}

// PaternalSurname applies equality check predicate on the "paternal_surname" field. It's identical to PaternalSurnameEQ.
func PaternalSurname(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldPaternalSurname, v))
}

// MaternalSurname applies equality check predicate on the "maternal_surname" field. It's identical to MaternalSurnameEQ.
func MaternalSurname(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldMaternalSurname, v))
}

// BirthDate applies equality check predicate on the "birth_date" field. It's identical to BirthDateEQ.
func BirthDate(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldBirthDate, v))
}

// Phone applies equality check predicate on the "phone" field. It's identical to PhoneEQ.
func Phone(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldPhone, v))
}

// Rfc applies equality check predicate on the "rfc" field. It's identical to RfcEQ.
func Rfc(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldRfc, v))
}

// FamilyHistory applies equality check predicate on the "family_history" field. It's identical to FamilyHistoryEQ.
func FamilyHistory(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldFamilyHistory, v))
}

// ConsultationReason applies equality check predicate on the "consultation_reason" field. It's identical to ConsultationReasonEQ.
func ConsultationReason(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldConsultationReason, v))
}

// InitialSymptoms applies equality check predicate on the "initial_symptoms" field. It's identical to InitialSymptomsEQ.
func InitialSymptoms(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldInitialSymptoms, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldUpdatedAt, v))
}

// GivenNameEQ applies the EQ predicate on the "given_name" field.
func GivenNameEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldGivenName, v))
}

// GivenNameNEQ applies the NEQ predicate on the "given_name" field.
func GivenNameNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldGivenName, v))
}

// GivenNameIn applies the In predicate on the "given_name" field.
func GivenNameIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldGivenName, vs...))
}

// GivenNameNotIn applies the NotIn predicate on the "given_name" field.
func GivenNameNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldGivenName, vs...))
}

// GivenNameGT applies the GT predicate on the "given_name" field.
func GivenNameGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldGivenName, v))
}

// GivenNameGTE applies the GTE predicate on the "given_name" field.
func GivenNameGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldGivenName, v))
}

// GivenNameLT applies the LT predicate on the "given_name" field.
func GivenNameLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldGivenName, v))
}

// GivenNameLTE applies the LTE predicate on the "given_name" field.
func GivenNameLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldGivenName, v))
}

// GivenNameContains applies the Contains predicate on the "given_name" field.
func GivenNameContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldGivenName, v))
}

// GivenNameHasPrefix applies the HasPrefix predicate on the "given_name" field.
func GivenNameHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldGivenName, v))
}

// GivenNameHasSuffix applies the HasSuffix predicate on the "given_name" field.
func GivenNameHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldGivenName, v))
}

// GivenNameEqualFold applies the EqualFold predicate on the "given_name" field.
func GivenNameEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldGivenName, v))
}

// GivenNameContainsFold applies the ContainsFold predicate on the "given_name" field.
func GivenNameContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldGivenName, v))
}

// PaternalSurnameEQ applies the EQ predicate on the "paternal_surname" field.
func PaternalSurnameEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldPaternalSurname, v))
}

// PaternalSurnameNEQ applies the NEQ predicate on the "paternal_surname" field.
func PaternalSurnameNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldPaternalSurname, v))
}

// PaternalSurnameIn applies the In predicate on the "paternal_surname" field.
func PaternalSurnameIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldPaternalSurname, vs...))
}

// PaternalSurnameNotIn applies the NotIn predicate on the "paternal_surname" field.
func PaternalSurnameNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldPaternalSurname, vs...))
}

// PaternalSurnameGT applies the GT predicate on the "paternal_surname" field.
func PaternalSurnameGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldPaternalSurname, v))
}

// PaternalSurnameGTE applies the GTE predicate on the "paternal_surname" field.
func PaternalSurnameGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldPaternalSurname, v))
}

// PaternalSurnameLT applies the LT predicate on the "paternal_surname" field.
func PaternalSurnameLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldPaternalSurname, v))
}

// PaternalSurnameLTE applies the LTE predicate on the "paternal_surname" field.
func PaternalSurnameLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldPaternalSurname, v))
}

// PaternalSurnameContains applies the Contains predicate on the "paternal_surname" field.
func PaternalSurnameContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldPaternalSurname, v))
}

// PaternalSurnameHasPrefix applies the HasPrefix predicate on the "paternal_surname" field.
func PaternalSurnameHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldPaternalSurname, v))
}

// PaternalSurnameHasSuffix applies the HasSuffix predicate on the "paternal_surname" field.
func PaternalSurnameHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldPaternalSurname, v))
}

// PaternalSurnameEqualFold applies the EqualFold predicate on the "paternal_surname" field.
func PaternalSurnameEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldPaternalSurname, v))
}

// PaternalSurnameContainsFold applies the ContainsFold predicate on the "paternal_surname" field.
func PaternalSurnameContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldPaternalSurname, v))
}

// MaternalSurnameEQ applies the EQ predicate on the "maternal_surname" field.
func MaternalSurnameEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldMaternalSurname, v))
}

// MaternalSurnameNEQ applies the NEQ predicate on the "maternal_surname" field.
func MaternalSurnameNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldMaternalSurname, v))
}

// MaternalSurnameIn applies the In predicate on the "maternal_surname" field.
func MaternalSurnameIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldMaternalSurname, vs...))
}

// MaternalSurnameNotIn applies the NotIn predicate on the "maternal_surname" field.
func MaternalSurnameNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldMaternalSurname, vs...))
}

// MaternalSurnameGT applies the GT predicate on the "maternal_surname" field.
func MaternalSurnameGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldMaternalSurname, v))
}

// MaternalSurnameGTE applies the GTE predicate on the "maternal_surname" field.
func MaternalSurnameGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldMaternalSurname, v))
}

// MaternalSurnameLT applies the LT predicate on the "maternal_surname" field.
func MaternalSurnameLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldMaternalSurname, v))
}

// MaternalSurnameLTE applies the LTE predicate on the "maternal_surname" field.
func MaternalSurnameLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldMaternalSurname, v))
}

// MaternalSurnameContains applies the Contains predicate on the "maternal_surname" field.
func MaternalSurnameContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldMaternalSurname, v))
}

// MaternalSurnameHasPrefix applies the HasPrefix predicate on the "maternal_surname" field.
func MaternalSurnameHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldMaternalSurname, v))
}

// MaternalSurnameHasSuffix applies the HasSuffix predicate on the "maternal_surname" field.
func MaternalSurnameHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldMaternalSurname, v))
}

// MaternalSurnameIsNil applies the IsNil predicate on the "maternal_surname" field.
func MaternalSurnameIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldMaternalSurname))
}

// MaternalSurnameNotNil applies the NotNil predicate on the "maternal_surname" field.
func MaternalSurnameNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldMaternalSurname))
}

// MaternalSurnameEqualFold applies the EqualFold predicate on the "maternal_surname" field.
func MaternalSurnameEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldMaternalSurname, v))
}

// MaternalSurnameContainsFold applies the ContainsFold predicate on the "maternal_surname" field.
func MaternalSurnameContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldMaternalSurname, v))
}

// BirthDateEQ applies the EQ predicate on the "birth_date" field.
func BirthDateEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldBirthDate, v))
}

// BirthDateNEQ applies the NEQ predicate on the "birth_date" field.
func BirthDateNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldBirthDate, v))
}

// BirthDateIn applies the In predicate on the "birth_date" field.
func BirthDateIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldBirthDate, vs...))
}

// BirthDateNotIn applies the NotIn predicate on the "birth_date" field.
func BirthDateNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldBirthDate, vs...))
}

// BirthDateGT applies the GT predicate on the "birth_date" field.
func BirthDateGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldBirthDate, v))
}

// BirthDateGTE applies the GTE predicate on the "birth_date" field.
func BirthDateGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldBirthDate, v))
}

// BirthDateLT applies the LT predicate on the "birth_date" field.
func BirthDateLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldBirthDate, v))
}

// BirthDateLTE applies the LTE predicate on the "birth_date" field.
func BirthDateLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldBirthDate, v))
}

// BirthDateContains applies the Contains predicate on the "birth_date" field.
func BirthDateContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldBirthDate, v))
}

// BirthDateHasPrefix applies the HasPrefix predicate on the "birth_date" field.
func BirthDateHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldBirthDate, v))
}

// BirthDateHasSuffix applies the HasSuffix predicate on the "birth_date" field.
func BirthDateHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldBirthDate, v))
}

// BirthDateEqualFold applies the EqualFold predicate on the "birth_date" field.
func BirthDateEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldBirthDate, v))
}

// BirthDateContainsFold applies the ContainsFold predicate on the "birth_date" field.
func BirthDateContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldBirthDate, v))
}

// SexEQ applies the EQ predicate on the "sex" field.
func SexEQ(v Sex) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldSex, v))
}

// SexNEQ applies the NEQ predicate on the "sex" field.
func SexNEQ(v Sex) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldSex, v))
}

// SexIn applies the In predicate on the "sex" field.
func SexIn(vs ...Sex) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldSex, vs...))
}

// SexNotIn applies the NotIn predicate on the "sex" field.
func SexNotIn(vs ...Sex) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldSex, vs...))
}

// SexIsNil applies the IsNil predicate on the "sex" field.
func SexIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldSex))
}

// SexNotNil applies the NotNil predicate on the "sex" field.
func SexNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldSex))
}

// PhoneEQ applies the EQ predicate on the "phone" field.
func PhoneEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldPhone, v))
}

// PhoneNEQ applies the NEQ predicate on the "phone" field.
func PhoneNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldPhone, v))
}

// PhoneIn applies the In predicate on the "phone" field.
func PhoneIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldPhone, vs...))
}

// PhoneNotIn applies the NotIn predicate on the "phone" field.
func PhoneNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldPhone, vs...))
}

// PhoneGT applies the GT predicate on the "phone" field.
func PhoneGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldPhone, v))
}

// PhoneGTE applies the GTE predicate on the "phone" field.
func PhoneGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldPhone, v))
}

// PhoneLT applies the LT predicate on the "phone" field.
func PhoneLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldPhone, v))
}

// PhoneLTE applies the LTE predicate on the "phone" field.
func PhoneLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldPhone, v))
}

// PhoneContains applies the Contains predicate on the "phone" field.
func PhoneContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldPhone, v))
}

// PhoneHasPrefix applies the HasPrefix predicate on the "phone" field.
func PhoneHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldPhone, v))
}

// PhoneHasSuffix applies the HasSuffix predicate on the "phone" field.
func PhoneHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldPhone, v))
}

// PhoneIsNil applies the IsNil predicate on the "phone" field.
func PhoneIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldPhone))
}

// PhoneNotNil applies the NotNil predicate on the "phone" field.
func PhoneNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldPhone))
}

// PhoneEqualFold applies the EqualFold predicate on the "phone" field.
func PhoneEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldPhone, v))
}

// PhoneContainsFold applies the ContainsFold predicate on the "phone" field.
func PhoneContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldPhone, v))
}

// RfcEQ applies the EQ predicate on the "rfc" field.
func RfcEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldRfc, v))
}

// RfcNEQ applies the NEQ predicate on the "rfc" field.
func RfcNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldRfc, v))
}

// RfcIn applies the In predicate on the "rfc" field.
func RfcIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldRfc, vs...))
}

// RfcNotIn applies the NotIn predicate on the "rfc" field.
func RfcNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldRfc, vs...))
}

// RfcGT applies the GT predicate on the "rfc" field.
func RfcGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldRfc, v))
}

// RfcGTE applies the GTE predicate on the "rfc" field.
func RfcGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldRfc, v))
}

// RfcLT applies the LT predicate on the "rfc" field.
func RfcLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldRfc, v))
}

// RfcLTE applies the LTE predicate on the "rfc" field.
func RfcLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldRfc, v))
}

// RfcContains applies the Contains predicate on the "rfc" field.
func RfcContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldRfc, v))
}

// RfcHasPrefix applies the HasPrefix predicate on the "rfc" field.
func RfcHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldRfc, v))
}

// RfcHasSuffix applies the HasSuffix predicate on the "rfc" field.
func RfcHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldRfc, v))
}

// RfcIsNil applies the IsNil predicate on the "rfc" field.
func RfcIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldRfc))
}

// RfcNotNil applies the NotNil predicate on the "rfc" field.
func RfcNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldRfc))
}

// RfcEqualFold applies the EqualFold predicate on the "rfc" field.
func RfcEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldRfc, v))
}

// RfcContainsFold applies the ContainsFold predicate on the "rfc" field.
func RfcContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldRfc, v))
}

// AllergiesIsNil applies the IsNil predicate on the "allergies" field.
func AllergiesIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldAllergies))
}

// AllergiesNotNil applies the NotNil predicate on the "allergies" field.
func AllergiesNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldAllergies))
}

// ChronicConditionsIsNil applies the IsNil predicate on the "chronic_conditions" field.
func ChronicConditionsIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldChronicConditions))
}

// ChronicConditionsNotNil applies the NotNil predicate on the "chronic_conditions" field.
func ChronicConditionsNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldChronicConditions))
}

// CurrentMedicationsIsNil applies the IsNil predicate on the "current_medications" field.
func CurrentMedicationsIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldCurrentMedications))
}

// CurrentMedicationsNotNil applies the NotNil predicate on the "current_medications" field.
func CurrentMedicationsNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldCurrentMedications))
}

// PriorSurgeriesIsNil applies the IsNil predicate on the "prior_surgeries" field.
func PriorSurgeriesIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldPriorSurgeries))
}

// PriorSurgeriesNotNil applies the NotNil predicate on the "prior_surgeries" field.
func PriorSurgeriesNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldPriorSurgeries))
}

// FamilyHistoryEQ applies the EQ predicate on the "family_history" field.
func FamilyHistoryEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldFamilyHistory, v))
}

// FamilyHistoryNEQ applies the NEQ predicate on the "family_history" field.
func FamilyHistoryNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldFamilyHistory, v))
}

// FamilyHistoryIn applies the In predicate on the "family_history" field.
func FamilyHistoryIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldFamilyHistory, vs...))
}

// FamilyHistoryNotIn applies the NotIn predicate on the "family_history" field.
func FamilyHistoryNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldFamilyHistory, vs...))
}

// FamilyHistoryGT applies the GT predicate on the "family_history" field.
func FamilyHistoryGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldFamilyHistory, v))
}

// FamilyHistoryGTE applies the GTE predicate on the "family_history" field.
func FamilyHistoryGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldFamilyHistory, v))
}

// FamilyHistoryLT applies the LT predicate on the "family_history" field.
func FamilyHistoryLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldFamilyHistory, v))
}

// FamilyHistoryLTE applies the LTE predicate on the "family_history" field.
func FamilyHistoryLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldFamilyHistory, v))
}

// FamilyHistoryContains applies the Contains predicate on the "family_history" field.
func FamilyHistoryContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldFamilyHistory, v))
}

// FamilyHistoryHasPrefix applies the HasPrefix predicate on the "family_history" field.
func FamilyHistoryHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldFamilyHistory, v))
}

// FamilyHistoryHasSuffix applies the HasSuffix predicate on the "family_history" field.
func FamilyHistoryHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldFamilyHistory, v))
}

// FamilyHistoryIsNil applies the IsNil predicate on the "family_history" field.
func FamilyHistoryIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldFamilyHistory))
}

// FamilyHistoryNotNil applies the NotNil predicate on the "family_history" field.
func FamilyHistoryNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldFamilyHistory))
}

// FamilyHistoryEqualFold applies the EqualFold predicate on the "family_history" field.
func FamilyHistoryEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldFamilyHistory, v))
}

// FamilyHistoryContainsFold applies the ContainsFold predicate on the "family_history" field.
func FamilyHistoryContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldFamilyHistory, v))
}

// SubstanceUseEQ applies the EQ predicate on the "substance_use" field.
func SubstanceUseEQ(v SubstanceUse) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldSubstanceUse, v))
}

// SubstanceUseNEQ applies the NEQ predicate on the "substance_use" field.
func SubstanceUseNEQ(v SubstanceUse) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldSubstanceUse, v))
}

// SubstanceUseIn applies the In predicate on the "substance_use" field.
func SubstanceUseIn(vs ...SubstanceUse) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldSubstanceUse, vs...))
}

// SubstanceUseNotIn applies the NotIn predicate on the "substance_use" field.
func SubstanceUseNotIn(vs ...SubstanceUse) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldSubstanceUse, vs...))
}

// SubstanceDetailIsNil applies the IsNil predicate on the "substance_detail" field.
func SubstanceDetailIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldSubstanceDetail))
}

// SubstanceDetailNotNil applies the NotNil predicate on the "substance_detail" field.
func SubstanceDetailNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldSubstanceDetail))
}

// ConsultationReasonEQ applies the EQ predicate on the "consultation_reason" field.
func ConsultationReasonEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldConsultationReason, v))
}

// ConsultationReasonNEQ applies the NEQ predicate on the "consultation_reason" field.
func ConsultationReasonNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldConsultationReason, v))
}

// ConsultationReasonIn applies the In predicate on the "consultation_reason" field.
func ConsultationReasonIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldConsultationReason, vs...))
}

// ConsultationReasonNotIn applies the NotIn predicate on the "consultation_reason" field.
func ConsultationReasonNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldConsultationReason, vs...))
}

// ConsultationReasonGT applies the GT predicate on the "consultation_reason" field.
func ConsultationReasonGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldConsultationReason, v))
}

// ConsultationReasonGTE applies the GTE predicate on the "consultation_reason" field.
func ConsultationReasonGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldConsultationReason, v))
}

// ConsultationReasonLT applies the LT predicate on the "consultation_reason" field.
func ConsultationReasonLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldConsultationReason, v))
}

// ConsultationReasonLTE applies the LTE predicate on the "consultation_reason" field.
func ConsultationReasonLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldConsultationReason, v))
}

// ConsultationReasonContains applies the Contains predicate on the "consultation_reason" field.
func ConsultationReasonContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldConsultationReason, v))
}

// ConsultationReasonHasPrefix applies the HasPrefix predicate on the "consultation_reason" field.
func ConsultationReasonHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldConsultationReason, v))
}

// ConsultationReasonHasSuffix applies the HasSuffix predicate on the "consultation_reason" field.
func ConsultationReasonHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldConsultationReason, v))
}

// ConsultationReasonIsNil applies the IsNil predicate on the "consultation_reason" field.
func ConsultationReasonIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldConsultationReason))
}

// ConsultationReasonNotNil applies the NotNil predicate on the "consultation_reason" field.
func ConsultationReasonNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldConsultationReason))
}

// ConsultationReasonEqualFold applies the EqualFold predicate on the "consultation_reason" field.
func ConsultationReasonEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldConsultationReason, v))
}

// ConsultationReasonContainsFold applies the ContainsFold predicate on the "consultation_reason" field.
func ConsultationReasonContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldConsultationReason, v))
}

// InitialSymptomsEQ applies the EQ predicate on the "initial_symptoms" field.
func InitialSymptomsEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEQ(FieldInitialSymptoms, v))
}

// InitialSymptomsNEQ applies the NEQ predicate on the "initial_symptoms" field.
func InitialSymptomsNEQ(v string) predicate.Patient {
	return predicate.Patient(sql.FieldNEQ(FieldInitialSymptoms, v))
}

// InitialSymptomsIn applies the In predicate on the "initial_symptoms" field.
func InitialSymptomsIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldIn(FieldInitialSymptoms, vs...))
}

// InitialSymptomsNotIn applies the NotIn predicate on the "initial_symptoms" field.
func InitialSymptomsNotIn(vs ...string) predicate.Patient {
	return predicate.Patient(sql.FieldNotIn(FieldInitialSymptoms, vs...))
}

// InitialSymptomsGT applies the GT predicate on the "initial_symptoms" field.
func InitialSymptomsGT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGT(FieldInitialSymptoms, v))
}

// InitialSymptomsGTE applies the GTE predicate on the "initial_symptoms" field.
func InitialSymptomsGTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldGTE(FieldInitialSymptoms, v))
}

// InitialSymptomsLT applies the LT predicate on the "initial_symptoms" field.
func InitialSymptomsLT(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLT(FieldInitialSymptoms, v))
}

// InitialSymptomsLTE applies the LTE predicate on the "initial_symptoms" field.
func InitialSymptomsLTE(v string) predicate.Patient {
	return predicate.Patient(sql.FieldLTE(FieldInitialSymptoms, v))
}

// InitialSymptomsContains applies the Contains predicate on the "initial_symptoms" field.
func InitialSymptomsContains(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContains(FieldInitialSymptoms, v))
}

// InitialSymptomsHasPrefix applies the HasPrefix predicate on the "initial_symptoms" field.
func InitialSymptomsHasPrefix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasPrefix(FieldInitialSymptoms, v))
}

// InitialSymptomsHasSuffix applies the HasSuffix predicate on the "initial_symptoms" field.
func InitialSymptomsHasSuffix(v string) predicate.Patient {
	return predicate.Patient(sql.FieldHasSuffix(FieldInitialSymptoms, v))
}

// InitialSymptomsIsNil applies the IsNil predicate on the "initial_symptoms" field.
func InitialSymptomsIsNil() predicate.Patient {
	return predicate.Patient(sql.FieldIsNull(FieldInitialSymptoms))
}

// InitialSymptomsNotNil applies the NotNil predicate on the "initial_symptoms" field.
func InitialSymptomsNotNil() predicate.Patient {
	return predicate.Patient(sql.FieldNotNull(FieldInitialSymptoms))
}

// InitialSymptomsEqualFold applies the EqualFold predicate on the "initial_symptoms" field.
func InitialSymptomsEqualFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldEqualFold(FieldInitialSymptoms, v))
}

// InitialSymptomsContainsFold applies the ContainsFold predicate on the "initial_symptoms" field.
func InitialSymptomsContainsFold(v string) predicate.Patient {
	return predicate.Patient(sql.FieldContainsFold(FieldInitialSymptoms, v))
}

// HasAppointments applies the HasEdge predicate on the "appointments" edge.
func HasAppointments() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AppointmentsTable, AppointmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAppointmentsWith applies the HasEdge predicate on the "appointments" edge with a given conditions (other predicates).
func HasAppointmentsWith(preds ...predicate.Appointment) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newAppointmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasHistory applies the HasEdge predicate on the "history" edge.
func HasHistory() predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, HistoryTable, HistoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHistoryWith applies the HasEdge predicate on the "history" edge with a given conditions (other predicates).
func HasHistoryWith(preds ...predicate.HistoryEntry) predicate.Patient {
	return predicate.Patient(func(s *sql.Selector) {
		step := newHistoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Patient) predicate.Patient {
	return predicate.Patient(sql.NotPredicates(p))
}
