// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/drvaldez/consultorio_backend/internal/repo/appointment"
	"github.com/drvaldez/consultorio_backend/internal/repo/blockedslot"
	"github.com/drvaldez/consultorio_backend/internal/repo/historyentry"
	"github.com/drvaldez/consultorio_backend/internal/repo/patient"
	"github.com/drvaldez/consultorio_backend/internal/repo/user"
	"github.com/drvaldez/consultorio_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescDate is the schema descriptor for date field.
	appointmentDescDate := appointmentFields[1].Descriptor()
	// appointment.DateValidator is a validator for the "date" field. It is called by the builders before save.
	appointment.DateValidator = appointmentDescDate.Validators[0].(func(string) error)
	// appointmentDescTime is the schema descriptor for time field.
	appointmentDescTime := appointmentFields[2].Descriptor()
	// appointment.TimeValidator is a validator for the "time" field. It is called by the builders before save.
	appointment.TimeValidator = appointmentDescTime.Validators[0].(func(string) error)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	blockedslotMixin := schema.BlockedSlot{}.Mixin()
	blockedslotMixinFields0 := blockedslotMixin[0].Fields()
	_ = blockedslotMixinFields0
	blockedslotMixinFields1 := blockedslotMixin[1].Fields()
	_ = blockedslotMixinFields1
	blockedslotFields := schema.BlockedSlot{}.Fields()
	_ = blockedslotFields
	// blockedslotDescCreatedAt is the schema descriptor for created_at field.
	blockedslotDescCreatedAt := blockedslotMixinFields1[0].Descriptor()
	// blockedslot.DefaultCreatedAt holds the default value on creation for the created_at field.
	blockedslot.DefaultCreatedAt = blockedslotDescCreatedAt.Default.(func() time.Time)
	// blockedslotDescDate is the schema descriptor for date field.
	blockedslotDescDate := blockedslotFields[0].Descriptor()
	// blockedslot.DateValidator is a validator for the "date" field. It is called by the builders before save.
	blockedslot.DateValidator = blockedslotDescDate.Validators[0].(func(string) error)
	// blockedslotDescTime is the schema descriptor for time field.
	blockedslotDescTime := blockedslotFields[1].Descriptor()
	// blockedslot.TimeValidator is a validator for the "time" field. It is called by the builders before save.
	blockedslot.TimeValidator = blockedslotDescTime.Validators[0].(func(string) error)
	// blockedslotDescID is the schema descriptor for id field.
	blockedslotDescID := blockedslotMixinFields0[0].Descriptor()
	// blockedslot.DefaultID holds the default value on creation for the id field.
	blockedslot.DefaultID = blockedslotDescID.Default.(func() uuid.UUID)
	historyentryMixin := schema.HistoryEntry{}.Mixin()
	historyentryMixinFields0 := historyentryMixin[0].Fields()
	_ = historyentryMixinFields0
	historyentryMixinFields1 := historyentryMixin[1].Fields()
	_ = historyentryMixinFields1
	historyentryFields := schema.HistoryEntry{}.Fields()
	_ = historyentryFields
	// historyentryDescCreatedAt is the schema descriptor for created_at field.
	historyentryDescCreatedAt := historyentryMixinFields1[0].Descriptor()
	// historyentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	historyentry.DefaultCreatedAt = historyentryDescCreatedAt.Default.(func() time.Time)
	// historyentryDescUpdatedAt is the schema descriptor for updated_at field.
	historyentryDescUpdatedAt := historyentryMixinFields1[1].Descriptor()
	// historyentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	historyentry.DefaultUpdatedAt = historyentryDescUpdatedAt.Default.(func() time.Time)
	// historyentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	historyentry.UpdateDefaultUpdatedAt = historyentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// historyentryDescID is the schema descriptor for id field.
	historyentryDescID := historyentryMixinFields0[0].Descriptor()
	// historyentry.DefaultID holds the default value on creation for the id field.
	historyentry.DefaultID = historyentryDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescGivenName is the schema descriptor for given_name field.
	patientDescGivenName := patientFields[0].Descriptor()
	// patient.GivenNameValidator is a validator for the "given_name" field. It is called by the builders before save.
	patient.GivenNameValidator = patientDescGivenName.Validators[0].(func(string) error)
	// patientDescPaternalSurname is the schema descriptor for paternal_surname field.
	patientDescPaternalSurname := patientFields[1].Descriptor()
	// patient.PaternalSurnameValidator is a validator for the "paternal_surname" field. It is called by the builders before save.
	patient.PaternalSurnameValidator = patientDescPaternalSurname.Validators[0].(func(string) error)
	// patientDescMaternalSurname is the schema descriptor for maternal_surname field.
	patientDescMaternalSurname := patientFields[2].Descriptor()
	// patient.MaternalSurnameValidator is a validator for the "maternal_surname" field. It is called by the builders before save.
	patient.MaternalSurnameValidator = patientDescMaternalSurname.Validators[0].(func(string) error)
	// patientDescBirthDate is the schema descriptor for birth_date field.
	patientDescBirthDate := patientFields[3].Descriptor()
	// patient.BirthDateValidator is a validator for the "birth_date" field. It is called by the builders before save.
	patient.BirthDateValidator = patientDescBirthDate.Validators[0].(func(string) error)
	// patientDescPhone is the schema descriptor for phone field.
	patientDescPhone := patientFields[5].Descriptor()
	// patient.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	patient.PhoneValidator = patientDescPhone.Validators[0].(func(string) error)
	// patientDescRfc is the schema descriptor for rfc field.
	patientDescRfc := patientFields[6].Descriptor()
	// patient.RfcValidator is a validator for the "rfc" field. It is called by the builders before save.
	patient.RfcValidator = patientDescRfc.Validators[0].(func(string) error)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[0].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[1].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescRole is the schema descriptor for role field.
	userDescRole := userFields[2].Descriptor()
	// user.DefaultRole holds the default value on creation for the role field.
	user.DefaultRole = userDescRole.Default.(string)
	// user.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	user.RoleValidator = userDescRole.Validators[0].(func(string) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
