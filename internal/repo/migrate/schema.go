// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "date", Type: field.TypeString, Size: 10},
		{Name: "time", Type: field.TypeString, Size: 8},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "completed"}, Default: "active"},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "appointments_patients_appointments",
				Columns:    []*schema.Column{AppointmentsColumns[8]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_date_time",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[3], AppointmentsColumns[4]},
			},
			{
				Name:    "appointment_patient_id_date",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[8], AppointmentsColumns[3]},
			},
			{
				Name:    "appointment_status_date",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[5], AppointmentsColumns[3]},
			},
		},
	}
	// BlockedSlotsColumns holds the columns for the "blocked_slots" table.
	BlockedSlotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "date", Type: field.TypeString, Size: 10},
		{Name: "time", Type: field.TypeString, Size: 8},
	}
	// BlockedSlotsTable holds the schema information for the "blocked_slots" table.
	BlockedSlotsTable = &schema.Table{
		Name:       "blocked_slots",
		Columns:    BlockedSlotsColumns,
		PrimaryKey: []*schema.Column{BlockedSlotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "blockedslot_date_time",
				Unique:  true,
				Columns: []*schema.Column{BlockedSlotsColumns[2], BlockedSlotsColumns[3]},
			},
			{
				Name:    "blockedslot_date",
				Unique:  false,
				Columns: []*schema.Column{BlockedSlotsColumns[2]},
			},
		},
	}
	// HistoryEntriesColumns holds the columns for the "history_entries" table.
	HistoryEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"appointment_booked", "appointment_cancelled", "appointment_completed", "appointment_rescheduled", "patient_created", "patient_edited", "prescription_issued", "diagnosis_recorded", "study_recorded", "medical_note_recorded", "payment_recorded"}},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// HistoryEntriesTable holds the schema information for the "history_entries" table.
	HistoryEntriesTable = &schema.Table{
		Name:       "history_entries",
		Columns:    HistoryEntriesColumns,
		PrimaryKey: []*schema.Column{HistoryEntriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "history_entries_patients_history",
				Columns:    []*schema.Column{HistoryEntriesColumns[5]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "historyentry_patient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{HistoryEntriesColumns[5], HistoryEntriesColumns[1]},
			},
			{
				Name:    "historyentry_type_created_at",
				Unique:  false,
				Columns: []*schema.Column{HistoryEntriesColumns[3], HistoryEntriesColumns[1]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "given_name", Type: field.TypeString, Size: 255},
		{Name: "paternal_surname", Type: field.TypeString, Size: 255},
		{Name: "maternal_surname", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "birth_date", Type: field.TypeString, Size: 10},
		{Name: "sex", Type: field.TypeEnum, Nullable: true, Enums: []string{"masculino", "femenino"}},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "rfc", Type: field.TypeString, Nullable: true, Size: 13},
		{Name: "allergies", Type: field.TypeJSON, Nullable: true},
		{Name: "chronic_conditions", Type: field.TypeJSON, Nullable: true},
		{Name: "current_medications", Type: field.TypeJSON, Nullable: true},
		{Name: "prior_surgeries", Type: field.TypeJSON, Nullable: true},
		{Name: "family_history", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "substance_use", Type: field.TypeEnum, Enums: []string{"yes", "no", "unset"}, Default: "unset"},
		{Name: "substance_detail", Type: field.TypeJSON, Nullable: true},
		{Name: "consultation_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "initial_symptoms", Type: field.TypeString, Nullable: true, Size: 2147483647},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "patient_paternal_surname_maternal_surname_given_name",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[4], PatientsColumns[5], PatientsColumns[3]},
			},
			{
				Name:    "patient_rfc",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[9]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "password_hash", Type: field.TypeString, Size: 255},
		{Name: "role", Type: field.TypeString, Size: 50, Default: "medico"},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_username",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		BlockedSlotsTable,
		HistoryEntriesTable,
		PatientsTable,
		UsersTable,
	}
)

func init() {
	AppointmentsTable.ForeignKeys[0].RefTable = PatientsTable
	HistoryEntriesTable.ForeignKeys[0].RefTable = PatientsTable
}
