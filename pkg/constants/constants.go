package constants

const (
	ConfigName   = "config"
	ConfigFormat = "yaml"

	// EnvPrefix is the prefix for environment variable overrides,
	// e.g. CONSULTORIO_DATABASE_HOST overrides database.host.
	EnvPrefix = "CONSULTORIO"

	// RoleDoctor is the only role allowed to mutate clinic data.
	RoleDoctor = "medico"

	// DateLayout and TimeLayout are the wire/storage formats for
	// calendar slots: a (date, time) pair is a slot's natural key.
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)
