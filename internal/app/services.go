package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/drvaldez/consultorio_backend/config"
	"github.com/drvaldez/consultorio_backend/internal/service/agenda"
	"github.com/drvaldez/consultorio_backend/internal/service/auth"
	"github.com/drvaldez/consultorio_backend/internal/service/history"
	"github.com/drvaldez/consultorio_backend/internal/service/patient"
	"github.com/drvaldez/consultorio_backend/internal/store"
	"github.com/drvaldez/consultorio_backend/pkg/session"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvidePatientService,
		ProvideAgendaService,
		ProvideHistoryService,
	),
)

func ProvideAuthService(db store.Store, sessions *session.Manager) auth.Service {
	return auth.New(db, sessions)
}

func ProvidePatientService(db store.Store) patient.Service {
	return patient.New(db)
}

func ProvideAgendaService(db store.Store, cfg *config.Config) agenda.Service {
	return agenda.New(db, agenda.Config{
		BookingCutoff:   time.Duration(cfg.BookingCutoffMinutes()) * time.Minute,
		EnforceSchedule: cfg.Agenda.EnforceCompletionSchedule,
	})
}

func ProvideHistoryService(db store.Store) history.Service {
	return history.New(db)
}
