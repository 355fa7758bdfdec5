package entstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/drvaldez/consultorio_backend/internal/repo"
	entpatient "github.com/drvaldez/consultorio_backend/internal/repo/patient"
	"github.com/drvaldez/consultorio_backend/internal/store"
)

type patientRepo struct {
	db *repo.Client
}

func (r *patientRepo) Create(ctx context.Context, p *store.Patient) (*store.Patient, error) {
	create := r.db.Patient.Create().
		SetGivenName(p.GivenName).
		SetPaternalSurname(p.PaternalSurname).
		SetMaternalSurname(p.MaternalSurname).
		SetBirthDate(p.BirthDate).
		SetPhone(p.Phone).
		SetRfc(p.RFC).
		SetAllergies(p.Allergies).
		SetChronicConditions(p.ChronicConditions).
		SetCurrentMedications(p.CurrentMedications).
		SetPriorSurgeries(p.PriorSurgeries).
		SetFamilyHistory(p.FamilyHistory).
		SetConsultationReason(p.ConsultationReason).
		SetInitialSymptoms(p.InitialSymptoms)

	if p.Sex != "" {
		create.SetSex(entpatient.Sex(p.Sex))
	}
	if p.SubstanceUse != "" {
		create.SetSubstanceUse(entpatient.SubstanceUse(p.SubstanceUse))
	}
	if p.SubstanceDetail != nil {
		create.SetSubstanceDetail(p.SubstanceDetail)
	}

	e, err := create.Save(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return patientFromEnt(e), nil
}

func (r *patientRepo) Get(ctx context.Context, id uuid.UUID) (*store.Patient, error) {
	e, err := r.db.Patient.Get(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return patientFromEnt(e), nil
}

func (r *patientRepo) Update(ctx context.Context, p *store.Patient) (*store.Patient, error) {
	update := r.db.Patient.UpdateOneID(p.ID).
		SetGivenName(p.GivenName).
		SetPaternalSurname(p.PaternalSurname).
		SetMaternalSurname(p.MaternalSurname).
		SetBirthDate(p.BirthDate).
		SetPhone(p.Phone).
		SetRfc(p.RFC).
		SetAllergies(p.Allergies).
		SetChronicConditions(p.ChronicConditions).
		SetCurrentMedications(p.CurrentMedications).
		SetPriorSurgeries(p.PriorSurgeries).
		SetFamilyHistory(p.FamilyHistory).
		SetConsultationReason(p.ConsultationReason).
		SetInitialSymptoms(p.InitialSymptoms)

	if p.Sex != "" {
		update.SetSex(entpatient.Sex(p.Sex))
	} else {
		update.ClearSex()
	}
	if p.SubstanceUse != "" {
		update.SetSubstanceUse(entpatient.SubstanceUse(p.SubstanceUse))
	}
	if p.SubstanceDetail != nil {
		update.SetSubstanceDetail(p.SubstanceDetail)
	} else {
		update.ClearSubstanceDetail()
	}

	e, err := update.Save(ctx)
	if err != nil {
		return nil, mapErr(err)
	}
	return patientFromEnt(e), nil
}

func (r *patientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.Patient.DeleteOneID(id).Exec(ctx); err != nil {
		return mapErr(err)
	}
	return nil
}

func (r *patientRepo) List(ctx context.Context) ([]*store.Patient, error) {
	entities, err := r.db.Patient.Query().
		Order(
			entpatient.ByPaternalSurname(),
			entpatient.ByMaternalSurname(),
			entpatient.ByGivenName(),
		).
		All(ctx)
	if err != nil {
		return nil, mapErr(err)
	}

	out := make([]*store.Patient, len(entities))
	for i, e := range entities {
		out[i] = patientFromEnt(e)
	}
	return out, nil
}

func (r *patientRepo) Count(ctx context.Context) (int, error) {
	n, err := r.db.Patient.Query().Count(ctx)
	if err != nil {
		return 0, mapErr(err)
	}
	return n, nil
}

func patientFromEnt(e *repo.Patient) *store.Patient {
	return &store.Patient{
		ID:                 e.ID,
		GivenName:          e.GivenName,
		PaternalSurname:    e.PaternalSurname,
		MaternalSurname:    e.MaternalSurname,
		BirthDate:          e.BirthDate,
		Sex:                string(e.Sex),
		Phone:              e.Phone,
		RFC:                e.Rfc,
		Allergies:          e.Allergies,
		ChronicConditions:  e.ChronicConditions,
		CurrentMedications: e.CurrentMedications,
		PriorSurgeries:     e.PriorSurgeries,
		FamilyHistory:      e.FamilyHistory,
		SubstanceUse:       string(e.SubstanceUse),
		SubstanceDetail:    e.SubstanceDetail,
		ConsultationReason: e.ConsultationReason,
		InitialSymptoms:    e.InitialSymptoms,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}
