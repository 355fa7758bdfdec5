// Package memstore is an in-memory store.Store. It backs the service
// tests and the local-emulation mode, and mirrors the transactional
// semantics of the Postgres store: WithTx applies all writes or none.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/drvaldez/consultorio_backend/internal/store"
)

type state struct {
	patients     map[uuid.UUID]*store.Patient
	appointments map[uuid.UUID]*store.Appointment
	blocked      map[string]*store.BlockedSlot // keyed by date + "|" + time
	history      map[uuid.UUID]*store.HistoryEntry
	users        map[string]*store.User
}

func newState() *state {
	return &state{
		patients:     make(map[uuid.UUID]*store.Patient),
		appointments: make(map[uuid.UUID]*store.Appointment),
		blocked:      make(map[string]*store.BlockedSlot),
		history:      make(map[uuid.UUID]*store.HistoryEntry),
		users:        make(map[string]*store.User),
	}
}

func (s *state) clone() *state {
	c := newState()
	for id, p := range s.patients {
		c.patients[id] = clonePatient(p)
	}
	for id, a := range s.appointments {
		c.appointments[id] = cloneAppointment(a)
	}
	for k, b := range s.blocked {
		cp := *b
		c.blocked[k] = &cp
	}
	for id, e := range s.history {
		c.history[id] = cloneHistoryEntry(e)
	}
	for name, u := range s.users {
		cp := *u
		c.users[name] = &cp
	}
	return c
}

// Store implements store.Store over process memory. The zero value is
// not usable; call New.
type Store struct {
	mu *sync.RWMutex // nil inside a transaction view
	st *state
}

func New() *Store {
	return &Store{mu: &sync.RWMutex{}, st: newState()}
}

func (s *Store) lock() {
	if s.mu != nil {
		s.mu.Lock()
	}
}

func (s *Store) unlock() {
	if s.mu != nil {
		s.mu.Unlock()
	}
}

func (s *Store) rlock() {
	if s.mu != nil {
		s.mu.RLock()
	}
}

func (s *Store) runlock() {
	if s.mu != nil {
		s.mu.RUnlock()
	}
}

func (s *Store) Patients() store.PatientRepo         { return &patientRepo{s} }
func (s *Store) Appointments() store.AppointmentRepo { return &appointmentRepo{s} }
func (s *Store) BlockedSlots() store.BlockedSlotRepo { return &blockedSlotRepo{s} }
func (s *Store) History() store.HistoryRepo          { return &historyRepo{s} }
func (s *Store) Users() store.UserRepo               { return &userRepo{s} }

// WithTx runs fn against a copy of the state and swaps it in only when
// fn succeeds, so a failing multi-step operation leaves no trace.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Store) error) error {
	if s.mu == nil {
		// Already inside a transaction; run against the same view.
		return fn(s)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.st.clone()
	if err := fn(&Store{st: draft}); err != nil {
		return err
	}

	s.st = draft
	return nil
}

func newID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		panic(err)
	}
	return id
}

func slotKey(date, tm string) string { return date + "|" + tm }

// ---- patients ----

type patientRepo struct{ s *Store }

func (r *patientRepo) Create(_ context.Context, p *store.Patient) (*store.Patient, error) {
	r.s.lock()
	defer r.s.unlock()

	cp := clonePatient(p)
	cp.ID = newID()
	now := time.Now()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	r.s.st.patients[cp.ID] = cp
	return clonePatient(cp), nil
}

func (r *patientRepo) Get(_ context.Context, id uuid.UUID) (*store.Patient, error) {
	r.s.rlock()
	defer r.s.runlock()

	p, ok := r.s.st.patients[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return clonePatient(p), nil
}

func (r *patientRepo) Update(_ context.Context, p *store.Patient) (*store.Patient, error) {
	r.s.lock()
	defer r.s.unlock()

	existing, ok := r.s.st.patients[p.ID]
	if !ok {
		return nil, store.ErrNotFound
	}

	cp := clonePatient(p)
	cp.CreatedAt = existing.CreatedAt
	cp.UpdatedAt = time.Now()
	r.s.st.patients[cp.ID] = cp
	return clonePatient(cp), nil
}

func (r *patientRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.lock()
	defer r.s.unlock()

	if _, ok := r.s.st.patients[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.s.st.patients, id)
	return nil
}

func (r *patientRepo) List(_ context.Context) ([]*store.Patient, error) {
	r.s.rlock()
	defer r.s.runlock()

	out := make([]*store.Patient, 0, len(r.s.st.patients))
	for _, p := range r.s.st.patients {
		out = append(out, clonePatient(p))
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		ka := strings.ToLower(a.PaternalSurname + " " + a.MaternalSurname + " " + a.GivenName)
		kb := strings.ToLower(b.PaternalSurname + " " + b.MaternalSurname + " " + b.GivenName)
		return ka < kb
	})
	return out, nil
}

func (r *patientRepo) Count(_ context.Context) (int, error) {
	r.s.rlock()
	defer r.s.runlock()
	return len(r.s.st.patients), nil
}

// ---- appointments ----

type appointmentRepo struct{ s *Store }

func (r *appointmentRepo) Create(_ context.Context, a *store.Appointment) (*store.Appointment, error) {
	r.s.lock()
	defer r.s.unlock()

	cp := *a
	cp.ID = newID()
	now := time.Now()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	r.s.st.appointments[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *appointmentRepo) Get(_ context.Context, id uuid.UUID) (*store.Appointment, error) {
	r.s.rlock()
	defer r.s.runlock()

	a, ok := r.s.st.appointments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := *a
	return &out, nil
}

func (r *appointmentRepo) Update(_ context.Context, a *store.Appointment) (*store.Appointment, error) {
	r.s.lock()
	defer r.s.unlock()

	existing, ok := r.s.st.appointments[a.ID]
	if !ok {
		return nil, store.ErrNotFound
	}

	cp := *a
	cp.CreatedAt = existing.CreatedAt
	cp.UpdatedAt = time.Now()
	r.s.st.appointments[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *appointmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.lock()
	defer r.s.unlock()

	if _, ok := r.s.st.appointments[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.s.st.appointments, id)
	return nil
}

func (r *appointmentRepo) list(match func(*store.Appointment) bool) []*store.Appointment {
	var out []*store.Appointment
	for _, a := range r.s.st.appointments {
		if match(a) {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		if out[i].Time != out[j].Time {
			return out[i].Time < out[j].Time
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (r *appointmentRepo) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*store.Appointment, error) {
	r.s.rlock()
	defer r.s.runlock()
	return r.list(func(a *store.Appointment) bool { return a.PatientID == patientID }), nil
}

func (r *appointmentRepo) ListByDate(_ context.Context, date string) ([]*store.Appointment, error) {
	r.s.rlock()
	defer r.s.runlock()
	return r.list(func(a *store.Appointment) bool { return a.Date == date }), nil
}

func (r *appointmentRepo) ListBySlot(_ context.Context, date, tm string) ([]*store.Appointment, error) {
	r.s.rlock()
	defer r.s.runlock()
	return r.list(func(a *store.Appointment) bool { return a.Date == date && a.Time == tm }), nil
}

func (r *appointmentRepo) ListRange(_ context.Context, fromDate, toDate string) ([]*store.Appointment, error) {
	r.s.rlock()
	defer r.s.runlock()
	return r.list(func(a *store.Appointment) bool {
		if fromDate != "" && a.Date < fromDate {
			return false
		}
		if toDate != "" && a.Date > toDate {
			return false
		}
		return true
	}), nil
}

func (r *appointmentRepo) DeleteByPatient(_ context.Context, patientID uuid.UUID) error {
	r.s.lock()
	defer r.s.unlock()

	for id, a := range r.s.st.appointments {
		if a.PatientID == patientID {
			delete(r.s.st.appointments, id)
		}
	}
	return nil
}

// ---- blocked slots ----

type blockedSlotRepo struct{ s *Store }

func (r *blockedSlotRepo) Create(_ context.Context, date, tm string) (*store.BlockedSlot, error) {
	r.s.lock()
	defer r.s.unlock()

	key := slotKey(date, tm)
	if _, ok := r.s.st.blocked[key]; ok {
		return nil, store.ErrAlreadyExists
	}

	b := &store.BlockedSlot{
		ID:        newID(),
		Date:      date,
		Time:      tm,
		CreatedAt: time.Now(),
	}
	r.s.st.blocked[key] = b
	out := *b
	return &out, nil
}

func (r *blockedSlotRepo) Delete(_ context.Context, date, tm string) error {
	r.s.lock()
	defer r.s.unlock()

	key := slotKey(date, tm)
	if _, ok := r.s.st.blocked[key]; !ok {
		return store.ErrNotFound
	}
	delete(r.s.st.blocked, key)
	return nil
}

func (r *blockedSlotRepo) Exists(_ context.Context, date, tm string) (bool, error) {
	r.s.rlock()
	defer r.s.runlock()

	_, ok := r.s.st.blocked[slotKey(date, tm)]
	return ok, nil
}

func (r *blockedSlotRepo) list(match func(*store.BlockedSlot) bool) []*store.BlockedSlot {
	var out []*store.BlockedSlot
	for _, b := range r.s.st.blocked {
		if match(b) {
			cp := *b
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}

func (r *blockedSlotRepo) ListByDate(_ context.Context, date string) ([]*store.BlockedSlot, error) {
	r.s.rlock()
	defer r.s.runlock()
	return r.list(func(b *store.BlockedSlot) bool { return b.Date == date }), nil
}

func (r *blockedSlotRepo) ListRange(_ context.Context, fromDate, toDate string) ([]*store.BlockedSlot, error) {
	r.s.rlock()
	defer r.s.runlock()
	return r.list(func(b *store.BlockedSlot) bool {
		if fromDate != "" && b.Date < fromDate {
			return false
		}
		if toDate != "" && b.Date > toDate {
			return false
		}
		return true
	}), nil
}

// ---- history ----

type historyRepo struct{ s *Store }

func (r *historyRepo) Create(_ context.Context, e *store.HistoryEntry) (*store.HistoryEntry, error) {
	r.s.lock()
	defer r.s.unlock()

	cp := cloneHistoryEntry(e)
	cp.ID = newID()
	now := time.Now()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	r.s.st.history[cp.ID] = cp
	return cloneHistoryEntry(cp), nil
}

func (r *historyRepo) Get(_ context.Context, id uuid.UUID) (*store.HistoryEntry, error) {
	r.s.rlock()
	defer r.s.runlock()

	e, ok := r.s.st.history[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneHistoryEntry(e), nil
}

func (r *historyRepo) Update(_ context.Context, e *store.HistoryEntry) (*store.HistoryEntry, error) {
	r.s.lock()
	defer r.s.unlock()

	existing, ok := r.s.st.history[e.ID]
	if !ok {
		return nil, store.ErrNotFound
	}

	cp := cloneHistoryEntry(e)
	cp.CreatedAt = existing.CreatedAt
	cp.UpdatedAt = time.Now()
	r.s.st.history[cp.ID] = cp
	return cloneHistoryEntry(cp), nil
}

func (r *historyRepo) list(match func(*store.HistoryEntry) bool) []*store.HistoryEntry {
	var out []*store.HistoryEntry
	for _, e := range r.s.st.history {
		if match(e) {
			out = append(out, cloneHistoryEntry(e))
		}
	}
	// Newest first; IDs are UUIDv7 so they break created_at ties in
	// insertion order.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() > out[j].ID.String()
	})
	return out
}

func (r *historyRepo) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*store.HistoryEntry, error) {
	r.s.rlock()
	defer r.s.runlock()
	return r.list(func(e *store.HistoryEntry) bool { return e.PatientID == patientID }), nil
}

func (r *historyRepo) ListByType(_ context.Context, t store.HistoryType, fromDate, toDate string) ([]*store.HistoryEntry, error) {
	r.s.rlock()
	defer r.s.runlock()
	return r.list(func(e *store.HistoryEntry) bool {
		if e.Type != t {
			return false
		}
		day := e.CreatedAt.Format("2006-01-02")
		if fromDate != "" && day < fromDate {
			return false
		}
		if toDate != "" && day > toDate {
			return false
		}
		return true
	}), nil
}

func (r *historyRepo) DeleteByPatient(_ context.Context, patientID uuid.UUID) error {
	r.s.lock()
	defer r.s.unlock()

	for id, e := range r.s.st.history {
		if e.PatientID == patientID {
			delete(r.s.st.history, id)
		}
	}
	return nil
}

// ---- users ----

type userRepo struct{ s *Store }

func (r *userRepo) Create(_ context.Context, u *store.User) (*store.User, error) {
	r.s.lock()
	defer r.s.unlock()

	if _, ok := r.s.st.users[u.Username]; ok {
		return nil, store.ErrAlreadyExists
	}

	cp := *u
	cp.ID = newID()
	now := time.Now()
	cp.CreatedAt = now
	cp.UpdatedAt = now
	r.s.st.users[cp.Username] = &cp
	out := cp
	return &out, nil
}

func (r *userRepo) GetByUsername(_ context.Context, username string) (*store.User, error) {
	r.s.rlock()
	defer r.s.runlock()

	u, ok := r.s.st.users[username]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := *u
	return &out, nil
}

// ---- deep copies ----

func clonePatient(p *store.Patient) *store.Patient {
	cp := *p
	cp.Allergies = append([]string(nil), p.Allergies...)
	cp.ChronicConditions = append([]string(nil), p.ChronicConditions...)
	cp.CurrentMedications = append([]string(nil), p.CurrentMedications...)
	cp.PriorSurgeries = append([]store.Surgery(nil), p.PriorSurgeries...)
	if p.SubstanceDetail != nil {
		d := *p.SubstanceDetail
		cp.SubstanceDetail = &d
	}
	return &cp
}

func cloneAppointment(a *store.Appointment) *store.Appointment {
	cp := *a
	return &cp
}

func cloneHistoryEntry(e *store.HistoryEntry) *store.HistoryEntry {
	cp := *e
	if e.Payload != nil {
		cp.Payload = clonePayload(e.Payload)
	}
	return &cp
}

func clonePayload(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		switch vv := v.(type) {
		case map[string]any:
			out[k] = clonePayload(vv)
		case []any:
			cp := make([]any, len(vv))
			for i, item := range vv {
				if im, ok := item.(map[string]any); ok {
					cp[i] = clonePayload(im)
				} else {
					cp[i] = item
				}
			}
			out[k] = cp
		default:
			out[k] = v
		}
	}
	return out
}
