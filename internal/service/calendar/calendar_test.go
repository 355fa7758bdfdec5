package calendar

import (
	"testing"
	"time"

	"github.com/drvaldez/consultorio_backend/internal/store"
)

func TestWorkingHours(t *testing.T) {
	tests := []struct {
		dow   time.Weekday
		count int
		first string
		last  string
	}{
		{time.Monday, 8, "15:00:00", "22:00:00"},
		{time.Tuesday, 8, "15:00:00", "22:00:00"},
		{time.Friday, 8, "15:00:00", "22:00:00"},
		{time.Saturday, 4, "08:00:00", "11:00:00"},
		{time.Sunday, 6, "07:00:00", "12:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.dow.String(), func(t *testing.T) {
			hours := WorkingHours(tt.dow)
			if len(hours) != tt.count {
				t.Fatalf("WorkingHours(%v) returned %d slots, want %d", tt.dow, len(hours), tt.count)
			}
			if hours[0] != tt.first || hours[len(hours)-1] != tt.last {
				t.Errorf("WorkingHours(%v) = %v..%v, want %v..%v", tt.dow, hours[0], hours[len(hours)-1], tt.first, tt.last)
			}
		})
	}
}

func TestWorkingHoursFor(t *testing.T) {
	// 2026-08-29 is a Saturday
	if got := WorkingHoursFor("2026-08-29"); len(got) != 4 {
		t.Errorf("WorkingHoursFor(saturday) = %d slots, want 4", len(got))
	}
	if got := WorkingHoursFor("not-a-date"); got != nil {
		t.Errorf("WorkingHoursFor(invalid) = %v, want nil", got)
	}
}

func TestStatusPrecedence(t *testing.T) {
	appt := &store.Appointment{Date: "2026-09-01", Time: "15:00:00", Status: store.AppointmentActive}
	appointments := []*store.Appointment{appt}
	blocked := []*store.BlockedSlot{
		{Date: "2026-09-01", Time: "15:00:00"},
		{Date: "2026-09-01", Time: "16:00:00"},
	}

	// Booked wins even though the slot is also in the blocked list.
	status, got := Status("2026-09-01", "15:00:00", appointments, blocked)
	if status != StatusBooked || got != appt {
		t.Errorf("Status(booked+blocked) = %v, %v", status, got)
	}

	status, _ = Status("2026-09-01", "16:00:00", appointments, blocked)
	if status != StatusBlocked {
		t.Errorf("Status(blocked) = %v, want blocked", status)
	}

	status, _ = Status("2026-09-01", "17:00:00", appointments, blocked)
	if status != StatusAvailable {
		t.Errorf("Status(free) = %v, want available", status)
	}
}

func TestBookableCutoff(t *testing.T) {
	// Tuesday afternoon
	now := time.Date(2026, 9, 1, 15, 30, 0, 0, time.Local)
	cutoff := 60 * time.Minute

	tests := []struct {
		name string
		date string
		tm   string
		want bool
	}{
		{"future date always bookable", "2026-09-02", "15:00:00", true},
		{"past date never bookable", "2026-08-31", "15:00:00", false},
		{"same day beyond cutoff", "2026-09-01", "17:00:00", true},
		{"same day exactly at cutoff boundary", "2026-09-01", "16:30:00", false},
		{"same day inside cutoff", "2026-09-01", "16:00:00", false},
		{"same day already elapsed", "2026-09-01", "15:00:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Bookable(tt.date, tt.tm, now, cutoff); got != tt.want {
				t.Errorf("Bookable(%s %s) = %v, want %v", tt.date, tt.tm, got, tt.want)
			}
		})
	}
}

func TestDaySchedule(t *testing.T) {
	// 2026-09-01 is a Tuesday: 8 slots from 15:00
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.Local)
	appointments := []*store.Appointment{
		{Date: "2026-09-01", Time: "16:00:00", Status: store.AppointmentActive},
	}
	blocked := []*store.BlockedSlot{
		{Date: "2026-09-01", Time: "16:00:00"},
		{Date: "2026-09-01", Time: "18:00:00"},
	}

	slots := DaySchedule("2026-09-01", appointments, blocked, now, 60*time.Minute)
	if len(slots) != 8 {
		t.Fatalf("DaySchedule() returned %d slots, want 8", len(slots))
	}

	byTime := map[string]Slot{}
	for _, s := range slots {
		byTime[s.Time] = s
	}

	if s := byTime["16:00:00"]; s.Status != StatusBooked || s.Bookable {
		t.Errorf("16:00 slot = %+v, want booked and not bookable", s)
	}
	if s := byTime["18:00:00"]; s.Status != StatusBlocked || s.Bookable {
		t.Errorf("18:00 slot = %+v, want blocked and not bookable", s)
	}
	if s := byTime["15:00:00"]; s.Status != StatusAvailable || !s.Bookable {
		t.Errorf("15:00 slot = %+v, want available and bookable", s)
	}
}
