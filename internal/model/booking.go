// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Booking request statuses. Transitions are admin-driven and
// unconstrained: any status is reachable from any other.
const (
	BookingStatusNew       = "new"
	BookingStatusContacted = "contacted"
	BookingStatusQuoted    = "quoted"
	BookingStatusBooked    = "booked"
	BookingStatusCancelled = "cancelled"
)

// ValidBookingStatuses contains all valid booking request statuses.
var ValidBookingStatuses = []string{
	BookingStatusNew,
	BookingStatusContacted,
	BookingStatusQuoted,
	BookingStatusBooked,
	BookingStatusCancelled,
}

// IsValidBookingStatus checks if a status is valid.
func IsValidBookingStatus(status string) bool {
	for _, s := range ValidBookingStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// BudgetBands returns the budget option set on the booking form.
func BudgetBands() []string {
	return []string{
		"under-2500",
		"2500-5000",
		"5000-10000",
		"over-10000",
	}
}

// AccommodationPreferences returns the accommodation option set.
func AccommodationPreferences() []string {
	return []string{"camping", "lodge", "luxury-lodge", "mixed"}
}

// BookingRequest is a lead captured from the public booking form.
type BookingRequest struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Destination   string    `json:"destination"`
	PackageSlug   string    `json:"package_slug"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	Adults        int       `json:"adults"`
	Children      int       `json:"children"`
	Budget        string    `json:"budget"`
	Accommodation string    `json:"accommodation"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
