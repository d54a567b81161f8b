// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/savannatrails/safari-go/internal/model"
)

const bookingColumns = `id, name, email, phone, destination, package_slug, start_date, end_date,
	adults, children, budget, accommodation, message, status, created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (model.BookingRequest, error) {
	var b model.BookingRequest
	err := row.Scan(&b.ID, &b.Name, &b.Email, &b.Phone, &b.Destination, &b.PackageSlug,
		&b.StartDate, &b.EndDate, &b.Adults, &b.Children, &b.Budget, &b.Accommodation,
		&b.Message, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

// CreateBookingParams holds the fields captured from the booking form.
type CreateBookingParams struct {
	Name          string
	Email         string
	Phone         string
	Destination   string
	PackageSlug   string
	StartDate     string
	EndDate       string
	Adults        int
	Children      int
	Budget        string
	Accommodation string
	Message       string
}

// CreateBooking inserts a new booking request with status "new".
func (q *Queries) CreateBooking(ctx context.Context, arg CreateBookingParams) (model.BookingRequest, error) {
	now := time.Now().UTC()
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO booking_requests (name, email, phone, destination, package_slug,
		 start_date, end_date, adults, children, budget, accommodation, message,
		 status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		arg.Name, arg.Email, arg.Phone, arg.Destination, arg.PackageSlug,
		arg.StartDate, arg.EndDate, arg.Adults, arg.Children, arg.Budget,
		arg.Accommodation, arg.Message, model.BookingStatusNew, now, now)
	if err != nil {
		return model.BookingRequest{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.BookingRequest{}, err
	}
	return q.GetBookingByID(ctx, id)
}

// GetBookingByID fetches a booking request by ID.
func (q *Queries) GetBookingByID(ctx context.Context, id int64) (model.BookingRequest, error) {
	return scanBooking(q.db.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM booking_requests WHERE id = ?", id))
}

// ListBookings returns all booking requests, newest first.
func (q *Queries) ListBookings(ctx context.Context) ([]model.BookingRequest, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT "+bookingColumns+" FROM booking_requests ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []model.BookingRequest
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// ListBookingsByStatus returns booking requests with a given status, newest first.
func (q *Queries) ListBookingsByStatus(ctx context.Context, status string) ([]model.BookingRequest, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT "+bookingColumns+" FROM booking_requests WHERE status = ? ORDER BY created_at DESC, id DESC",
		status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []model.BookingRequest
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// UpdateBookingStatus changes the status of a booking request.
func (q *Queries) UpdateBookingStatus(ctx context.Context, id int64, status string) error {
	_, err := q.db.ExecContext(ctx,
		"UPDATE booking_requests SET status = ?, updated_at = ? WHERE id = ?",
		status, time.Now().UTC(), id)
	return err
}

// DeleteBooking removes a booking request by ID.
func (q *Queries) DeleteBooking(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, "DELETE FROM booking_requests WHERE id = ?", id)
	return err
}

// CountBookings returns the number of booking requests.
func (q *Queries) CountBookings(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM booking_requests").Scan(&count)
	return count, err
}

// CountBookingsByStatus returns the number of booking requests in a status.
func (q *Queries) CountBookingsByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM booking_requests WHERE status = ?", status).Scan(&count)
	return count, err
}
