// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/savannatrails/safari-go/internal/model"
)

const contactColumns = `id, name, email, subject, message, status, created_at`

func scanContact(row interface{ Scan(...any) error }) (model.ContactSubmission, error) {
	var c model.ContactSubmission
	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.Status, &c.CreatedAt)
	return c, err
}

// CreateContactParams holds the fields captured from the contact form.
type CreateContactParams struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// CreateContact inserts a new contact submission with status "new".
func (q *Queries) CreateContact(ctx context.Context, arg CreateContactParams) (model.ContactSubmission, error) {
	res, err := q.db.ExecContext(ctx,
		`INSERT INTO contact_submissions (name, email, subject, message, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		arg.Name, arg.Email, arg.Subject, arg.Message, model.ContactStatusNew, time.Now().UTC())
	if err != nil {
		return model.ContactSubmission{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.ContactSubmission{}, err
	}
	return q.GetContactByID(ctx, id)
}

// GetContactByID fetches a contact submission by ID.
func (q *Queries) GetContactByID(ctx context.Context, id int64) (model.ContactSubmission, error) {
	return scanContact(q.db.QueryRowContext(ctx,
		"SELECT "+contactColumns+" FROM contact_submissions WHERE id = ?", id))
}

// ListContacts returns all contact submissions, newest first.
func (q *Queries) ListContacts(ctx context.Context) ([]model.ContactSubmission, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT "+contactColumns+" FROM contact_submissions ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []model.ContactSubmission
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// UpdateContactStatus changes the status of a contact submission.
func (q *Queries) UpdateContactStatus(ctx context.Context, id int64, status string) error {
	_, err := q.db.ExecContext(ctx,
		"UPDATE contact_submissions SET status = ? WHERE id = ?", status, id)
	return err
}

// DeleteContact removes a contact submission by ID.
func (q *Queries) DeleteContact(ctx context.Context, id int64) error {
	_, err := q.db.ExecContext(ctx, "DELETE FROM contact_submissions WHERE id = ?", id)
	return err
}

// CountContactsByStatus returns the number of contact submissions in a status.
func (q *Queries) CountContactsByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM contact_submissions WHERE status = ?", status).Scan(&count)
	return count, err
}
