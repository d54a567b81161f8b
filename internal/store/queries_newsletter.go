// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"time"

	"github.com/savannatrails/safari-go/internal/model"
)

// SubscribeNewsletter inserts an email into the newsletter list. Subscribing
// an address that already exists reactivates it; the operation is idempotent.
func (q *Queries) SubscribeNewsletter(ctx context.Context, email string) (model.NewsletterSubscription, error) {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO newsletter_subscriptions (email, status, subscribed_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(email) DO UPDATE SET status = excluded.status, subscribed_at = excluded.subscribed_at`,
		email, model.SubscriptionStatusActive, time.Now().UTC())
	if err != nil {
		return model.NewsletterSubscription{}, err
	}
	return q.GetSubscriptionByEmail(ctx, email)
}

// UnsubscribeNewsletter marks an email as unsubscribed.
func (q *Queries) UnsubscribeNewsletter(ctx context.Context, email string) error {
	_, err := q.db.ExecContext(ctx,
		"UPDATE newsletter_subscriptions SET status = ? WHERE email = ?",
		model.SubscriptionStatusUnsubscribed, email)
	return err
}

// GetSubscriptionByEmail fetches a subscription by email address.
func (q *Queries) GetSubscriptionByEmail(ctx context.Context, email string) (model.NewsletterSubscription, error) {
	var s model.NewsletterSubscription
	err := q.db.QueryRowContext(ctx,
		"SELECT id, email, status, subscribed_at FROM newsletter_subscriptions WHERE email = ?",
		email).Scan(&s.ID, &s.Email, &s.Status, &s.SubscribedAt)
	return s, err
}

// ListActiveSubscriptions returns active newsletter subscriptions, newest first.
func (q *Queries) ListActiveSubscriptions(ctx context.Context) ([]model.NewsletterSubscription, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT id, email, status, subscribed_at FROM newsletter_subscriptions WHERE status = ? ORDER BY subscribed_at DESC",
		model.SubscriptionStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []model.NewsletterSubscription
	for rows.Next() {
		var s model.NewsletterSubscription
		if err := rows.Scan(&s.ID, &s.Email, &s.Status, &s.SubscribedAt); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

// CountActiveSubscriptions returns the number of active subscriptions.
func (q *Queries) CountActiveSubscriptions(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM newsletter_subscriptions WHERE status = ?",
		model.SubscriptionStatusActive).Scan(&count)
	return count, err
}
