// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Newsletter subscription statuses.
const (
	SubscriptionStatusActive       = "active"
	SubscriptionStatusUnsubscribed = "unsubscribed"
)

// NewsletterSubscription is an email captured from the newsletter form.
// Resubscribing a previously unsubscribed address reactivates it.
type NewsletterSubscription struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Status       string    `json:"status"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// IsActive returns true if the subscription is active.
func (s *NewsletterSubscription) IsActive() bool {
	return s.Status == SubscriptionStatusActive
}
