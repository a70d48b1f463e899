/*
 * Signrelay
 * Copyright (C) 2024. Signrelay community
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <https://www.gnu.org/licenses/>.
 */

package api

import "time"

// CreateSessionRequest is the body of POST /api/sessions.
type CreateSessionRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CreateSessionResult is the answer to a successful session creation.
type CreateSessionResult struct {
	SessionID string `json:"session_id"`
}

// SigningURLResult carries the embedded signing page URL.
type SigningURLResult struct {
	SignURL string `json:"sign_url"`
}

// SessionStatusResult carries the normalized session status.
type SessionStatusResult struct {
	Status string `json:"status"`
}

// SignerSummary is the public projection of the signer details.
type SignerSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// SessionSummary is one entry of the diagnostic session listing.
type SessionSummary struct {
	ID        string        `json:"id"`
	Status    string        `json:"status"`
	Signer    SignerSummary `json:"signer"`
	CreatedAt time.Time     `json:"created_at"`
}

// ErrorResponse is the structured error payload returned on every failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
