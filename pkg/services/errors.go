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

package services

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when there is no signing session for a given session ID
var ErrSessionNotFound = errors.New("session not found")

// ErrSampleDocument is returned when the local sample document cannot be read
var ErrSampleDocument = errors.New("sample document unreadable")

// ValidationError is returned for bad or missing input fields. It is always
// raised before any remote call is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ProviderError wraps a failed remote provider interaction. The underlying
// cause is kept for diagnosability and is never swallowed.
type ProviderError struct {
	Provider string
	Op       string
	Err      error
}

func (e ProviderError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Provider, e.Op, e.Err)
}

func (e ProviderError) Unwrap() error {
	return e.Err
}
