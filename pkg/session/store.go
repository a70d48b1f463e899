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

// Package session holds the in-memory registry of signing sessions. The store
// owns the canonical copy of every session; callers only ever see copies.
package session

import (
	"sync"
	"time"

	"github.com/signrelay/signrelay/pkg/services"
)

// SigningSession is one client-initiated signing workflow instance.
type SigningSession struct {
	ID                  string
	ProviderRequestID   string
	ProviderSignatureID string
	Status              services.Status
	Signer              services.SignerDetails
	CreatedAt           time.Time
}

// Store is a mutex-guarded session registry. Every operation takes the one
// lock, so concurrent creates, status updates and listings are serialized and
// never observe a partially written session. Remote provider calls must never
// be made while holding this lock.
type Store struct {
	mutex    sync.RWMutex
	sessions map[string]SigningSession
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{sessions: map[string]SigningSession{}}
}

// Put inserts or overwrites a session by its ID.
func (s *Store) Put(session SigningSession) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.sessions[session.ID] = session
}

// Get returns a copy of the session with the given ID.
func (s *Store) Get(id string) (SigningSession, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

// UpdateStatus atomically rewrites the status field of an existing session.
// It is the only mutation allowed after creation.
func (s *Store) UpdateStatus(id string, status services.Status) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return services.ErrSessionNotFound
	}
	session.Status = status
	s.sessions[id] = session
	return nil
}

// List returns a snapshot of all sessions. Mutations made after the snapshot
// is taken are not visible in the returned slice.
func (s *Store) List() []SigningSession {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	sessions := make([]SigningSession, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}
	return sessions
}

// Count returns the number of stored sessions.
func (s *Store) Count() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.sessions)
}
