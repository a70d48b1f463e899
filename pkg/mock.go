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

package pkg

import "github.com/signrelay/signrelay/pkg/services"

// MockSignatureProvider is a hand-rolled SignatureProvider for orchestrator
// tests. Every operation returns the canned result and records that it was
// called.
type MockSignatureProvider struct {
	Reference    services.ProviderReference
	CreateError  error
	SignURL      string
	SignURLError error
	Status       services.Status
	StatusError  error
	Document     []byte
	DocError     error

	CreateCalls  int
	SignURLCalls int
	StatusCalls  int
	DocCalls     int
}

func (m *MockSignatureProvider) CreateSigningRequest(signer services.SignerDetails, document []byte) (services.ProviderReference, error) {
	m.CreateCalls++
	return m.Reference, m.CreateError
}

func (m *MockSignatureProvider) EmbeddedSigningURL(ref services.ProviderReference, signerEmail string) (string, error) {
	m.SignURLCalls++
	return m.SignURL, m.SignURLError
}

func (m *MockSignatureProvider) RequestStatus(requestID string) (services.Status, error) {
	m.StatusCalls++
	return m.Status, m.StatusError
}

func (m *MockSignatureProvider) SignedDocument(requestID string) ([]byte, error) {
	m.DocCalls++
	return m.Document, m.DocError
}
