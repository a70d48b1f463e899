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

// SignerDetails holds the signer identity supplied when a session is created.
// It is write-once: after session creation it is never mutated.
type SignerDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Status is the two-state projection of a provider's richer status vocabulary.
type Status string

const (
	// StatusPending indicates the signer has not completed the document yet
	StatusPending Status = "pending"
	// StatusSigned indicates the provider reported the document as completed
	StatusSigned Status = "signed"
)

// ProviderReference identifies a signing transaction at the remote provider.
// SignatureID addresses the individual signer's signature artifact; providers
// without that granularity set it equal to RequestID.
type ProviderReference struct {
	RequestID   string
	SignatureID string
}

// SignatureProvider must be implemented by every signing backend. The
// orchestrator only ever talks to this interface; all provider-specific
// request shaping and response parsing lives behind it.
type SignatureProvider interface {
	// CreateSigningRequest submits the document and signer to the provider and
	// returns the provider's identifiers for the new signing transaction.
	CreateSigningRequest(signer SignerDetails, document []byte) (ProviderReference, error)

	// EmbeddedSigningURL returns the provider-hosted page on which the signer
	// performs the actual signature action.
	EmbeddedSigningURL(ref ProviderReference, signerEmail string) (string, error)

	// RequestStatus fetches the provider's view of the transaction and
	// normalizes it to the two-state vocabulary.
	RequestStatus(requestID string) (Status, error)

	// SignedDocument downloads the completed document as raw bytes.
	SignedDocument(requestID string) ([]byte, error)
}
