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

// Package demo implements the SignatureProvider contract without any network
// access. It is selected when the configured credential is recognizably a
// placeholder, so the signing workflow can be exercised without real provider
// credentials. At the interface level it behaves like a live provider.
package demo

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"sync"

	"github.com/cbroglie/mustache"
	"github.com/pkg/errors"

	"github.com/signrelay/signrelay/pkg/services"
)

const providerName = "demo"

const signingPageTemplate = `<html><body style='font-family:Arial;text-align:center;padding:50px;'>` +
	`<h1>Demo Signing Interface</h1>` +
	`<p>Hello {{name}}. In a real implementation, this would be the embedded signing interface.</p>` +
	`<p>The document would be pre-filled with your information.</p>` +
	`<button onclick='window.parent.postMessage("signing_complete", "*")' ` +
	`style='padding:10px 20px;font-size:16px;background:#3498db;color:white;border:none;border-radius:5px;cursor:pointer;'>` +
	`Complete Signing (Demo)</button>` +
	`</body></html>`

// placeholderPDF is a minimal single-page document returned as the "signed"
// artifact.
const placeholderPDF = "%PDF-1.4\n" +
	"1 0 obj << /Type /Catalog /Pages 2 0 R >> endobj\n" +
	"2 0 obj << /Type /Pages /Kids [3 0 R] /Count 1 >> endobj\n" +
	"3 0 obj << /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >> endobj\n" +
	"trailer << /Root 1 0 R >>\n" +
	"%%EOF\n"

// Provider simulates a signing provider in-process. It remembers the signer
// per request ID so the signing page can be personalized.
type Provider struct {
	mutex   sync.Mutex
	signers map[string]services.SignerDetails
}

// NewProvider returns an empty simulated provider.
func NewProvider() *Provider {
	return &Provider{signers: map[string]services.SignerDetails{}}
}

// CreateSigningRequest fabricates a request ID without contacting anyone.
func (p *Provider) CreateSigningRequest(signer services.SignerDetails, document []byte) (services.ProviderReference, error) {
	requestID := "demo_doc_" + randomSuffix()

	p.mutex.Lock()
	p.signers[requestID] = signer
	p.mutex.Unlock()

	return services.ProviderReference{RequestID: requestID, SignatureID: "demo_sig_" + randomSuffix()}, nil
}

// EmbeddedSigningURL returns a self-contained signing page as a data URL, so
// it is reachable without network access.
func (p *Provider) EmbeddedSigningURL(ref services.ProviderReference, signerEmail string) (string, error) {
	p.mutex.Lock()
	signer := p.signers[ref.RequestID]
	p.mutex.Unlock()

	name := signer.Name
	if name == "" {
		name = signerEmail
	}
	page, err := mustache.Render(signingPageTemplate, map[string]string{"name": name})
	if err != nil {
		return "", services.ProviderError{Provider: providerName, Op: "get signing url", Err: errors.Wrap(err, "render signing page")}
	}
	return "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(page)), nil
}

// RequestStatus always reports the document as signed.
func (p *Provider) RequestStatus(requestID string) (services.Status, error) {
	return services.StatusSigned, nil
}

// SignedDocument returns a placeholder PDF.
func (p *Provider) SignedDocument(requestID string) ([]byte, error) {
	return []byte(placeholderPDF), nil
}

func randomSuffix() string {
	suffix := make([]byte, 4)
	rand.Reader.Read(suffix)
	return hex.EncodeToString(suffix)
}
