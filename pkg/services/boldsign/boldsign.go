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

// Package boldsign implements the SignatureProvider contract on top of the
// BoldSign REST API.
package boldsign

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/signrelay/signrelay/pkg/services"
)

const providerName = "boldsign"

// DefaultBaseURL is the production BoldSign API endpoint.
const DefaultBaseURL = "https://api.boldsign.com"

// DefaultSettleDelay is how long to wait before asking for an embedded sign
// link. BoldSign processes uploaded documents asynchronously and the link
// endpoint fails until processing has settled.
const DefaultSettleDelay = time.Second

// Provider talks to the BoldSign API. Credentials are delivered via the
// X-API-KEY header.
type Provider struct {
	APIKey      string
	BaseURL     string
	SettleDelay time.Duration
	HTTPClient  *http.Client
}

// NewProvider returns a Provider against the production BoldSign endpoint.
func NewProvider(apiKey string) *Provider {
	return &Provider{
		APIKey:      apiKey,
		BaseURL:     DefaultBaseURL,
		SettleDelay: DefaultSettleDelay,
		HTTPClient:  http.DefaultClient,
	}
}

type formFieldBounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

type formField struct {
	FieldType  string          `json:"fieldType"`
	PageNumber int             `json:"pageNumber"`
	Bounds     formFieldBounds `json:"bounds"`
	IsRequired bool            `json:"isRequired"`
	ID         string          `json:"id"`
	Value      string          `json:"value,omitempty"`
}

type documentSigner struct {
	Name         string      `json:"name"`
	EmailAddress string      `json:"emailAddress"`
	SignerOrder  int         `json:"signerOrder"`
	SignerType   string      `json:"signerType"`
	FormFields   []formField `json:"formFields"`
}

type sendDocumentRequest struct {
	Title         string           `json:"title"`
	Message       string           `json:"message"`
	Signers       []documentSigner `json:"signers"`
	DisableEmails bool             `json:"disableEmails"`
	Files         []string         `json:"files"`
}

// CreateSigningRequest uploads the document with the signer's details
// pre-filled as form fields. BoldSign has no per-signature identifier, so the
// document ID doubles as the signature ID.
func (p *Provider) CreateSigningRequest(signer services.SignerDetails, document []byte) (services.ProviderReference, error) {
	request := sendDocumentRequest{
		Title:   "Document for Signing",
		Message: "Please sign this document",
		Signers: []documentSigner{{
			Name:         signer.Name,
			EmailAddress: signer.Email,
			SignerOrder:  1,
			SignerType:   "Signer",
			FormFields: []formField{
				{FieldType: "Textbox", PageNumber: 1, Bounds: formFieldBounds{100, 200, 200, 20}, IsRequired: true, ID: "name_field", Value: signer.Name},
				{FieldType: "Textbox", PageNumber: 1, Bounds: formFieldBounds{100, 250, 200, 20}, IsRequired: true, ID: "email_field", Value: signer.Email},
				{FieldType: "Textbox", PageNumber: 1, Bounds: formFieldBounds{100, 300, 200, 20}, IsRequired: true, ID: "phone_field", Value: signer.Phone},
				{FieldType: "Signature", PageNumber: 1, Bounds: formFieldBounds{100, 400, 200, 60}, IsRequired: true, ID: "signature_field"},
			},
		}},
		// Embedded signing: the signer never receives a BoldSign email
		DisableEmails: true,
		Files:         []string{"data:application/pdf;base64," + base64.StdEncoding.EncodeToString(document)},
	}

	body, err := p.postJSON("/v1/document/send", request)
	if err != nil {
		return services.ProviderReference{}, providerError("create signing request", err)
	}

	var response struct {
		DocumentID string `json:"documentId"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return services.ProviderReference{}, providerError("create signing request", err)
	}
	if response.DocumentID == "" {
		return services.ProviderReference{}, providerError("create signing request", errors.New("no documentId in response"))
	}

	return services.ProviderReference{RequestID: response.DocumentID, SignatureID: response.DocumentID}, nil
}

// EmbeddedSigningURL fetches the sign link for the given document and signer.
// The link is keyed on document ID plus signer email.
func (p *Provider) EmbeddedSigningURL(ref services.ProviderReference, signerEmail string) (string, error) {
	// give BoldSign's asynchronous document processing time to settle
	time.Sleep(p.SettleDelay)

	endpoint := fmt.Sprintf("/v1/document/getEmbeddedSignLink?documentId=%s&signerEmail=%s",
		url.QueryEscape(ref.RequestID), url.QueryEscape(signerEmail))
	body, err := p.get(endpoint)
	if err != nil {
		return "", providerError("get signing url", err)
	}

	// signLink has been observed both as a bare string and as an object
	var response struct {
		SignLink json.RawMessage `json:"signLink"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", providerError("get signing url", err)
	}
	if len(response.SignLink) == 0 {
		return "", providerError("get signing url", errors.New("no signLink in response"))
	}

	var signURL string
	if err := json.Unmarshal(response.SignLink, &signURL); err == nil {
		return signURL, nil
	}
	var signLink struct {
		SignURL string `json:"signUrl"`
	}
	if err := json.Unmarshal(response.SignLink, &signLink); err != nil || signLink.SignURL == "" {
		return "", providerError("get signing url", errors.New("unexpected signLink format in response"))
	}
	return signLink.SignURL, nil
}

// RequestStatus maps BoldSign's document status onto the two-state vocabulary.
func (p *Provider) RequestStatus(requestID string) (services.Status, error) {
	body, err := p.get("/v1/document/properties?documentId=" + url.QueryEscape(requestID))
	if err != nil {
		return "", providerError("get status", err)
	}

	var response struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", providerError("get status", err)
	}

	if response.Status == "Completed" {
		return services.StatusSigned, nil
	}
	return services.StatusPending, nil
}

// SignedDocument downloads the completed document.
func (p *Provider) SignedDocument(requestID string) ([]byte, error) {
	body, err := p.get("/v1/document/download?documentId=" + url.QueryEscape(requestID))
	if err != nil {
		return nil, providerError("download document", err)
	}
	return body, nil
}

func (p *Provider) postJSON(endpoint string, payload interface{}) ([]byte, error) {
	requestBody, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	request, err := http.NewRequest(http.MethodPost, p.BaseURL+endpoint, bytes.NewReader(requestBody))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", "application/json")
	return p.do(request)
}

func (p *Provider) get(endpoint string) ([]byte, error) {
	request, err := http.NewRequest(http.MethodGet, p.BaseURL+endpoint, nil)
	if err != nil {
		return nil, err
	}
	return p.do(request)
}

func (p *Provider) do(request *http.Request) ([]byte, error) {
	request.Header.Set("X-API-KEY", p.APIKey)
	response, err := p.HTTPClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}
	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusCreated {
		return nil, errors.Errorf("API call failed: status %d - %s", response.StatusCode, string(body))
	}
	return body, nil
}

func providerError(op string, err error) services.ProviderError {
	return services.ProviderError{Provider: providerName, Op: op, Err: err}
}
