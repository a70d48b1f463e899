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

// Package dropboxsign implements the SignatureProvider contract on top of the
// Dropbox Sign (formerly HelloSign) REST API.
package dropboxsign

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/pkg/errors"

	"github.com/signrelay/signrelay/pkg/services"
)

const providerName = "dropboxsign"

// DefaultBaseURL is the production Dropbox Sign API endpoint.
const DefaultBaseURL = "https://api.hellosign.com"

// Provider talks to the Dropbox Sign API. The API key is delivered as the
// username of HTTP basic auth with an empty password. ClientID is the app
// identifier Dropbox Sign requires for embedded signing flows.
type Provider struct {
	APIKey     string
	ClientID   string
	BaseURL    string
	HTTPClient *http.Client
}

// NewProvider returns a Provider against the production Dropbox Sign endpoint.
func NewProvider(apiKey, clientID string) *Provider {
	return &Provider{
		APIKey:     apiKey,
		ClientID:   clientID,
		BaseURL:    DefaultBaseURL,
		HTTPClient: http.DefaultClient,
	}
}

type textField struct {
	APIID    string `json:"api_id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Required bool   `json:"required"`
	Signer   int    `json:"signer"`
	Page     int    `json:"page"`
	Value    string `json:"value,omitempty"`
}

// CreateSigningRequest posts a multipart embedded signature request with the
// signer's details pre-filled as text fields on the document.
func (p *Provider) CreateSigningRequest(signer services.SignerDetails, document []byte) (services.ProviderReference, error) {
	formFields, err := json.Marshal([][]textField{{
		{APIID: "name_field", Name: "Name", Type: "text", X: 100, Y: 200, Width: 200, Height: 20, Required: true, Signer: 0, Page: 1, Value: signer.Name},
		{APIID: "email_field", Name: "Email", Type: "text", X: 100, Y: 250, Width: 200, Height: 20, Required: true, Signer: 0, Page: 1, Value: signer.Email},
		{APIID: "phone_field", Name: "Phone", Type: "text", X: 100, Y: 300, Width: 200, Height: 20, Required: true, Signer: 0, Page: 1, Value: signer.Phone},
		{APIID: "signature_field", Name: "Signature", Type: "signature", X: 100, Y: 400, Width: 200, Height: 60, Required: true, Signer: 0, Page: 1},
	}})
	if err != nil {
		return services.ProviderReference{}, providerError("create signing request", err)
	}

	var buffer bytes.Buffer
	form := multipart.NewWriter(&buffer)
	fields := map[string]string{
		"test_mode":                 "1",
		"client_id":                 p.ClientID,
		"subject":                   "Document for Signing",
		"message":                   "Please sign this document",
		"signers[0][email_address]": signer.Email,
		"signers[0][name]":          signer.Name,
		"form_fields_per_document":  string(formFields),
	}
	for name, value := range fields {
		if err := form.WriteField(name, value); err != nil {
			return services.ProviderReference{}, providerError("create signing request", err)
		}
	}
	filePart, err := form.CreateFormFile("file[0]", "sample.pdf")
	if err != nil {
		return services.ProviderReference{}, providerError("create signing request", err)
	}
	if _, err := filePart.Write(document); err != nil {
		return services.ProviderReference{}, providerError("create signing request", err)
	}
	if err := form.Close(); err != nil {
		return services.ProviderReference{}, providerError("create signing request", err)
	}

	request, err := http.NewRequest(http.MethodPost, p.BaseURL+"/v3/signature_request/create_embedded", &buffer)
	if err != nil {
		return services.ProviderReference{}, providerError("create signing request", err)
	}
	request.Header.Set("Content-Type", form.FormDataContentType())

	body, err := p.do(request)
	if err != nil {
		return services.ProviderReference{}, providerError("create signing request", err)
	}

	var response struct {
		SignatureRequest struct {
			SignatureRequestID string `json:"signature_request_id"`
			Signatures         []struct {
				SignatureID string `json:"signature_id"`
			} `json:"signatures"`
		} `json:"signature_request"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return services.ProviderReference{}, providerError("create signing request", err)
	}
	if response.SignatureRequest.SignatureRequestID == "" || len(response.SignatureRequest.Signatures) == 0 {
		return services.ProviderReference{}, providerError("create signing request", errors.New("no signature_request_id in response"))
	}

	return services.ProviderReference{
		RequestID:   response.SignatureRequest.SignatureRequestID,
		SignatureID: response.SignatureRequest.Signatures[0].SignatureID,
	}, nil
}

// EmbeddedSigningURL fetches the embedded sign URL for the signature artifact.
func (p *Provider) EmbeddedSigningURL(ref services.ProviderReference, signerEmail string) (string, error) {
	body, err := p.get("/v3/embedded/sign_url/" + ref.SignatureID)
	if err != nil {
		return "", providerError("get signing url", err)
	}

	var response struct {
		Embedded struct {
			SignURL string `json:"sign_url"`
		} `json:"embedded"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", providerError("get signing url", err)
	}
	if response.Embedded.SignURL == "" {
		return "", providerError("get signing url", errors.New("no sign_url in response"))
	}
	return response.Embedded.SignURL, nil
}

// RequestStatus maps Dropbox Sign's is_complete flag onto the two-state
// vocabulary.
func (p *Provider) RequestStatus(requestID string) (services.Status, error) {
	body, err := p.get("/v3/signature_request/" + requestID)
	if err != nil {
		return "", providerError("get status", err)
	}

	var response struct {
		SignatureRequest struct {
			IsComplete bool `json:"is_complete"`
		} `json:"signature_request"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", providerError("get status", err)
	}

	if response.SignatureRequest.IsComplete {
		return services.StatusSigned, nil
	}
	return services.StatusPending, nil
}

// SignedDocument downloads the completed document as a PDF.
func (p *Provider) SignedDocument(requestID string) ([]byte, error) {
	body, err := p.get("/v3/signature_request/files/" + requestID + "?file_type=pdf")
	if err != nil {
		return nil, providerError("download document", err)
	}
	return body, nil
}

func (p *Provider) get(endpoint string) ([]byte, error) {
	request, err := http.NewRequest(http.MethodGet, p.BaseURL+endpoint, nil)
	if err != nil {
		return nil, err
	}
	return p.do(request)
}

func (p *Provider) do(request *http.Request) ([]byte, error) {
	request.SetBasicAuth(p.APIKey, "")
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
