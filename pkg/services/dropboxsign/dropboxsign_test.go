package dropboxsign

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/signrelay/signrelay/pkg/services"
)

var signer = services.SignerDetails{Name: "Jane Doe", Email: "jane@example.com", Phone: "555-0100"}

func testProvider(server *httptest.Server) *Provider {
	provider := NewProvider("dropbox_api_key", "client_1")
	provider.BaseURL = server.URL
	return provider
}

func assertBasicAuth(t *testing.T, r *http.Request) {
	t.Helper()
	username, password, ok := r.BasicAuth()
	assert.True(t, ok)
	assert.Equal(t, "dropbox_api_key", username)
	assert.Equal(t, "", password)
}

func TestProvider_CreateSigningRequest(t *testing.T) {
	t.Run("it posts a multipart embedded signature request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v3/signature_request/create_embedded", r.URL.Path)
			assertBasicAuth(t, r)

			assert.NoError(t, r.ParseMultipartForm(1<<20))
			assert.Equal(t, "1", r.FormValue("test_mode"))
			assert.Equal(t, "client_1", r.FormValue("client_id"))
			assert.Equal(t, "jane@example.com", r.FormValue("signers[0][email_address]"))
			assert.Equal(t, "Jane Doe", r.FormValue("signers[0][name]"))
			assert.Contains(t, r.FormValue("form_fields_per_document"), "phone_field")
			assert.Contains(t, r.FormValue("form_fields_per_document"), "555-0100")

			file, header, err := r.FormFile("file[0]")
			assert.NoError(t, err)
			assert.Equal(t, "sample.pdf", header.Filename)
			content, _ := io.ReadAll(file)
			assert.Equal(t, []byte("%PDF-1.4"), content)

			w.Write([]byte(`{"signature_request": {"signature_request_id": "req_123", "signatures": [{"signature_id": "sig_456"}]}}`))
		}))
		defer server.Close()

		ref, err := testProvider(server).CreateSigningRequest(signer, []byte("%PDF-1.4"))
		assert.NoError(t, err)
		assert.Equal(t, "req_123", ref.RequestID)
		assert.Equal(t, "sig_456", ref.SignatureID)
	})

	t.Run("a response without identifiers is a provider error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"signature_request": {}}`))
		}))
		defer server.Close()

		_, err := testProvider(server).CreateSigningRequest(signer, []byte("%PDF-1.4"))
		var providerErr services.ProviderError
		assert.ErrorAs(t, err, &providerErr)
		assert.Equal(t, "dropboxsign", providerErr.Provider)
	})

	t.Run("a non-2xx response is a provider error with the body included", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad request", http.StatusBadRequest)
		}))
		defer server.Close()

		_, err := testProvider(server).CreateSigningRequest(signer, []byte("%PDF-1.4"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "400")
		assert.Contains(t, err.Error(), "bad request")
	})
}

func TestProvider_EmbeddedSigningURL(t *testing.T) {
	ref := services.ProviderReference{RequestID: "req_123", SignatureID: "sig_456"}

	t.Run("it is keyed on the signature artifact", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v3/embedded/sign_url/sig_456", r.URL.Path)
			assertBasicAuth(t, r)
			w.Write([]byte(`{"embedded": {"sign_url": "https://sign.example.com/sig_456"}}`))
		}))
		defer server.Close()

		signURL, err := testProvider(server).EmbeddedSigningURL(ref, "jane@example.com")
		assert.NoError(t, err)
		assert.Equal(t, "https://sign.example.com/sig_456", signURL)
	})

	t.Run("a missing sign_url is a provider error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"embedded": {}}`))
		}))
		defer server.Close()

		_, err := testProvider(server).EmbeddedSigningURL(ref, "jane@example.com")
		var providerErr services.ProviderError
		assert.ErrorAs(t, err, &providerErr)
	})
}

func TestProvider_RequestStatus(t *testing.T) {
	statusHandler := func(isComplete string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v3/signature_request/req_123", r.URL.Path)
			w.Write([]byte(`{"signature_request": {"is_complete": ` + isComplete + `}}`))
		}
	}

	t.Run("is_complete true normalizes to signed", func(t *testing.T) {
		server := httptest.NewServer(statusHandler("true"))
		defer server.Close()

		status, err := testProvider(server).RequestStatus("req_123")
		assert.NoError(t, err)
		assert.Equal(t, services.StatusSigned, status)
	})

	t.Run("is_complete false normalizes to pending", func(t *testing.T) {
		server := httptest.NewServer(statusHandler("false"))
		defer server.Close()

		status, err := testProvider(server).RequestStatus("req_123")
		assert.NoError(t, err)
		assert.Equal(t, services.StatusPending, status)
	})
}

func TestProvider_SignedDocument(t *testing.T) {
	t.Run("it downloads the pdf variant", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v3/signature_request/files/req_123", r.URL.Path)
			assert.Equal(t, "pdf", r.URL.Query().Get("file_type"))
			w.Write([]byte("%PDF-1.4 signed"))
		}))
		defer server.Close()

		document, err := testProvider(server).SignedDocument("req_123")
		assert.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.4 signed"), document)
	})

	t.Run("a transport failure is a provider error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // refuse the connection

		_, err := testProvider(server).SignedDocument("req_123")
		var providerErr services.ProviderError
		assert.ErrorAs(t, err, &providerErr)
	})
}
