package pkg

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/signrelay/signrelay/logging"
	"github.com/signrelay/signrelay/pkg/services"
	"github.com/signrelay/signrelay/pkg/services/boldsign"
	"github.com/signrelay/signrelay/pkg/services/demo"
	"github.com/signrelay/signrelay/pkg/services/dropboxsign"
	"github.com/signrelay/signrelay/pkg/session"
)

// SigningClient is the interface the HTTP layer programs against.
type SigningClient interface {
	// CreateSession validates the signer details, submits the sample document
	// to the provider and registers a new pending session. It returns the new
	// session ID.
	CreateSession(signer services.SignerDetails) (string, error)
	// SigningURL returns the embedded signing page URL for an existing session.
	SigningURL(sessionID string) (string, error)
	// SessionStatus polls the provider and stores the normalized result. This
	// is the only operation that advances a session from pending to signed.
	SessionStatus(sessionID string) (services.Status, error)
	// SignedDocument downloads the (signed) document for an existing session.
	SignedDocument(sessionID string) ([]byte, error)
	// ListSessions returns a snapshot of all sessions, for diagnostics.
	ListSessions() []session.SigningSession
}

// Signing orchestrates the signing workflow: it composes provider calls and
// session store mutations. Provider calls are made outside the store's lock.
type Signing struct {
	Config   Config
	provider services.SignatureProvider
	sessions *session.Store
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// NewSigning validates the configuration and selects the provider backend.
// The selection happens exactly once; no per-call branching on provider
// identity takes place afterwards.
func NewSigning(config Config) (*Signing, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var provider services.SignatureProvider
	switch {
	case config.DemoMode():
		logging.Log().Info("running in DEMO mode, provider calls will be simulated")
		provider = demo.NewProvider()
	case config.Provider == ProviderBoldSign:
		provider = boldsign.NewProvider(config.BoldSignAPIKey)
	default:
		clientID := config.DropboxSignClientID
		if clientID == "" {
			logging.Log().Warn("DROPBOX_SIGN_CLIENT_ID not set, embedded signing may not work properly")
			clientID = config.DropboxSignAPIKey
		}
		provider = dropboxsign.NewProvider(config.DropboxSignAPIKey, clientID)
	}

	logging.Log().Infof("using %s as signature provider", config.Provider)
	logging.Log().Infof("API key loaded: %s", config.MaskedAPIKey())

	return &Signing{
		Config:   config,
		provider: provider,
		sessions: session.NewStore(),
	}, nil
}

// CreateSession implements SigningClient.CreateSession. Validation failures
// are reported before any provider call; on any failure no session is stored.
func (s *Signing) CreateSession(signer services.SignerDetails) (string, error) {
	if signer.Name == "" {
		return "", services.ValidationError{Field: "name", Reason: "cannot be empty"}
	}
	if signer.Email == "" {
		return "", services.ValidationError{Field: "email", Reason: "cannot be empty"}
	}
	if signer.Phone == "" {
		return "", services.ValidationError{Field: "phone", Reason: "cannot be empty"}
	}
	if !emailPattern.MatchString(signer.Email) {
		return "", services.ValidationError{Field: "email", Reason: "invalid format"}
	}

	document, err := os.ReadFile(s.Config.SampleDocumentPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", services.ErrSampleDocument, err)
	}

	ref, err := s.provider.CreateSigningRequest(signer, document)
	if err != nil {
		return "", err
	}

	sessionID := uuid.New().String()
	s.sessions.Put(session.SigningSession{
		ID:                  sessionID,
		ProviderRequestID:   ref.RequestID,
		ProviderSignatureID: ref.SignatureID,
		Status:              services.StatusPending,
		Signer:              signer,
		CreatedAt:           time.Now(),
	})

	logging.Log().Debugf("created signing session %s for request %s", sessionID, ref.RequestID)
	return sessionID, nil
}

// SigningURL implements SigningClient.SigningURL. It does not mutate session
// state.
func (s *Signing) SigningURL(sessionID string) (string, error) {
	signingSession, ok := s.sessions.Get(sessionID)
	if !ok {
		return "", services.ErrSessionNotFound
	}

	ref := services.ProviderReference{
		RequestID:   signingSession.ProviderRequestID,
		SignatureID: signingSession.ProviderSignatureID,
	}
	return s.provider.EmbeddedSigningURL(ref, signingSession.Signer.Email)
}

// SessionStatus implements SigningClient.SessionStatus.
func (s *Signing) SessionStatus(sessionID string) (services.Status, error) {
	signingSession, ok := s.sessions.Get(sessionID)
	if !ok {
		return "", services.ErrSessionNotFound
	}

	status, err := s.provider.RequestStatus(signingSession.ProviderRequestID)
	if err != nil {
		return "", err
	}
	if err := s.sessions.UpdateStatus(sessionID, status); err != nil {
		return "", err
	}
	return status, nil
}

// SignedDocument implements SigningClient.SignedDocument. No status
// precondition is checked; the provider's own response governs success.
func (s *Signing) SignedDocument(sessionID string) ([]byte, error) {
	signingSession, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, services.ErrSessionNotFound
	}
	return s.provider.SignedDocument(signingSession.ProviderRequestID)
}

// ListSessions implements SigningClient.ListSessions.
func (s *Signing) ListSessions() []session.SigningSession {
	return s.sessions.List()
}
