package authing

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"

	"github.com/tenxer/meta-ads-gateway/infrastructure/integrator/meta/metaclient"
	"github.com/tenxer/meta-ads-gateway/internal/config"
	"github.com/tenxer/meta-ads-gateway/pkg/log"
)

// OAuthService runs the browser-redirect login flow: it issues signed
// state values, builds the Facebook dialog URL and turns callback codes
// into stored tokens.
type OAuthService struct {
	cfg    *config.Config
	client metaclient.Client
	store  *FileTokenStore
}

func NewOAuthService(cfg *config.Config, client metaclient.Client, store *FileTokenStore) *OAuthService {
	return &OAuthService{
		cfg:    cfg,
		client: client,
		store:  store,
	}
}

// LoginURL returns the Facebook dialog URL with a fresh signed state
func (s *OAuthService) LoginURL() (string, error) {
	state, err := s.newState()
	if err != nil {
		return "", err
	}
	return s.client.BuildAuthURL(state), nil
}

// HandleCallback verifies the state, exchanges the code and stores the
// resulting token for the default user.
func (s *OAuthService) HandleCallback(ctx context.Context, state, code string) error {
	if err := s.verifyState(state); err != nil {
		return err
	}

	token, err := s.client.ExchangeCode(ctx, code)
	if err != nil {
		return err
	}

	if err := s.store.Store(DefaultUserID, token.AccessToken, token.ExpiresIn); err != nil {
		return errors.Wrap(err, "storing exchanged token")
	}

	log.ForContext(ctx).Info("Facebook OAuth login completed")
	return nil
}

// newState issues a short-lived signed JWT used as the OAuth state
// parameter, so the callback can reject forged or replayed-late
// redirects without server-side session storage.
func (s *OAuthService) newState() (string, error) {
	nonce, err := gonanoid.New()
	if err != nil {
		return "", errors.Wrap(err, "generating state nonce")
	}

	ttl := time.Duration(s.cfg.OAuth.StateTTLMinutes) * time.Minute
	claims := jwt.RegisteredClaims{
		ID:        nonce,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.OAuth.StateSecret))
	if err != nil {
		return "", errors.Wrap(err, "signing OAuth state")
	}

	return signed, nil
}

func (s *OAuthService) verifyState(state string) error {
	if state == "" {
		return errors.New("missing OAuth state")
	}

	_, err := jwt.ParseWithClaims(state, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.cfg.OAuth.StateSecret), nil
	})
	if err != nil {
		return errors.Wrap(err, "invalid OAuth state")
	}

	return nil
}
