package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mcoot/lifegame/internal/dependencies/clock"
	"github.com/mcoot/lifegame/internal/model"
)

// Errors
var (
	ErrInvalidSession = errors.New("invalid or expired session")
	ErrMissingSecret  = errors.New("session secret is required")
)

const issuer = "lifegame"

// Session represents an authenticated session
type Session struct {
	Token     string
	PlayerID  model.PlayerID
	CreatedAt time.Time
	ExpiresAt time.Time
}

// sessionClaims is the JWT payload of a session token
type sessionClaims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Service issues and validates signed session tokens
type Service struct {
	clock  clock.Clock
	secret []byte

	sessionDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	Secret          string
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new auth Service
func New(clock clock.Clock, cfg Config) (*Service, error) {
	if cfg.Secret == "" {
		return nil, ErrMissingSecret
	}
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		clock:           clock,
		secret:          []byte(cfg.Secret),
		sessionDuration: cfg.SessionDuration,
	}, nil
}

// IssueSession creates a signed session token for a player
func (s *Service) IssueSession(player *model.Player) (*Session, error) {
	now := s.clock.Now()
	expires := now.Add(s.sessionDuration)

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   string(player.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
		Username: player.Username,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("signing session: %w", err)
	}

	return &Session{
		Token:     token,
		PlayerID:  player.ID,
		CreatedAt: now,
		ExpiresAt: expires,
	}, nil
}

// ValidateSession checks a session token and returns the session it describes
func (s *Service) ValidateSession(token string) (*Session, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}

	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}
	if claims.Subject == "" {
		return nil, ErrInvalidSession
	}

	return &Session{
		Token:     token,
		PlayerID:  model.PlayerID(claims.Subject),
		CreatedAt: claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
