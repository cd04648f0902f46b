package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidSession = errors.New("invalid_session")

// SessionManager issues and checks the browsing-session token. The token
// only names the session; it carries no handoff data.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &SessionManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (m *SessionManager) WithClock(now func() time.Time) *SessionManager {
	m.now = now
	return m
}

// Issue starts a new browsing session.
func (m *SessionManager) Issue() (token, sessionID string, exp time.Time, err error) {
	now := m.now()
	exp = now.Add(m.ttl)
	sessionID = uuid.New().String()
	claims := jwt.MapClaims{
		"sid": sessionID,
		"iat": now.Unix(),
		"exp": exp.Unix(),
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	return token, sessionID, exp, err
}

// Parse returns the session id of a valid, unexpired token.
func (m *SessionManager) Parse(token string) (string, error) {
	if token == "" {
		return "", ErrInvalidSession
	}
	tok, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil || !tok.Valid {
		return "", ErrInvalidSession
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidSession
	}
	sid, _ := claims["sid"].(string)
	if _, err := uuid.Parse(sid); err != nil {
		return "", ErrInvalidSession
	}
	return sid, nil
}
