package util

import (
	"sync"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"portfolio/config"
	"portfolio/logutils"
)

type (
	SessionClaims struct {
		UserID   uint   `json:"ui"`
		Username string `json:"un"`
		jwt.RegisteredClaims
	}
	// SessionMessage is what the API layer sees after a cookie is verified.
	SessionMessage struct {
		UserID   uint   `json:"userID"`
		Username string `json:"username"`
	}
)

// SessionManager signs and verifies the session cookie payload.
type SessionManager struct {
	secretKey  string
	sessionTTL int
}

var (
	once       sync.Once
	sessionMgr *SessionManager
)

func GetSessionMgr() *SessionManager {
	once.Do(func() {
		cfg := config.GetConfig()
		sessionMgr = NewSessionManager(cfg.Auth.SessionSecret, cfg.Auth.SessionTTLHours)
	})
	return sessionMgr
}

func NewSessionManager(secretKey string, sessionTTLHours int) *SessionManager {
	return &SessionManager{
		secretKey:  secretKey,
		sessionTTL: sessionTTLHours,
	}
}

// CreateToken issues a signed session token for a logged-in user.
func (sm *SessionManager) CreateToken(msg *SessionMessage) (string, error) {
	expiresAt := time.Now().Add(time.Hour * time.Duration(sm.sessionTTL))

	claims := &SessionClaims{
		UserID:   msg.UserID,
		Username: msg.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(sm.secretKey))
	if err != nil {
		logutils.Log.Error(err)
		return "", err
	}
	return signed, nil
}

func (sm *SessionManager) CheckToken(requestToken string) (SessionMessage, error) {
	claims := SessionClaims{}
	_, err := jwt.ParseWithClaims(requestToken, &claims, func(_ *jwt.Token) (any, error) {
		return []byte(sm.secretKey), nil
	})
	return SessionMessage{
		UserID:   claims.UserID,
		Username: claims.Username,
	}, err
}
