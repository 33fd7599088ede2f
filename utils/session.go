package utils

import (
	"fmt"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SessionStorage adapts the per-device cookie session to the cart package's
// key-value Storage interface. Values are serialized JSON text; the session
// survives reloads on the same device and never syncs across devices.
type SessionStorage struct {
	session sessions.Session
}

// NewSessionStorage returns the storage bound to the request's session.
func NewSessionStorage(c *gin.Context) *SessionStorage {
	return &SessionStorage{session: sessions.Default(c)}
}

// Get reads a stored value. Non-string values left behind by older
// sessions are treated as missing.
func (s *SessionStorage) Get(key string) (string, bool) {
	v := s.session.Get(key)
	if v == nil {
		return "", false
	}
	str, ok := v.(string)
	if !ok {
		return "", false
	}
	return str, true
}

// Set writes a value and saves the session immediately.
func (s *SessionStorage) Set(key, value string) error {
	s.session.Set(key, value)
	if err := s.session.Save(); err != nil {
		return fmt.Errorf("session save failed: %v", err)
	}
	return nil
}

// Delete removes a key and saves the session immediately.
func (s *SessionStorage) Delete(key string) error {
	s.session.Delete(key)
	if err := s.session.Save(); err != nil {
		return fmt.Errorf("session save failed: %v", err)
	}
	return nil
}

// CheckSessionStore verifies the session backend can persist values.
func CheckSessionStore(c *gin.Context) error {
	session := sessions.Default(c)
	session.Set("test", "test")
	if err := session.Save(); err != nil {
		return fmt.Errorf("session store check failed: %v", err)
	}
	session.Delete("test")
	return session.Save()
}
