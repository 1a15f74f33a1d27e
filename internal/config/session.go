package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/handiism/beatport-downloader/internal/beatport"
)

// LoadSession reads a persisted token triple. A missing file is not an
// error; it yields a zero session and the caller falls back to a fresh
// credential login.
func LoadSession(path string) (beatport.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return beatport.Session{}, nil
		}
		return beatport.Session{}, err
	}

	var session beatport.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return beatport.Session{}, err
	}
	return session, nil
}

// SaveSession persists the token triple for the next run. The file is
// written owner-readable only since it holds live tokens.
func SaveSession(path string, session beatport.Session) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
