// Package kv persists application state as one file per key under a
// state directory, mirroring the key-value layout the web client kept
// in browser local storage.
package kv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"
)

const (
	configName     = "config"
	configType     = "toml"
	statePathKey   = "state.path"
	stateFileMode  = 0o600
	stateDirMode   = 0o700
	stateConfigDir = ".adhikar"
	stateSubDir    = "state"
	tempPattern    = ".state-*.tmp"

	sessionsKey      = "chatSessions"
	activeSessionKey = "activeChatSessionId"
	feedbackKey      = "chatFeedback"
)

type Store struct {
	statePath string
	mu        *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

func NewStore(cfg *viper.Viper) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, stateConfigDir, stateSubDir)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, stateConfigDir))
	cfg.SetDefault(statePathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	statePath := cfg.GetString(statePathKey)
	if statePath == "" {
		return nil, errors.New("state path is empty")
	}
	statePath, err = normalizeStatePath(statePath)
	if err != nil {
		return nil, err
	}

	return &Store{statePath: statePath, mu: lockForPath(statePath)}, nil
}

// get returns the raw value stored under key. A missing file means the
// key is absent; that is not an error.
func (s *Store) get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(filepath.Join(s.statePath, key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read state key %s: %w", key, err)
	}

	return data, true, nil
}

func (s *Store) set(key string, data []byte) error {
	if err := os.MkdirAll(s.statePath, stateDirMode); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	tempFile, err := os.CreateTemp(s.statePath, tempPattern)
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp state file: %w", err)
	}

	if err := tempFile.Chmod(stateFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp state file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}

	if err := os.Rename(tempName, filepath.Join(s.statePath, key)); err != nil {
		return fmt.Errorf("replace state key %s: %w", key, err)
	}

	cleanup = false

	return nil
}

func normalizeStatePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve state path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
