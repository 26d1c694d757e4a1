package storage

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidKey means the key would resolve outside the photos directory.
	ErrInvalidKey = errors.New("storage: invalid photo key")

	// ErrUnauthorized means the upload token or download signature does
	// not match anything this server issued.
	ErrUnauthorized = errors.New("storage: credential not recognized")
)

// uploadGrant records a key an upload token was issued for. The token
// only authorizes writes to that exact key until it expires.
type uploadGrant struct {
	key     string
	expires time.Time
}

// LocalStorage keeps vehicle photos on the local filesystem and serves
// them through the API's own upload/download endpoints. It exists so
// development and tests run without a cloud bucket.
type LocalStorage struct {
	baseURL   string // server URL the presigned links point at
	photosDir string
	secret    []byte // signs download URLs for this process lifetime

	mu      sync.Mutex
	uploads map[string]uploadGrant
}

func NewLocalStorage(baseURL, uploadDir string) (*LocalStorage, error) {
	photosDir := filepath.Join(uploadDir, "photos")
	if err := os.MkdirAll(photosDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create photos directory: %w", err)
	}
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate signing secret: %w", err)
	}
	return &LocalStorage{
		baseURL:   baseURL,
		photosDir: photosDir,
		secret:    secret,
		uploads:   make(map[string]uploadGrant),
	}, nil
}

// PresignedUploadURL returns a link to this server's upload endpoint.
// The key travels in the query; the token in the path ties the request
// back to this grant so the handler only writes keys we issued.
func (s *LocalStorage) PresignedUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error) {
	if _, err := s.resolve(key); err != nil {
		return "", err
	}
	token := uuid.NewString()
	s.mu.Lock()
	s.uploads[token] = uploadGrant{key: key, expires: time.Now().Add(expiresIn)}
	s.mu.Unlock()
	return fmt.Sprintf("%s/api/v1/upload/%s?key=%s", s.baseURL, token, url.QueryEscape(key)), nil
}

func (s *LocalStorage) PresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	if _, err := s.resolve(key); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/api/v1/download/%s?key=%s", s.baseURL, s.signKey(key), url.QueryEscape(key)), nil
}

func (s *LocalStorage) Exists(ctx context.Context, key string) (bool, int64, error) {
	fullPath, err := s.resolve(key)
	if err != nil {
		return false, 0, err
	}
	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}

func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	fullPath, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete photo: %w", err)
	}
	return nil
}

func (s *LocalStorage) Save(token, key string, r io.Reader) error {
	s.mu.Lock()
	grant, ok := s.uploads[token]
	if ok && time.Now().After(grant.expires) {
		delete(s.uploads, token)
		ok = false
	}
	s.mu.Unlock()
	if !ok || grant.key != key {
		return ErrUnauthorized
	}

	fullPath, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, r); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

func (s *LocalStorage) Open(sig, key string) (io.ReadCloser, error) {
	if !hmac.Equal([]byte(sig), []byte(s.signKey(key))) {
		return nil, ErrUnauthorized
	}
	fullPath, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open photo: %w", err)
	}
	return file, nil
}

// resolve maps a key onto the photos directory and rejects keys that
// would land outside it.
func (s *LocalStorage) resolve(key string) (string, error) {
	if key == "" || filepath.IsAbs(key) {
		return "", ErrInvalidKey
	}
	fullPath := filepath.Join(s.photosDir, key)
	if !strings.HasPrefix(fullPath, s.photosDir+string(filepath.Separator)) {
		return "", ErrInvalidKey
	}
	return fullPath, nil
}

// signKey makes a URL-safe path segment that proves the key was issued
// by this server.
func (s *LocalStorage) signKey(key string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(key))
	return hex.EncodeToString(mac.Sum(nil))
}
