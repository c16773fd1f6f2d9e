package services

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"

	"github.com/danvolchok/budget-tracker-web/internal/models"
	"github.com/danvolchok/budget-tracker-web/internal/repositories"
)

const (
	// scrypt parameters per the 2017 recommendation for interactive use.
	scryptN     = 32768
	scryptR     = 8
	scryptP     = 1
	sealKeyLen  = 32
	sealSaltLen = 16
)

var (
	ErrSettingNotFound   = errors.New("setting not found")
	ErrSettingSealed     = errors.New("setting is sealed; read it through the secret accessor")
	ErrPassphraseMissing = errors.New("SECRETS_PASSPHRASE is not configured")
	ErrSealBroken        = errors.New("sealed value cannot be opened; passphrase changed or data corrupted")
)

// settingsService stores runtime key-value settings. Secrets are sealed with
// AES-GCM under a key derived from the configured passphrase; each sealed
// value carries its own salt and nonce so rotating a secret re-derives the
// key. The stored envelope is base64(salt || nonce || ciphertext).
type settingsService struct {
	repo       repositories.SettingRepositoryInterface
	passphrase string
}

// NewSettingsService creates a settings service. An empty passphrase leaves
// plain settings working and makes the secret accessors fail closed.
func NewSettingsService(repo repositories.SettingRepositoryInterface, passphrase string) SettingsServiceInterface {
	return &settingsService{repo: repo, passphrase: passphrase}
}

// Get returns a plain setting's value. Sealed settings refuse the plain
// accessor so ciphertext never leaks into responses by accident.
func (s *settingsService) Get(ctx context.Context, key string) (string, error) {
	setting, err := s.lookup(key)
	if err != nil {
		return "", err
	}
	if setting.Sealed {
		return "", ErrSettingSealed
	}
	return setting.Value, nil
}

// Set stores a plain setting, replacing any previous value under the key.
func (s *settingsService) Set(ctx context.Context, key, value string) error {
	if err := s.repo.Set(&models.Setting{Key: key, Value: value, Sealed: false}); err != nil {
		return fmt.Errorf("store setting %s: %w", key, err)
	}
	return nil
}

// Delete removes a setting, sealed or not.
func (s *settingsService) Delete(ctx context.Context, key string) error {
	if err := s.repo.Delete(key); err != nil {
		if errors.Is(err, repositories.ErrSettingNotFound) {
			return ErrSettingNotFound
		}
		return fmt.Errorf("delete setting %s: %w", key, err)
	}
	return nil
}

// SetSecret seals a value and stores it under the key.
func (s *settingsService) SetSecret(ctx context.Context, key, value string) error {
	if s.passphrase == "" {
		return ErrPassphraseMissing
	}

	envelope, err := s.seal(value)
	if err != nil {
		return fmt.Errorf("seal secret %s: %w", key, err)
	}

	if err := s.repo.Set(&models.Setting{Key: key, Value: envelope, Sealed: true}); err != nil {
		return fmt.Errorf("store secret %s: %w", key, err)
	}
	return nil
}

// GetSecret opens a sealed setting. Reading an unsealed key through this
// accessor returns the plain value, so callers can promote a setting to a
// secret without migrating readers.
func (s *settingsService) GetSecret(ctx context.Context, key string) (string, error) {
	setting, err := s.lookup(key)
	if err != nil {
		return "", err
	}
	if !setting.Sealed {
		return setting.Value, nil
	}

	if s.passphrase == "" {
		return "", ErrPassphraseMissing
	}

	value, err := s.open(setting.Value)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrSealBroken, key)
	}
	return value, nil
}

func (s *settingsService) lookup(key string) (*models.Setting, error) {
	setting, err := s.repo.Get(key)
	if err != nil {
		if errors.Is(err, repositories.ErrSettingNotFound) {
			return nil, ErrSettingNotFound
		}
		return nil, fmt.Errorf("get setting %s: %w", key, err)
	}
	return setting, nil
}

func (s *settingsService) seal(value string) (string, error) {
	salt := make([]byte, sealSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := s.aead(salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	sealed := gcm.Seal(nil, nonce, []byte(value), nil)

	envelope := make([]byte, 0, len(salt)+len(nonce)+len(sealed))
	envelope = append(envelope, salt...)
	envelope = append(envelope, nonce...)
	envelope = append(envelope, sealed...)
	return base64.StdEncoding.EncodeToString(envelope), nil
}

func (s *settingsService) open(envelope string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return "", fmt.Errorf("decode envelope: %w", err)
	}
	if len(raw) < sealSaltLen {
		return "", errors.New("envelope too short")
	}

	salt := raw[:sealSaltLen]
	gcm, err := s.aead(salt)
	if err != nil {
		return "", err
	}

	rest := raw[sealSaltLen:]
	if len(rest) < gcm.NonceSize() {
		return "", errors.New("envelope too short")
	}

	nonce := rest[:gcm.NonceSize()]
	opened, err := gcm.Open(nil, nonce, rest[gcm.NonceSize():], nil)
	if err != nil {
		return "", err
	}
	return string(opened), nil
}

func (s *settingsService) aead(salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key([]byte(s.passphrase), salt, scryptN, scryptR, scryptP, sealKeyLen)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("init gcm: %w", err)
	}
	return gcm, nil
}
