// Package config persists Cloud API credentials as an encrypted
// profile file on the local filesystem.
package config

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/zeebo/blake3"
)

// Key derivation context; changing it invalidates every stored profile.
const deriveContext = "wacloud 2025-08-01 profile encryption"

// ErrBadPassphrase indicates the profile could not be decrypted:
// wrong passphrase or a tampered profile file.
var ErrBadPassphrase = errors.New("config: invalid passphrase or corrupt profile")

// Profile holds the Cloud API credentials and defaults
// for one business phone number.
type Profile struct {
	// Graph API version, e.g. "v23.0".
	Version string `json:"version,omitempty"`
	// ID for the business phone number messages are sent from.
	PhoneNumberID string `json:"phone_number_id,omitempty"`
	// WhatsApp Business Account ID.
	BusinessAccountID string `json:"waba_id,omitempty"`
	// System User access token.
	AccessToken string `json:"access_token,omitempty"`
	// Meta App secret; signs webhook payloads.
	AppSecret string `json:"app_secret,omitempty"`
	// Webhook subscription verify token.
	VerifyToken string `json:"verify_token,omitempty"`
}

// envelope is the on-disk profile file layout.
type envelope struct {
	Version int    `json:"v"`
	Nonce   []byte `json:"nonce"`
	Data    []byte `json:"data"`
}

// DefaultPath returns the per-user profile file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "wacloud", "profile.enc"), nil
}

// deriveKey stretches the passphrase into an AES-256 key.
func deriveKey(passphrase string) []byte {
	key := make([]byte, 32)
	blake3.DeriveKey(deriveContext, []byte(passphrase), key)
	return key
}

func seal(passphrase string, plain []byte) (*envelope, error) {
	block, err := aes.NewCipher(deriveKey(passphrase))
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err = rand.Read(nonce); err != nil {
		return nil, err
	}
	return &envelope{
		Version: 1,
		Nonce:   nonce,
		Data:    aead.Seal(nil, nonce, plain, nil),
	}, nil
}

func open(passphrase string, file *envelope) ([]byte, error) {
	if file.Version != 1 {
		return nil, errors.Errorf("config: unsupported profile version: %d", file.Version)
	}
	block, err := aes.NewCipher(deriveKey(passphrase))
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(file.Nonce) != aead.NonceSize() {
		return nil, ErrBadPassphrase
	}
	plain, err := aead.Open(nil, file.Nonce, file.Data, nil)
	if err != nil {
		return nil, ErrBadPassphrase
	}
	return plain, nil
}

// Save encrypts the profile with the passphrase
// and writes it to path, creating parent directories.
func Save(path, passphrase string, profile *Profile) error {

	plain, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	file, err := seal(passphrase, plain)
	if err != nil {
		return err
	}

	data, err := json.Marshal(file)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrap(err, "config: save profile")
	}
	// Contains credentials
	if err = os.WriteFile(path, data, 0600); err != nil {
		return errors.Wrap(err, "config: save profile")
	}
	return nil
}

// Load reads the profile file at path
// and decrypts it with the passphrase.
func Load(path, passphrase string) (*Profile, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: load profile")
	}

	var file envelope
	if err = json.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "config: load profile")
	}

	plain, err := open(passphrase, &file)
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err = json.Unmarshal(plain, &profile); err != nil {
		return nil, ErrBadPassphrase
	}
	return &profile, nil
}
