// Package file grava cada registro do painel em um arquivo JSON no disco,
// opcionalmente criptografado com uma senha (age/scrypt).
package file

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"filippo.io/age"
	"github.com/pkg/errors"
	"github.com/vfg2006/dashgreen/infrastructure/storage"
)

const fileExtension = ".json"

type Store struct {
	baseDir   string
	identity  *age.ScryptIdentity
	recipient *age.ScryptRecipient
	mu        sync.Mutex
}

type Option func(*Store) error

// WithPassphrase habilita a criptografia; workFactor 0 mantém o padrão do age
func WithPassphrase(passphrase string, workFactor int) Option {
	return func(s *Store) error {
		if passphrase == "" {
			return nil
		}

		recipient, err := age.NewScryptRecipient(passphrase)
		if err != nil {
			return errors.Wrap(err, "erro ao criar destinatário age")
		}

		identity, err := age.NewScryptIdentity(passphrase)
		if err != nil {
			return errors.Wrap(err, "erro ao criar identidade age")
		}

		if workFactor > 0 {
			recipient.SetWorkFactor(workFactor)
		}

		s.recipient = recipient
		s.identity = identity
		return nil
	}
}

func New(baseDir string, opts ...Option) (*Store, error) {
	s := &Store{baseDir: baseDir}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "erro ao criar diretório de dados %s", baseDir)
	}

	return s, nil
}

// Encrypted indica se novas gravações são criptografadas
func (s *Store) Encrypted() bool {
	return s.recipient != nil
}

func (s *Store) Get(key string) ([]byte, error) {
	path, err := s.pathFor(key)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storage.ErrKeyNotFound
		}
		return nil, errors.Wrapf(err, "erro ao ler %s", path)
	}

	if !isAgeEncrypted(data) {
		return data, nil
	}

	if s.identity == nil {
		return nil, errors.Errorf("arquivo %s está criptografado e nenhuma senha foi configurada", path)
	}

	decrypted, err := decryptData(data, s.identity)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao descriptografar %s", path)
	}

	return decrypted, nil
}

func (s *Store) Set(key string, value []byte) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data := value
	if s.recipient != nil {
		data, err = encryptData(value, s.recipient)
		if err != nil {
			return errors.Wrapf(err, "erro ao criptografar %s", key)
		}
	}

	return atomicWrite(path, data)
}

func (s *Store) Delete(key string) error {
	path, err := s.pathFor(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "erro ao remover %s", path)
	}
	return nil
}

func (s *Store) pathFor(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", errors.Errorf("chave inválida: %q", key)
	}
	return filepath.Join(s.baseDir, key+fileExtension), nil
}

// atomicWrite grava em um arquivo temporário e renomeia
func atomicWrite(path string, data []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrapf(err, "erro ao gravar %s", tmpPath)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrapf(err, "erro ao renomear %s", tmpPath)
	}

	return nil
}
