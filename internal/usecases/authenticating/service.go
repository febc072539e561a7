// Package authenticating controla a sessão do único usuário do painel.
// A comparação é feita em texto puro contra o par configurado; não há hash nem token.
package authenticating

import (
	"errors"
	"sync"

	"github.com/vfg2006/dashgreen/infrastructure/repository"
	"github.com/vfg2006/dashgreen/infrastructure/storage"
	"github.com/vfg2006/dashgreen/internal/config"
	"github.com/vfg2006/dashgreen/internal/domain"
	"github.com/vfg2006/dashgreen/pkg/log"
)

type Authenticator interface {
	Login(username, password string) bool
	Authenticate(username, password string) error
	Logout()
	CurrentUser() *domain.User
}

var _ Authenticator = (*Service)(nil)

type Service struct {
	credentials config.Auth
	repository  repository.SessionRepository
	logger      log.Logger

	mu   sync.RWMutex
	user *domain.User
}

// NewService restaura o usuário gravado; registro ausente ou corrompido deixa a sessão vazia
func NewService(credentials config.Auth, repo repository.SessionRepository) *Service {
	s := &Service{
		credentials: credentials,
		repository:  repo,
		logger:      log.ForComponent("session"),
	}

	user, err := repo.LoadUser()
	switch {
	case errors.Is(err, storage.ErrKeyNotFound):
	case err != nil:
		s.logger.WithError(err).Warn("Erro ao restaurar sessão, usuário deslogado")
	case user != nil && user.Username != "":
		s.user = user
	}

	return s
}

// Authenticate valida o par e grava a sessão
func (s *Service) Authenticate(username, password string) error {
	if username == "" || password == "" {
		return ErrMissingRequiredData
	}
	if username != s.credentials.Username || password != s.credentials.Password {
		s.logger.Debug("Tentativa de login com credenciais inválidas")
		return ErrInvalidCredentials
	}

	user := &domain.User{Username: username}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	if err := s.repository.SaveUser(user); err != nil {
		s.logger.WithError(err).Error("Erro ao gravar sessão do usuário")
	}

	s.logger.Info("Usuário logado")
	return nil
}

func (s *Service) Login(username, password string) bool {
	return s.Authenticate(username, password) == nil
}

func (s *Service) Logout() {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	if err := s.repository.DeleteUser(); err != nil {
		s.logger.WithError(err).Error("Erro ao remover sessão do usuário")
	}
}

// CurrentUser retorna uma cópia do usuário logado ou nil
func (s *Service) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}
