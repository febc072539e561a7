package repository

import (
	"fmt"

	"github.com/vfg2006/dashgreen/infrastructure/storage"
	"github.com/vfg2006/dashgreen/internal/domain"
)

//go:generate mockgen -source=session.go -destination=mocks/mock_session.go -package=mocks

// SessionRepository guarda o usuário logado
type SessionRepository interface {
	LoadUser() (*domain.User, error)
	SaveUser(user *domain.User) error
	DeleteUser() error
}

type sessionRepository struct {
	kv   storage.KeyValue
	keys Keys
}

func NewSessionRepository(kv storage.KeyValue, keys Keys) SessionRepository {
	return &sessionRepository{
		kv:   kv,
		keys: keys,
	}
}

func (r *sessionRepository) LoadUser() (*domain.User, error) {
	data, err := r.kv.Get(r.keys.User)
	if err != nil {
		return nil, err
	}

	var user *domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON do usuário: %w", err)
	}

	return user, nil
}

func (r *sessionRepository) SaveUser(user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("erro ao serializar usuário para JSON: %w", err)
	}

	return r.kv.Set(r.keys.User, data)
}

func (r *sessionRepository) DeleteUser() error {
	return r.kv.Delete(r.keys.User)
}
