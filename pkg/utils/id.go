package utils

import (
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	characters   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	nanoIDLength = 16

	UUIDStrategy   = "uuid"
	NanoIDStrategy = "nanoid"
)

// IDGenerator gera identificadores únicos para novas vendas
type IDGenerator func() string

func NewUUID() string {
	return uuid.NewString()
}

// NewNanoID gera um ID alfanumérico; em caso de falha usa um UUID
func NewNanoID() string {
	id, err := gonanoid.Generate(characters, nanoIDLength)
	if err != nil {
		return NewUUID()
	}
	return id
}

// GeneratorFor retorna o gerador da estratégia configurada, UUID por padrão
func GeneratorFor(strategy string) IDGenerator {
	if strategy == NanoIDStrategy {
		return NewNanoID
	}
	return NewUUID
}
