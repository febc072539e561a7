// Package storage define a porta de persistência chave-valor usada pelo painel
package storage

import "errors"

// ErrKeyNotFound indica que a chave nunca foi gravada
var ErrKeyNotFound = errors.New("chave não encontrada")

// KeyValue é o meio durável onde cada registro do estado é gravado por inteiro
type KeyValue interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
