package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrProductNotFound   = errors.New("produto não encontrado")
	ErrInsufficientStock = errors.New("estoque insuficiente")
	ErrInvalidQuantity   = errors.New("quantidade inválida")
	ErrInvalidPrice      = errors.New("valor inválido")
	ErrPersistence       = errors.New("falha de persistência")
)
