package ports

import "context"

// AssistantService é o porto para a IA que responde perguntas em texto livre
// sobre o estoque. stockSnapshot é um resumo em texto plano dos produtos
// (nome, tipo, quantidade, unidade) montado na hora da pergunta.
// Falhas de transporte ou de parse voltam como erro; o fluxo trata qualquer
// falha como não fatal.
type AssistantService interface {
	Ask(ctx context.Context, question, stockSnapshot string) (string, error)
}
