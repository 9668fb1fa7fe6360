package ledger

import (
	"context"

	"github.com/VitorSilami/GerenciadorDeEstoqueBotTelegram/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa tx. É o que garante a atomicidade do ajuste:
// leitura com lock, atualização de saldo e inserção do lançamento acontecem
// juntos ou não acontecem.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.MovementRepository,
	) error) error
}
