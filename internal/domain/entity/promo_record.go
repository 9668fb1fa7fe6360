package entity

import "time"

// PromoRecord registra um brinde avulso descrito em texto livre, sem vínculo
// com produto ou movimentação (tabela própria).
type PromoRecord struct {
	ID          string
	Description string
	OriginChat  *int64 // chat que originou o registro, quando conhecido
	OccurredAt  time.Time
}
