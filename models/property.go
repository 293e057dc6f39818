package models

import "time"

// PropertyRecord representa o registro único do imóvel fracionado.
// Existe no máximo um registro; ele é criado na inicialização do contrato
// e depois disso só o campo SharesMinted muda (uma única vez).
type PropertyRecord struct {
	Valuation    uint64    `json:"valuation" db:"valuation"`         // Avaliação do imóvel em centavos
	TotalShares  uint64    `json:"total_shares" db:"total_shares"`   // Quantidade total de cotas emitíveis
	SharesMinted bool      `json:"shares_minted" db:"shares_minted"` // Indica se as cotas iniciais já foram emitidas
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
