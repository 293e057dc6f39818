package models

import "time"

// Tipos de lançamento no diário de renda.
const (
	IncomeEntryDeposit = "deposit" // Entrada de aluguel sob custódia do contrato
	IncomeEntryPayout  = "payout"  // Distribuição paga a um cotista
)

// IncomeEntry é um lançamento do diário de renda de aluguel, espelhado no
// banco apenas para rastreamento; a fonte de verdade é o estado do contrato.
type IncomeEntry struct {
	ID           string    `json:"id" db:"id"` // UUID
	Kind         string    `json:"kind" db:"kind"`
	Counterparty string    `json:"counterparty" db:"counterparty"` // Quem depositou ou recebeu, em Base58
	Amount       uint64    `json:"amount" db:"amount"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
