package models

import "time"

// Proposal representa uma proposta de governança com janela de votação
// delimitada por altura de bloco. As contagens são expostas como estão;
// quórum e desempate ficam a cargo de quem consome a API.
type Proposal struct {
	ID           uint64    `json:"id" db:"id"` // Sequencial, começando em 1
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	EndBlock     uint64    `json:"end_block" db:"end_block"` // Último bloco em que votos são aceitos
	VotesFor     uint64    `json:"votes_for" db:"votes_for"`
	VotesAgainst uint64    `json:"votes_against" db:"votes_against"`
	Executed     bool      `json:"executed" db:"executed"` // Reservado para um executor externo; nunca alterado aqui
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// VoteReceipt registra que uma identidade já votou em uma proposta.
// A existência do recibo é o que impede voto duplo.
type VoteReceipt struct {
	ProposalID uint64    `json:"proposal_id" db:"proposal_id"`
	Voter      string    `json:"voter" db:"voter"` // Chave pública Solana em Base58
	InFavor    bool      `json:"in_favor" db:"in_favor"`
	VotedAt    time.Time `json:"voted_at" db:"voted_at"`
}
