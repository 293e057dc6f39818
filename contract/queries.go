package contract

import (
	"github.com/ferreirogomes/tijolinho/models"

	"github.com/gagliardetto/solana-go"
)

// Consultas somente leitura. Nenhuma toca estado; todas podem ser
// servidas concorrentemente entre si.

// PropertyDetails retorna o registro do imóvel, ou ErrNotInitialized se o
// contrato ainda não foi inicializado.
func (c *Contract) PropertyDetails() (models.PropertyRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.property.stage == stageUninitialized {
		return models.PropertyRecord{}, ErrNotInitialized
	}
	return c.propertyRecord(), nil
}

// ShareOwner retorna o dono da cota, ou false se a cota não foi emitida.
func (c *Contract) ShareOwner(unitID uint64) (solana.PublicKey, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	owner, ok := c.shares[unitID]
	return owner, ok
}

// IsOwnerOf indica se a identidade é dona da cota.
func (c *Contract) IsOwnerOf(id solana.PublicKey, unitID uint64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	owner, ok := c.shares[unitID]
	return ok && owner.Equals(id)
}

// RentalIncomeBalance retorna os créditos de renda da identidade.
// Identidade desconhecida tem saldo zero.
func (c *Contract) RentalIncomeBalance(id solana.PublicKey) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.income[id]
}

// ProposalDetails retorna a proposta, ou false se o id é desconhecido.
func (c *Contract) ProposalDetails(proposalID uint64) (models.Proposal, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	proposal, ok := c.proposals[proposalID]
	if !ok {
		return models.Proposal{}, false
	}
	return *proposal, true
}

// HasVoted indica se a identidade já votou na proposta.
func (c *Contract) HasVoted(voter solana.PublicKey, proposalID uint64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.votes[voteKey{proposalID, voter}]
}

// ProposalCount retorna quantas propostas já foram criadas.
func (c *Contract) ProposalCount() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.proposalCount
}
