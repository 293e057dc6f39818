package storage

import "github.com/ferreirogomes/tijolinho/models"

// Store é o espelho persistente do estado confirmado do contrato.
// CUIDADO: o espelho é apenas para rastreamento e reconstrução no boot;
// a fonte de verdade é o estado em memória do contrato. Uma falha de
// escrita aqui é registrada em log e nunca reverte uma operação já
// confirmada.
type Store interface {
	SaveProperty(record models.PropertyRecord) error
	SaveShareUnits(units []models.ShareUnit) error
	SaveIncomeBalance(owner string, balance uint64) error
	SaveIncomeEntry(entry models.IncomeEntry) error
	SaveProposal(proposal models.Proposal) error
	SaveVoteReceipt(receipt models.VoteReceipt) error

	LoadProperty() (models.PropertyRecord, bool, error)
	LoadShareUnits() ([]models.ShareUnit, error)
	LoadIncomeBalances() (map[string]uint64, error)
	LoadProposals() ([]models.Proposal, error)
	LoadVoteReceipts() ([]models.VoteReceipt, error)
}
