// Package contract implementa a máquina de estados do imóvel fracionado:
// registro da propriedade, emissão de cotas, renda de aluguel e governança.
// Toda mutação passa pelos métodos do Contract sob um único mutex; cada
// operação valida todas as pré-condições antes de tocar qualquer estado,
// de modo que uma falha nunca deixa efeito parcial observável.
package contract

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ferreirogomes/tijolinho/chain"
	"github.com/ferreirogomes/tijolinho/models"
	"github.com/ferreirogomes/tijolinho/storage"

	"github.com/gagliardetto/solana-go"
)

// Estágios do ciclo de vida da propriedade. Um único campo de estágio no
// lugar de duas flags soltas impede combinações ilegais (ex.: cotas
// emitidas sem propriedade inicializada).
type propertyStage int

const (
	stageUninitialized propertyStage = iota
	stageInitialized
	stageSharesMinted
)

type propertyState struct {
	stage       propertyStage
	valuation   uint64
	totalShares uint64
	updatedAt   time.Time
}

type voteKey struct {
	proposalID uint64
	voter      solana.PublicKey
}

// Contract é o dono exclusivo dos quatro razões (propriedade, cotas,
// renda e governança). Identidades são chaves públicas Solana, opacas
// para o contrato além da comparação de igualdade.
type Contract struct {
	admin solana.PublicKey // Única identidade autorizada a inicializar e emitir
	self  solana.PublicKey // Identidade custodial do próprio contrato

	clock chain.Clock
	bank  chain.ValueLedger
	store storage.Store // Espelho opcional; nil desliga a persistência

	mu            sync.RWMutex
	property      propertyState
	shares        map[uint64]solana.PublicKey // Número da cota -> dono
	income        map[solana.PublicKey]uint64 // Créditos de renda por identidade
	proposals     map[uint64]*models.Proposal
	proposalCount uint64
	votes         map[voteKey]bool
}

// New cria um contrato vazio administrado por admin, com self como conta
// custodial no razão de valor.
func New(admin, self solana.PublicKey, clock chain.Clock, bank chain.ValueLedger, store storage.Store) *Contract {
	return &Contract{
		admin:     admin,
		self:      self,
		clock:     clock,
		bank:      bank,
		store:     store,
		shares:    make(map[uint64]solana.PublicKey),
		income:    make(map[solana.PublicKey]uint64),
		proposals: make(map[uint64]*models.Proposal),
		votes:     make(map[voteKey]bool),
	}
}

// Restore reconstrói o estado em memória a partir do espelho persistente.
// Deve ser chamado uma única vez, antes de o contrato receber operações.
func (c *Contract) Restore() error {
	if c.store == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	record, found, err := c.store.LoadProperty()
	if err != nil {
		return fmt.Errorf("falha ao restaurar registro do imóvel: %w", err)
	}
	if !found {
		return nil // Contrato nunca foi inicializado; nada a restaurar
	}

	stage := stageInitialized
	if record.SharesMinted {
		stage = stageSharesMinted
	}
	c.property = propertyState{
		stage:       stage,
		valuation:   record.Valuation,
		totalShares: record.TotalShares,
		updatedAt:   record.UpdatedAt,
	}

	units, err := c.store.LoadShareUnits()
	if err != nil {
		return fmt.Errorf("falha ao restaurar cotas: %w", err)
	}
	for _, unit := range units {
		owner, err := solana.PublicKeyFromBase58(unit.Owner)
		if err != nil {
			return fmt.Errorf("dono inválido na cota %d: %w", unit.ID, err)
		}
		c.shares[unit.ID] = owner
	}

	balances, err := c.store.LoadIncomeBalances()
	if err != nil {
		return fmt.Errorf("falha ao restaurar saldos de renda: %w", err)
	}
	for ownerBase58, balance := range balances {
		owner, err := solana.PublicKeyFromBase58(ownerBase58)
		if err != nil {
			return fmt.Errorf("identidade inválida no saldo de renda: %w", err)
		}
		c.income[owner] = balance
	}

	proposals, err := c.store.LoadProposals()
	if err != nil {
		return fmt.Errorf("falha ao restaurar propostas: %w", err)
	}
	for i := range proposals {
		proposal := proposals[i]
		c.proposals[proposal.ID] = &proposal
		if proposal.ID > c.proposalCount {
			c.proposalCount = proposal.ID
		}
	}

	receipts, err := c.store.LoadVoteReceipts()
	if err != nil {
		return fmt.Errorf("falha ao restaurar recibos de voto: %w", err)
	}
	for _, receipt := range receipts {
		voter, err := solana.PublicKeyFromBase58(receipt.Voter)
		if err != nil {
			return fmt.Errorf("votante inválido no recibo da proposta %d: %w", receipt.ProposalID, err)
		}
		c.votes[voteKey{receipt.ProposalID, voter}] = true
	}

	log.Printf("Estado restaurado: %d cotas, %d propostas, %d recibos de voto.",
		len(units), len(proposals), len(receipts))
	return nil
}

// Admin retorna a identidade do administrador.
func (c *Contract) Admin() solana.PublicKey { return c.admin }

// Self retorna a identidade custodial do contrato.
func (c *Contract) Self() solana.PublicKey { return c.self }

// mirror espelha uma mutação já confirmada no armazenamento persistente.
// O espelho é apenas rastreamento: uma falha aqui é registrada em log e
// nunca reverte a operação.
func (c *Contract) mirror(what string, fn func(storage.Store) error) {
	if c.store == nil {
		return
	}
	if err := fn(c.store); err != nil {
		log.Printf("ERRO: operação confirmada, mas falha ao espelhar %s: %v", what, err)
	}
}

// propertyRecord monta o registro espelhável do imóvel. Chamar com o lock.
func (c *Contract) propertyRecord() models.PropertyRecord {
	return models.PropertyRecord{
		Valuation:    c.property.valuation,
		TotalShares:  c.property.totalShares,
		SharesMinted: c.property.stage == stageSharesMinted,
		UpdatedAt:    c.property.updatedAt,
	}
}
