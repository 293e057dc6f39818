package contract

import (
	"fmt"
	"time"

	"github.com/ferreirogomes/tijolinho/models"
	"github.com/ferreirogomes/tijolinho/storage"
	"github.com/ferreirogomes/tijolinho/validation"

	"github.com/gagliardetto/solana-go"
)

// CreateProposal abre uma proposta de governança com janela de votação de
// duration blocos a partir da altura atual. Ids são sequenciais a partir
// de 1 e nunca reutilizados.
func (c *Contract) CreateProposal(caller solana.PublicKey, title, description string, duration uint64) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.property.stage == stageUninitialized {
		return 0, ErrNotInitialized
	}
	if !validation.ValidText(title, validation.MaxTitleLen) {
		return 0, ErrInvalidText
	}
	if !validation.ValidText(description, validation.MaxDescriptionLen) {
		return 0, ErrInvalidText
	}
	if !validation.ValidVotingDuration(duration) {
		return 0, ErrInvalidVotingDuration
	}

	height, err := c.clock.CurrentHeight()
	if err != nil {
		return 0, fmt.Errorf("relógio de blocos indisponível: %w", err)
	}

	id := c.proposalCount + 1
	proposal := &models.Proposal{
		ID:          id,
		Title:       title,
		Description: description,
		EndBlock:    height + duration,
		CreatedAt:   time.Now(),
	}
	c.proposals[id] = proposal
	c.proposalCount = id

	c.mirror("criação de proposta", func(s storage.Store) error {
		return s.SaveProposal(*proposal)
	})
	return id, nil
}

// VoteOnProposal registra um voto sim/não do cotista reconhecido. Cada
// identidade vota no máximo uma vez por proposta (recibo de voto), e só
// enquanto a altura atual não passar de EndBlock. A contagem e o recibo
// são gravados juntos na mesma operação serializada.
func (c *Contract) VoteOnProposal(caller solana.PublicKey, proposalID uint64, inFavor bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !validation.ValidProposalID(proposalID, c.proposalCount) {
		return ErrInvalidProposalID
	}
	proposal, ok := c.proposals[proposalID]
	if !ok {
		return ErrProposalNotFound
	}

	// Mesma simplificação de cotista único da distribuição: quem detém a
	// última cota é o votante reconhecido.
	owner, minted := c.shares[c.property.totalShares]
	if !minted || !owner.Equals(caller) {
		return ErrUnauthorized
	}

	key := voteKey{proposalID, caller}
	if c.votes[key] {
		return ErrAlreadyVoted
	}

	height, err := c.clock.CurrentHeight()
	if err != nil {
		return fmt.Errorf("relógio de blocos indisponível: %w", err)
	}
	if height > proposal.EndBlock {
		return ErrVotingClosed
	}

	if inFavor {
		proposal.VotesFor++
	} else {
		proposal.VotesAgainst++
	}
	c.votes[key] = true

	c.mirror("voto em proposta", func(s storage.Store) error {
		if err := s.SaveProposal(*proposal); err != nil {
			return err
		}
		return s.SaveVoteReceipt(models.VoteReceipt{
			ProposalID: proposalID,
			Voter:      caller.String(),
			InFavor:    inFavor,
			VotedAt:    time.Now(),
		})
	})
	return nil
}
