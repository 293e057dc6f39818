package contract

import (
	"fmt"
	"time"

	"github.com/ferreirogomes/tijolinho/models"
	"github.com/ferreirogomes/tijolinho/storage"

	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
)

// DepositRentalIncome recebe aluguel de qualquer chamador: move amount do
// chamador para a custódia do contrato e cunha a mesma quantia de créditos
// de renda na identidade custodial. Os dois efeitos acontecem na mesma
// operação serializada; se a transferência falhar, nenhum crédito é cunhado.
func (c *Contract) DepositRentalIncome(caller solana.PublicKey, amount uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if amount == 0 {
		return ErrInsufficientFunds
	}
	if c.bank.BalanceOf(caller) < amount {
		return ErrInsufficientFunds
	}

	if err := c.bank.TransferIn(caller, amount); err != nil {
		// Saldo já verificado acima; uma falha aqui é do host, não do chamador.
		return fmt.Errorf("falha na transferência para custódia: %w", err)
	}
	c.income[c.self] += amount

	balance := c.income[c.self]
	c.mirror("depósito de aluguel", func(s storage.Store) error {
		if err := s.SaveIncomeBalance(c.self.String(), balance); err != nil {
			return err
		}
		return s.SaveIncomeEntry(models.IncomeEntry{
			ID:           uuid.New().String(),
			Kind:         models.IncomeEntryDeposit,
			Counterparty: caller.String(),
			Amount:       amount,
			CreatedAt:    time.Now(),
		})
	})
	return nil
}

// DistributeIncome paga a renda sob custódia ao cotista reconhecido: o
// dono da última cota (número == totalShares), ponderado pela quantidade
// de cotas que ele detém. Enquanto as cotas ainda estiverem em nome do
// próprio contrato, retorna (false, nil) sem transferir nada — resultado
// definido, não erro. Qualquer chamador pode disparar a distribuição.
//
// A escolha do dono da última cota como único recebedor replica o
// contrato original; ver DESIGN.md para a questão em aberto sobre
// rateio real entre múltiplos cotistas.
func (c *Contract) DistributeIncome(caller solana.PublicKey) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	custody := c.bank.BalanceOf(c.self)
	if custody == 0 {
		return false, ErrNothingToDistribute
	}

	owner, minted := c.shares[c.property.totalShares]
	if !minted {
		return false, ErrNotInitialized
	}
	if owner.Equals(c.self) {
		return false, nil
	}

	held := uint64(0)
	for _, unitOwner := range c.shares {
		if unitOwner.Equals(owner) {
			held++
		}
	}

	// Divisão inteira: o resto fica sob custódia até a próxima distribuição.
	payout := (custody / c.property.totalShares) * held
	if payout == 0 {
		return true, nil
	}

	if err := c.bank.TransferOut(owner, payout); err != nil {
		return false, fmt.Errorf("falha na transferência da distribuição: %w", err)
	}

	c.mirror("distribuição de renda", func(s storage.Store) error {
		return s.SaveIncomeEntry(models.IncomeEntry{
			ID:           uuid.New().String(),
			Kind:         models.IncomeEntryPayout,
			Counterparty: owner.String(),
			Amount:       payout,
			CreatedAt:    time.Now(),
		})
	})
	return true, nil
}
