package contract

import (
	"time"

	"github.com/ferreirogomes/tijolinho/models"
	"github.com/ferreirogomes/tijolinho/storage"
	"github.com/ferreirogomes/tijolinho/validation"

	"github.com/gagliardetto/solana-go"
)

// InitializeProperty registra o imóvel com sua avaliação e o total de
// cotas. Só o administrador pode chamar, e só uma vez.
func (c *Contract) InitializeProperty(caller solana.PublicKey, valuation, totalShares uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !caller.Equals(c.admin) {
		return ErrUnauthorized
	}
	if c.property.stage != stageUninitialized {
		return ErrAlreadyInitialized
	}
	if !validation.ValidValuation(valuation) {
		return ErrInvalidValuation
	}
	if !validation.ValidShareCount(totalShares) {
		return ErrInvalidShareTotal
	}

	c.property = propertyState{
		stage:       stageInitialized,
		valuation:   valuation,
		totalShares: totalShares,
		updatedAt:   time.Now(),
	}

	c.mirror("registro do imóvel", func(s storage.Store) error {
		return s.SaveProperty(c.propertyRecord())
	})
	return nil
}

// MintInitialShares emite todas as cotas de uma vez, numeradas de 1 a
// totalShares, todas em nome do administrador. Só o administrador pode
// chamar, só depois da inicialização, e só uma vez; ou todas as cotas
// são criadas, ou nenhuma.
func (c *Contract) MintInitialShares(caller solana.PublicKey) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !caller.Equals(c.admin) {
		return ErrUnauthorized
	}
	if c.property.stage == stageUninitialized {
		return ErrNotInitialized
	}
	if c.property.stage == stageSharesMinted {
		return ErrSharesAlreadyMinted
	}

	// O lote inteiro é montado antes de tocar o razão de cotas, para que
	// nenhum estado de emissão parcial seja observável.
	units := make([]models.ShareUnit, 0, c.property.totalShares)
	minted := make(map[uint64]solana.PublicKey, c.property.totalShares)
	for id := uint64(1); id <= c.property.totalShares; id++ {
		minted[id] = c.admin
		units = append(units, models.ShareUnit{ID: id, Owner: c.admin.String()})
	}
	c.shares = minted
	c.property.stage = stageSharesMinted
	c.property.updatedAt = time.Now()

	c.mirror("emissão de cotas", func(s storage.Store) error {
		if err := s.SaveProperty(c.propertyRecord()); err != nil {
			return err
		}
		return s.SaveShareUnits(units)
	})
	return nil
}
