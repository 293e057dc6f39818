package contract_test

import (
	"testing"

	"github.com/ferreirogomes/tijolinho/contract"

	"github.com/stretchr/testify/assert"
)

func TestInitializeProperty(t *testing.T) {
	env := newTestEnv()

	err := env.contract.InitializeProperty(env.admin, 50_000_000, 100)
	assert.Nil(t, err)

	record, err := env.contract.PropertyDetails()
	assert.Nil(t, err)
	assert.Equal(t, uint64(50_000_000), record.Valuation)
	assert.Equal(t, uint64(100), record.TotalShares)
	assert.False(t, record.SharesMinted)
}

func TestInitializePropertyUnauthorized(t *testing.T) {
	env := newTestEnv()

	err := env.contract.InitializeProperty(env.tenant, 50_000_000, 100)
	assert.ErrorIs(t, err, contract.ErrUnauthorized)

	_, err = env.contract.PropertyDetails()
	assert.ErrorIs(t, err, contract.ErrNotInitialized)
}

func TestInitializePropertyTwice(t *testing.T) {
	env := initialized(50_000_000, 100)

	err := env.contract.InitializeProperty(env.admin, 70_000_000, 200)
	assert.ErrorIs(t, err, contract.ErrAlreadyInitialized)

	// A segunda chamada não pode ter alterado nada.
	record, _ := env.contract.PropertyDetails()
	assert.Equal(t, uint64(50_000_000), record.Valuation)
	assert.Equal(t, uint64(100), record.TotalShares)
}

func TestInitializePropertyBounds(t *testing.T) {
	cases := []struct {
		name      string
		valuation uint64
		shares    uint64
		expected  error
	}{
		{"avaliação abaixo do mínimo", 999_999, 100, contract.ErrInvalidValuation},
		{"avaliação acima do máximo", 1_000_000_000_001, 100, contract.ErrInvalidValuation},
		{"zero cotas", 50_000_000, 0, contract.ErrInvalidShareTotal},
		{"cotas acima do máximo", 50_000_000, 10_001, contract.ErrInvalidShareTotal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv()

			err := env.contract.InitializeProperty(env.admin, tc.valuation, tc.shares)
			assert.ErrorIs(t, err, tc.expected)

			// Falha de validação não pode deixar efeito parcial.
			_, err = env.contract.PropertyDetails()
			assert.ErrorIs(t, err, contract.ErrNotInitialized)
		})
	}
}

func TestMintInitialShares(t *testing.T) {
	env := initialized(50_000_000, 100)

	err := env.contract.MintInitialShares(env.admin)
	assert.Nil(t, err)

	record, _ := env.contract.PropertyDetails()
	assert.True(t, record.SharesMinted)

	// Exatamente TotalShares cotas, todas do administrador, numeradas de 1 a 100.
	for id := uint64(1); id <= 100; id++ {
		owner, ok := env.contract.ShareOwner(id)
		assert.True(t, ok, "cota %d deveria existir", id)
		assert.Equal(t, env.admin, owner)
	}
	_, ok := env.contract.ShareOwner(0)
	assert.False(t, ok)
	_, ok = env.contract.ShareOwner(101)
	assert.False(t, ok)

	assert.True(t, env.contract.IsOwnerOf(env.admin, 100))
	assert.False(t, env.contract.IsOwnerOf(env.tenant, 100))
}

func TestMintInitialSharesTwice(t *testing.T) {
	env := minted(50_000_000, 100)

	err := env.contract.MintInitialShares(env.admin)
	assert.ErrorIs(t, err, contract.ErrSharesAlreadyMinted)

	owner, ok := env.contract.ShareOwner(100)
	assert.True(t, ok)
	assert.Equal(t, env.admin, owner)
}

func TestMintInitialSharesBeforeInitialize(t *testing.T) {
	env := newTestEnv()

	err := env.contract.MintInitialShares(env.admin)
	assert.ErrorIs(t, err, contract.ErrNotInitialized)
}

func TestMintInitialSharesUnauthorized(t *testing.T) {
	env := initialized(50_000_000, 100)

	err := env.contract.MintInitialShares(env.tenant)
	assert.ErrorIs(t, err, contract.ErrUnauthorized)

	_, ok := env.contract.ShareOwner(1)
	assert.False(t, ok)
}
