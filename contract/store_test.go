package contract_test

import (
	"testing"
	"time"

	"github.com/ferreirogomes/tijolinho/chain"
	"github.com/ferreirogomes/tijolinho/contract"
	"github.com/ferreirogomes/tijolinho/models"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockStore é uma implementação mock do storage.Store para testes de unidade.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) SaveProperty(record models.PropertyRecord) error {
	args := m.Called(record)
	return args.Error(0)
}
func (m *MockStore) SaveShareUnits(units []models.ShareUnit) error {
	args := m.Called(units)
	return args.Error(0)
}
func (m *MockStore) SaveIncomeBalance(owner string, balance uint64) error {
	args := m.Called(owner, balance)
	return args.Error(0)
}
func (m *MockStore) SaveIncomeEntry(entry models.IncomeEntry) error {
	args := m.Called(entry)
	return args.Error(0)
}
func (m *MockStore) SaveProposal(proposal models.Proposal) error {
	args := m.Called(proposal)
	return args.Error(0)
}
func (m *MockStore) SaveVoteReceipt(receipt models.VoteReceipt) error {
	args := m.Called(receipt)
	return args.Error(0)
}
func (m *MockStore) LoadProperty() (models.PropertyRecord, bool, error) {
	args := m.Called()
	return args.Get(0).(models.PropertyRecord), args.Bool(1), args.Error(2)
}
func (m *MockStore) LoadShareUnits() ([]models.ShareUnit, error) {
	args := m.Called()
	return args.Get(0).([]models.ShareUnit), args.Error(1)
}
func (m *MockStore) LoadIncomeBalances() (map[string]uint64, error) {
	args := m.Called()
	return args.Get(0).(map[string]uint64), args.Error(1)
}
func (m *MockStore) LoadProposals() ([]models.Proposal, error) {
	args := m.Called()
	return args.Get(0).([]models.Proposal), args.Error(1)
}
func (m *MockStore) LoadVoteReceipts() ([]models.VoteReceipt, error) {
	args := m.Called()
	return args.Get(0).([]models.VoteReceipt), args.Error(1)
}

func newMockedContract(store *MockStore) (*contract.Contract, solana.PublicKey) {
	admin := solana.NewWallet().PublicKey()
	self := solana.NewWallet().PublicKey()
	clock := chain.NewManualClock(100)
	bank := chain.NewMemoryBank(self, map[solana.PublicKey]uint64{admin: 10_000_000})
	return contract.New(admin, self, clock, bank, store), admin
}

// TestMirrorOnInitialize verifica que a mutação confirmada é espelhada.
func TestMirrorOnInitialize(t *testing.T) {
	mockStore := new(MockStore)
	c, admin := newMockedContract(mockStore)

	mockStore.On("SaveProperty", mock.AnythingOfType("models.PropertyRecord")).Return(nil).Once()

	require.Nil(t, c.InitializeProperty(admin, 50_000_000, 100))
	mockStore.AssertExpectations(t)
}

// TestMirrorOnMint verifica que a emissão espelha o registro e o lote de cotas.
func TestMirrorOnMint(t *testing.T) {
	mockStore := new(MockStore)
	c, admin := newMockedContract(mockStore)

	mockStore.On("SaveProperty", mock.AnythingOfType("models.PropertyRecord")).Return(nil).Twice()
	mockStore.On("SaveShareUnits", mock.MatchedBy(func(units []models.ShareUnit) bool {
		return len(units) == 100 && units[0].ID == 1 && units[99].ID == 100 &&
			units[0].Owner == admin.String()
	})).Return(nil).Once()

	require.Nil(t, c.InitializeProperty(admin, 50_000_000, 100))
	require.Nil(t, c.MintInitialShares(admin))
	mockStore.AssertExpectations(t)
}

// TestMirrorFailureDoesNotRevert verifica que falha no espelho não desfaz
// a operação confirmada.
func TestMirrorFailureDoesNotRevert(t *testing.T) {
	mockStore := new(MockStore)
	c, admin := newMockedContract(mockStore)

	mockStore.On("SaveProperty", mock.AnythingOfType("models.PropertyRecord")).
		Return(assert.AnError).Once()

	require.Nil(t, c.InitializeProperty(admin, 50_000_000, 100))

	record, err := c.PropertyDetails()
	assert.Nil(t, err)
	assert.Equal(t, uint64(50_000_000), record.Valuation)
	mockStore.AssertExpectations(t)
}

// TestRestore verifica a reconstrução do estado a partir do espelho.
func TestRestore(t *testing.T) {
	mockStore := new(MockStore)
	admin := solana.NewWallet().PublicKey()
	self := solana.NewWallet().PublicKey()
	voter := admin

	mockStore.On("LoadProperty").Return(models.PropertyRecord{
		Valuation:    50_000_000,
		TotalShares:  2,
		SharesMinted: true,
		UpdatedAt:    time.Now(),
	}, true, nil).Once()
	mockStore.On("LoadShareUnits").Return([]models.ShareUnit{
		{ID: 1, Owner: admin.String()},
		{ID: 2, Owner: admin.String()},
	}, nil).Once()
	mockStore.On("LoadIncomeBalances").Return(map[string]uint64{
		self.String(): 3_000,
	}, nil).Once()
	mockStore.On("LoadProposals").Return([]models.Proposal{
		{ID: 1, Title: "Renovate", Description: "Kitchen", EndBlock: 1_540, VotesFor: 1},
	}, nil).Once()
	mockStore.On("LoadVoteReceipts").Return([]models.VoteReceipt{
		{ProposalID: 1, Voter: voter.String(), InFavor: true},
	}, nil).Once()

	clock := chain.NewManualClock(100)
	bank := chain.NewMemoryBank(self, nil)
	c := contract.New(admin, self, clock, bank, mockStore)
	require.Nil(t, c.Restore())

	record, err := c.PropertyDetails()
	require.Nil(t, err)
	assert.Equal(t, uint64(2), record.TotalShares)
	assert.True(t, record.SharesMinted)

	owner, ok := c.ShareOwner(2)
	require.True(t, ok)
	assert.Equal(t, admin, owner)

	assert.Equal(t, uint64(3_000), c.RentalIncomeBalance(self))
	assert.Equal(t, uint64(1), c.ProposalCount())
	assert.True(t, c.HasVoted(voter, 1))

	// Uma proposta restaurada mantém o guarda de voto duplo.
	err = c.VoteOnProposal(admin, 1, true)
	assert.ErrorIs(t, err, contract.ErrAlreadyVoted)

	mockStore.AssertExpectations(t)
}
