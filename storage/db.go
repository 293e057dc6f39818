package storage

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/ferreirogomes/tijolinho/models"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	migrate "github.com/rubenv/sql-migrate"
)

// DB representa a conexão com o banco de dados PostgreSQL.
type DB struct {
	*sqlx.DB
}

// NewDB conecta-se ao PostgreSQL e executa as migrações.
func NewDB(dataSourceName string) (*DB, error) {
	db, err := sqlx.Connect("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar ao banco de dados: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("falha ao pingar o banco de dados: %w", err)
	}
	log.Println("Conexão com PostgreSQL estabelecida com sucesso.")

	if err := runMigrations(db.DB); err != nil {
		return nil, fmt.Errorf("falha ao executar migrações: %w", err)
	}

	return &DB{db}, nil
}

// runMigrations executa as migrações usando sql-migrate.
func runMigrations(db *sql.DB) error {
	migrations := &migrate.FileMigrationSource{
		Dir: "./storage/migrations",
	}

	n, err := migrate.Exec(db, "postgres", migrations, migrate.Up)
	if err != nil {
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}
	if n > 0 {
		log.Printf("Aplicadas %d migrações ao banco de dados.", n)
	} else {
		log.Println("Nenhuma migração nova para aplicar.")
	}
	return nil
}

// SaveProperty grava (ou sobrescreve) o registro único do imóvel.
func (d *DB) SaveProperty(record models.PropertyRecord) error {
	query := `INSERT INTO property (id, valuation, total_shares, shares_minted, updated_at)
	          VALUES (1, $1, $2, $3, $4)
	          ON CONFLICT (id) DO UPDATE SET
	            valuation = EXCLUDED.valuation,
	            total_shares = EXCLUDED.total_shares,
	            shares_minted = EXCLUDED.shares_minted,
	            updated_at = EXCLUDED.updated_at`
	_, err := d.Exec(query, record.Valuation, record.TotalShares, record.SharesMinted, record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("falha ao salvar registro do imóvel: %w", err)
	}
	return nil
}

// SaveShareUnits grava um lote de cotas em uma única transação.
func (d *DB) SaveShareUnits(units []models.ShareUnit) error {
	tx, err := d.Beginx()
	if err != nil {
		return fmt.Errorf("falha ao abrir transação: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO share_units (id, owner) VALUES ($1, $2)
	          ON CONFLICT (id) DO UPDATE SET owner = EXCLUDED.owner`
	for _, unit := range units {
		if _, err := tx.Exec(query, unit.ID, unit.Owner); err != nil {
			return fmt.Errorf("falha ao salvar cota %d: %w", unit.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("falha ao confirmar lote de cotas: %w", err)
	}
	return nil
}

// SaveIncomeBalance grava o saldo de créditos de renda de uma identidade.
func (d *DB) SaveIncomeBalance(owner string, balance uint64) error {
	query := `INSERT INTO income_balances (owner, balance) VALUES ($1, $2)
	          ON CONFLICT (owner) DO UPDATE SET balance = EXCLUDED.balance`
	_, err := d.Exec(query, owner, balance)
	if err != nil {
		return fmt.Errorf("falha ao salvar saldo de renda: %w", err)
	}
	return nil
}

// SaveIncomeEntry grava um lançamento do diário de renda.
func (d *DB) SaveIncomeEntry(entry models.IncomeEntry) error {
	query := `INSERT INTO income_entries (id, kind, counterparty, amount, created_at)
	          VALUES ($1, $2, $3, $4, $5)`
	_, err := d.Exec(query, entry.ID, entry.Kind, entry.Counterparty, entry.Amount, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("falha ao salvar lançamento de renda: %w", err)
	}
	return nil
}

// SaveProposal grava (ou atualiza as contagens de) uma proposta.
func (d *DB) SaveProposal(proposal models.Proposal) error {
	query := `INSERT INTO proposals (id, title, description, end_block, votes_for, votes_against, executed, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          ON CONFLICT (id) DO UPDATE SET
	            votes_for = EXCLUDED.votes_for,
	            votes_against = EXCLUDED.votes_against,
	            executed = EXCLUDED.executed`
	_, err := d.Exec(query, proposal.ID, proposal.Title, proposal.Description, proposal.EndBlock,
		proposal.VotesFor, proposal.VotesAgainst, proposal.Executed, proposal.CreatedAt)
	if err != nil {
		return fmt.Errorf("falha ao salvar proposta: %w", err)
	}
	return nil
}

// SaveVoteReceipt grava o recibo de voto de uma identidade em uma proposta.
func (d *DB) SaveVoteReceipt(receipt models.VoteReceipt) error {
	query := `INSERT INTO vote_receipts (proposal_id, voter, in_favor, voted_at)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (proposal_id, voter) DO NOTHING`
	_, err := d.Exec(query, receipt.ProposalID, receipt.Voter, receipt.InFavor, receipt.VotedAt)
	if err != nil {
		return fmt.Errorf("falha ao salvar recibo de voto: %w", err)
	}
	return nil
}

// LoadProperty carrega o registro do imóvel, se existir.
func (d *DB) LoadProperty() (models.PropertyRecord, bool, error) {
	var record models.PropertyRecord
	err := d.Get(&record, `SELECT valuation, total_shares, shares_minted, updated_at FROM property WHERE id = 1`)
	if err == sql.ErrNoRows {
		return models.PropertyRecord{}, false, nil
	}
	if err != nil {
		return models.PropertyRecord{}, false, fmt.Errorf("falha ao carregar registro do imóvel: %w", err)
	}
	return record, true, nil
}

// LoadShareUnits carrega todas as cotas emitidas.
func (d *DB) LoadShareUnits() ([]models.ShareUnit, error) {
	var units []models.ShareUnit
	if err := d.Select(&units, `SELECT id, owner FROM share_units ORDER BY id`); err != nil {
		return nil, fmt.Errorf("falha ao carregar cotas: %w", err)
	}
	return units, nil
}

// LoadIncomeBalances carrega todos os saldos de créditos de renda.
func (d *DB) LoadIncomeBalances() (map[string]uint64, error) {
	rows, err := d.Queryx(`SELECT owner, balance FROM income_balances`)
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar saldos de renda: %w", err)
	}
	defer rows.Close()

	balances := make(map[string]uint64)
	for rows.Next() {
		var owner string
		var balance uint64
		if err := rows.Scan(&owner, &balance); err != nil {
			return nil, fmt.Errorf("falha ao ler saldo de renda: %w", err)
		}
		balances[owner] = balance
	}
	return balances, rows.Err()
}

// LoadProposals carrega todas as propostas em ordem de criação.
func (d *DB) LoadProposals() ([]models.Proposal, error) {
	var proposals []models.Proposal
	query := `SELECT id, title, description, end_block, votes_for, votes_against, executed, created_at
	          FROM proposals ORDER BY id`
	if err := d.Select(&proposals, query); err != nil {
		return nil, fmt.Errorf("falha ao carregar propostas: %w", err)
	}
	return proposals, nil
}

// LoadVoteReceipts carrega todos os recibos de voto.
func (d *DB) LoadVoteReceipts() ([]models.VoteReceipt, error) {
	var receipts []models.VoteReceipt
	if err := d.Select(&receipts, `SELECT proposal_id, voter, in_favor, voted_at FROM vote_receipts`); err != nil {
		return nil, fmt.Errorf("falha ao carregar recibos de voto: %w", err)
	}
	return receipts, nil
}
