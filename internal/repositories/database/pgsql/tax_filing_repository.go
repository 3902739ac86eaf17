package pgsql

import (
	"context"
	"database/sql"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const taxFilingColumns = `
	filing_id, start_date, end_date, net_income, taxable_amount, tax_amount, balance_due, status,
	tax_filed_on, created_at, created_by, last_updated_at, last_updated_by`

// PgxTaxFilingRepository stores corporate tax filings.
type PgxTaxFilingRepository struct {
	BaseRepository
}

func newPgxTaxFilingRepository(pool *pgxpool.Pool) *PgxTaxFilingRepository {
	return &PgxTaxFilingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TaxFilingRepositoryFacade = (*PgxTaxFilingRepository)(nil)

// FindTaxFilingByID returns a filing.
func (r *PgxTaxFilingRepository) FindTaxFilingByID(ctx context.Context, filingID string) (*domain.CorporateTaxFiling, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+taxFilingColumns+` FROM corporate_tax_filings WHERE filing_id = $1;`, filingID)
	return scanTaxFiling(row, filingID)
}

// FindTaxFilingForUpdate locks the filing row for the duration of tx.
func (r *PgxTaxFilingRepository) FindTaxFilingForUpdate(ctx context.Context, tx pgx.Tx, filingID string) (*domain.CorporateTaxFiling, error) {
	row := tx.QueryRow(ctx, `SELECT `+taxFilingColumns+` FROM corporate_tax_filings WHERE filing_id = $1 FOR UPDATE;`, filingID)
	return scanTaxFiling(row, filingID)
}

// CreateTaxFiling inserts a filing.
func (r *PgxTaxFilingRepository) CreateTaxFiling(ctx context.Context, filing domain.CorporateTaxFiling) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO corporate_tax_filings (`+taxFilingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`,
		filing.FilingID,
		domain.TruncateToDay(filing.StartDate),
		domain.TruncateToDay(filing.EndDate),
		filing.NetIncome,
		filing.TaxableAmount,
		filing.TaxAmount,
		filing.BalanceDue,
		string(filing.Status),
		filing.TaxFiledOn,
		filing.CreatedAt,
		filing.CreatedBy,
		filing.LastUpdatedAt,
		filing.LastUpdatedBy,
	)
	return translateError(err, "tax filing "+filing.FilingID)
}

// UpdateTaxFilingStatusInTx sets the status and filing date of a filing.
func (r *PgxTaxFilingRepository) UpdateTaxFilingStatusInTx(ctx context.Context, tx pgx.Tx, filingID string, status domain.TaxFilingStatus, filedOn *time.Time, userID string, now time.Time) error {
	tag, err := tx.Exec(ctx, `
		UPDATE corporate_tax_filings
		SET status = $2, tax_filed_on = $3, last_updated_at = $4, last_updated_by = $5
		WHERE filing_id = $1;
	`, filingID, string(status), filedOn, now, userID)
	if err != nil {
		return translateError(err, "tax filing "+filingID)
	}
	if tag.RowsAffected() == 0 {
		return translateError(pgx.ErrNoRows, "tax filing "+filingID)
	}
	return nil
}

func scanTaxFiling(row pgx.Row, filingID string) (*domain.CorporateTaxFiling, error) {
	var f domain.CorporateTaxFiling
	var status string
	var filedOn sql.NullTime
	err := row.Scan(
		&f.FilingID,
		&f.StartDate,
		&f.EndDate,
		&f.NetIncome,
		&f.TaxableAmount,
		&f.TaxAmount,
		&f.BalanceDue,
		&status,
		&filedOn,
		&f.CreatedAt,
		&f.CreatedBy,
		&f.LastUpdatedAt,
		&f.LastUpdatedBy,
	)
	if err != nil {
		return nil, translateError(err, "tax filing "+filingID)
	}
	f.Status = domain.TaxFilingStatus(status)
	if filedOn.Valid {
		t := filedOn.Time
		f.TaxFiledOn = &t
	}
	return &f, nil
}
