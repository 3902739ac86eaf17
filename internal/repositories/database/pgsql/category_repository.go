package pgsql

import (
	"context"
	"strconv"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_posting_engine/internal/models"
	"github.com/SscSPs/ledger_posting_engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const categoryColumns = `
	transaction_category_id, transaction_category_code, transaction_category_name, chart_of_account_code,
	delete_flag, created_at, created_by, last_updated_at, last_updated_by`

// PgxCategoryRepository stores the leaf categories of the chart of accounts.
type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) *PgxCategoryRepository {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

// FindCategoryByID returns an active category.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.TransactionCategory, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+categoryColumns+`
		FROM transaction_categories
		WHERE transaction_category_id = $1 AND delete_flag = FALSE;
	`, categoryID)
	return scanCategory(row, "category "+strconv.FormatInt(categoryID, 10))
}

// FindCategoryByCode returns an active category by its unique code.
func (r *PgxCategoryRepository) FindCategoryByCode(ctx context.Context, code string) (*domain.TransactionCategory, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+categoryColumns+`
		FROM transaction_categories
		WHERE transaction_category_code = $1 AND delete_flag = FALSE;
	`, code)
	return scanCategory(row, "category "+code)
}

const insertCategoryQuery = `
	INSERT INTO transaction_categories (
		transaction_category_code, transaction_category_name, chart_of_account_code,
		delete_flag, created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, FALSE, $4, $5, $6, $7)
	RETURNING transaction_category_id;
`

// CreateCategory inserts a category and returns it with its assigned id.
func (r *PgxCategoryRepository) CreateCategory(ctx context.Context, category domain.TransactionCategory) (*domain.TransactionCategory, error) {
	return insertCategory(ctx, r.Pool, category)
}

// CreateCategoryInTx is CreateCategory inside a transaction.
func (r *PgxCategoryRepository) CreateCategoryInTx(ctx context.Context, tx pgx.Tx, category domain.TransactionCategory) (*domain.TransactionCategory, error) {
	return insertCategory(ctx, tx, category)
}

// UpdateCategoryNameInTx renames an active category.
func (r *PgxCategoryRepository) UpdateCategoryNameInTx(ctx context.Context, tx pgx.Tx, categoryID int64, name string, userID string, now time.Time) error {
	tag, err := tx.Exec(ctx, `
		UPDATE transaction_categories
		SET transaction_category_name = $2, last_updated_at = $3, last_updated_by = $4
		WHERE transaction_category_id = $1 AND delete_flag = FALSE;
	`, categoryID, name, now, userID)
	if err != nil {
		return translateError(err, "category")
	}
	if tag.RowsAffected() == 0 {
		return translateError(pgx.ErrNoRows, "category "+strconv.FormatInt(categoryID, 10))
	}
	return nil
}

// SoftDeleteCategoryInTx flags a category deleted.
func (r *PgxCategoryRepository) SoftDeleteCategoryInTx(ctx context.Context, tx pgx.Tx, categoryID int64, userID string, now time.Time) error {
	tag, err := tx.Exec(ctx, `
		UPDATE transaction_categories
		SET delete_flag = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE transaction_category_id = $1 AND delete_flag = FALSE;
	`, categoryID, now, userID)
	if err != nil {
		return translateError(err, "category")
	}
	if tag.RowsAffected() == 0 {
		return translateError(pgx.ErrNoRows, "category "+strconv.FormatInt(categoryID, 10))
	}
	return nil
}

// queryRower is satisfied by both the pool and a transaction.
type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertCategory(ctx context.Context, q queryRower, category domain.TransactionCategory) (*domain.TransactionCategory, error) {
	m := mapping.ToModelCategory(category)
	err := q.QueryRow(ctx, insertCategoryQuery,
		m.TransactionCategoryCode,
		m.TransactionCategoryName,
		m.ChartOfAccountCode,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	).Scan(&m.TransactionCategoryID)
	if err != nil {
		return nil, translateError(err, "category "+category.Code)
	}
	created := mapping.ToDomainCategory(m)
	return &created, nil
}

func scanCategory(row pgx.Row, what string) (*domain.TransactionCategory, error) {
	var m models.TransactionCategory
	err := row.Scan(
		&m.TransactionCategoryID,
		&m.TransactionCategoryCode,
		&m.TransactionCategoryName,
		&m.ChartOfAccountCode,
		&m.DeleteFlag,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, translateError(err, what)
	}
	category := mapping.ToDomainCategory(m)
	return &category, nil
}

// PgxContactCategoryRepository stores contact to category relations.
type PgxContactCategoryRepository struct {
	BaseRepository
}

func newPgxContactCategoryRepository(pool *pgxpool.Pool) *PgxContactCategoryRepository {
	return &PgxContactCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ContactCategoryRepositoryFacade = (*PgxContactCategoryRepository)(nil)

// FindCategoryForContact resolves the active category bound to a contact in a role.
func (r *PgxContactCategoryRepository) FindCategoryForContact(ctx context.Context, contactID string, contactType domain.ContactType) (*domain.TransactionCategory, error) {
	row := r.Pool.QueryRow(ctx, `
		SELECT c.transaction_category_id, c.transaction_category_code, c.transaction_category_name,
		       c.chart_of_account_code, c.delete_flag, c.created_at, c.created_by, c.last_updated_at, c.last_updated_by
		FROM contact_transaction_category_relations rel
		JOIN transaction_categories c ON c.transaction_category_id = rel.transaction_category_id
		WHERE rel.contact_id = $1 AND rel.contact_type = $2 AND c.delete_flag = FALSE;
	`, contactID, string(contactType))
	return scanCategory(row, "category of "+string(contactType)+" "+contactID)
}

// SaveContactCategory inserts or rebinds the category of a contact.
func (r *PgxContactCategoryRepository) SaveContactCategory(ctx context.Context, relation domain.ContactCategoryRelation) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO contact_transaction_category_relations (
			contact_id, contact_type, transaction_category_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (contact_id, contact_type) DO UPDATE
		SET transaction_category_id = EXCLUDED.transaction_category_id,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by;
	`,
		relation.ContactID,
		string(relation.ContactType),
		relation.TransactionCategoryID,
		relation.CreatedAt,
		relation.CreatedBy,
		relation.LastUpdatedAt,
		relation.LastUpdatedBy,
	)
	return translateError(err, "contact category relation")
}
