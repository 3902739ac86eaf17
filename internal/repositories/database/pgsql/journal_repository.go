package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_posting_engine/internal/models"
	"github.com/SscSPs/ledger_posting_engine/internal/utils/mapping"
	"github.com/SscSPs/ledger_posting_engine/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const lineItemColumns = `
	li.line_item_id, li.journal_id, li.transaction_category_id, li.debit_amount, li.credit_amount,
	li.reference_type, li.reference_id, li.exchange_rate, li.delete_flag,
	li.created_at, li.created_by, li.last_updated_at, li.last_updated_by, j.journal_date`

// PgxJournalRepository stores journals and their line items.
type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal and line item data.
func newPgxJournalRepository(pool *pgxpool.Pool) *PgxJournalRepository {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

// InsertJournalInTx writes the journal header and queues every line in one batch.
// A header that already exists short-circuits with false.
func (r *PgxJournalRepository) InsertJournalInTx(ctx context.Context, tx pgx.Tx, journal domain.Journal) (bool, error) {
	modelJournal := mapping.ToModelJournal(journal)
	tag, err := tx.Exec(ctx, `
		INSERT INTO journals (
			journal_id, journal_date, transaction_date, posting_reference_type, journal_reference_no,
			description, delete_flag, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (journal_id) DO NOTHING;
	`,
		modelJournal.JournalID,
		modelJournal.JournalDate,
		modelJournal.TransactionDate,
		modelJournal.PostingReferenceType,
		modelJournal.JournalReferenceNo,
		modelJournal.Description,
		modelJournal.DeleteFlag,
		modelJournal.CreatedAt,
		modelJournal.CreatedBy,
		modelJournal.LastUpdatedAt,
		modelJournal.LastUpdatedBy,
	)
	if err != nil {
		return false, translateError(err, "journal "+journal.JournalID)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_line_items (
			line_item_id, journal_id, transaction_category_id, debit_amount, credit_amount,
			reference_type, reference_id, exchange_rate, delete_flag,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	for _, li := range journal.LineItems {
		m := mapping.ToModelLineItem(li)
		batch.Queue(lineQuery,
			m.LineItemID,
			modelJournal.JournalID,
			m.TransactionCategoryID,
			m.DebitAmount,
			m.CreditAmount,
			m.ReferenceType,
			m.ReferenceID,
			m.ExchangeRate,
			m.DeleteFlag,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return false, translateError(err, "line items of journal "+journal.JournalID)
	}
	return true, nil
}

// FindJournalByID retrieves a journal together with its line items.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	var m models.Journal
	err := r.Pool.QueryRow(ctx, `
		SELECT journal_id, journal_date, transaction_date, posting_reference_type, journal_reference_no,
		       description, delete_flag, created_at, created_by, last_updated_at, last_updated_by
		FROM journals
		WHERE journal_id = $1;
	`, journalID).Scan(
		&m.JournalID,
		&m.JournalDate,
		&m.TransactionDate,
		&m.PostingReferenceType,
		&m.JournalReferenceNo,
		&m.Description,
		&m.DeleteFlag,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, translateError(err, "journal "+journalID)
	}

	rows, err := r.Pool.Query(ctx, `SELECT `+lineItemColumns+`
		FROM journal_line_items li
		JOIN journals j ON j.journal_id = li.journal_id
		WHERE li.journal_id = $1
		ORDER BY li.created_at, li.line_item_id;
	`, journalID)
	if err != nil {
		return nil, translateError(err, "line items of journal "+journalID)
	}
	items, err := scanLineItems(rows)
	if err != nil {
		return nil, err
	}

	journal := mapping.ToDomainJournal(m)
	journal.LineItems = items
	return &journal, nil
}

// ListLineItemsByCategory pages through the active line items of a category in journal date order.
func (r *PgxJournalRepository) ListLineItemsByCategory(ctx context.Context, categoryID int64, from, to time.Time, limit int, nextToken *string) ([]domain.JournalLineItem, *string, error) {
	query := `SELECT ` + lineItemColumns + `
		FROM journal_line_items li
		JOIN journals j ON j.journal_id = li.journal_id
		WHERE li.transaction_category_id = $1
		  AND li.delete_flag = FALSE
		  AND j.journal_date BETWEEN $2 AND $3`
	fromDay, toDay := dateRange(from, to)
	args := []any{categoryID, fromDay, toDay}

	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		query += ` AND (j.journal_date, li.created_at, li.line_item_id) > ($4, $5, $6)`
		args = append(args, cursor.JournalDate, cursor.CreatedAt, cursor.LineItemID)
	}
	// one extra row tells us whether another page exists
	query += fmt.Sprintf(` ORDER BY j.journal_date, li.created_at, li.line_item_id LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, translateError(err, "line items")
	}
	modelItems, err := scanLineItemModels(rows)
	if err != nil {
		return nil, nil, err
	}

	var next *string
	if len(modelItems) > limit {
		modelItems = modelItems[:limit]
		last := modelItems[len(modelItems)-1]
		token := pagination.EncodeCursor(pagination.Cursor{
			JournalDate: last.JournalDate,
			CreatedAt:   last.CreatedAt,
			LineItemID:  last.LineItemID,
		})
		next = &token
	}
	return mapping.ToDomainLineItemSlice(modelItems), next, nil
}

// SumActiveLineItemsByCategory returns Σ(debit - credit) over the active lines of a category.
func (r *PgxJournalRepository) SumActiveLineItemsByCategory(ctx context.Context, categoryID int64, excludeTypes []domain.PostingReferenceType) (decimal.Decimal, error) {
	excluded := make([]string, len(excludeTypes))
	for i, t := range excludeTypes {
		excluded[i] = string(t)
	}

	var sum decimal.Decimal
	err := r.Pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(debit_amount - credit_amount), 0)
		FROM journal_line_items
		WHERE transaction_category_id = $1
		  AND delete_flag = FALSE
		  AND reference_type <> ALL($2::text[]);
	`, categoryID, excluded).Scan(&sum)
	if err != nil {
		return decimal.Zero, translateError(err, "line item sum")
	}
	return sum, nil
}

const countByReferenceQuery = `
	SELECT COUNT(*) FILTER (WHERE delete_flag = FALSE),
	       COUNT(*) FILTER (WHERE delete_flag = TRUE)
	FROM journal_line_items
	WHERE reference_type = $1 AND reference_id = $2;
`

// CountLineItemsByReference counts the active and deleted lines recorded for a reference.
func (r *PgxJournalRepository) CountLineItemsByReference(ctx context.Context, ref domain.PostingReference) (int, int, error) {
	var active, deleted int
	if err := r.Pool.QueryRow(ctx, countByReferenceQuery, string(ref.Type), ref.ID).Scan(&active, &deleted); err != nil {
		return 0, 0, translateError(err, "line items of "+ref.String())
	}
	return active, deleted, nil
}

// CountLineItemsByReferenceInTx is CountLineItemsByReference inside a transaction.
func (r *PgxJournalRepository) CountLineItemsByReferenceInTx(ctx context.Context, tx pgx.Tx, ref domain.PostingReference) (int, int, error) {
	var active, deleted int
	if err := tx.QueryRow(ctx, countByReferenceQuery, string(ref.Type), ref.ID).Scan(&active, &deleted); err != nil {
		return 0, 0, translateError(err, "line items of "+ref.String())
	}
	return active, deleted, nil
}

// FindActiveLineItemsByReferenceForUpdate locks and returns the non-deleted lines of a reference.
func (r *PgxJournalRepository) FindActiveLineItemsByReferenceForUpdate(ctx context.Context, tx pgx.Tx, ref domain.PostingReference) ([]domain.JournalLineItem, error) {
	rows, err := tx.Query(ctx, `SELECT `+lineItemColumns+`
		FROM journal_line_items li
		JOIN journals j ON j.journal_id = li.journal_id
		WHERE li.reference_type = $1
		  AND li.reference_id = $2
		  AND li.delete_flag = FALSE
		ORDER BY li.created_at, li.line_item_id
		FOR UPDATE OF li;
	`, string(ref.Type), ref.ID)
	if err != nil {
		return nil, translateError(err, "line items of "+ref.String())
	}
	return scanLineItems(rows)
}

// MarkJournalsDeletedInTx flags the journals and every line they own as deleted.
func (r *PgxJournalRepository) MarkJournalsDeletedInTx(ctx context.Context, tx pgx.Tx, journalIDs []string, userID string, now time.Time) error {
	if len(journalIDs) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	batch.Queue(`
		UPDATE journal_line_items
		SET delete_flag = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE journal_id = ANY($1) AND delete_flag = FALSE;
	`, journalIDs, now, userID)
	batch.Queue(`
		UPDATE journals
		SET delete_flag = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE journal_id = ANY($1) AND delete_flag = FALSE;
	`, journalIDs, now, userID)
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return translateError(err, "journals")
	}
	return nil
}

func scanLineItems(rows pgx.Rows) ([]domain.JournalLineItem, error) {
	modelItems, err := scanLineItemModels(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainLineItemSlice(modelItems), nil
}

func scanLineItemModels(rows pgx.Rows) ([]models.JournalLineItem, error) {
	defer rows.Close()

	items := make([]models.JournalLineItem, 0)
	for rows.Next() {
		var m models.JournalLineItem
		if err := rows.Scan(
			&m.LineItemID,
			&m.JournalID,
			&m.TransactionCategoryID,
			&m.DebitAmount,
			&m.CreditAmount,
			&m.ReferenceType,
			&m.ReferenceID,
			&m.ExchangeRate,
			&m.DeleteFlag,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&m.JournalDate,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line item", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line items", err)
	}
	return items, nil
}
