package pgsql

import (
	"context"
	"strings"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_posting_engine/internal/models"
	"github.com/SscSPs/ledger_posting_engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExchangeRateRepository implements the exchange rate ports using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(pool *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// SaveExchangeRate inserts a rate, or replaces the rate of the same pair and day.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	modelRate := mapping.ToModelExchangeRate(rate)
	if modelRate.FromCurrencyCode == modelRate.ToCurrencyCode {
		return apperrors.NewValidationError("from and to currencies cannot be the same")
	}

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO exchange_rates (
			exchange_rate_id, from_currency_code, to_currency_code, rate, date_effective,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (from_currency_code, to_currency_code, date_effective) DO UPDATE
		SET rate = EXCLUDED.rate,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by;
	`,
		modelRate.ExchangeRateID,
		modelRate.FromCurrencyCode,
		modelRate.ToCurrencyCode,
		modelRate.Rate,
		modelRate.DateEffective,
		modelRate.CreatedAt,
		modelRate.CreatedBy,
		modelRate.LastUpdatedAt,
		modelRate.LastUpdatedBy,
	)
	return translateError(err, "exchange rate")
}

// FindExchangeRate returns the latest from->to rate effective on or before asOf.
func (r *PgxExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCurrency, toCurrency string, asOf time.Time) (*domain.ExchangeRate, error) {
	from := strings.ToUpper(fromCurrency)
	to := strings.ToUpper(toCurrency)

	var m models.ExchangeRate
	err := r.Pool.QueryRow(ctx, `
		SELECT exchange_rate_id, from_currency_code, to_currency_code, rate, date_effective,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2 AND date_effective <= $3
		ORDER BY date_effective DESC
		LIMIT 1;
	`, from, to, domain.TruncateToDay(asOf)).Scan(
		&m.ExchangeRateID,
		&m.FromCurrencyCode,
		&m.ToCurrencyCode,
		&m.Rate,
		&m.DateEffective,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, translateError(err, "exchange rate "+from+"->"+to)
	}
	rate := mapping.ToDomainExchangeRate(m)
	return &rate, nil
}
