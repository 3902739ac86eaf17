package services_test

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_posting_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_posting_engine/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// memTx stands in for a database transaction. Its embedded pgx.Tx is never called.
type memTx struct {
	pgx.Tx
}

type memState struct {
	journals       map[string]domain.Journal
	lines          []domain.JournalLineItem
	categories     map[int64]domain.TransactionCategory
	nextCategoryID int64
	contacts       map[string]int64
	balances       map[int64]domain.CategoryBalance
	closings       map[int64]map[string]domain.ClosingBalance
	rates          []domain.ExchangeRate
	banks          map[string]domain.BankAccount
	filings        map[string]domain.CorporateTaxFiling
}

func (s *memState) clone() *memState {
	c := &memState{
		journals:       make(map[string]domain.Journal, len(s.journals)),
		lines:          append([]domain.JournalLineItem(nil), s.lines...),
		categories:     make(map[int64]domain.TransactionCategory, len(s.categories)),
		nextCategoryID: s.nextCategoryID,
		contacts:       make(map[string]int64, len(s.contacts)),
		balances:       make(map[int64]domain.CategoryBalance, len(s.balances)),
		closings:       make(map[int64]map[string]domain.ClosingBalance, len(s.closings)),
		rates:          append([]domain.ExchangeRate(nil), s.rates...),
		banks:          make(map[string]domain.BankAccount, len(s.banks)),
		filings:        make(map[string]domain.CorporateTaxFiling, len(s.filings)),
	}
	for k, v := range s.journals {
		c.journals[k] = v
	}
	for k, v := range s.categories {
		c.categories[k] = v
	}
	for k, v := range s.contacts {
		c.contacts[k] = v
	}
	for k, v := range s.balances {
		c.balances[k] = v
	}
	for k, days := range s.closings {
		copied := make(map[string]domain.ClosingBalance, len(days))
		for d, v := range days {
			copied[d] = v
		}
		c.closings[k] = copied
	}
	for k, v := range s.banks {
		c.banks[k] = v
	}
	for k, v := range s.filings {
		c.filings[k] = v
	}
	return c
}

// memStore implements every repository port over maps. Rollback restores the state
// captured at Begin.
type memStore struct {
	mu        sync.Mutex
	state     *memState
	snapshots map[*memTx]*memState

	commits   int
	rollbacks int
}

var (
	_ portsrepo.TransactionManager              = (*memStore)(nil)
	_ portsrepo.JournalRepositoryFacade         = (*memStore)(nil)
	_ portsrepo.CategoryRepositoryFacade        = (*memStore)(nil)
	_ portsrepo.ContactCategoryRepositoryFacade = (*memStore)(nil)
	_ portsrepo.CategoryBalanceRepositoryFacade = (*memStore)(nil)
	_ portsrepo.ExchangeRateRepositoryFacade    = (*memStore)(nil)
	_ portsrepo.BankAccountRepositoryFacade     = (*memStore)(nil)
	_ portsrepo.TaxFilingRepositoryFacade       = (*memStore)(nil)
)

// seeded system categories, matching the migration seed
var seededCategories = []domain.TransactionCategory{
	{CategoryID: 10, Code: string(domain.CodeOpeningBalanceOffsetLiabilities), Name: "Opening Balance Offset Liabilities", ChartOfAccountCode: domain.CoAOtherLiability},
	{CategoryID: 11, Code: string(domain.CodeOpeningBalanceOffsetAssets), Name: "Opening Balance Offset Assets", ChartOfAccountCode: domain.CoAOtherCurrentAsset},
	{CategoryID: 20, Code: string(domain.CodeCorporationTax), Name: "Corporation Tax", ChartOfAccountCode: domain.CoAOtherCurrentLiabilities},
	{CategoryID: 30, Code: string(domain.CodeRetainedEarnings), Name: "Retained Earnings", ChartOfAccountCode: domain.CoAEquity},
	{CategoryID: 79, Code: string(domain.CodeRealisedExchangeGain), Name: "Realised Exchange Gain", ChartOfAccountCode: domain.CoAIncome},
	{CategoryID: 80, Code: string(domain.CodeRealisedExchangeLoss), Name: "Realised Exchange Loss", ChartOfAccountCode: domain.CoAOtherExpense},
}

func newMemStore() *memStore {
	st := &memState{
		journals:       map[string]domain.Journal{},
		categories:     map[int64]domain.TransactionCategory{},
		nextCategoryID: 1000,
		contacts:       map[string]int64{},
		balances:       map[int64]domain.CategoryBalance{},
		closings:       map[int64]map[string]domain.ClosingBalance{},
		banks:          map[string]domain.BankAccount{},
		filings:        map[string]domain.CorporateTaxFiling{},
	}
	for _, c := range seededCategories {
		st.categories[c.CategoryID] = c
	}
	return &memStore{state: st, snapshots: map[*memTx]*memState{}}
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func notFound(what string) error {
	return apperrors.NewNotFoundError(what + " not found")
}

// --- TransactionManager ---

func (m *memStore) Begin(ctx context.Context) (pgx.Tx, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &memTx{}
	m.snapshots[tx] = m.state.clone()
	return tx, nil
}

func (m *memStore) Commit(ctx context.Context, tx pgx.Tx) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snapshots, tx.(*memTx))
	m.commits++
	return nil
}

func (m *memStore) Rollback(ctx context.Context, tx pgx.Tx) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := tx.(*memTx)
	if snap, ok := m.snapshots[key]; ok {
		m.state = snap
		delete(m.snapshots, key)
		m.rollbacks++
	}
	return nil
}

// --- seeding helpers ---

func (m *memStore) addCategory(id int64, code string, chart domain.ChartOfAccountCode) domain.TransactionCategory {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := domain.TransactionCategory{CategoryID: id, Code: code, Name: code, ChartOfAccountCode: chart}
	m.state.categories[id] = c
	return c
}

func (m *memStore) addRate(from, to string, rate string, effective time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.rates = append(m.state.rates, domain.ExchangeRate{
		ExchangeRateID: fmt.Sprintf("rate-%d", len(m.state.rates)+1),
		FromCurrency:   from,
		ToCurrency:     to,
		Rate:           decimal.RequireFromString(rate),
		EffectiveDate:  domain.TruncateToDay(effective),
	})
}

func (m *memStore) runningBalance(categoryID int64) decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.state.balances[categoryID]
	if !ok || b.DeleteFlag {
		return decimal.Zero
	}
	return b.RunningBalance
}

func (m *memStore) journalCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.state.journals)
}

// --- JournalReader / JournalWriter ---

func (m *memStore) InsertJournalInTx(ctx context.Context, tx pgx.Tx, journal domain.Journal) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.state.journals[journal.JournalID]; ok {
		return false, nil
	}
	for _, li := range journal.LineItems {
		if _, ok := m.state.categories[li.TransactionCategoryID]; !ok {
			return false, apperrors.NewValidationError("line references a missing category")
		}
	}
	header := journal
	header.LineItems = nil
	m.state.journals[journal.JournalID] = header
	for _, li := range journal.LineItems {
		li.JournalID = journal.JournalID
		m.state.lines = append(m.state.lines, li)
	}
	return true, nil
}

func (m *memStore) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.state.journals[journalID]
	if !ok {
		return nil, notFound("journal " + journalID)
	}
	for _, li := range m.state.lines {
		if li.JournalID == journalID {
			j.LineItems = append(j.LineItems, li)
		}
	}
	return &j, nil
}

func (m *memStore) ListLineItemsByCategory(ctx context.Context, categoryID int64, from, to time.Time, limit int, nextToken *string) ([]domain.JournalLineItem, *string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	type row struct {
		li   domain.JournalLineItem
		date time.Time
	}
	rows := make([]row, 0)
	for _, li := range m.state.lines {
		if li.TransactionCategoryID != categoryID || li.DeleteFlag {
			continue
		}
		date := m.state.journals[li.JournalID].JournalDate
		if date.Before(domain.TruncateToDay(from)) || (!to.IsZero() && date.After(domain.TruncateToDay(to))) {
			continue
		}
		rows = append(rows, row{li: li, date: date})
	}
	less := func(aDate, aCreated time.Time, aID string, bDate, bCreated time.Time, bID string) bool {
		if !aDate.Equal(bDate) {
			return aDate.Before(bDate)
		}
		if !aCreated.Equal(bCreated) {
			return aCreated.Before(bCreated)
		}
		return aID < bID
	}
	sort.Slice(rows, func(i, j int) bool {
		return less(rows[i].date, rows[i].li.CreatedAt, rows[i].li.LineItemID, rows[j].date, rows[j].li.CreatedAt, rows[j].li.LineItemID)
	})

	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", err)
		}
		filtered := rows[:0]
		for _, r := range rows {
			if less(cursor.JournalDate, cursor.CreatedAt, cursor.LineItemID, r.date, r.li.CreatedAt, r.li.LineItemID) {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	var next *string
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		token := pagination.EncodeCursor(pagination.Cursor{JournalDate: last.date, CreatedAt: last.li.CreatedAt, LineItemID: last.li.LineItemID})
		next = &token
	}
	items := make([]domain.JournalLineItem, len(rows))
	for i, r := range rows {
		items[i] = r.li
	}
	return items, next, nil
}

func (m *memStore) SumActiveLineItemsByCategory(ctx context.Context, categoryID int64, excludeTypes []domain.PostingReferenceType) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	excluded := make(map[domain.PostingReferenceType]bool, len(excludeTypes))
	for _, t := range excludeTypes {
		excluded[t] = true
	}
	sum := decimal.Zero
	for _, li := range m.state.lines {
		if li.TransactionCategoryID == categoryID && !li.DeleteFlag && !excluded[li.ReferenceType] {
			sum = sum.Add(li.SignedAmount())
		}
	}
	return sum, nil
}

func (m *memStore) countByReference(ref domain.PostingReference) (int, int) {
	active, deleted := 0, 0
	for _, li := range m.state.lines {
		if li.ReferenceType != ref.Type || li.ReferenceID != ref.ID {
			continue
		}
		if li.DeleteFlag {
			deleted++
		} else {
			active++
		}
	}
	return active, deleted
}

func (m *memStore) CountLineItemsByReference(ctx context.Context, ref domain.PostingReference) (int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	active, deleted := m.countByReference(ref)
	return active, deleted, nil
}

func (m *memStore) CountLineItemsByReferenceInTx(ctx context.Context, tx pgx.Tx, ref domain.PostingReference) (int, int, error) {
	return m.CountLineItemsByReference(ctx, ref)
}

func (m *memStore) FindActiveLineItemsByReferenceForUpdate(ctx context.Context, tx pgx.Tx, ref domain.PostingReference) ([]domain.JournalLineItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items := make([]domain.JournalLineItem, 0)
	for _, li := range m.state.lines {
		if li.ReferenceType == ref.Type && li.ReferenceID == ref.ID && !li.DeleteFlag {
			items = append(items, li)
		}
	}
	return items, nil
}

func (m *memStore) MarkJournalsDeletedInTx(ctx context.Context, tx pgx.Tx, journalIDs []string, userID string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make(map[string]bool, len(journalIDs))
	for _, id := range journalIDs {
		ids[id] = true
		if j, ok := m.state.journals[id]; ok {
			j.DeleteFlag = true
			m.state.journals[id] = j
		}
	}
	for i, li := range m.state.lines {
		if ids[li.JournalID] {
			m.state.lines[i].DeleteFlag = true
		}
	}
	return nil
}

// --- categories ---

func (m *memStore) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.TransactionCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.state.categories[categoryID]
	if !ok || c.DeleteFlag {
		return nil, notFound("category " + strconv.FormatInt(categoryID, 10))
	}
	return &c, nil
}

func (m *memStore) FindCategoryByCode(ctx context.Context, code string) (*domain.TransactionCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.state.categories {
		if c.Code == code && !c.DeleteFlag {
			found := c
			return &found, nil
		}
	}
	return nil, notFound("category " + code)
}

func (m *memStore) CreateCategory(ctx context.Context, category domain.TransactionCategory) (*domain.TransactionCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.state.categories {
		if c.Code == category.Code {
			return nil, fmt.Errorf("%w: category %s already exists", apperrors.ErrDuplicate, category.Code)
		}
	}
	m.state.nextCategoryID++
	category.CategoryID = m.state.nextCategoryID
	m.state.categories[category.CategoryID] = category
	return &category, nil
}

func (m *memStore) CreateCategoryInTx(ctx context.Context, tx pgx.Tx, category domain.TransactionCategory) (*domain.TransactionCategory, error) {
	return m.CreateCategory(ctx, category)
}

func (m *memStore) UpdateCategoryNameInTx(ctx context.Context, tx pgx.Tx, categoryID int64, name string, userID string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.state.categories[categoryID]
	if !ok || c.DeleteFlag {
		return notFound("category")
	}
	c.Name = name
	m.state.categories[categoryID] = c
	return nil
}

func (m *memStore) SoftDeleteCategoryInTx(ctx context.Context, tx pgx.Tx, categoryID int64, userID string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.state.categories[categoryID]
	if !ok || c.DeleteFlag {
		return notFound("category")
	}
	c.DeleteFlag = true
	m.state.categories[categoryID] = c
	return nil
}

func (m *memStore) FindCategoryForContact(ctx context.Context, contactID string, contactType domain.ContactType) (*domain.TransactionCategory, error) {
	m.mu.Lock()
	id, ok := m.state.contacts[string(contactType)+":"+contactID]
	m.mu.Unlock()
	if !ok {
		return nil, notFound("contact " + contactID)
	}
	return m.FindCategoryByID(ctx, id)
}

func (m *memStore) SaveContactCategory(ctx context.Context, relation domain.ContactCategoryRelation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.contacts[string(relation.ContactType)+":"+relation.ContactID] = relation.TransactionCategoryID
	return nil
}

// --- balances ---

func (m *memStore) FindBalance(ctx context.Context, categoryID int64) (*domain.CategoryBalance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.state.balances[categoryID]
	if !ok || b.DeleteFlag {
		return nil, notFound("balance")
	}
	return &b, nil
}

func (m *memStore) FindBalanceForUpdate(ctx context.Context, tx pgx.Tx, categoryID int64) (*domain.CategoryBalance, error) {
	return m.FindBalance(ctx, categoryID)
}

func (m *memStore) CreateBalanceInTx(ctx context.Context, tx pgx.Tx, balance domain.CategoryBalance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.state.balances[balance.TransactionCategoryID]
	if ok && !existing.DeleteFlag {
		return nil
	}
	if ok {
		balance.Version = existing.Version + 1
	}
	balance.DeleteFlag = false
	m.state.balances[balance.TransactionCategoryID] = balance
	return nil
}

func (m *memStore) UpdateRunningBalanceInTx(ctx context.Context, tx pgx.Tx, balance domain.CategoryBalance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.state.balances[balance.TransactionCategoryID]
	if !ok || existing.DeleteFlag || existing.Version != balance.Version {
		return apperrors.NewConflictError("balance was modified concurrently")
	}
	existing.RunningBalance = balance.RunningBalance
	existing.Version++
	existing.LastUpdatedAt = balance.LastUpdatedAt
	existing.LastUpdatedBy = balance.LastUpdatedBy
	m.state.balances[balance.TransactionCategoryID] = existing
	return nil
}

func (m *memStore) FindClosingBalanceOnDate(ctx context.Context, tx pgx.Tx, categoryID int64, date time.Time) (*domain.ClosingBalance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.state.closings[categoryID][dayKey(date)]
	if !ok || c.DeleteFlag {
		return nil, notFound("closing balance")
	}
	return &c, nil
}

func (m *memStore) FindLastClosingBalanceBefore(ctx context.Context, tx pgx.Tx, categoryID int64, date time.Time) (*domain.ClosingBalance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var found *domain.ClosingBalance
	for _, c := range m.state.closings[categoryID] {
		if c.DeleteFlag || !c.ClosingBalanceDate.Before(domain.TruncateToDay(date)) {
			continue
		}
		if found == nil || c.ClosingBalanceDate.After(found.ClosingBalanceDate) {
			candidate := c
			found = &candidate
		}
	}
	if found == nil {
		return nil, notFound("closing balance")
	}
	return found, nil
}

func (m *memStore) CreateClosingBalanceInTx(ctx context.Context, tx pgx.Tx, closing domain.ClosingBalance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	days, ok := m.state.closings[closing.TransactionCategoryID]
	if !ok {
		days = map[string]domain.ClosingBalance{}
		m.state.closings[closing.TransactionCategoryID] = days
	}
	key := dayKey(closing.ClosingBalanceDate)
	if existing, ok := days[key]; ok && !existing.DeleteFlag {
		return fmt.Errorf("%w: closing balance already exists", apperrors.ErrDuplicate)
	}
	closing.ClosingBalanceDate = domain.TruncateToDay(closing.ClosingBalanceDate)
	days[key] = closing
	return nil
}

func (m *memStore) UpdateClosingBalanceInTx(ctx context.Context, tx pgx.Tx, closing domain.ClosingBalance) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := dayKey(closing.ClosingBalanceDate)
	if _, ok := m.state.closings[closing.TransactionCategoryID][key]; !ok {
		return notFound("closing balance")
	}
	m.state.closings[closing.TransactionCategoryID][key] = closing
	return nil
}

func (m *memStore) ShiftClosingBalancesAfter(ctx context.Context, tx pgx.Tx, categoryID int64, date time.Time, delta decimal.Decimal, userID string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	day := domain.TruncateToDay(date)
	for key, c := range m.state.closings[categoryID] {
		if c.DeleteFlag || !c.ClosingBalanceDate.After(day) {
			continue
		}
		c.OpeningBalance = c.OpeningBalance.Add(delta)
		c.ClosingBalance = c.ClosingBalance.Add(delta)
		m.state.closings[categoryID][key] = c
	}
	return nil
}

func (m *memStore) DeleteBalancesByCategoryInTx(ctx context.Context, tx pgx.Tx, categoryID int64, userID string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b, ok := m.state.balances[categoryID]; ok {
		b.DeleteFlag = true
		m.state.balances[categoryID] = b
	}
	for key, c := range m.state.closings[categoryID] {
		c.DeleteFlag = true
		m.state.closings[categoryID][key] = c
	}
	return nil
}

func (m *memStore) ListClosingBalances(ctx context.Context, categoryID int64, from, to time.Time) ([]domain.ClosingBalance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.ClosingBalance, 0)
	for _, c := range m.state.closings[categoryID] {
		if c.DeleteFlag || c.ClosingBalanceDate.Before(domain.TruncateToDay(from)) {
			continue
		}
		if !to.IsZero() && c.ClosingBalanceDate.After(domain.TruncateToDay(to)) {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClosingBalanceDate.Before(out[j].ClosingBalanceDate) })
	return out, nil
}

// --- exchange rates ---

func (m *memStore) FindExchangeRate(ctx context.Context, fromCurrency, toCurrency string, asOf time.Time) (*domain.ExchangeRate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var found *domain.ExchangeRate
	for _, r := range m.state.rates {
		if !strings.EqualFold(r.FromCurrency, fromCurrency) || !strings.EqualFold(r.ToCurrency, toCurrency) {
			continue
		}
		if r.EffectiveDate.After(domain.TruncateToDay(asOf)) {
			continue
		}
		if found == nil || r.EffectiveDate.After(found.EffectiveDate) {
			candidate := r
			found = &candidate
		}
	}
	if found == nil {
		return nil, notFound("exchange rate")
	}
	return found, nil
}

func (m *memStore) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, r := range m.state.rates {
		if r.FromCurrency == rate.FromCurrency && r.ToCurrency == rate.ToCurrency && r.EffectiveDate.Equal(rate.EffectiveDate) {
			m.state.rates[i].Rate = rate.Rate
			return nil
		}
	}
	m.state.rates = append(m.state.rates, rate)
	return nil
}

// --- bank accounts ---

func (m *memStore) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.state.banks[bankAccountID]
	if !ok {
		return nil, notFound("bank account " + bankAccountID)
	}
	return &acc, nil
}

func (m *memStore) CreateBankAccountInTx(ctx context.Context, tx pgx.Tx, account domain.BankAccount) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.banks[account.BankAccountID] = account
	return nil
}

func (m *memStore) UpdateBankAccountInTx(ctx context.Context, tx pgx.Tx, account domain.BankAccount) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.state.banks[account.BankAccountID]; !ok || existing.DeleteFlag {
		return notFound("bank account")
	}
	m.state.banks[account.BankAccountID] = account
	return nil
}

func (m *memStore) SoftDeleteBankAccountInTx(ctx context.Context, tx pgx.Tx, bankAccountID string, userID string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.state.banks[bankAccountID]
	if !ok || acc.DeleteFlag {
		return notFound("bank account")
	}
	acc.DeleteFlag = true
	m.state.banks[bankAccountID] = acc
	return nil
}

// --- tax filings ---

func (m *memStore) FindTaxFilingByID(ctx context.Context, filingID string) (*domain.CorporateTaxFiling, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.state.filings[filingID]
	if !ok {
		return nil, notFound("tax filing " + filingID)
	}
	return &f, nil
}

func (m *memStore) CreateTaxFiling(ctx context.Context, filing domain.CorporateTaxFiling) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.filings[filing.FilingID] = filing
	return nil
}

func (m *memStore) FindTaxFilingForUpdate(ctx context.Context, tx pgx.Tx, filingID string) (*domain.CorporateTaxFiling, error) {
	return m.FindTaxFilingByID(ctx, filingID)
}

func (m *memStore) UpdateTaxFilingStatusInTx(ctx context.Context, tx pgx.Tx, filingID string, status domain.TaxFilingStatus, filedOn *time.Time, userID string, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.state.filings[filingID]
	if !ok {
		return notFound("tax filing")
	}
	f.Status = status
	f.TaxFiledOn = filedOn
	m.state.filings[filingID] = f
	return nil
}
