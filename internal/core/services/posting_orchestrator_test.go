package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/ledger_posting_engine/internal/apperrors"
	"github.com/SscSPs/ledger_posting_engine/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_posting_engine/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// manualJournal debits category 10 and credits category 11 by amount on date.
func manualJournal(journalID, referenceID, amount string, date time.Time) domain.Journal {
	audit := domain.NewAuditFields(testUser, testNow)
	line := func(suffix string, categoryID int64, debit, credit string) domain.JournalLineItem {
		return domain.JournalLineItem{
			LineItemID:            journalID + "-" + suffix,
			JournalID:             journalID,
			TransactionCategoryID: categoryID,
			DebitAmount:           dec(debit),
			CreditAmount:          dec(credit),
			ReferenceType:         domain.RefManual,
			ReferenceID:           referenceID,
			ExchangeRate:          dec("1"),
			AuditFields:           audit,
		}
	}
	return domain.Journal{
		JournalID:            journalID,
		JournalDate:          date,
		PostingReferenceType: domain.RefManual,
		Description:          "manual " + journalID,
		LineItems: []domain.JournalLineItem{
			line("dr", 10, amount, "0"),
			line("cr", 11, "0", amount),
		},
		AuditFields: audit,
	}
}

func buildManual(journalID, referenceID, amount string) portssvc.BuildFunc {
	return func(ctx context.Context) (*domain.Journal, error) {
		j := manualJournal(journalID, referenceID, amount, day(2024, 3, 1))
		return &j, nil
	}
}

type PostingOrchestratorTestSuite struct {
	suite.Suite
	store   *memStore
	posting portssvc.PostingSvc
	ledger  portssvc.CategorySvcFacade
	ref     domain.PostingReference
}

func (suite *PostingOrchestratorTestSuite) SetupTest() {
	suite.store = newMemStore()
	container := newContainer(suite.store, nil)
	suite.posting = container.Posting
	suite.ledger = container.Category
	suite.ref = domain.PostingReference{Type: domain.RefManual, ID: "ref-1"}
}

func (suite *PostingOrchestratorTestSuite) assertConsistent(categoryIDs ...int64) {
	for _, id := range categoryIDs {
		result, err := suite.ledger.ReconcileCategory(context.Background(), id)
		suite.Require().NoError(err)
		suite.True(result.Consistent, "category %d: running %s ledger %s", id, result.RunningBalance, result.LedgerBalance)
	}
}

func (suite *PostingOrchestratorTestSuite) TestPost_FromNone() {
	ctx := context.Background()

	result, err := suite.posting.Post(ctx, suite.ref, testUser, buildManual("j-1", "ref-1", "100"))

	suite.Require().NoError(err)
	suite.Equal(domain.StateNone, result.From)
	suite.Equal(domain.StatePosted, result.To)
	suite.Require().NotNil(result.Posted)
	suite.Nil(result.Reversal)
	suite.True(suite.store.runningBalance(10).Equal(dec("100")))
	suite.True(suite.store.runningBalance(11).Equal(dec("-100")))

	state, err := suite.posting.State(ctx, suite.ref)
	suite.Require().NoError(err)
	suite.Equal(domain.StatePosted, state)
	suite.assertConsistent(10, 11)
}

func (suite *PostingOrchestratorTestSuite) TestPost_AlreadyPostedConflicts() {
	ctx := context.Background()
	_, err := suite.posting.Post(ctx, suite.ref, testUser, buildManual("j-1", "ref-1", "100"))
	suite.Require().NoError(err)

	_, err = suite.posting.Post(ctx, suite.ref, testUser, buildManual("j-2", "ref-1", "100"))

	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.True(suite.store.runningBalance(10).Equal(dec("100")))
}

func (suite *PostingOrchestratorTestSuite) TestRepost_ReversesThenPosts() {
	ctx := context.Background()
	_, err := suite.posting.Post(ctx, suite.ref, testUser, buildManual("j-1", "ref-1", "100"))
	suite.Require().NoError(err)

	result, err := suite.posting.Repost(ctx, suite.ref, domain.RefReverseManual, testUser, buildManual("j-2", "ref-1", "150"))

	suite.Require().NoError(err)
	suite.Equal(domain.StatePosted, result.From)
	suite.Equal(domain.StateReversedReposted, result.To)
	suite.Require().NotNil(result.Reversal)
	suite.Require().NotNil(result.Posted)
	suite.Equal(domain.RefReverseManual, result.Reversal.PostingReferenceType)
	suite.True(suite.store.runningBalance(10).Equal(dec("150")))
	suite.True(suite.store.runningBalance(11).Equal(dec("-150")))

	original, err := suite.store.FindJournalByID(ctx, "j-1")
	suite.Require().NoError(err)
	suite.True(original.DeleteFlag)
	for _, li := range original.LineItems {
		suite.True(li.DeleteFlag)
	}

	state, err := suite.posting.State(ctx, suite.ref)
	suite.Require().NoError(err)
	suite.Equal(domain.StateReversedReposted, state)
	suite.assertConsistent(10, 11)
}

func (suite *PostingOrchestratorTestSuite) TestRepost_FromNonePosts() {
	result, err := suite.posting.Repost(context.Background(), suite.ref, domain.RefReverseManual, testUser, buildManual("j-1", "ref-1", "40"))

	suite.Require().NoError(err)
	suite.Equal(domain.StateNone, result.From)
	suite.Equal(domain.StatePosted, result.To)
	suite.Nil(result.Reversal)
}

func (suite *PostingOrchestratorTestSuite) TestVoid_NetsToZero() {
	ctx := context.Background()
	_, err := suite.posting.Post(ctx, suite.ref, testUser, buildManual("j-1", "ref-1", "100"))
	suite.Require().NoError(err)

	result, err := suite.posting.Void(ctx, suite.ref, domain.RefReverseManual, testUser)

	suite.Require().NoError(err)
	suite.Equal(domain.StatePosted, result.From)
	suite.Equal(domain.StateReversed, result.To)
	suite.Require().NotNil(result.Reversal)
	suite.Nil(result.Posted)
	suite.True(suite.store.runningBalance(10).IsZero())
	suite.True(suite.store.runningBalance(11).IsZero())
	suite.assertConsistent(10, 11)

	again, err := suite.posting.Void(ctx, suite.ref, domain.RefReverseManual, testUser)
	suite.Require().NoError(err)
	suite.Equal(domain.StateReversed, again.From)
	suite.Equal(domain.StateReversed, again.To)
	suite.Nil(again.Reversal)
}

func (suite *PostingOrchestratorTestSuite) TestRepost_ReversedNonRepostableConflicts() {
	ctx := context.Background()
	_, err := suite.posting.Post(ctx, suite.ref, testUser, buildManual("j-1", "ref-1", "100"))
	suite.Require().NoError(err)
	_, err = suite.posting.Void(ctx, suite.ref, domain.RefReverseManual, testUser)
	suite.Require().NoError(err)

	_, err = suite.posting.Repost(ctx, suite.ref, domain.RefReverseManual, testUser, buildManual("j-2", "ref-1", "100"))

	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *PostingOrchestratorTestSuite) TestRepost_BuildFailureRollsBack() {
	ctx := context.Background()
	_, err := suite.posting.Post(ctx, suite.ref, testUser, buildManual("j-1", "ref-1", "100"))
	suite.Require().NoError(err)
	buildErr := errors.New("rate service down")

	_, err = suite.posting.Repost(ctx, suite.ref, domain.RefReverseManual, testUser, func(ctx context.Context) (*domain.Journal, error) {
		return nil, buildErr
	})

	suite.ErrorIs(err, buildErr)
	suite.Equal(1, suite.store.rollbacks)
	suite.Equal(1, suite.store.journalCount())
	suite.True(suite.store.runningBalance(10).Equal(dec("100")))
	state, err := suite.posting.State(ctx, suite.ref)
	suite.Require().NoError(err)
	suite.Equal(domain.StatePosted, state)
}

func (suite *PostingOrchestratorTestSuite) TestPost_LineOfAnotherReferenceRejected() {
	_, err := suite.posting.Post(context.Background(), suite.ref, testUser, buildManual("j-1", "ref-other", "100"))

	var postingErr *apperrors.PostingError
	suite.True(errors.As(err, &postingErr))
	suite.Equal(0, suite.store.journalCount())
}

func (suite *PostingOrchestratorTestSuite) TestPost_NilJournalPostsNothing() {
	result, err := suite.posting.Post(context.Background(), suite.ref, testUser, func(ctx context.Context) (*domain.Journal, error) {
		return nil, nil
	})

	suite.Require().NoError(err)
	suite.Equal(domain.StateNone, result.To)
	suite.Nil(result.Posted)
	suite.Equal(0, suite.store.journalCount())
}

func (suite *PostingOrchestratorTestSuite) TestPostJournal_Idempotent() {
	ctx := context.Background()
	journal := manualJournal("j-1", "ref-1", "100", day(2024, 3, 1))

	first, err := suite.posting.PostJournal(ctx, journal)
	suite.Require().NoError(err)
	second, err := suite.posting.PostJournal(ctx, journal)
	suite.Require().NoError(err)

	suite.Equal(first.JournalID, second.JournalID)
	suite.Equal(1, suite.store.journalCount())
	suite.True(suite.store.runningBalance(10).Equal(dec("100")))
}

func (suite *PostingOrchestratorTestSuite) TestPostJournal_Unbalanced() {
	journal := manualJournal("j-1", "ref-1", "100", day(2024, 3, 1))
	journal.LineItems[1].CreditAmount = dec("99.99")

	_, err := suite.posting.PostJournal(context.Background(), journal)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal(0, suite.store.journalCount())
}

func (suite *PostingOrchestratorTestSuite) TestReverse_NothingActiveIsNoop() {
	reversal, err := suite.posting.Reverse(context.Background(), suite.ref, testUser)

	suite.NoError(err)
	suite.Nil(reversal)
}

func (suite *PostingOrchestratorTestSuite) TestReverse_ReversalTypeRejected() {
	_, err := suite.posting.Reverse(context.Background(), domain.PostingReference{Type: domain.RefReverseManual, ID: "x"}, testUser)

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestPostingOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(PostingOrchestratorTestSuite))
}

func TestPostingOrchestrator_LocksReference(t *testing.T) {
	store := newMemStore()
	locker := new(MockPostingLocker)
	locker.On("WithLock", mock.Anything, "ledger:posting:MANUAL:ref-1").Return(nil).Once()
	posting := newContainer(store, locker).Posting

	_, err := posting.Post(context.Background(), domain.PostingReference{Type: domain.RefManual, ID: "ref-1"}, testUser, buildManual("j-1", "ref-1", "5"))

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	locker.AssertExpectations(t)
}

func TestPostingOrchestrator_LockFailureWritesNothing(t *testing.T) {
	store := newMemStore()
	locker := new(MockPostingLocker)
	lockErr := apperrors.NewConflictError("lock held")
	locker.On("WithLock", mock.Anything, mock.Anything).Return(lockErr).Once()
	posting := newContainer(store, locker).Posting

	_, err := posting.Post(context.Background(), domain.PostingReference{Type: domain.RefManual, ID: "ref-1"}, testUser, buildManual("j-1", "ref-1", "5"))

	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if store.journalCount() != 0 {
		t.Fatalf("expected no journals, got %d", store.journalCount())
	}
}
