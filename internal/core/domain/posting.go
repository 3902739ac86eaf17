package domain

import "fmt"

// PostingReferenceType tags the business event kind that produced a journal or line.
type PostingReferenceType string

const (
	RefBankAccount         PostingReferenceType = "BANK_ACCOUNT"
	RefReverseBankAccount  PostingReferenceType = "REVERSE_BANK_ACCOUNT"
	RefDeleteBankAccount   PostingReferenceType = "DELETE_BANK_ACCOUNT"
	RefCorporateTaxFiled   PostingReferenceType = "CORPORATE_TAX_REPORT_FILED"
	RefCorporateTaxUnfiled PostingReferenceType = "CORPORATE_TAX_REPORT_UNFILED"
	RefReceipt             PostingReferenceType = "RECEIPT"
	RefReverseReceipt      PostingReferenceType = "REVERSE_RECEIPT"
	RefPayment             PostingReferenceType = "PAYMENT"
	RefReversePayment      PostingReferenceType = "REVERSE_PAYMENT"
	RefManual              PostingReferenceType = "MANUAL"
	RefReverseManual       PostingReferenceType = "REVERSE_MANUAL"
)

type referenceVariants struct {
	reverse  PostingReferenceType
	delete   PostingReferenceType
	repostOK bool
}

// forwardTypes lists every type that can be posted and reversed.
// repostOK marks types that may be posted again after a final reversal.
// A deleted bank account is not found by its flows, so only a live one is ever re-posted.
var forwardTypes = map[PostingReferenceType]referenceVariants{
	RefBankAccount:       {reverse: RefReverseBankAccount, delete: RefDeleteBankAccount, repostOK: true},
	RefCorporateTaxFiled: {reverse: RefCorporateTaxUnfiled, delete: RefCorporateTaxUnfiled, repostOK: true},
	RefReceipt:           {reverse: RefReverseReceipt, delete: RefReverseReceipt},
	RefPayment:           {reverse: RefReversePayment, delete: RefReversePayment},
	RefManual:            {reverse: RefReverseManual, delete: RefReverseManual},
}

// IsForward reports whether t is an originating (non-reversal) type.
func (t PostingReferenceType) IsForward() bool {
	_, ok := forwardTypes[t]
	return ok
}

// IsReversal reports whether t is a reversal or deletion variant of some forward type.
func (t PostingReferenceType) IsReversal() bool {
	for _, v := range forwardTypes {
		if v.reverse == t || v.delete == t {
			return true
		}
	}
	return false
}

// ReverseVariant is the tag used when an edit reverses a posting of type t.
func (t PostingReferenceType) ReverseVariant() (PostingReferenceType, error) {
	v, ok := forwardTypes[t]
	if !ok {
		return "", fmt.Errorf("reference type %q has no reverse variant", t)
	}
	return v.reverse, nil
}

// DeleteVariant is the tag used when a delete reverses a posting of type t.
func (t PostingReferenceType) DeleteVariant() (PostingReferenceType, error) {
	v, ok := forwardTypes[t]
	if !ok {
		return "", fmt.Errorf("reference type %q has no delete variant", t)
	}
	return v.delete, nil
}

// Repostable reports whether a reference of type t may be posted again after it was fully reversed.
func (t PostingReferenceType) Repostable() bool {
	return forwardTypes[t].repostOK
}

// ReversalTypes returns every reversal tag in use, for queries that exclude them.
func ReversalTypes() []PostingReferenceType {
	seen := make(map[PostingReferenceType]struct{})
	types := make([]PostingReferenceType, 0, len(forwardTypes)*2)
	for _, v := range forwardTypes {
		for _, t := range []PostingReferenceType{v.reverse, v.delete} {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			types = append(types, t)
		}
	}
	return types
}

// PostingReference identifies the business entity a set of line items belongs to.
type PostingReference struct {
	Type PostingReferenceType `json:"referenceType"`
	ID   string               `json:"referenceID"`
}

func (r PostingReference) String() string {
	return string(r.Type) + ":" + r.ID
}

// PostingState is the lifecycle state of a business reference in the ledger.
type PostingState string

const (
	StateNone             PostingState = "NONE"
	StatePosted           PostingState = "POSTED"
	StateReversedReposted PostingState = "REVERSED_REPOSTED"
	StateReversed         PostingState = "REVERSED"
)

// DeriveState computes the posting state from the number of active and deleted line items
// recorded for a reference.
func DeriveState(activeLines, deletedLines int) PostingState {
	switch {
	case activeLines > 0 && deletedLines > 0:
		return StateReversedReposted
	case activeLines > 0:
		return StatePosted
	case deletedLines > 0:
		return StateReversed
	default:
		return StateNone
	}
}
