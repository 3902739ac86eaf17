package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// Cursor marks the last line item returned by a page of a category ledger listing.
// Items are ordered by journal date, creation time and line item id.
type Cursor struct {
	JournalDate time.Time
	CreatedAt   time.Time
	LineItemID  string
}

// EncodeCursor creates an opaque base64 token from a cursor.
func EncodeCursor(c Cursor) string {
	tokenStr := fmt.Sprintf("%s|%s|%s", c.JournalDate.Format(timeFormat), c.CreatedAt.Format(timeFormat), c.LineItemID)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeCursor parses a token produced by EncodeCursor.
func DecodeCursor(token string) (Cursor, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 3)
	if len(parts) != 3 || parts[2] == "" {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	journalDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (journal date parse): %w", err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return Cursor{JournalDate: journalDate, CreatedAt: createdAt, LineItemID: parts[2]}, nil
}
