// Package itemid derives stable identifiers for items loaded from files.
package itemid

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/conorfennell/learntrack/internal/domain"
)

// Length is the number of hex characters kept from the digest.
const Length = 12

// Normalize joins the identifying fields of an item after cleaning each part.
// Completion state and notes are not part of an item's identity.
func Normalize(item domain.LearningItem) string {
	title := strings.ToLower(item.Title)
	title = strings.ReplaceAll(title, "\r\n", "\n")
	title = strings.Join(strings.Fields(title), " ")

	return strings.Join([]string{title, item.Category.String(), item.TimeSlot.String()}, "\n")
}

// Hash returns the truncated SHA-256 hex digest of the normalized item.
func Hash(item domain.LearningItem) string {
	sum := sha256.Sum256([]byte(Normalize(item)))
	return fmt.Sprintf("%x", sum)[:Length]
}
