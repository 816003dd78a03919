package chat

import (
	"strings"

	"github.com/google/uuid"
)

// ConversationKey derives the canonical room name for a two-party
// conversation. Both participants resolve the same key regardless of
// argument order.
func ConversationKey(a, b uuid.UUID) string {
	first, second := a.String(), b.String()
	if first > second {
		first, second = second, first
	}
	return strings.Join([]string{first, second}, ":")
}
