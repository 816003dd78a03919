package chat

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestConversationKey(t *testing.T) {
	a := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	b := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	t.Run("symmetric", func(t *testing.T) {
		assert.Equal(t, ConversationKey(a, b), ConversationKey(b, a))
	})

	t.Run("lexicographic order", func(t *testing.T) {
		assert.Equal(t, a.String()+":"+b.String(), ConversationKey(b, a))
	})

	t.Run("deterministic", func(t *testing.T) {
		first := ConversationKey(a, b)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, ConversationKey(a, b))
		}
	})

	t.Run("distinct pairs get distinct keys", func(t *testing.T) {
		c := uuid.MustParse("33333333-3333-3333-3333-333333333333")
		assert.NotEqual(t, ConversationKey(a, b), ConversationKey(a, c))
	})
}

func TestPreview(t *testing.T) {
	t.Run("short content unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", preview("hello"))
	})

	t.Run("exactly fifty runes unchanged", func(t *testing.T) {
		s := ""
		for i := 0; i < 50; i++ {
			s += "x"
		}
		assert.Equal(t, s, preview(s))
	})

	t.Run("long content truncated with ellipsis", func(t *testing.T) {
		long := ""
		for i := 0; i < 80; i++ {
			long += "y"
		}
		got := preview(long)
		assert.Len(t, got, 53)
		assert.Equal(t, "...", got[50:])
	})

	t.Run("multibyte content counts runes not bytes", func(t *testing.T) {
		long := ""
		for i := 0; i < 60; i++ {
			long += "é"
		}
		got := preview(long)
		assert.Equal(t, 50, len([]rune(got))-3)
	})
}
