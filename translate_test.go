package l10n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Translate_Fallback(t *testing.T) {
	s := NewStore()

	t.Run("Translate_NoBundle", func(t *testing.T) {
		assert.Equal(t, "hello", s.T("hello"))
	})
	t.Run("Translate_NoBundle_ArgsStillApply", func(t *testing.T) {
		assert.Equal(t, "hello world", s.T("hello {0}", "world"))
	})
}

func TestStore_Translate_Lookup(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Configure(Options{Contents: map[string]string{
		"hello": "hallo",
	}}))

	t.Run("Translate_Lookup_Hit", func(t *testing.T) {
		assert.Equal(t, "hallo", s.T("hello"))
	})
	t.Run("Translate_Lookup_Miss", func(t *testing.T) {
		assert.Equal(t, "goodbye", s.T("goodbye"))
	})
	t.Run("Translate_Lookup_Idempotent", func(t *testing.T) {
		first := s.T("hello")
		assert.Equal(t, first, s.T("hello"))
	})
}

func TestStore_Translate_CommentKey(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Configure(Options{Contents: Bundle{
		"message/This is a comment": {Message: "translated", Comment: []string{"This is a comment"}},
	}}))

	t.Run("Translate_CommentKey_Hit", func(t *testing.T) {
		got := s.Translate(Message{Message: "message", Comment: []string{"This is a comment"}})
		assert.Equal(t, "translated", got)
	})
	t.Run("Translate_CommentKey_MissWithoutComment", func(t *testing.T) {
		assert.Equal(t, "message", s.Translate(Message{Message: "message"}))
	})
	t.Run("Translate_CommentKey_MissOtherComment", func(t *testing.T) {
		got := s.Translate(Message{Message: "message", Comment: []string{"another comment"}})
		assert.Equal(t, "message", got)
	})
	t.Run("Translate_CommentKey_MultiLineJoin", func(t *testing.T) {
		// 多行注释拼接时没有分隔符，必须与提取工具生成的 key 完全一致
		m := Message{Message: "message", Comment: []string{"This is", " a comment"}}
		assert.Equal(t, "message/This is a comment", m.Key())
		assert.Equal(t, "translated", s.Translate(m))
	})
}

func TestStore_Translate_Args(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Configure(Options{Contents: Bundle{
		"ordered {0} message {1}":     {Message: "translated {0} message {1}"},
		"named {this} message {that}": {Message: "translated {this} message {that}"},
	}}))

	t.Run("Translate_VariadicIndexed", func(t *testing.T) {
		assert.Equal(t, "translated foo message bar", s.T("ordered {0} message {1}", "foo", "bar"))
	})
	t.Run("Translate_VariadicNamedMap", func(t *testing.T) {
		got := s.T("named {this} message {that}", map[string]any{"this": "foo", "that": "bar"})
		assert.Equal(t, "translated foo message bar", got)
	})
	t.Run("Translate_DescriptorArgs", func(t *testing.T) {
		got := s.Translate(Message{
			Message: "ordered {0} message {1}",
			Args:    List{"foo", "bar"},
		})
		assert.Equal(t, "translated foo message bar", got)
	})
	t.Run("Translate_SingleIndexedValue", func(t *testing.T) {
		assert.Equal(t, "translated foo message {1}", s.T("ordered {0} message {1}", "foo"))
	})
}

func TestStore_Reconfigure_Replaces(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Configure(Options{Contents: map[string]string{"a": "A", "shared": "S1"}}))
	require.NoError(t, s.Configure(Options{Contents: map[string]string{"shared": "S2"}}))

	// keys unique to the first bundle are unavailable after the second load
	assert.Equal(t, "a", s.T("a"))
	assert.Equal(t, "S2", s.T("shared"))
}

func TestStore_Reset(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Configure(Options{Contents: map[string]string{"a": "A"}}))
	require.NoError(t, s.Configure(Options{}))

	assert.Equal(t, "a", s.T("a"))
}

func TestStore_FormatterOverride(t *testing.T) {
	upper := func(template string, args Args) string {
		return strings.ToUpper(Format(template, args))
	}

	t.Run("Formatter_Alone_KeepsBundle", func(t *testing.T) {
		s := NewStore()
		require.NoError(t, s.Configure(Options{Contents: map[string]string{"hello {0}": "hallo {0}"}}))
		require.NoError(t, s.Configure(Options{Formatter: upper}))
		assert.Equal(t, "HALLO WORLD", s.T("hello {0}", "world"))
	})
	t.Run("Formatter_WithContents", func(t *testing.T) {
		s := NewStore()
		require.NoError(t, s.Configure(Options{
			Contents:  map[string]string{"hello {0}": "hallo {0}"},
			Formatter: upper,
		}))
		assert.Equal(t, "HALLO WORLD", s.T("hello {0}", "world"))
	})
}

func TestDefaultStore(t *testing.T) {
	t.Cleanup(func() { _ = Configure(Options{}) })

	require.NoError(t, Configure(Options{Contents: map[string]string{"hello": "hallo"}}))
	assert.Equal(t, "hallo", T("hello"))
	assert.Equal(t, "hallo", Translate(Message{Message: "hello"}))
	assert.Same(t, defaultStore, Default())
}
