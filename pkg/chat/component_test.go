package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBareString(t *testing.T) {
	c, err := Parse(`"hello world"`)
	require.NoError(t, err)
	assert.Equal(t, "hello world", Render(c))
}

func TestParseTextWithExtra(t *testing.T) {
	c, err := Parse(`{"text":"foo ","color":"red","extra":["bar"]}`)
	require.NoError(t, err)
	assert.Equal(t, "foo bar", Render(c))

	spans := Spans(c)
	require.Len(t, spans, 2)
	assert.Equal(t, "foo ", spans[0].Text)
	assert.Equal(t, "red", spans[0].Color)
	assert.Equal(t, "bar", spans[1].Text)
}

func TestRenderKnownTranslateAnnouncement(t *testing.T) {
	c, err := Parse(`{"translate":"chat.type.announcement","with":["Server","hello"]}`)
	require.NoError(t, err)
	assert.Equal(t, "[Server Announcement] Server: hello", Render(c))
}

func TestRenderKnownTranslateText(t *testing.T) {
	c, err := Parse(`{"translate":"chat.type.text","with":["Alice","hi"]}`)
	require.NoError(t, err)
	assert.Equal(t, "[Alice]: hi", Render(c))
}

func TestRenderUnknownTranslatePassesThroughKey(t *testing.T) {
	c, err := Parse(`{"translate":"some.unknown.key","with":["a"]}`)
	require.NoError(t, err)
	assert.Equal(t, "some.unknown.key", Render(c))
}

func TestTruncateUTF8(t *testing.T) {
	assert.Equal(t, "hello", TruncateUTF8("hello", 10))
	long := make([]rune, 150)
	for i := range long {
		long[i] = 'a'
	}
	assert.Len(t, []rune(TruncateUTF8(string(long), 100)), 100)
}
