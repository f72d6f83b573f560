package messageformat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sekolah-branding/internal/pkg/messageformat"
)

func TestIsMessagePattern(t *testing.T) {
	assert.True(t, messageformat.IsMessagePattern("Hello {name}"))
	assert.True(t, messageformat.IsMessagePattern("{count, plural, one{1 item} other{# items}}"))
	assert.True(t, messageformat.IsMessagePattern("{gender, select, male{he} other{they}}"))
	assert.False(t, messageformat.IsMessagePattern("Hello world"))
	assert.False(t, messageformat.IsMessagePattern("set notation { 1, 2 }"))
}

func TestFormat_PlainInterpolation(t *testing.T) {
	f := messageformat.New()

	t.Run("Substitution", func(t *testing.T) {
		out := f.Format("Hello {name}!", map[string]any{"name": "Maria"}, messageformat.Options{})
		assert.Equal(t, "Hello Maria!", out)
	})

	t.Run("Number Value", func(t *testing.T) {
		out := f.Format("Grade: {score}", map[string]any{"score": 95}, messageformat.Options{})
		assert.Equal(t, "Grade: 95", out)
	})

	t.Run("Missing Value Keeps Placeholder", func(t *testing.T) {
		var missed string
		f := messageformat.New()
		f.OnMissingValue = func(_, name string) { missed = name }

		out := f.Format("Hello {name}!", nil, messageformat.Options{})
		assert.Equal(t, "Hello {name}!", out)
		assert.Equal(t, "name", missed)
	})

	t.Run("Escaped By Default", func(t *testing.T) {
		out := f.Format("{v}", map[string]any{"v": "<b>&"}, messageformat.Options{})
		assert.Equal(t, "&lt;b&gt;&amp;", out)
	})

	t.Run("Raw Option", func(t *testing.T) {
		out := f.Format("{v}", map[string]any{"v": "<b>&"}, messageformat.Options{Raw: true})
		assert.Equal(t, "<b>&", out)
	})
}

func TestFormat_Plural(t *testing.T) {
	f := messageformat.New()
	pattern := "{count, plural, one{1 item} other{# items}}"

	t.Run("One", func(t *testing.T) {
		out := f.Format(pattern, map[string]any{"count": 1}, messageformat.Options{})
		assert.Equal(t, "1 item", out)
	})

	t.Run("Other With Octothorpe", func(t *testing.T) {
		out := f.Format(pattern, map[string]any{"count": 5}, messageformat.Options{})
		assert.Equal(t, "5 items", out)
	})

	t.Run("Exact Match Wins", func(t *testing.T) {
		p := "{count, plural, =0{none} one{1 item} other{# items}}"
		out := f.Format(p, map[string]any{"count": 0}, messageformat.Options{})
		assert.Equal(t, "none", out)
	})

	t.Run("Nested Interpolation", func(t *testing.T) {
		p := "{count, plural, one{{name} has 1 task} other{{name} has # tasks}}"
		out := f.Format(p, map[string]any{"count": 3, "name": "Ana"}, messageformat.Options{})
		assert.Equal(t, "Ana has 3 tasks", out)
	})
}

func TestFormat_Select(t *testing.T) {
	f := messageformat.New()
	pattern := "{gender, select, male{he} female{she} other{they}}"

	out := f.Format(pattern, map[string]any{"gender": "female"}, messageformat.Options{})
	assert.Equal(t, "she", out)

	out = f.Format(pattern, map[string]any{"gender": "x"}, messageformat.Options{})
	assert.Equal(t, "they", out)
}

func TestFormat_Malformed(t *testing.T) {
	cases := []string{
		"Hello {name",
		"Hello name}",
		"{count, plural, one{1} other{#}",
		"{count, plural, one{1}}",
		"{count, frobnicate, other{x}}",
	}

	for _, pattern := range cases {
		var gotErr bool
		f := messageformat.New()
		f.OnFormatError = func(string, error) { gotErr = true }

		out := f.Format(pattern, map[string]any{"count": 2, "name": "x"}, messageformat.Options{})
		assert.Equal(t, pattern, out, "malformed pattern must round-trip unchanged: %s", pattern)
		assert.True(t, gotErr, "error event expected for: %s", pattern)
	}
}
