package htmltree_test

import (
	"testing"

	"github.com/fwojciec/htmltree"
	"github.com/stretchr/testify/assert"
)

func TestCompilePatterns(t *testing.T) {
	t.Parallel()

	re := htmltree.CompilePatterns([]string{"content", "nav"})

	t.Run("matches whole tokens", func(t *testing.T) {
		t.Parallel()

		assert.True(t, re.MatchString("content"))
		assert.True(t, re.MatchString("nav"))
	})

	t.Run("treats hyphens and underscores as boundaries", func(t *testing.T) {
		t.Parallel()

		assert.True(t, re.MatchString("main-content"))
		assert.True(t, re.MatchString("site_nav"))
		assert.True(t, re.MatchString("nav-primary"))
	})

	t.Run("is case-insensitive", func(t *testing.T) {
		t.Parallel()

		assert.True(t, re.MatchString("Content-Wrapper"))
	})

	t.Run("rejects tokens embedded in larger words", func(t *testing.T) {
		t.Parallel()

		assert.False(t, re.MatchString("discontent"))
		assert.False(t, re.MatchString("navigator5"))
		assert.False(t, re.MatchString("canvas"))
	})
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := htmltree.DefaultConfig()

	assert.Equal(t, 500, cfg.SufficientTextLen)
	assert.Equal(t, 5, cfg.SufficientBlocks)
	assert.NotEmpty(t, cfg.ContentPatterns)
	assert.NotEmpty(t, cfg.NonContentPatterns)
	assert.NotEmpty(t, cfg.CMSSelectors)
}
