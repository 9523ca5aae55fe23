package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/csheth/heartsync/internal/i18n"
)

func TestBuildIsDeterministic(t *testing.T) {
	desc := "old friends catching up late at night"
	for _, lang := range []i18n.Language{i18n.Chinese, i18n.English} {
		assert.Equal(t, Build(desc, lang), Build(desc, lang))
	}
	assert.NotEqual(t, Build(desc, i18n.Chinese), Build(desc, i18n.English))
}

func TestBuildMentionsContract(t *testing.T) {
	desc := "a first date at a rainy cafe"
	for _, lang := range []i18n.Language{i18n.Chinese, i18n.English} {
		got := Build(desc, lang)
		assert.Contains(t, got, desc)
		assert.Contains(t, got, "10")
		assert.Contains(t, got, "JSON")
		assert.Contains(t, strings.ToLower(got), "sentence case")
		for _, field := range Fields {
			assert.Contains(t, got, field)
		}
	}
	assert.Contains(t, Build(desc, i18n.English), "NO italics")
	assert.Contains(t, Build(desc, i18n.Chinese), "禁止斜体")
}

func TestBuildTrimsDescription(t *testing.T) {
	assert.Equal(t, Build("scene", i18n.English), Build("  scene\n", i18n.English))
}
