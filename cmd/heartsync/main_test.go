package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/heartsync/internal/config"
	"github.com/csheth/heartsync/internal/i18n"
)

func TestStartLanguage(t *testing.T) {
	cases := []struct {
		name  string
		args  []string
		query string
		cfg   string
		want  i18n.Language
	}{
		{name: "config default", cfg: "zh", want: i18n.Chinese},
		{name: "query", query: "lang=en", cfg: "zh", want: i18n.English},
		{name: "explicit flag beats query", args: []string{"--lang", "zh"}, query: "lang=en", cfg: "zh", want: i18n.Chinese},
		{name: "bad query falls through", query: "lang=xx", cfg: "en", want: i18n.English},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := newRootCmd()
			require.NoError(t, cmd.Flags().Parse(tc.args))
			cfg := &config.Config{Language: tc.cfg}
			if cmd.Flags().Changed("lang") {
				cfg.Language, _ = cmd.Flags().GetString("lang")
			}
			assert.Equal(t, tc.want, startLanguage(cfg, cmd.Flags(), tc.query))
		})
	}
}

func TestRootCommandFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", "lang", "query", "model", "log-file", "log-level", "no-alt-screen"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Error(t, cmd.Args(cmd, []string{"unexpected"}))
}
