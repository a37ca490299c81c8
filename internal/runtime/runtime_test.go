package runtime

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annolab/labelctl/internal/conf"
	"github.com/annolab/labelctl/internal/session"
)

func TestContext_Bind(t *testing.T) {
	settings := &conf.Settings{}
	settings.Server.URL = "http://labeling.test"
	settings.Server.Timeout = 5
	settings.Realtime.StatusInterval = 5
	settings.Labeling.DefaultModel = "gpt-4"

	ctx := &Context{
		Settings: settings,
		Store:    session.NewStore(filepath.Join(t.TempDir(), "session.json")),
	}

	ctx.Bind()

	require.NotNil(t, ctx.Client)
	require.NotNil(t, ctx.Catalog, "catalog must be shared across commands")
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "dev (built unknown)", VersionString())
}
