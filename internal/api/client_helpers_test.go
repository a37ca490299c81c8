package api

import (
	"path/filepath"
	"testing"

	"github.com/jarcoal/httpmock"

	"github.com/annolab/labelctl/internal/conf"
	"github.com/annolab/labelctl/internal/session"
)

const testBaseURL = "http://labeling.test"

// newTestClient creates a client against a mocked transport and an empty
// session store in a temp dir.
func newTestClient(t *testing.T) (*Client, *session.Store) {
	t.Helper()

	settings := &conf.Settings{}
	settings.Server.URL = testBaseURL
	settings.Server.Timeout = 5
	settings.Realtime.StatusInterval = 5
	settings.Labeling.DefaultModel = "gpt-4"

	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	client := NewClient(settings, store)

	httpmock.ActivateNonDefault(client.http)
	t.Cleanup(httpmock.DeactivateAndReset)

	return client, store
}
