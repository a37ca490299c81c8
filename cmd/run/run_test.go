package run

import (
	"bytes"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annolab/labelctl/internal/conf"
	"github.com/annolab/labelctl/internal/runtime"
	"github.com/annolab/labelctl/internal/session"
)

func newTestContext(t *testing.T) *runtime.Context {
	t.Helper()

	settings := &conf.Settings{}
	settings.Server.URL = "http://labeling.test"
	settings.Server.Timeout = 5
	settings.Realtime.StatusInterval = 5
	settings.Labeling.DefaultModel = "gpt-4"

	ctx := &runtime.Context{
		Settings: settings,
		Store:    session.NewStore(filepath.Join(t.TempDir(), "session.json")),
	}
	ctx.Bind()
	return ctx
}

func TestRun_RetriesAfterRejectedCredentials(t *testing.T) {
	ctx := newTestContext(t)

	httpmock.ActivateNonDefault(ctx.Client.HTTPClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost, "http://labeling.test/login",
		httpmock.ResponderFromMultipleResponses([]*http.Response{
			httpmock.NewStringResponse(http.StatusUnauthorized, `{"detail":"Invalid username or password"}`),
			httpmock.NewStringResponse(http.StatusOK, `{"access_token":"tok-1","token_type":"bearer","account_id":"alice"}`),
		}))
	httpmock.RegisterResponder(http.MethodGet, "http://labeling.test/labels",
		httpmock.NewStringResponder(http.StatusOK, `{"labels":["finance"]}`))
	httpmock.RegisterResponder(http.MethodGet, "http://labeling.test/status",
		httpmock.NewStringResponder(http.StatusOK, `{"is_busy":false,"current_user":null,"processing_time":0}`))

	cmd := Command(ctx)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader("alice\nwrong\nalice\nsecret\n/quit\n"))
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "Login failed: Invalid username or password")
	assert.Contains(t, out.String(), "Logged in as alice")
	assert.True(t, ctx.Store.IsAuthenticated())
	assert.Equal(t, "alice", ctx.Store.GetAccountID())
	assert.Equal(t, "tok-1", ctx.Store.GetToken())
	assert.Equal(t, 2, httpmock.GetCallCountInfo()["POST http://labeling.test/login"])
}

func TestRun_NonAuthLoginErrorAborts(t *testing.T) {
	ctx := newTestContext(t)

	httpmock.ActivateNonDefault(ctx.Client.HTTPClient())
	defer httpmock.DeactivateAndReset()

	httpmock.RegisterResponder(http.MethodPost, "http://labeling.test/login",
		httpmock.NewStringResponder(http.StatusInternalServerError, `{"detail":"Internal server error"}`))

	cmd := Command(ctx)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader("alice\nsecret\n"))
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Internal server error")
	assert.False(t, ctx.Store.IsAuthenticated())
	assert.Equal(t, 1, httpmock.GetCallCountInfo()["POST http://labeling.test/login"])
}
