// Package runtime wires the shared dependencies handed to every command:
// settings, the session store, the API client, and the label catalog.
package runtime

import (
	"github.com/annolab/labelctl/internal/api"
	"github.com/annolab/labelctl/internal/catalog"
	"github.com/annolab/labelctl/internal/conf"
	"github.com/annolab/labelctl/internal/session"
)

// Context carries the dependencies commands need. Client and Catalog are
// created in Bind after flags have been applied to the settings; the
// catalog is shared so its cache serves every consumer in the invocation.
type Context struct {
	Settings *conf.Settings
	Store    *session.Store
	Client   *api.Client
	Catalog  *catalog.Service
}

// NewContext loads settings and opens the session store.
func NewContext() (*Context, error) {
	settings, err := conf.Load()
	if err != nil {
		return nil, err
	}

	sessionPath, err := conf.SessionFilePath()
	if err != nil {
		return nil, err
	}

	return &Context{
		Settings: settings,
		Store:    session.NewStore(sessionPath),
	}, nil
}

// Bind creates the API client and catalog from the final settings. Called
// once per invocation after flag parsing.
func (c *Context) Bind() {
	c.Client = api.NewClient(c.Settings, c.Store)
	c.Catalog = catalog.NewService(c.Client)
}
