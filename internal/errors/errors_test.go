package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorBuilder_Build(t *testing.T) {
	base := NewStd("connection refused")

	err := New(base).
		Component("api").
		Category(CategoryNetwork).
		Context("endpoint", "/label").
		Build()

	require.NotNil(t, err)
	assert.Equal(t, "api", err.Component)
	assert.Equal(t, CategoryNetwork, err.Category)
	assert.Equal(t, "connection refused", err.Error())
	assert.Equal(t, "/label", err.GetContext()["endpoint"])
	assert.True(t, Is(err, base))
}

func TestErrorBuilder_DefaultComponent(t *testing.T) {
	err := Newf("something broke: %d", 42).Build()

	assert.Equal(t, ComponentUnknown, err.Component)
	assert.Equal(t, CategoryGeneric, err.Category)
	assert.Equal(t, "something broke: 42", err.Error())
}

func TestIsCategory(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category ErrorCategory
		want     bool
	}{
		{
			name:     "matching category",
			err:      Newf("busy").Category(CategoryConflict).Build(),
			category: CategoryConflict,
			want:     true,
		},
		{
			name:     "non-matching category",
			err:      Newf("busy").Category(CategoryConflict).Build(),
			category: CategoryNetwork,
			want:     false,
		},
		{
			name:     "plain error",
			err:      NewStd("plain"),
			category: CategoryGeneric,
			want:     false,
		},
		{
			name:     "wrapped enhanced error",
			err:      fmt.Errorf("outer: %w", Newf("inner").Category(CategoryAuth).Build()),
			category: CategoryAuth,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCategory(tt.err, tt.category))
		})
	}
}

func TestEnhancedError_ContextIsolation(t *testing.T) {
	err := Newf("x").Context("k", "v").Build()

	ctx := err.GetContext()
	ctx["k"] = "mutated"

	assert.Equal(t, "v", err.GetContext()["k"])
}
