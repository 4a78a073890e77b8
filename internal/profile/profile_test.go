package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sepalint/internal/validation"
	"sepalint/pkg/platform/sentinel"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&Base{}))
	require.NoError(t, r.Register(&HVB{}))
	require.NoError(t, r.Register(&CoBa{}))

	t.Run("get registered profile", func(t *testing.T) {
		p, err := r.Get("hvb")
		require.NoError(t, err)
		assert.Equal(t, "hvb", p.Name())
	})

	t.Run("unknown profile wraps ErrNotFound", func(t *testing.T) {
		_, err := r.Get("sparkasse")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("duplicate registration is rejected", func(t *testing.T) {
		err := r.Register(&Base{})
		assert.ErrorIs(t, err, sentinel.ErrConflict)
	})

	t.Run("names are sorted", func(t *testing.T) {
		assert.Equal(t, []string{"base", "coba", "hvb"}, r.Names())
	})
}

func TestProfileDescriptions(t *testing.T) {
	for _, p := range []Profile{&Base{}, &HVB{}, &CoBa{}} {
		title, description := p.Describe()
		assert.NotEmpty(t, title, "profile %s", p.Name())
		assert.NotEmpty(t, description, "profile %s", p.Name())
	}
}

func TestBaseDeclaresNoBankChecks(t *testing.T) {
	var b Base
	assert.Empty(t, b.Checks())

	sess := validation.NewSession(b.Checks())
	b.ApplyBankRules(nil, sess)
	assert.Empty(t, sess.Findings())
}
