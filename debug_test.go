//go:build debug
// +build debug

package sedml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnedItemCannotBeAdopted(t *testing.T) {
	ns := DefaultNamespaces()

	first := NewDocument(ns)
	m := first.CreateModel()

	second := NewDocument(ns)
	assert.Panics(t, func() { second.Models().push(m) })

	removed := first.RemoveModel(0)
	require.NotNil(t, removed)
	assert.NotPanics(t, func() { require.NoError(t, second.Models().AppendAndOwn(removed)) })
	assert.Same(t, second, removed.Document())
}

func TestCloneBeforeAdopting(t *testing.T) {
	ns := DefaultNamespaces()

	first := NewDocument(ns)
	m := first.CreateModel()

	second := NewDocument(ns)
	assert.NotPanics(t, func() { require.NoError(t, second.Models().AppendAndOwn(m.Clone())) })
	assert.Same(t, first, m.Document())
}
