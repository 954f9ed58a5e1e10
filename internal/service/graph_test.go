package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWouldCreateCycle(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()
	d := uuid.New()

	t.Run("self edge", func(t *testing.T) {
		assert.True(t, wouldCreateCycle(nil, a, a))
	})

	t.Run("closing a chain", func(t *testing.T) {
		edges := edgeSet([][2]uuid.UUID{{a, b}, {b, c}})
		assert.True(t, wouldCreateCycle(edges, c, a))
	})

	t.Run("acyclic addition", func(t *testing.T) {
		edges := edgeSet([][2]uuid.UUID{{a, b}, {b, c}})
		assert.False(t, wouldCreateCycle(edges, a, c))
		assert.False(t, wouldCreateCycle(edges, a, d))
	})

	t.Run("diamond stays acyclic", func(t *testing.T) {
		edges := edgeSet([][2]uuid.UUID{{a, b}, {a, c}, {b, d}})
		assert.False(t, wouldCreateCycle(edges, c, d))
	})

	t.Run("reverse edge over diamond cycles", func(t *testing.T) {
		edges := edgeSet([][2]uuid.UUID{{a, b}, {a, c}, {b, d}, {c, d}})
		assert.True(t, wouldCreateCycle(edges, d, a))
	})
}

func TestEdgeSet(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()

	edges := edgeSet([][2]uuid.UUID{{a, b}, {a, c}})
	assert.Len(t, edges, 1)
	assert.ElementsMatch(t, []uuid.UUID{b, c}, edges[a])
}
