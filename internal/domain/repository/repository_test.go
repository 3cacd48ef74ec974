package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	fixtures := []string{"seed-1", "seed-2"}

	assert.Equal(t, fixtures, Resolve(nil, fixtures))
	assert.Equal(t, fixtures, Resolve([]string{}, fixtures))
	assert.Equal(t, []string{"mine"}, Resolve([]string{"mine"}, fixtures))
	assert.Nil(t, Resolve[string](nil, nil))
}
