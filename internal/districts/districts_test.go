package districts_test

import (
	"testing"

	"resale-market/internal/districts"

	"github.com/stretchr/testify/assert"
)

func TestAll(t *testing.T) {
	list, err := districts.All()
	assert.NoError(t, err)
	assert.Len(t, list, 64)

	seen := make(map[string]bool, len(list))
	for _, d := range list {
		assert.NotEmpty(t, d.ID)
		assert.NotEmpty(t, d.Division)
		assert.NotEmpty(t, d.Name)
		assert.False(t, seen[d.Name], "duplicate district %s", d.Name)
		seen[d.Name] = true
	}
	assert.True(t, seen["Dhaka"])
	assert.True(t, seen["Chattogram"])
}
