package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeavinessValid(t *testing.T) {
	for _, h := range []Heaviness{HeavinessLight, HeavinessMedium, HeavinessHeavy, HeavinessUltimate} {
		assert.True(t, h.Valid(), "heaviness %q", h)
	}

	assert.False(t, Heaviness("").Valid())
	assert.False(t, Heaviness("crushing").Valid())
	assert.False(t, Heaviness("Light").Valid())
}

func TestBeastUpdateEmpty(t *testing.T) {
	tag := "new_tag"
	email := "new@example.com"

	assert.True(t, BeastUpdate{}.Empty())
	assert.False(t, BeastUpdate{GamerTag: &tag}.Empty())
	assert.False(t, BeastUpdate{Email: &email}.Empty())
	assert.False(t, BeastUpdate{GamerTag: &tag, Email: &email}.Empty())
}
