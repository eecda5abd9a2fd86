package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormFromPlayer(t *testing.T) {
	form := FormFromPlayer(Player{Name: "Babe Ruth", City: "Baltimore", Height: 74, Weight: 215, Throws: HandLeft, Bats: HandLeft})

	assert.Equal(t, PlayerForm{Name: "Babe Ruth", City: "Baltimore", Height: "74", Weight: "215", Throws: "L", Bats: "L"}, form)
}

func TestFormState_Find(t *testing.T) {
	state := FormState{Players: []Player{{Name: "Babe Ruth"}, {Name: "Willie Mays"}}}

	p, ok := state.Find("Willie Mays")
	assert.True(t, ok)
	assert.Equal(t, "Willie Mays", p.Name)

	_, ok = state.Find("willie mays")
	assert.False(t, ok)

	assert.False(t, state.HasSelection())
	state.Selected = "Babe Ruth"
	assert.True(t, state.HasSelection())
	state.Selected = "Nobody"
	assert.False(t, state.HasSelection())
}

func TestErrorWrapping(t *testing.T) {
	verr := &ValidationError{Fields: []FieldError{{Field: "name", Message: "is required"}}}
	assert.True(t, errors.Is(verr, ErrInvalidPlayer))
	assert.Equal(t, "invalid player: name is required", verr.Error())

	uerr := &UpstreamError{StatusCode: 502, Body: "bad gateway"}
	assert.True(t, errors.Is(uerr, ErrUpstream))
	assert.Equal(t, "players api returned status 502: bad gateway", uerr.Error())
}
