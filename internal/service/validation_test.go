package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/player-manager/internal/domain"
)

func TestFormValidator_Player(t *testing.T) {
	v := NewFormValidator()

	player, err := v.Player(domain.PlayerForm{
		Name: "Hank Aaron", City: "Mobile", Height: "72", Weight: "180", Throws: "R", Bats: "R",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Player{
		Name: "Hank Aaron", City: "Mobile", Height: 72, Weight: 180,
		Throws: domain.HandRight, Bats: domain.HandRight,
	}, *player)
}

func TestFormValidator_Rules(t *testing.T) {
	valid := domain.PlayerForm{Name: "Hank Aaron", City: "Mobile", Height: "72", Weight: "180", Throws: "R", Bats: "R"}

	tests := []struct {
		name    string
		mutate  func(f *domain.PlayerForm)
		field   string
		message string
	}{
		{"missing name", func(f *domain.PlayerForm) { f.Name = "" }, "name", "is required"},
		{"long name", func(f *domain.PlayerForm) { f.Name = strings.Repeat("a", 21) }, "name", "must be at most 20 characters"},
		{"long city", func(f *domain.PlayerForm) { f.City = strings.Repeat("b", 21) }, "city", "must be at most 20 characters"},
		{"height not a number", func(f *domain.PlayerForm) { f.Height = "6ft" }, "height", "must be a whole number"},
		{"height too long", func(f *domain.PlayerForm) { f.Height = "1000" }, "height", "must be at most 3 characters"},
		{"negative weight", func(f *domain.PlayerForm) { f.Weight = "-5" }, "weight", "must be a whole number"},
		{"two letter throws", func(f *domain.PlayerForm) { f.Throws = "RL" }, "throws", "must be exactly 1 character"},
		{"missing bats", func(f *domain.PlayerForm) { f.Bats = "" }, "bats", "is required"},
	}

	v := NewFormValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)

			_, err := v.Player(form)
			require.ErrorIs(t, err, domain.ErrInvalidPlayer)

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
			assert.Equal(t, tt.message, verr.Fields[0].Message)
		})
	}
}

func TestFormValidator_MaxWeight(t *testing.T) {
	player, err := NewFormValidator().Player(domain.PlayerForm{
		Name: "Big", City: "Town", Height: "108", Weight: "1000", Throws: "L", Bats: "L",
	})
	require.NoError(t, err)
	assert.Equal(t, 1000, player.Weight)
	assert.Equal(t, 108, player.Height)
}
