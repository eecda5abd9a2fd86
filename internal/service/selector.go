package service

import "github.com/aidar/player-manager/internal/domain"

// selectPlayer selects the first of the preferred names present in the cached
// list and copies it into the form. Falls back to the first player, or to an
// empty form when the list is empty.
func selectPlayer(state *domain.FormState, preferred ...string) {
	for _, name := range preferred {
		if player, ok := state.Find(name); ok {
			state.Selected = player.Name
			state.Form = domain.FormFromPlayer(player)
			return
		}
	}

	if len(state.Players) == 0 {
		state.Selected = ""
		state.Form = domain.PlayerForm{}
		return
	}

	state.Selected = state.Players[0].Name
	state.Form = domain.FormFromPlayer(state.Players[0])
}
