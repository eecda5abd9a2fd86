package domain

import "strconv"

// PlayerForm содержит значения полей формы в том виде, в котором их ввел пользователь
type PlayerForm struct {
	Name   string `validate:"required,max=20"`
	City   string `validate:"required,max=20"`
	Height string `validate:"required,max=3,number"`
	Weight string `validate:"required,max=4,number"`
	Throws string `validate:"required,len=1"`
	Bats   string `validate:"required,len=1"`
}

// FormFromPlayer заполняет форму значениями игрока
func FormFromPlayer(p Player) PlayerForm {
	return PlayerForm{
		Name:   p.Name,
		City:   p.City,
		Height: strconv.Itoa(p.Height),
		Weight: strconv.Itoa(p.Weight),
		Throws: string(p.Throws),
		Bats:   string(p.Bats),
	}
}

// FormState хранит состояние страницы одного посетителя.
// Список игроков - временная копия, обновляемая после каждой мутации.
type FormState struct {
	Players  []Player   // Кэшированный список игроков
	Selected string     // Имя выбранного игрока
	Form     PlayerForm // Значения, отображаемые в форме
	Creating bool       // Режим создания нового игрока
	Loaded   bool       // Первичная загрузка выполнена
}

// Find ищет игрока в кэшированном списке по имени
func (s *FormState) Find(name string) (Player, bool) {
	for _, p := range s.Players {
		if p.Name == name {
			return p, true
		}
	}
	return Player{}, false
}

// HasSelection возвращает true если выбранный игрок присутствует в списке
func (s *FormState) HasSelection() bool {
	if s.Selected == "" {
		return false
	}
	_, ok := s.Find(s.Selected)
	return ok
}
