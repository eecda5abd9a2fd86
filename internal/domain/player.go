package domain

// Hand представляет сторону броска или удара (R или L)
type Hand string

// Допустимые значения Hand
const (
	HandRight Hand = "R" // Правша
	HandLeft  Hand = "L" // Левша
)

// Hands возвращает допустимые значения в порядке отображения
func Hands() []Hand {
	return []Hand{HandRight, HandLeft}
}

// Player представляет запись игрока в удаленном API
type Player struct {
	Name   string `json:"name"` // Уникален, используется как идентификатор
	City   string `json:"city"`
	Height int    `json:"height"` // В дюймах
	Weight int    `json:"weight"` // В фунтах
	Throws Hand   `json:"throws"`
	Bats   Hand   `json:"bats"`
}
