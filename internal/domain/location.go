package domain

import "time"

// Location место встречи из справочника.
// Кастомные места (произвольный текст в заказе) в справочник не попадают,
// если пользователь явно не сохранил их через IsCustom.
type Location struct {
	ID             int64
	Name           string
	Address        string
	IsCustom       bool
	CreatedByAdmin bool
	CreatedAt      time.Time
}
