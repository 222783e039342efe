package models

// User — профиль пользователя Telegram.
// Создаётся целиком после успешного прохождения мастера /set_profile,
// частично заполненных профилей не бывает. Обновление — только полной заменой.
type User struct {
	TelegramID int64
	Name       string
	Weight     int // кг
	Height     int // см
	Age        int
	Activity   int // минут активности в день
	City       string
}
