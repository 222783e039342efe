package service

// Profile DTO — все поля уже провалидированы мастером /set_profile
type CreateProfileDTO struct {
	TelegramID int64
	Name       string
	Weight     int
	Height     int
	Age        int
	Activity   int
	City       string
}
