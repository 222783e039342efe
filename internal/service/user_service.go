package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/undefined7887/ai2024-applied-python-hw2/internal/models"
	"github.com/undefined7887/ai2024-applied-python-hw2/internal/repository"
	"github.com/undefined7887/ai2024-applied-python-hw2/internal/weather"
)

// ErrNoProfile - команда требует профиль, а он ещё не настроен
var ErrNoProfile = errors.New("service: profile is not set")

type UserService struct {
	repo    repository.UserRepository
	weather weather.Provider

	// подменяется в тестах для проверки смены дня
	now func() time.Time
}

func NewUserService(repo repository.UserRepository, provider weather.Provider) *UserService {
	return &UserService{
		repo:    repo,
		weather: provider,
		now:     time.Now,
	}
}

// CurrentDay - ключ сегодняшнего дневника
func (s *UserService) CurrentDay() string {
	return s.now().Format("2006-01-02")
}

// SetProfile - создать или полностью заменить профиль.
// Уже накопленные дневники за прошлые и текущий день остаются как есть.
func (s *UserService) SetProfile(dto CreateProfileDTO) *models.User {
	user := &models.User{
		TelegramID: dto.TelegramID,
		Name:       dto.Name,
		Weight:     dto.Weight,
		Height:     dto.Height,
		Age:        dto.Age,
		Activity:   dto.Activity,
		City:       dto.City,
	}
	s.repo.Save(user)
	return user
}

// GetProfile - получить профиль по Telegram ID
func (s *UserService) GetProfile(telegramID int64) (*models.User, bool) {
	return s.repo.FindByTelegramID(telegramID)
}

// TodayLog - дневник за сегодня, лениво создаётся при первом обращении.
// При создании синхронно запрашивается температура в городе пользователя и
// снимается копия профиля; если погодный сервис недоступен, дневник не
// создаётся и ошибка отдаётся наверх.
func (s *UserService) TodayLog(ctx context.Context, telegramID int64) (*models.DailyLog, error) {
	user, ok := s.repo.FindByTelegramID(telegramID)
	if !ok {
		return nil, ErrNoProfile
	}

	day := s.CurrentDay()
	if log, ok := s.repo.FindLog(telegramID, day); ok {
		return log, nil
	}

	temperature, err := s.weather.FetchCityTemperature(ctx, user.City)
	if err != nil {
		return nil, fmt.Errorf("fetch temperature for %q: %w", user.City, err)
	}

	log := models.NewDailyLog(day, temperature, user)
	s.repo.SaveLog(telegramID, log)

	return log, nil
}

// LogWater - добавить запись о воде в сегодняшний дневник
func (s *UserService) LogWater(ctx context.Context, telegramID int64, amount int) (*models.DailyLog, error) {
	log, err := s.TodayLog(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	log.LogWater(amount)
	return log, nil
}

// LogFood - добавить запись о еде в сегодняшний дневник
func (s *UserService) LogFood(ctx context.Context, telegramID int64, food string, amount int) (*models.DailyLog, error) {
	log, err := s.TodayLog(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	log.LogFood(food, amount)
	return log, nil
}

// LogWorkout - добавить запись о тренировке в сегодняшний дневник
func (s *UserService) LogWorkout(ctx context.Context, telegramID int64, workout string, duration int) (*models.DailyLog, error) {
	log, err := s.TodayLog(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	log.LogWorkout(workout, duration)
	return log, nil
}

// UsersCount - количество настроенных профилей
func (s *UserService) UsersCount() int64 {
	return s.repo.Count()
}
