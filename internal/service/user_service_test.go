package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/undefined7887/ai2024-applied-python-hw2/internal/repository"
	"github.com/undefined7887/ai2024-applied-python-hw2/internal/weather"
)

type stubWeather struct {
	temp  float64
	err   error
	calls int
}

func (s *stubWeather) FetchCityTemperature(ctx context.Context, city string) (float64, error) {
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	return s.temp, nil
}

func testProfileDTO() CreateProfileDTO {
	return CreateProfileDTO{
		TelegramID: 1,
		Name:       "Test User",
		Weight:     70,
		Height:     175,
		Age:        30,
		Activity:   60,
		City:       "Berlin",
	}
}

func TestTodayLogRequiresProfile(t *testing.T) {
	provider := &stubWeather{temp: 20}
	svc := NewUserService(repository.NewUserRepo(), provider)

	_, err := svc.TodayLog(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoProfile)
	assert.Equal(t, 0, provider.calls)
}

func TestTodayLogLazyCreation(t *testing.T) {
	provider := &stubWeather{temp: 20}
	svc := NewUserService(repository.NewUserRepo(), provider)
	svc.SetProfile(testProfileDTO())

	first, err := svc.TodayLog(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 20.0, first.Temperature)
	assert.Equal(t, svc.CurrentDay(), first.Day)

	// повторное обращение в тот же день — тот же дневник, без нового
	// запроса погоды
	second, err := svc.TodayLog(context.Background(), 1)
	assert.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, provider.calls)
}

func TestTodayLogDayBoundary(t *testing.T) {
	provider := &stubWeather{temp: 20}
	svc := NewUserService(repository.NewUserRepo(), provider)
	svc.SetProfile(testProfileDTO())

	day := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return day }

	first, err := svc.TodayLog(context.Background(), 1)
	assert.NoError(t, err)
	first.LogWater(300)

	// новый календарный день — новый дневник со свежей температурой
	provider.temp = 30
	svc.now = func() time.Time { return day.AddDate(0, 0, 1) }

	second, err := svc.TodayLog(context.Background(), 1)
	assert.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, "2024-06-02", second.Day)
	assert.Equal(t, 30.0, second.Temperature)
	assert.Equal(t, 0, second.Water())
	assert.Equal(t, 2, provider.calls)
}

func TestTodayLogSnapshotsProfileAtCreation(t *testing.T) {
	provider := &stubWeather{temp: 20}
	svc := NewUserService(repository.NewUserRepo(), provider)
	svc.SetProfile(testProfileDTO())

	log, err := svc.TodayLog(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 70, log.Weight)

	// полная замена профиля не трогает уже созданный дневник:
	// цели за день считаются по профилю на момент его создания
	dto := testProfileDTO()
	dto.Weight = 100
	svc.SetProfile(dto)

	same, err := svc.TodayLog(context.Background(), 1)
	assert.NoError(t, err)
	assert.Same(t, log, same)
	assert.Equal(t, 70, same.Weight)
	assert.Equal(t, 3100, same.WaterGoal())
}

func TestTodayLogProviderUnavailable(t *testing.T) {
	provider := &stubWeather{err: weather.ErrUnavailable}
	svc := NewUserService(repository.NewUserRepo(), provider)
	svc.SetProfile(testProfileDTO())

	_, err := svc.TodayLog(context.Background(), 1)
	assert.ErrorIs(t, err, weather.ErrUnavailable)

	// дневник с пропущенной температурой не создаётся: после
	// восстановления сервиса создание проходит заново
	provider.err = nil
	provider.temp = 18

	log, err := svc.TodayLog(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, 18.0, log.Temperature)
}

func TestLogEntriesAppend(t *testing.T) {
	provider := &stubWeather{temp: 20}
	svc := NewUserService(repository.NewUserRepo(), provider)
	svc.SetProfile(testProfileDTO())

	ctx := context.Background()

	log, err := svc.LogWater(ctx, 1, 250)
	assert.NoError(t, err)
	assert.Equal(t, 250, log.Water())

	log, err = svc.LogFood(ctx, 1, "apple", 100)
	assert.NoError(t, err)
	assert.Equal(t, 100, log.Calories())

	log, err = svc.LogWorkout(ctx, 1, "running", 45)
	assert.NoError(t, err)
	assert.Equal(t, 45, log.WorkoutMinutes())

	// всё попало в один и тот же дневник
	assert.Equal(t, 1, provider.calls)
}

func TestUsersCount(t *testing.T) {
	svc := NewUserService(repository.NewUserRepo(), &stubWeather{temp: 20})
	assert.Equal(t, int64(0), svc.UsersCount())

	svc.SetProfile(testProfileDTO())

	dto := testProfileDTO()
	dto.TelegramID = 2
	svc.SetProfile(dto)

	// замена профиля не плодит пользователей
	svc.SetProfile(testProfileDTO())
	assert.Equal(t, int64(2), svc.UsersCount())
}
