package repository

import (
	"sync"

	"github.com/undefined7887/ai2024-applied-python-hw2/internal/models"
)

// UserRepository хранит профили и дневники в памяти процесса.
// Две карты с ключом по Telegram ID: пользователь -> профиль и
// пользователь -> {день -> дневник}. Дневники живут отдельно от профиля,
// поэтому замена профиля через /set_profile их не трогает.
type UserRepository interface {
	Save(user *models.User)
	FindByTelegramID(telegramID int64) (*models.User, bool)
	FindLog(telegramID int64, day string) (*models.DailyLog, bool)
	SaveLog(telegramID int64, log *models.DailyLog)
	Count() int64
}

type userRepo struct {
	mu    sync.RWMutex
	users map[int64]*models.User
	logs  map[int64]map[string]*models.DailyLog
}

func NewUserRepo() UserRepository {
	return &userRepo{
		users: make(map[int64]*models.User),
		logs:  make(map[int64]map[string]*models.DailyLog),
	}
}

func (r *userRepo) Save(user *models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.TelegramID] = user
}

func (r *userRepo) FindByTelegramID(telegramID int64) (*models.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[telegramID]
	return user, ok
}

func (r *userRepo) FindLog(telegramID int64, day string) (*models.DailyLog, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	log, ok := r.logs[telegramID][day]
	return log, ok
}

func (r *userRepo) SaveLog(telegramID int64, log *models.DailyLog) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.logs[telegramID] == nil {
		r.logs[telegramID] = make(map[string]*models.DailyLog)
	}
	r.logs[telegramID][log.Day] = log
}

func (r *userRepo) Count() int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users))
}
