package bot

import (
	"context"
	"sync"

	"github.com/undefined7887/ai2024-applied-python-hw2/internal/fsm"
	"github.com/undefined7887/ai2024-applied-python-hw2/internal/service"
	"github.com/undefined7887/ai2024-applied-python-hw2/internal/weather"
)

// Dispatcher — ядро бота без привязки к Telegram API: принимает команду или
// очередной ответ мастера и возвращает текст ответа.
//
// Сообщения одного пользователя обрабатываются строго по очереди через
// пер-пользовательский мьютекс (он покрывает весь шаг, включая поход за
// погодой), разные пользователи друг друга не блокируют.
type Dispatcher struct {
	users   *service.UserService
	machine *fsm.Machine
	weather weather.Provider

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewDispatcher(users *service.UserService, machine *fsm.Machine, provider weather.Provider) *Dispatcher {
	return &Dispatcher{
		users:   users,
		machine: machine,
		weather: provider,
		locks:   make(map[int64]*sync.Mutex),
	}
}

func (d *Dispatcher) userLock(userID int64) *sync.Mutex {
	d.mu.Lock()
	defer d.mu.Unlock()
	lock, ok := d.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		d.locks[userID] = lock
	}
	return lock
}

// HandleCommand обрабатывает команду без "/". Команды-мастера заменяют
// текущее состояние пользователя новым мастером (последняя команда
// побеждает), остальные команды незавершённый мастер не трогают.
func (d *Dispatcher) HandleCommand(ctx context.Context, userID int64, command, displayName string) string {
	lock := d.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	switch command {
	case "start":
		_, hasProfile := d.users.GetProfile(userID)
		return replyStart(displayName, hasProfile)

	case "profile":
		user, ok := d.users.GetProfile(userID)
		if !ok {
			return replyNoProfile
		}
		return replyProfile(user)

	case "set_profile":
		state := d.machine.Start(userID, fsm.FlowSetProfile)
		// Имя берём из Telegram, мастер его не спрашивает
		state.Data["name"] = displayName
		return fsm.Steps(fsm.FlowSetProfile)[0].Prompt

	case "log_water":
		return d.startLogFlow(userID, fsm.FlowLogWater)

	case "log_food":
		return d.startLogFlow(userID, fsm.FlowLogFood)

	case "log_workout":
		return d.startLogFlow(userID, fsm.FlowLogWorkout)

	case "current_progress":
		user, ok := d.users.GetProfile(userID)
		if !ok {
			return replyNoProfile
		}
		log, err := d.users.TodayLog(ctx, userID)
		if err != nil {
			return replyWeatherUnavailable
		}
		return replyProgress(user, log)

	default:
		return replyUnknownCommand
	}
}

// Мастера записи требуют настроенный профиль: без него мастер не
// запускается и состояние не создаётся.
func (d *Dispatcher) startLogFlow(userID int64, flow fsm.Flow) string {
	if _, ok := d.users.GetProfile(userID); !ok {
		return replyNoProfile
	}
	d.machine.Start(userID, flow)
	return fsm.Steps(flow)[0].Prompt
}

// HandleStepInput обрабатывает ответ на текущий шаг активного мастера.
// Невалидный ввод повторяет тот же шаг без ограничения попыток.
func (d *Dispatcher) HandleStepInput(ctx context.Context, userID int64, text string) string {
	lock := d.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	state, ok := d.machine.Get(userID)
	if !ok {
		return replyUnknownCommand
	}

	steps := fsm.Steps(state.Flow)
	step := steps[state.Step]

	switch step.Kind {
	case fsm.FieldInt:
		value, ok := fsm.ParseInt(text, step.MinVal, step.MaxVal)
		if !ok {
			return replyBadNumber(step.MinVal, step.MaxVal)
		}
		state.Data[step.Field] = value

	case fsm.FieldString:
		value, ok := fsm.ValidateString(text, step.MinLen, step.MaxLen)
		if !ok {
			return replyBadValue
		}
		if step.CheckCity {
			// Город должен быть известен погодному сервису, иначе
			// переспрашиваем этот же шаг, не прерывая мастер
			if _, err := d.weather.FetchCityTemperature(ctx, value); err != nil {
				return replyBadCity
			}
		}
		state.Data[step.Field] = value
	}

	if state.Step+1 < len(steps) {
		state.Step++
		return steps[state.Step].Prompt
	}

	return d.finishFlow(ctx, userID, state)
}

// Последний шаг пройден: фиксируем накопленные значения в сервисах
// и сбрасываем состояние мастера.
func (d *Dispatcher) finishFlow(ctx context.Context, userID int64, state *fsm.State) string {
	defer d.machine.Delete(userID)

	switch state.Flow {
	case fsm.FlowSetProfile:
		d.users.SetProfile(service.CreateProfileDTO{
			TelegramID: userID,
			Name:       state.Data["name"].(string),
			Weight:     state.Data["weight"].(int),
			Height:     state.Data["height"].(int),
			Age:        state.Data["age"].(int),
			Activity:   state.Data["activity"].(int),
			City:       state.Data["city"].(string),
		})
		return replyProfileSet()

	case fsm.FlowLogWater:
		log, err := d.users.LogWater(ctx, userID, state.Data["amount"].(int))
		if err != nil {
			return replyWeatherUnavailable
		}
		return replyWaterLogged(log)

	case fsm.FlowLogFood:
		log, err := d.users.LogFood(ctx, userID, state.Data["food"].(string), state.Data["amount"].(int))
		if err != nil {
			return replyWeatherUnavailable
		}
		return replyFoodLogged(log)

	case fsm.FlowLogWorkout:
		log, err := d.users.LogWorkout(ctx, userID, state.Data["workout"].(string), state.Data["duration"].(int))
		if err != nil {
			return replyWeatherUnavailable
		}
		return replyWorkoutLogged(log)
	}

	return replyUnknownCommand
}
