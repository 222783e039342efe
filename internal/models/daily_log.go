package models

type WaterLog struct {
	Amount int // мл
}

type FoodLog struct {
	Food   string
	Amount int // ккал
}

type WorkoutLog struct {
	Workout  string
	Duration int // минуты
}

// DailyLog — дневник одного пользователя за один календарный день.
// Температура и параметры профиля фиксируются один раз при создании дневника:
// цели за день считаются по профилю, каким он был на момент первого обращения,
// даже если профиль потом заменили.
type DailyLog struct {
	Day         string // "2006-01-02"
	Temperature float64

	// Снимок профиля на момент создания
	Weight   int
	Height   int
	Age      int
	Activity int

	WaterLogs   []WaterLog
	FoodLogs    []FoodLog
	WorkoutLogs []WorkoutLog
}

func NewDailyLog(day string, temperature float64, user *User) *DailyLog {
	return &DailyLog{
		Day:         day,
		Temperature: temperature,
		Weight:      user.Weight,
		Height:      user.Height,
		Age:         user.Age,
		Activity:    user.Activity,
	}
}

// Записи только добавляются, редактирования и удаления нет.

func (l *DailyLog) LogWater(amount int) {
	l.WaterLogs = append(l.WaterLogs, WaterLog{Amount: amount})
}

func (l *DailyLog) LogFood(food string, amount int) {
	l.FoodLogs = append(l.FoodLogs, FoodLog{Food: food, Amount: amount})
}

func (l *DailyLog) LogWorkout(workout string, duration int) {
	l.WorkoutLogs = append(l.WorkoutLogs, WorkoutLog{Workout: workout, Duration: duration})
}

// Water - сколько воды выпито за день (мл)
func (l *DailyLog) Water() int {
	total := 0
	for _, w := range l.WaterLogs {
		total += w.Amount
	}
	return total
}

// WaterGoal - дневная норма воды (мл)
func (l *DailyLog) WaterGoal() int {
	goal := l.Weight * 30

	// если температура выше 25 градусов, добавляем 500 мл
	if l.Temperature > 25 {
		goal += 500
	}

	// +500 мл за каждые полные 30 минут дневной активности
	goal += l.Activity / 30 * 500

	goal += l.WaterAddedByWorkout()

	return goal
}

// WaterAddedByWorkout - +200 мл за каждые полные 30 минут тренировок
func (l *DailyLog) WaterAddedByWorkout() int {
	return l.WorkoutMinutes() / 30 * 200
}

// Calories - сколько калорий съедено за день
func (l *DailyLog) Calories() int {
	total := 0
	for _, f := range l.FoodLogs {
		total += f.Amount
	}
	return total
}

// CalorieBurned - каждая минута тренировки сжигает 10 калорий
func (l *DailyLog) CalorieBurned() int {
	return l.WorkoutMinutes() * 10
}

// CalorieGoal - дневная норма калорий по формуле Миффлина-Сан Жеора
// (единая формула для всех, поля пола в профиле нет)
func (l *DailyLog) CalorieGoal() float64 {
	goal := 10*float64(l.Weight) + 6.75*float64(l.Height) - 5*float64(l.Age) + 5

	goal += float64(l.CalorieAddedByWorkout())

	return goal
}

// CalorieAddedByWorkout - +200 калорий за каждые полные 60 минут тренировок
func (l *DailyLog) CalorieAddedByWorkout() int {
	return l.WorkoutMinutes() / 60 * 200
}

func (l *DailyLog) WorkoutCount() int {
	return len(l.WorkoutLogs)
}

func (l *DailyLog) WorkoutMinutes() int {
	total := 0
	for _, w := range l.WorkoutLogs {
		total += w.Duration
	}
	return total
}
