package fsm

// Flow - вид мастера
type Flow int

const (
	FlowSetProfile Flow = iota
	FlowLogWater
	FlowLogFood
	FlowLogWorkout
)

// FieldKind - тип поля шага
type FieldKind int

const (
	FieldInt FieldKind = iota
	FieldString
)

// Step описывает один шаг мастера: что спросить, как проверить ответ
// и под каким именем сохранить значение.
type Step struct {
	Field  string
	Prompt string
	Kind   FieldKind

	// Для чисел границы строгие: принимается min < v < max
	MinVal int
	MaxVal int

	// Для строк границы включительные: принимается min <= len <= max
	MinLen int
	MaxLen int

	// Дополнительно проверить город через погодный сервис
	CheckCity bool
}

// Таблица переходов. Все мастера линейные: ни ветвлений, ни возвратов,
// невалидный ввод повторяет тот же шаг без ограничения попыток.
var flowSteps = map[Flow][]Step{
	FlowSetProfile: {
		{Field: "weight", Prompt: "Enter your <b>weight</b> (kg):", Kind: FieldInt, MinVal: 10, MaxVal: 500},
		{Field: "height", Prompt: "Enter your <b>height</b> (cm):", Kind: FieldInt, MinVal: 10, MaxVal: 260},
		{Field: "age", Prompt: "Enter your <b>age</b>:", Kind: FieldInt, MinVal: 18, MaxVal: 150},
		{Field: "activity", Prompt: "Enter your <b>daily activity</b> (minutes):", Kind: FieldInt, MinVal: 1, MaxVal: 1440},
		{Field: "city", Prompt: "Enter your <b>city</b>:", Kind: FieldString, MinLen: 1, MaxLen: 50, CheckCity: true},
	},
	FlowLogWater: {
		{Field: "amount", Prompt: "Enter the amount of water you drank (ml):", Kind: FieldInt, MinVal: 1, MaxVal: 10000},
	},
	FlowLogFood: {
		{Field: "food", Prompt: "Enter the food you ate:", Kind: FieldString, MinLen: 1, MaxLen: 50},
		{Field: "amount", Prompt: "Enter the amount of food you ate (calories):", Kind: FieldInt, MinVal: 1, MaxVal: 10000},
	},
	FlowLogWorkout: {
		{Field: "workout", Prompt: "Enter the workout you did:", Kind: FieldString, MinLen: 1, MaxLen: 50},
		{Field: "duration", Prompt: "Enter the duration of the workout (minutes):", Kind: FieldInt, MinVal: 1, MaxVal: 1440},
	},
}

// Steps - шаги мастера по порядку
func Steps(flow Flow) []Step {
	return flowSteps[flow]
}
