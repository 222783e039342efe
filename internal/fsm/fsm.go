package fsm

import "sync"

// State - положение пользователя внутри одного мастера: какой мастер,
// какой шаг и что уже введено. Накопленные значения попадают в сервисы
// только на последнем шаге, до этого они нигде не видны.
type State struct {
	Flow Flow
	Step int
	Data map[string]interface{}
}

// Machine управляет состояниями всех пользователей
type Machine struct {
	mu     sync.RWMutex
	states map[int64]*State
}

func NewMachine() *Machine {
	return &Machine{
		states: make(map[int64]*State),
	}
}

// Get - получить состояние
func (m *Machine) Get(userID int64) (*State, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, exists := m.states[userID]
	return state, exists
}

// Start - начать мастер с первого шага. Если другой мастер был в процессе,
// его состояние молча отбрасывается: последняя команда побеждает.
func (m *Machine) Start(userID int64, flow Flow) *State {
	m.mu.Lock()
	defer m.mu.Unlock()
	state := &State{
		Flow: flow,
		Data: make(map[string]interface{}),
	}
	m.states[userID] = state
	return state
}

// Delete - сбросить состояние (мастер завершён или прерван)
func (m *Machine) Delete(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.states, userID)
}
