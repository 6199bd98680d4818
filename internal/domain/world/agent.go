package world

import "sync"

type AgentStatus string

const (
	StatusIdle          AgentStatus = "IDLE"
	StatusExecutingGoal AgentStatus = "EXECUTING_GOAL"
)

// GoalObserver is notified whenever a goal is assigned to an agent it is
// subscribed to. How the observer schedules work on the goal is entirely
// its own concern; the world never drives agent behavior.
type GoalObserver interface {
	GoalSet(a *Agent, goal string)
}

// Agent is a mutable world entity. Vitals, inventory, position and action
// points are guarded by the world that the agent is registered in; goal,
// status and the progress log belong to the controller side and carry
// their own lock so controllers can use them without the world guard.
type Agent struct {
	Name         string
	Health       int
	Energy       int
	Inventory    []Item
	ActionPoints int
	Position     Point

	mu        sync.Mutex
	goal      string
	status    AgentStatus
	observers []GoalObserver
	progress  []string
}

func NewAgent(name string, health, energy int) *Agent {
	return &Agent{
		Name:   name,
		Health: health,
		Energy: energy,
		status: StatusIdle,
	}
}

// CanAct gates every action-consuming operation. Caller holds the world
// guard.
func (a *Agent) CanAct() bool {
	return a.ActionPoints > 0 && a.Health > 0 && a.Energy > 0
}

// SetGoal assigns a goal, marks the agent as executing it and notifies the
// subscribed observers.
func (a *Agent) SetGoal(goal string) {
	a.mu.Lock()
	a.goal = goal
	a.status = StatusExecutingGoal
	observers := make([]GoalObserver, len(a.observers))
	copy(observers, a.observers)
	a.mu.Unlock()

	for _, obs := range observers {
		obs.GoalSet(a, goal)
	}
}

// SetIdle is expected to be called by the agent controller once the goal
// is reached or abandoned.
func (a *Agent) SetIdle() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.goal = ""
	a.status = StatusIdle
}

func (a *Agent) Goal() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.goal
}

func (a *Agent) Status() AgentStatus {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

func (a *Agent) Subscribe(obs GoalObserver) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.observers = append(a.observers, obs)
}

// AppendProgress records a human-readable progress message for the agent's
// controller surface.
func (a *Agent) AppendProgress(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.progress = append(a.progress, message)
}

// DrainProgress returns the accumulated progress messages in FIFO order
// and clears the log.
func (a *Agent) DrainProgress() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := a.progress
	a.progress = nil
	return out
}
