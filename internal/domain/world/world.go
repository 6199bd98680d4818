package world

import (
	"errors"
	"math/rand"
	"sort"
	"sync"
	"time"
)

var (
	ErrInvalidDimensions = errors.New("world dimensions must be positive")
	ErrNotRegistered     = errors.New("agent not registered")
)

type Config struct {
	Width  int
	Height int
	// Rand drives attack target selection. Inject a seeded source for
	// reproducible runs; left nil, the world seeds its own.
	Rand *rand.Rand
}

// World owns the grid and the agent registry and serializes every
// operation behind a single per-world guard. Operations validate before
// they mutate; a false return leaves the world untouched, except for the
// forward-only death resolution inside MoveAgent and Attack.
type World struct {
	mu     sync.Mutex
	width  int
	height int
	grid   [][]*Cell
	agents map[string]*Agent
	turn   int
	rng    *rand.Rand
}

func New(cfg Config) (*World, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrInvalidDimensions
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	grid := make([][]*Cell, cfg.Width)
	for x := range grid {
		grid[x] = make([]*Cell, cfg.Height)
		for y := range grid[x] {
			grid[x][y] = &Cell{}
		}
	}
	return &World{
		width:  cfg.Width,
		height: cfg.Height,
		grid:   grid,
		agents: make(map[string]*Agent),
		rng:    rng,
	}, nil
}

func (w *World) Width() int  { return w.width }
func (w *World) Height() int { return w.height }

// Agent resolves a registered agent by name.
func (w *World) Agent(name string) (*Agent, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	a, ok := w.agents[name]
	return a, ok
}

func (w *World) Turn() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.turn
}

// NewTurn advances the turn counter and resets every registered agent's
// action points to the given budget.
func (w *World) NewTurn(budget int) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.turn++
	for _, a := range w.agents {
		a.ActionPoints = budget
	}
	return w.turn
}

// AddAgent registers the agent and places it at pos. It deliberately does
// not check passability or existing occupants, so agents may be placed
// onto obstacles or stacked together.
func (w *World) AddAgent(a *Agent, pos Point) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if a == nil || !w.inBounds(pos.X, pos.Y) {
		return false
	}
	if _, exists := w.agents[a.Name]; exists {
		return false
	}
	w.agents[a.Name] = a
	a.Position = pos
	cell := w.grid[pos.X][pos.Y]
	cell.Occupants = append(cell.Occupants, a)
	return true
}

func (w *World) RemoveAgent(a *Agent) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.registeredLocked(a) {
		return false
	}
	w.removeAgentLocked(a)
	return true
}

// MoveAgent attempts to move the agent one cell in an orthogonal
// direction. An active trap on the destination fires once for fixed
// damage and disarms; a lethal trap still completes the move before death
// handling runs.
func (w *World) MoveAgent(a *Agent, d Direction) bool {
	mustOrthogonal(d)
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.registeredLocked(a) || !a.CanAct() {
		return false
	}
	dx, dy := d.Delta()
	nx, ny := a.Position.X+dx, a.Position.Y+dy
	if !w.inBounds(nx, ny) {
		return false
	}
	dest := w.grid[nx][ny]
	if !dest.Passable() {
		return false
	}

	if dest.Trap {
		a.Health -= TrapDamage
		dest.Trap = false
	}

	a.ActionPoints -= MoveCost
	w.grid[a.Position.X][a.Position.Y].removeOccupant(a)
	dest.Occupants = append(dest.Occupants, a)
	a.Position = Point{X: nx, Y: ny}

	if a.Health <= 0 {
		w.handleDeathLocked(a)
	}
	return true
}

// Attack strikes one uniformly-chosen occupant of the adjacent cell.
// Damage is the base plus the value of the first weapon in the attacker's
// inventory. The attacker pays the action cost after damage and death
// resolution, lethal or not.
func (w *World) Attack(attacker *Agent, d Direction) bool {
	mustOrthogonal(d)
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.registeredLocked(attacker) || !attacker.CanAct() {
		return false
	}
	dx, dy := d.Delta()
	tx, ty := attacker.Position.X+dx, attacker.Position.Y+dy
	if !w.inBounds(tx, ty) {
		return false
	}
	targetCell := w.grid[tx][ty]
	if len(targetCell.Occupants) == 0 {
		return false
	}

	damage := BaseAttackDamage
	for _, item := range attacker.Inventory {
		if item.Type == ItemWeapon {
			damage += item.Value
			break
		}
	}

	target := targetCell.Occupants[w.rng.Intn(len(targetCell.Occupants))]
	target.Health -= damage
	if target.Health <= 0 {
		w.handleDeathLocked(target)
	}

	attacker.ActionPoints -= AttackCost
	return true
}

// PickItem moves the item at index from the agent's current cell into its
// inventory.
func (w *World) PickItem(a *Agent, index int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.registeredLocked(a) || !a.CanAct() {
		return false
	}
	cell := w.grid[a.Position.X][a.Position.Y]
	if index < 0 || index >= len(cell.Items) {
		return false
	}
	item := cell.Items[index]
	cell.Items = append(cell.Items[:index], cell.Items[index+1:]...)
	a.Inventory = append(a.Inventory, item)
	a.ActionPoints -= PickCost
	return true
}

// EatFood consumes the first food item in the agent's inventory, restoring
// energy up to the cap.
func (w *World) EatFood(a *Agent) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.registeredLocked(a) || !a.CanAct() {
		return false
	}
	for i, item := range a.Inventory {
		if item.Type != ItemFood {
			continue
		}
		a.Energy = min(MaxEnergy, a.Energy+item.Value)
		a.Inventory = append(a.Inventory[:i], a.Inventory[i+1:]...)
		a.ActionPoints -= EatCost
		return true
	}
	return false
}

// InspectVicinity reports the agent's own cell and all eight neighbors.
// Read-only, costs nothing and is not gated on CanAct.
func (w *World) InspectVicinity(a *Agent) Vicinity {
	w.mu.Lock()
	defer w.mu.Unlock()
	var out Vicinity
	for i, d := range VicinityOrder {
		report := CellReport{Agents: []string{}, Items: []string{}, Terrain: []string{}}
		dx, dy := d.Delta()
		nx, ny := a.Position.X+dx, a.Position.Y+dy
		if w.inBounds(nx, ny) {
			cell := w.grid[nx][ny]
			for _, occ := range cell.Occupants {
				report.Agents = append(report.Agents, occ.Name)
			}
			for _, item := range cell.Items {
				report.Items = append(report.Items, item.Name)
			}
			report.Terrain = cell.TerrainFlags()
		}
		out[i] = report
	}
	return out
}

// InspectAgent returns a snapshot of the registered agent with the given
// agent's name, or ErrNotRegistered.
func (w *World) InspectAgent(a *Agent) (AgentReport, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	registered, ok := w.agents[a.Name]
	if !ok {
		return AgentReport{}, ErrNotRegistered
	}
	return reportFor(registered), nil
}

func (w *World) AddItem(x, y int, item Item) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.inBounds(x, y) {
		return false
	}
	w.grid[x][y].Items = append(w.grid[x][y].Items, item)
	return true
}

func (w *World) AddObstacle(x, y int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.inBounds(x, y) {
		return false
	}
	w.grid[x][y].Obstacle = true
	return true
}

func (w *World) AddTrap(x, y int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.inBounds(x, y) {
		return false
	}
	w.grid[x][y].Trap = true
	return true
}

func (w *World) AddPit(x, y int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.inBounds(x, y) {
		return false
	}
	w.grid[x][y].Pit = true
	return true
}

// Snapshot copies the observable world state under the guard so read-only
// consumers never see a torn intermediate state.
func (w *World) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	cells := make([][]CellSummary, w.width)
	for x := 0; x < w.width; x++ {
		cells[x] = make([]CellSummary, w.height)
		for y := 0; y < w.height; y++ {
			c := w.grid[x][y]
			cells[x][y] = CellSummary{
				Obstacle:  c.Obstacle,
				Trap:      c.Trap,
				Pit:       c.Pit,
				Items:     len(c.Items),
				Occupants: len(c.Occupants),
			}
		}
	}
	agents := make([]AgentReport, 0, len(w.agents))
	for _, a := range w.agents {
		agents = append(agents, reportFor(a))
	}
	sort.Slice(agents, func(i, j int) bool { return agents[i].Name < agents[j].Name })
	return Snapshot{
		Turn:   w.turn,
		Width:  w.width,
		Height: w.height,
		Cells:  cells,
		Agents: agents,
	}
}

// handleDeathLocked drops the dying agent's whole inventory onto its cell
// and deregisters it. Forward-only; there is no way back for the agent.
func (w *World) handleDeathLocked(a *Agent) {
	cell := w.grid[a.Position.X][a.Position.Y]
	cell.Items = append(cell.Items, a.Inventory...)
	a.Inventory = nil
	w.removeAgentLocked(a)
}

func (w *World) removeAgentLocked(a *Agent) {
	w.grid[a.Position.X][a.Position.Y].removeOccupant(a)
	delete(w.agents, a.Name)
}

// registeredLocked requires the registry entry to be this exact agent, so
// a stale reference to a dead namesake cannot act.
func (w *World) registeredLocked(a *Agent) bool {
	return a != nil && w.agents[a.Name] == a
}

func (w *World) inBounds(x, y int) bool {
	return x >= 0 && x < w.width && y >= 0 && y < w.height
}

func reportFor(a *Agent) AgentReport {
	names := make([]string, 0, len(a.Inventory))
	for _, item := range a.Inventory {
		names = append(names, item.Name)
	}
	return AgentReport{
		Name:         a.Name,
		Position:     a.Position,
		Health:       a.Health,
		Energy:       a.Energy,
		Inventory:    names,
		ActionPoints: a.ActionPoints,
		Status:       a.Status(),
	}
}
