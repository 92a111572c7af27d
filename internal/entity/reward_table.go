package entity

import "sync"

const (
	RewardWin  = 1
	RewardLoss = -1
	RewardDraw = 0
)

// RewardTable accumulates end-of-game rewards per board key.
// It is safe for concurrent use.
type RewardTable struct {
	mu      sync.RWMutex
	rewards map[string]int
}

func NewRewardTable() *RewardTable {
	return &RewardTable{rewards: make(map[string]int)}
}

// Get returns the reward for key, 0 if it was never written.
func (that *RewardTable) Get(key string) int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.rewards[key]
}

func (that *RewardTable) Accumulate(key string, delta int) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.rewards[key] += delta
}

// UpdateFromGame adds the game's reward to every position of the history,
// the empty board included. Repeated positions accumulate once per visit.
func (that *RewardTable) UpdateFromGame(history History, winner Cell) int {
	reward := RewardFor(winner)

	that.mu.Lock()
	defer that.mu.Unlock()

	for _, state := range history.states {
		that.rewards[state.Board.Key()] += reward
	}

	return reward
}

// RewardFor scores a finished game from the computer's side.
func RewardFor(winner Cell) int {
	switch winner {
	case ComputerMark:
		return RewardWin
	case HumanMark:
		return RewardLoss
	default:
		return RewardDraw
	}
}

func (that *RewardTable) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.rewards)
}

// Snapshot copies the table for persistence.
func (that *RewardTable) Snapshot() map[string]int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	snapshot := make(map[string]int, len(that.rewards))
	for key, reward := range that.rewards {
		snapshot[key] = reward
	}

	return snapshot
}

// Load merges persisted rewards into the table, replacing existing keys.
func (that *RewardTable) Load(rewards map[string]int) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for key, reward := range rewards {
		that.rewards[key] = reward
	}
}
