// Package store holds the demo backend's state. Everything lives in memory
// behind one mutex: the demo server exists for local development and
// integration tests, it deliberately persists nothing.
package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/ctfgrid/ctfgrid/pkg/api"
)

// Common store errors
var (
	ErrUserExists        = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrChallengeNotFound = errors.New("challenge not found")
)

// User is a registered demo account.
type User struct {
	Created      time.Time
	Name         string
	Email        string
	PasswordHash []byte
	ID           int
}

// Challenge is a competition task plus its secret flag. The flag never
// leaves the store; listings expose only the api.Challenge projection.
type Challenge struct {
	Flag string
	api.Challenge
}

// Store is the in-memory state of the demo backend.
type Store struct {
	users      map[int]*User
	byName     map[string]int
	challenges map[int]*Challenge
	solves     map[int]map[int]bool
	nextUserID int
	mu         sync.RWMutex
}

// New creates an empty store seeded with the given challenges.
func New(challenges []Challenge) *Store {
	s := &Store{
		users:      make(map[int]*User),
		byName:     make(map[string]int),
		challenges: make(map[int]*Challenge),
		solves:     make(map[int]map[int]bool),
		nextUserID: 1,
	}
	for i := range challenges {
		ch := challenges[i]
		s.challenges[ch.ID] = &ch
	}
	return s
}

// CreateUser registers a new account. Names are unique.
func (s *Store) CreateUser(name, email string, passwordHash []byte) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byName[name]; taken {
		return nil, ErrUserExists
	}

	user := &User{
		ID:           s.nextUserID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Created:      time.Now(),
	}
	s.nextUserID++

	s.users[user.ID] = user
	s.byName[name] = user.ID

	copied := *user
	return &copied, nil
}

// UserByName looks an account up by its unique name.
func (s *Store) UserByName(name string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byName[name]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *s.users[id]
	return &copied, nil
}

// UserByID looks an account up by id.
func (s *Store) UserByID(id int) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// Challenges returns the visible challenge projections ordered by id.
// When userID is non-zero, SolvedByMe reflects that user's solves.
func (s *Store) Challenges(userID int) []api.Challenge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]api.Challenge, 0, len(s.challenges))
	for _, ch := range s.challenges {
		out = append(out, s.projectLocked(ch, userID))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ChallengeByID returns one challenge projection.
func (s *Store) ChallengeByID(id, userID int) (api.Challenge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ch, ok := s.challenges[id]
	if !ok {
		return api.Challenge{}, ErrChallengeNotFound
	}
	return s.projectLocked(ch, userID), nil
}

// Flag returns the secret flag of a challenge.
func (s *Store) Flag(id int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ch, ok := s.challenges[id]
	if !ok {
		return "", ErrChallengeNotFound
	}
	return ch.Flag, nil
}

// HasSolved reports whether the user already solved the challenge.
func (s *Store) HasSolved(userID, challengeID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.solves[userID][challengeID]
}

// RecordSolve marks a challenge solved by a user.
func (s *Store) RecordSolve(userID, challengeID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.solves[userID] == nil {
		s.solves[userID] = make(map[int]bool)
	}
	s.solves[userID][challengeID] = true
}

// Scoreboard computes the ranked entries: score is the sum of solved
// challenge values, ties broken by name for a stable order.
func (s *Store) Scoreboard() []api.ScoreboardEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]api.ScoreboardEntry, 0, len(s.users))
	for id, user := range s.users {
		score := 0
		for chID := range s.solves[id] {
			if ch, ok := s.challenges[chID]; ok {
				score += ch.Value
			}
		}
		entries = append(entries, api.ScoreboardEntry{
			AccountID:   id,
			AccountType: "user",
			Name:        user.Name,
			Score:       score,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Name < entries[j].Name
	})
	for i := range entries {
		entries[i].Pos = i + 1
	}

	return entries
}

func (s *Store) projectLocked(ch *Challenge, userID int) api.Challenge {
	projection := ch.Challenge
	projection.Solves = 0
	for _, solved := range s.solves {
		if solved[ch.ID] {
			projection.Solves++
		}
	}
	projection.SolvedByMe = userID != 0 && s.solves[userID][ch.ID]
	return projection
}
