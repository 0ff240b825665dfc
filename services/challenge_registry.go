package services

import (
	"fmt"
	"sync"
	"time"

	"racing-league/models"
)

// DefaultChallengeTTL is how long an open challenge stays acceptable.
const DefaultChallengeTTL = 30 * time.Minute

// ChallengeRegistry owns the open PvP challenges. Every operation takes the
// registry lock, so accepting is an atomic check-and-remove.
type ChallengeRegistry struct {
	mu         sync.Mutex
	challenges map[string]models.Challenge
	ttl        time.Duration
	now        func() time.Time
}

func NewChallengeRegistry(ttl time.Duration) *ChallengeRegistry {
	if ttl <= 0 {
		ttl = DefaultChallengeTTL
	}
	return &ChallengeRegistry{
		challenges: make(map[string]models.Challenge),
		ttl:        ttl,
		now:        time.Now,
	}
}

// WithClock swaps the time source (tests).
func (r *ChallengeRegistry) WithClock(now func() time.Time) *ChallengeRegistry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
	return r
}

func (r *ChallengeRegistry) TTL() time.Duration {
	return r.ttl
}

// Create opens a challenge. Ids combine the challenger with the creation time
// and are bumped until unique, so one challenger may hold several challenges.
func (r *ChallengeRegistry) Create(challengerID, challengerName string, vehicleID int, loc models.Location) models.Challenge {
	r.mu.Lock()
	defer r.mu.Unlock()

	createdAt := r.now()
	stamp := createdAt.UnixNano()
	id := fmt.Sprintf("%s_%d", challengerID, stamp)
	for {
		if _, taken := r.challenges[id]; !taken {
			break
		}
		stamp++
		id = fmt.Sprintf("%s_%d", challengerID, stamp)
	}

	ch := models.Challenge{
		ID:                  id,
		ChallengerID:        challengerID,
		ChallengerName:      challengerName,
		ChallengerVehicleID: vehicleID,
		Location:            loc,
		CreatedAt:           createdAt,
	}
	r.challenges[id] = ch
	return ch
}

// Accept consumes the challenge for the accepter. A challenge past its TTL is
// dropped here as well, even if the sweep has not run yet. A self-accept
// leaves the challenge open.
func (r *ChallengeRegistry) Accept(challengeID, accepterID string) (models.Challenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch, ok := r.challenges[challengeID]
	if !ok {
		return models.Challenge{}, ErrChallengeNotFound
	}
	if r.expired(ch, r.now()) {
		delete(r.challenges, challengeID)
		return models.Challenge{}, ErrChallengeNotFound
	}
	if ch.ChallengerID == accepterID {
		return models.Challenge{}, ErrSelfAccept
	}
	delete(r.challenges, challengeID)
	return ch, nil
}

// Get returns an open challenge without consuming it.
func (r *ChallengeRegistry) Get(challengeID string) (models.Challenge, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch, ok := r.challenges[challengeID]
	if !ok || r.expired(ch, r.now()) {
		return models.Challenge{}, false
	}
	return ch, true
}

// SweepExpired removes every challenge older than the TTL and returns how many went.
func (r *ChallengeRegistry) SweepExpired(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, ch := range r.challenges {
		if r.expired(ch, now) {
			delete(r.challenges, id)
			removed++
		}
	}
	return removed
}

// Len counts open challenges, expired-but-unswept ones included.
func (r *ChallengeRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.challenges)
}

func (r *ChallengeRegistry) expired(ch models.Challenge, now time.Time) bool {
	return now.Sub(ch.CreatedAt) > r.ttl
}
