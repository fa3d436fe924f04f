package infra

import (
	"errors"
	"sync"
	"time"
)

// CircuitBreaker guards the SMTP relay so a dead mail server cannot stall
// the reminder scan. Classic three-state machine: closed (mail flows), open
// (fast-fail), half-open (single probe after the cooldown).

// ErrCircuitOpen is returned when Execute is called while the breaker is open.
var ErrCircuitOpen = errors.New("circuit breaker is open")

type cbState int

const (
	cbClosed cbState = iota
	cbOpen
	cbHalfOpen
)

func (s cbState) String() string {
	switch s {
	case cbClosed:
		return "closed"
	case cbOpen:
		return "open"
	case cbHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

type CircuitBreaker struct {
	mu          sync.Mutex
	state       cbState
	failures    int
	successes   int
	lastFailure time.Time

	failureThreshold int
	successThreshold int
	openTimeout      time.Duration
}

// NewCircuitBreaker creates a breaker in the closed state. It trips open
// after failureThreshold consecutive failures, probes again after
// openTimeout, and closes after successThreshold good probes.
func NewCircuitBreaker(failureThreshold, successThreshold int, openTimeout time.Duration) *CircuitBreaker {
	if failureThreshold <= 0 {
		failureThreshold = 5
	}
	if successThreshold <= 0 {
		successThreshold = 2
	}
	if openTimeout <= 0 {
		openTimeout = 60 * time.Second
	}
	return &CircuitBreaker{
		failureThreshold: failureThreshold,
		successThreshold: successThreshold,
		openTimeout:      openTimeout,
	}
}

// State returns the current state name for logging.
func (cb *CircuitBreaker) State() string {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.maybeProbe()
	return cb.state.String()
}

// Execute runs fn through the breaker. Returns ErrCircuitOpen immediately
// while the breaker is open.
func (cb *CircuitBreaker) Execute(fn func() error) error {
	cb.mu.Lock()
	cb.maybeProbe()
	if cb.state == cbOpen {
		cb.mu.Unlock()
		return ErrCircuitOpen
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	if err != nil {
		cb.onFailure()
		return err
	}
	cb.onSuccess()
	return nil
}

// maybeProbe transitions open → half-open once the cooldown has elapsed.
// Must be called under lock.
func (cb *CircuitBreaker) maybeProbe() {
	if cb.state == cbOpen && time.Since(cb.lastFailure) >= cb.openTimeout {
		cb.state = cbHalfOpen
		cb.successes = 0
	}
}

func (cb *CircuitBreaker) onFailure() {
	cb.failures++
	cb.lastFailure = time.Now()

	switch cb.state {
	case cbClosed:
		if cb.failures >= cb.failureThreshold {
			cb.state = cbOpen
			cb.successes = 0
		}
	case cbHalfOpen:
		// Probe failed, back to open.
		cb.state = cbOpen
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) onSuccess() {
	switch cb.state {
	case cbClosed:
		cb.failures = 0
	case cbHalfOpen:
		cb.successes++
		if cb.successes >= cb.successThreshold {
			cb.state = cbClosed
			cb.failures = 0
			cb.successes = 0
		}
	}
}
