package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"nutritrack/internal/domain"
)

// SessionState is the client's position in the sign-in flow.
type SessionState int

const (
	SignedOut SessionState = iota
	Authenticating
	ProfileCheckPending
	SignedIn
	ResettingPassword
)

var stateNames = [...]string{"signed_out", "authenticating", "profile_check_pending", "signed_in", "resetting_password"}

func (s SessionState) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("SessionState(%d)", int(s))
}

// MarshalText encodes the state by name.
func (s SessionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Screen is what the client should display for a session.
type Screen string

const (
	ScreenAuth          Screen = "auth"
	ScreenLoading       Screen = "loading"
	ScreenProfileForm   Screen = "profile_form"
	ScreenDashboard     Screen = "dashboard"
	ScreenResetPassword Screen = "reset_password"
)

// EventKind identifies a session event.
type EventKind int

const (
	SignInStarted EventKind = iota
	SignInSucceeded
	SignInFailed
	ProfileChecked
	SignedOutEvent
	PasswordResetRequested
	PasswordResetCompleted
)

// SessionEvent is a completed action that may move the session.
// User accompanies SignInSucceeded; HasProfile accompanies ProfileChecked.
type SessionEvent struct {
	Kind       EventKind
	User       *domain.User
	HasProfile bool
}

// ErrInvalidTransition is returned when an event does not apply to the
// current state.
var ErrInvalidTransition = errors.New("invalid session transition")

// Session is an immutable snapshot of the sign-in state machine.
type Session struct {
	State      SessionState `json:"state"`
	User       *domain.User `json:"-"`
	HasProfile bool         `json:"hasProfile"`
}

// Apply returns the session after ev, or ErrInvalidTransition.
// Signing out and requesting a password reset are accepted from any state.
func (s Session) Apply(ev SessionEvent) (Session, error) {
	switch ev.Kind {
	case SignedOutEvent:
		return Session{State: SignedOut}, nil
	case PasswordResetRequested:
		return Session{State: ResettingPassword}, nil
	}

	switch s.State {
	case SignedOut:
		if ev.Kind == SignInStarted {
			return Session{State: Authenticating}, nil
		}
	case Authenticating:
		switch ev.Kind {
		case SignInSucceeded:
			if ev.User == nil {
				return s, fmt.Errorf("%w: sign-in without user", ErrInvalidTransition)
			}
			return Session{State: ProfileCheckPending, User: ev.User}, nil
		case SignInFailed:
			return Session{State: SignedOut}, nil
		}
	case ProfileCheckPending:
		if ev.Kind == ProfileChecked {
			return Session{State: SignedIn, User: s.User, HasProfile: ev.HasProfile}, nil
		}
	case SignedIn:
		if ev.Kind == ProfileChecked {
			return Session{State: SignedIn, User: s.User, HasProfile: ev.HasProfile}, nil
		}
	case ResettingPassword:
		if ev.Kind == PasswordResetCompleted {
			return Session{State: SignedOut}, nil
		}
	}
	return s, fmt.Errorf("%w: event %d in state %s", ErrInvalidTransition, ev.Kind, s.State)
}

// Screen maps the state to the screen the client should show.
func (s Session) Screen() Screen {
	switch s.State {
	case Authenticating, ProfileCheckPending:
		return ScreenLoading
	case SignedIn:
		if s.HasProfile {
			return ScreenDashboard
		}
		return ScreenProfileForm
	case ResettingPassword:
		return ScreenResetPassword
	default:
		return ScreenAuth
	}
}

// SessionController serializes events for one client session.
type SessionController struct {
	mu      sync.Mutex
	current Session
}

// NewSessionController starts in SignedOut.
func NewSessionController() *SessionController {
	return &SessionController{}
}

// Dispatch applies ev. On an invalid transition the session is unchanged.
func (c *SessionController) Dispatch(ev SessionEvent) (Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := c.current.Apply(ev)
	if err != nil {
		return c.current, err
	}
	c.current = next
	return next, nil
}

// Current returns the latest snapshot.
func (c *SessionController) Current() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// SessionResolver drives the state machine from a session token: the token
// lookup and the profile lookup are the completion events.
type SessionResolver struct {
	auth     *AuthService
	profiles *ProfileService
}

// NewSessionResolver creates a SessionResolver.
func NewSessionResolver(auth *AuthService, profiles *ProfileService) *SessionResolver {
	return &SessionResolver{auth: auth, profiles: profiles}
}

// Resolve returns the session for token. Unknown or expired tokens resolve to
// SignedOut; only storage failures return an error.
func (r *SessionResolver) Resolve(ctx context.Context, token, userAgent string) (Session, error) {
	c := NewSessionController()
	if token == "" {
		return c.Current(), nil
	}
	if _, err := c.Dispatch(SessionEvent{Kind: SignInStarted}); err != nil {
		return c.Current(), err
	}

	user, err := r.auth.ValidateSession(ctx, token, userAgent)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) || errors.Is(err, ErrSessionExpired) || errors.Is(err, ErrUserNotFound) {
			return c.Dispatch(SessionEvent{Kind: SignInFailed})
		}
		return c.Current(), err
	}
	return r.ResolveUser(ctx, c, user)
}

// ResolveUser completes sign-in for an already authenticated user.
func (r *SessionResolver) ResolveUser(ctx context.Context, c *SessionController, user *domain.User) (Session, error) {
	if c.Current().State == SignedOut {
		if _, err := c.Dispatch(SessionEvent{Kind: SignInStarted}); err != nil {
			return c.Current(), err
		}
	}
	if _, err := c.Dispatch(SessionEvent{Kind: SignInSucceeded, User: user}); err != nil {
		return c.Current(), err
	}
	ok, err := r.profiles.Exists(ctx, user.ID)
	if err != nil {
		return c.Current(), err
	}
	return c.Dispatch(SessionEvent{Kind: ProfileChecked, HasProfile: ok})
}
