package api

// ErrorKind classifies how a request failed. Transport failures (DNS,
// timeout, connection refused) and backend rejections (non-2xx) surface
// through the same envelope but stay distinguishable for diagnostics.
type ErrorKind string

const (
	// ErrorKindNone is the zero value for successful envelopes.
	ErrorKindNone ErrorKind = ""
	// ErrorKindTransport marks network-level failures.
	ErrorKindTransport ErrorKind = "transport"
	// ErrorKindBackend marks non-2xx backend responses.
	ErrorKindBackend ErrorKind = "backend"
)

// Envelope is the uniform result wrapper returned by every API client
// operation. Failures are carried as data: client methods never return
// a Go error for backend rejections or network failures.
type Envelope[T any] struct {
	Data    T         `json:"data"`
	Errors  []string  `json:"errors,omitempty"`
	Kind    ErrorKind `json:"-"`
	Success bool      `json:"success"`
}

// Ok builds a successful envelope around data.
func Ok[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: data}
}

// Fail builds a failed envelope with the given kind and error strings.
func Fail[T any](kind ErrorKind, errs ...string) Envelope[T] {
	return Envelope[T]{Kind: kind, Errors: errs}
}

// User represents the authenticated principal as returned by the backend.
// It is never mutated locally, only replaced wholesale from a profile fetch.
type User struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Country     string `json:"country,omitempty"`
	Affiliation string `json:"affiliation,omitempty"`
	Website     string `json:"website,omitempty"`
	Bracket     string `json:"bracket,omitempty"`
	Created     string `json:"created,omitempty"`
	ID          int    `json:"id"`
	TeamID      int    `json:"team_id,omitempty"`
}

// ChallengeFile describes a downloadable attachment of a challenge.
type ChallengeFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Challenge is a read-only projection of a competition task.
type Challenge struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	Type           string   `json:"type"`
	State          string   `json:"state"`
	ConnectionInfo string   `json:"connection_info,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Files          []string `json:"files,omitempty"`
	ID             int      `json:"id"`
	Value          int      `json:"value"`
	MaxAttempts    int      `json:"max_attempts,omitempty"`
	Solves         int      `json:"solves"`
	SolvedByMe     bool     `json:"solved_by_me"`
}

// ScoreboardEntry is one ranked participant.
type ScoreboardEntry struct {
	Name        string `json:"name"`
	AccountURL  string `json:"account_url,omitempty"`
	AccountType string `json:"account_type,omitempty"`
	Affiliation string `json:"affiliation,omitempty"`
	Bracket     string `json:"bracket,omitempty"`
	Pos         int    `json:"pos"`
	AccountID   int    `json:"account_id"`
	Score       int    `json:"score"`
}

// LoginRequest carries credentials for POST /api/v1/tokens.
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// TokenData is the payload of a successful login.
type TokenData struct {
	Token string `json:"token"`
}

// RegisterRequest carries the payload for POST /api/v1/users.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AttemptRequest carries a flag submission for POST /api/v1/challenges/attempt.
type AttemptRequest struct {
	Submission  string `json:"submission"`
	ChallengeID int    `json:"challenge_id"`
}

// AttemptStatus is the closed enumeration of flag submission outcomes.
// The backend is authoritative; the client performs no rate limiting or
// flag validation of its own.
type AttemptStatus string

const (
	AttemptCorrect       AttemptStatus = "correct"
	AttemptIncorrect     AttemptStatus = "incorrect"
	AttemptAlreadySolved AttemptStatus = "already_solved"
	AttemptRatelimited   AttemptStatus = "ratelimited"
)

// AttemptResponse is the backend's verdict on a flag submission.
type AttemptResponse struct {
	Status  AttemptStatus `json:"status"`
	Message string        `json:"message"`
}

// ErrorResponse is the backend's failure body: zero or more error strings
// plus an optional single message.
type ErrorResponse struct {
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Success bool     `json:"success"`
}

// Difficulty is a display projection derived from a challenge's point value.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// DifficultyFor maps a point value to a difficulty bucket.
func DifficultyFor(points int) Difficulty {
	switch {
	case points <= 100:
		return DifficultyEasy
	case points <= 300:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}
