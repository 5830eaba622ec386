package trigger

import "strings"

type ResultState int

const (
	Idle ResultState = iota
	Loading
	Positive
	Negative
	Neutral
	Error
)

// String returns the classification tag applied to the result container.
func (s ResultState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	case Neutral:
		return "neutral"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Tokens are checked in order; the first one found in the reply wins, not
// the first one to occur in it.
var sentimentTokens = []struct {
	token string
	state ResultState
}{
	{"POSITIVE", Positive},
	{"NEGATIVE", Negative},
	{"NEUTRAL", Neutral},
}

// Classify maps a classifier reply to a state by case-insensitive substring
// match. Replies carrying no sentiment token are errors.
func Classify(body string) ResultState {
	upper := strings.ToUpper(body)
	for _, t := range sentimentTokens {
		if strings.Contains(upper, t.token) {
			return t.state
		}
	}
	return Error
}

// Render prefixes body with the marker for state.
func Render(state ResultState, body string) string {
	switch state {
	case Positive:
		return "✅ " + body
	case Negative:
		return "❌ " + body
	case Neutral:
		return "➖ " + body
	default:
		return "⚠ " + body
	}
}

func NetworkErrorMessage(err error) string {
	return "⚠ Network error. Please try again. (" + err.Error() + ")"
}
