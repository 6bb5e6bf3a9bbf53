package types

// Scorer turns a player's guess and the number of sets they won into points.
type Scorer interface {
	Score(guess, won int) int
}

// ScorerFunc adapts a function to the Scorer interface.
type ScorerFunc func(guess, won int) int

func (f ScorerFunc) Score(guess, won int) int {
	return f(guess, won)
}

var (
	// WizardScorer awards 20 plus 10 per set for an exact guess and takes 10 per set missed.
	WizardScorer = ScorerFunc(func(guess, won int) int {
		if guess == won {
			return 20 + 10*won
		}
		return -10 * abs(guess-won)
	})
	// OhHellScorer awards 10 plus one per set for an exact guess and nothing otherwise.
	OhHellScorer = ScorerFunc(func(guess, won int) int {
		if guess == won {
			return 10 + won
		}
		return 0
	})
	// SetsScorer awards one point per set won regardless of the guess.
	SetsScorer = ScorerFunc(func(guess, won int) int {
		return won
	})
)

var scorers = map[string]Scorer{
	"wizard":  WizardScorer,
	"oh-hell": OhHellScorer,
}

// ScorerFor returns the scorer registered for gameType, falling back to SetsScorer.
func ScorerFor(gameType string) Scorer {
	if s, ok := scorers[gameType]; ok {
		return s
	}
	return SetsScorer
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
