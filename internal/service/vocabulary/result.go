package vocabulary

import "github.com/heartmarshall/flashcards/internal/domain"

// Result describes what happened to every pair of a request.
type Result struct {
	Lesson   *domain.Lesson
	Created  bool // the lesson was created by this call
	Outcomes []PairOutcome
	// WordCount is the number of words in the lesson after the call,
	// -1 when it could not be read.
	WordCount int
}

// PairOutcome is the result of storing one pair. Err is nil on success.
type PairOutcome struct {
	Pair domain.WordPair
	Word *domain.Word
	Err  error
}

// Added returns the number of stored pairs.
func (r *Result) Added() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the number of pairs that could not be stored.
func (r *Result) Failed() int {
	return len(r.Outcomes) - r.Added()
}
