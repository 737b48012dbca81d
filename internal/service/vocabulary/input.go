package vocabulary

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/flashcards/internal/domain"
)

// MatchMode selects how a lesson reference is compared with stored titles.
type MatchMode int

const (
	// MatchFragment finds the oldest lesson whose title contains the reference.
	MatchFragment MatchMode = iota
	// MatchExact finds the oldest lesson whose title equals the reference.
	MatchExact
)

func (m MatchMode) String() string {
	switch m {
	case MatchFragment:
		return "fragment"
	case MatchExact:
		return "exact"
	default:
		return "unknown"
	}
}

// AddWordsInput holds the parameters for adding pairs to an existing lesson.
type AddWordsInput struct {
	Lesson string
	Match  MatchMode
	Pairs  []domain.WordPair
}

// Validate checks all fields and collects all errors.
func (i AddWordsInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Lesson) == "" {
		errs = append(errs, domain.FieldError{Field: "lesson", Message: "required"})
	}
	if i.Match != MatchFragment && i.Match != MatchExact {
		errs = append(errs, domain.FieldError{Field: "match", Message: "unknown match mode"})
	}
	errs = append(errs, validatePairs(i.Pairs)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ImportInput holds the parameters for importing pairs into a lesson that
// may not exist yet.
type ImportInput struct {
	Title   string
	OwnerID uuid.UUID // uuid.Nil = take the owner of any existing lesson
	Pairs   []domain.WordPair
}

// Validate checks all fields and collects all errors.
func (i ImportInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(i.Pairs) == 0 {
		errs = append(errs, domain.FieldError{Field: "pairs", Message: "at least one pair is required"})
	}
	errs = append(errs, validatePairs(i.Pairs)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validatePairs(pairs []domain.WordPair) []domain.FieldError {
	var errs []domain.FieldError
	for _, p := range pairs {
		if _, ok := domain.NewWordPair(p.Term, p.Translation); !ok {
			errs = append(errs, domain.FieldError{Field: "pairs", Message: "empty term or translation: " + p.String()})
		}
	}
	return errs
}
