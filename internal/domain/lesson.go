package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Lesson is a named collection of vocabulary entries.
type Lesson struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Title        string
	Description  *string
	LanguageFrom string
	LanguageTo   string
	CreatedAt    time.Time
}

// Word is a vocabulary entry stored in a lesson.
type Word struct {
	ID          uuid.UUID
	LessonID    uuid.UUID
	Term        string
	Translation string
	CreatedAt   time.Time
}

// WordPair is one term/translation association waiting to be added to a lesson.
type WordPair struct {
	Term        string
	Translation string
}

// NewWordPair trims both sides. ok is false when either side ends up empty.
func NewWordPair(term, translation string) (WordPair, bool) {
	p := WordPair{
		Term:        strings.TrimSpace(term),
		Translation: strings.TrimSpace(translation),
	}
	return p, p.Term != "" && p.Translation != ""
}

// String renders the pair the way it is reported to the user.
func (p WordPair) String() string {
	return p.Term + " → " + p.Translation
}
