package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/flashcards/internal/app/csvimport"
	"github.com/heartmarshall/flashcards/internal/domain"
	"github.com/heartmarshall/flashcards/internal/parser"
	"github.com/heartmarshall/flashcards/internal/service/vocabulary"
)

type fakeVocabulary struct {
	addInputs    []vocabulary.AddWordsInput
	importInputs []vocabulary.ImportInput
	lesson       *domain.Lesson
	created      bool
	lookupErr    error
	insertErr    map[string]error
	wordCount    int
}

func (f *fakeVocabulary) outcomes(pairs []domain.WordPair) []vocabulary.PairOutcome {
	out := make([]vocabulary.PairOutcome, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, vocabulary.PairOutcome{Pair: p, Err: f.insertErr[p.Term]})
	}
	return out
}

func (f *fakeVocabulary) AddWords(_ context.Context, input vocabulary.AddWordsInput) (*vocabulary.Result, error) {
	f.addInputs = append(f.addInputs, input)
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return &vocabulary.Result{Lesson: f.lesson, Outcomes: f.outcomes(input.Pairs), WordCount: f.wordCount}, nil
}

func (f *fakeVocabulary) ImportWords(_ context.Context, input vocabulary.ImportInput) (*vocabulary.Result, error) {
	f.importInputs = append(f.importInputs, input)
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return &vocabulary.Result{Lesson: f.lesson, Created: f.created, Outcomes: f.outcomes(input.Pairs), WordCount: f.wordCount}, nil
}

// withFakeSession swaps openSession for the duration of the test.
// Tests using it must not run in parallel.
func withFakeSession(t *testing.T, svc *fakeVocabulary) *int {
	t.Helper()

	opened := 0
	prev := openSession
	openSession = func(cmd *cobra.Command) (*session, error) {
		opened++
		return &session{ctx: cmd.Context(), svc: svc, close: func() {}}, nil
	}
	t.Cleanup(func() { openSession = prev })
	return &opened
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	prevNoColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prevNoColor })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func newFake(title string) *fakeVocabulary {
	return &fakeVocabulary{lesson: &domain.Lesson{ID: uuid.New(), Title: title}}
}

func TestAdd_JoinsArgsAndUsesFragmentMatch(t *testing.T) {
	svc := newFake("Greetings 101")
	svc.wordCount = 7
	withFakeSession(t, svc)

	out, err := execute(t, "add", "Add", "to", "Greetings:", "hello", "-", "hi,", "bye", "-", "cya")
	require.NoError(t, err)

	require.Len(t, svc.addInputs, 1)
	in := svc.addInputs[0]
	assert.Equal(t, "Greetings", in.Lesson)
	assert.Equal(t, vocabulary.MatchFragment, in.Match)
	assert.Equal(t, []domain.WordPair{
		{Term: "hello", Translation: "hi"},
		{Term: "bye", Translation: "cya"},
	}, in.Pairs)

	assert.Contains(t, out, "Lesson: Greetings\n")
	assert.Contains(t, out, "Words: 2\n")
	assert.Contains(t, out, "✓ Found lesson: Greetings 101")
	assert.Contains(t, out, "✓ Added: hello → hi\n")
	assert.Contains(t, out, "✓ Added: bye → cya\n")
	assert.Contains(t, out, "Done!")
	assert.Contains(t, out, "Lesson Greetings 101 now has 7 words\n")
}

func TestAdd_ParseErrorSkipsDatabase(t *testing.T) {
	svc := newFake("Greetings")
	opened := withFakeSession(t, svc)

	_, err := execute(t, "add", "gibberish with no structure")
	require.Error(t, err)
	assert.ErrorIs(t, err, parser.ErrUnrecognizedStructure)
	assert.Zero(t, *opened)

	_, err = execute(t, "add", "Add to Greetings: hello")
	assert.ErrorIs(t, err, parser.ErrMalformedPair)
	assert.Zero(t, *opened)
}

func TestAdd_LessonNotFound(t *testing.T) {
	svc := newFake("Greetings")
	svc.lookupErr = fmt.Errorf("lesson %q %w", "Missing", domain.ErrNotFound)
	withFakeSession(t, svc)

	_, err := execute(t, "add", "Add to Missing: a - b")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdd_InsertFailuresAreReportedNotFatal(t *testing.T) {
	svc := newFake("Greetings")
	svc.insertErr = map[string]error{"hello": errors.New("duplicate")}
	withFakeSession(t, svc)

	out, err := execute(t, "add", "Add to Greetings: hello - hi, bye - cya")
	require.NoError(t, err)
	assert.Contains(t, out, "✗ Failed to add hello: duplicate\n")
	assert.Contains(t, out, "✓ Added: bye → cya\n")
}

func TestAddWords_PositionalPairsExactMatch(t *testing.T) {
	svc := newFake("Привітання")
	withFakeSession(t, svc)

	_, err := execute(t, "add-words", "Привітання", "こんばんは - добрий вечір", "またね – пока")
	require.NoError(t, err)

	require.Len(t, svc.addInputs, 1)
	in := svc.addInputs[0]
	assert.Equal(t, "Привітання", in.Lesson)
	assert.Equal(t, vocabulary.MatchExact, in.Match)
	assert.Equal(t, []domain.WordPair{
		{Term: "こんばんは", Translation: "добрий вечір"},
		{Term: "またね", Translation: "пока"},
	}, in.Pairs)
}

func TestAddWords_MalformedPair(t *testing.T) {
	svc := newFake("Greetings")
	opened := withFakeSession(t, svc)

	_, err := execute(t, "add-words", "Greetings", "hello - hi", "broken")
	assert.ErrorIs(t, err, parser.ErrMalformedPair)
	assert.Zero(t, *opened)
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestImportCSV_Summary(t *testing.T) {
	svc := newFake("Verbs 1")
	svc.created = true
	svc.wordCount = 1
	svc.insertErr = map[string]error{"あそびます": errors.New("check violation")}
	withFakeSession(t, svc)

	owner := uuid.New()
	path := writeCSV(t, "Japanese,Ukrainian\nあいます,зустрічатися\nあそびます,розважатися\n")

	out, err := execute(t, "import-csv", "Verbs 1", path, owner.String())
	require.NoError(t, err)

	require.Len(t, svc.importInputs, 1)
	in := svc.importInputs[0]
	assert.Equal(t, "Verbs 1", in.Title)
	assert.Equal(t, owner, in.OwnerID)
	assert.Len(t, in.Pairs, 2)

	assert.Contains(t, out, "Parsed 2 words from CSV")
	assert.Contains(t, out, "✓ Created new lesson: Verbs 1")
	assert.Contains(t, out, "Success: 1/2\n")
	assert.Contains(t, out, "Errors: 1\n")
	assert.Contains(t, out, "Lesson Verbs 1 now has 1 words\n")
}

func TestAdd_UnknownWordCountOmitted(t *testing.T) {
	svc := newFake("Greetings")
	svc.wordCount = -1
	withFakeSession(t, svc)

	out, err := execute(t, "add", "Add to Greetings: hello - hi")
	require.NoError(t, err)
	assert.NotContains(t, out, "now has")
}

func TestImportCSV_NoOwnerArgument(t *testing.T) {
	svc := newFake("Verbs 1")
	withFakeSession(t, svc)

	path := writeCSV(t, "Japanese,Ukrainian\nあいます,зустрічатися\n")

	out, err := execute(t, "import-csv", "Verbs 1", path)
	require.NoError(t, err)
	require.Len(t, svc.importInputs, 1)
	assert.Equal(t, uuid.Nil, svc.importInputs[0].OwnerID)
	assert.NotContains(t, out, "Errors:")
}

func TestImportCSV_Errors(t *testing.T) {
	svc := newFake("Verbs 1")
	opened := withFakeSession(t, svc)

	_, err := execute(t, "import-csv", "Verbs 1", writeCSV(t, "a,b\n"), "not-a-uuid")
	assert.ErrorContains(t, err, "invalid user_id")

	_, err = execute(t, "import-csv", "Verbs 1", writeCSV(t, "Japanese,Ukrainian\n"))
	assert.ErrorIs(t, err, csvimport.ErrNoRows)

	_, err = execute(t, "import-csv", "Verbs 1", filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.Zero(t, *opened)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev")
}

func TestMigrate_RejectsUnknownAction(t *testing.T) {
	_, err := execute(t, "migrate", "sideways")
	assert.Error(t, err)
}
