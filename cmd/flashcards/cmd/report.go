package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/heartmarshall/flashcards/internal/domain"
	"github.com/heartmarshall/flashcards/internal/service/vocabulary"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	infoColor = color.New(color.FgCyan)
	boldColor = color.New(color.Bold)
)

func printParsed(w io.Writer, lesson string, n int) {
	boldColor.Fprintln(w, "Parsed request:")
	fmt.Fprintf(w, "   Lesson: %s\n", lesson)
	fmt.Fprintf(w, "   Words: %d\n", n)
}

func printLesson(w io.Writer, res *vocabulary.Result) {
	if res.Created {
		okColor.Fprintf(w, "✓ Created new lesson: %s (ID: %s)\n", res.Lesson.Title, res.Lesson.ID)
		return
	}
	okColor.Fprintf(w, "✓ Found lesson: %s (ID: %s)\n", res.Lesson.Title, res.Lesson.ID)
}

func printOutcomes(w io.Writer, outcomes []vocabulary.PairOutcome) {
	fmt.Fprintf(w, "\nAdding %d words...\n", len(outcomes))
	for _, o := range outcomes {
		printOutcome(w, o)
	}
}

func printOutcome(w io.Writer, o vocabulary.PairOutcome) {
	if o.Err != nil {
		failColor.Fprintf(w, "✗ Failed to add %s: %v\n", o.Pair.Term, o.Err)
		return
	}
	okColor.Fprintf(w, "✓ Added: %s\n", o.Pair)
}

func printWordCount(w io.Writer, res *vocabulary.Result) {
	if res.WordCount < 0 {
		return
	}
	infoColor.Fprintf(w, "Lesson %s now has %d words\n", res.Lesson.Title, res.WordCount)
}

// printAddReport renders the result of add and add-words.
func printAddReport(w io.Writer, res *vocabulary.Result) {
	printLesson(w, res)
	printOutcomes(w, res.Outcomes)
	boldColor.Fprintln(w, "\nDone!")
	printWordCount(w, res)
}

// printImportReport renders the result of import-csv.
func printImportReport(w io.Writer, res *vocabulary.Result) {
	printLesson(w, res)
	printOutcomes(w, res.Outcomes)
	boldColor.Fprintln(w, "\nImport complete!")
	fmt.Fprintf(w, "   Success: %d/%d\n", res.Added(), len(res.Outcomes))
	if n := res.Failed(); n > 0 {
		failColor.Fprintf(w, "   Errors: %d\n", n)
	}
	printWordCount(w, res)
}

func printPairsRead(w io.Writer, pairs []domain.WordPair, source string) {
	infoColor.Fprintf(w, "Parsed %d words from %s\n", len(pairs), source)
}
