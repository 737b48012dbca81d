package cmd

import (
	"github.com/spf13/cobra"

	"github.com/heartmarshall/flashcards/internal/domain"
	"github.com/heartmarshall/flashcards/internal/parser"
	"github.com/heartmarshall/flashcards/internal/service/vocabulary"
)

var addWordsCmd = &cobra.Command{
	Use:     "add-words <lesson title> <term - translation>...",
	Short:   "Add positional word pairs to a lesson",
	Example: `  flashcards add-words "Привітання" "こんばんは - добрий вечір" "またね - пока"`,
	Args:    cobra.MinimumNArgs(2),
	RunE:    runAddWords,
}

func runAddWords(cmd *cobra.Command, args []string) error {
	title := args[0]

	pairs := make([]domain.WordPair, 0, len(args)-1)
	for _, arg := range args[1:] {
		pair, err := parser.ParsePair(arg)
		if err != nil {
			return err
		}
		pairs = append(pairs, pair)
	}

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	res, err := s.svc.AddWords(s.ctx, vocabulary.AddWordsInput{
		Lesson: title,
		Match:  vocabulary.MatchExact,
		Pairs:  pairs,
	})
	if err != nil {
		return err
	}

	printAddReport(cmd.OutOrStdout(), res)
	return nil
}
