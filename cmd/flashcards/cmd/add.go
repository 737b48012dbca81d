package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/flashcards/internal/parser"
	"github.com/heartmarshall/flashcards/internal/service/vocabulary"
)

var addCmd = &cobra.Command{
	Use:   "add <request...>",
	Short: "Add words described by a free-form request",
	Long: `Parse a request such as

  Add to Greetings: hello - hi, bye - cya
  Додай до уроку Привітання: こんばんは - добрий вечір

and add the pairs to the oldest lesson whose title contains the lesson name.
All arguments are joined with spaces. Quote the request when a word in it
starts with a dash.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	req, err := parser.Parse(strings.Join(args, " "))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printParsed(out, req.Lesson, len(req.Pairs))

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	res, err := s.svc.AddWords(s.ctx, vocabulary.AddWordsInput{
		Lesson: req.Lesson,
		Match:  vocabulary.MatchFragment,
		Pairs:  req.Pairs,
	})
	if err != nil {
		return err
	}

	printAddReport(out, res)
	return nil
}
