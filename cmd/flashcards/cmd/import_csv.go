package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/flashcards/internal/app/csvimport"
	"github.com/heartmarshall/flashcards/internal/service/vocabulary"
)

var importCSVCmd = &cobra.Command{
	Use:   "import-csv <lesson title> <file.csv> [user_id]",
	Short: "Import word pairs from a CSV file",
	Long: `Import term/translation pairs from a CSV or TSV file. The first line is a
header. The lesson is matched by exact title and created when missing; its owner
is user_id or, when omitted, the owner of an existing lesson.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runImportCSV,
}

func runImportCSV(cmd *cobra.Command, args []string) error {
	title, path := args[0], args[1]

	var owner uuid.UUID
	if len(args) == 3 {
		id, err := uuid.Parse(args[2])
		if err != nil {
			return fmt.Errorf("invalid user_id %q: %w", args[2], err)
		}
		owner = id
	}

	pairs, err := csvimport.ParseFile(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printPairsRead(out, pairs, "CSV")

	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	res, err := s.svc.ImportWords(s.ctx, vocabulary.ImportInput{
		Title:   title,
		OwnerID: owner,
		Pairs:   pairs,
	})
	if err != nil {
		return err
	}

	printImportReport(out, res)
	return nil
}
