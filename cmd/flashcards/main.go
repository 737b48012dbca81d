// Command flashcards adds vocabulary to lessons from the terminal.
//
// Usage:
//
//	flashcards add "Add to Greetings: hello - hi, bye - cya"
//	flashcards add-words "Greetings" "hello - hi" "bye - cya"
//	flashcards import-csv "Verbs 1" ./words.csv [user_id]
//	flashcards migrate up
//
// Exit codes: 0 = success (individual insert failures are reported, not fatal),
// 1 = parse error, missing lesson, configuration or database fault.
package main

import (
	"fmt"
	"os"

	"github.com/heartmarshall/flashcards/cmd/flashcards/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
