package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	tracker "github.com/etnz/dollartracker"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete records by id" }
func (*deleteCmd) Usage() string {
	return `dtk delete <id> [<id>...]

  Deletes the records with the given ids, whatever their kind. Ids are shown
  in the tx listing.
`
}

func (*deleteCmd) SetFlags(_ *flag.FlagSet) {}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: delete needs at least one record id.")
		return subcommands.ExitUsageError
	}

	book, _, err := openBook(ctx)
	if err != nil {
		return fail(err)
	}
	defer book.Close()

	status := subcommands.ExitSuccess
	for _, id := range f.Args() {
		if err := deleteAny(ctx, book, id); err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting %s: %v\n", id, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("Deleted %s\n", id)
	}
	return status
}

// deleteAny tries the record kinds in turn; the id namespace is shared so at
// most one of them can match.
func deleteAny(ctx context.Context, book *tracker.Book, id string) error {
	err := book.DeleteTrade(ctx, id)
	if !errors.Is(err, tracker.ErrNotFound) {
		return err
	}
	err = book.DeleteDeposit(ctx, id)
	if !errors.Is(err, tracker.ErrNotFound) {
		return err
	}
	return book.DeleteExpense(ctx, id)
}
