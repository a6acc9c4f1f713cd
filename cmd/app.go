// Package cmd implements the dtk CLI application.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	tracker "github.com/etnz/dollartracker"
	"github.com/etnz/dollartracker/config"
	"github.com/etnz/dollartracker/store"
)

// Commands lists every subcommand, in the order they are registered.
var Commands = []subcommands.Command{
	&buyCmd{},
	&sellCmd{},
	&depositCmd{},
	&expenseCmd{},
	&deleteCmd{},
	&txCmd{},
	&summaryCmd{},
	&dailyCmd{},
	&profitCmd{},
	&balanceCmd{},
	&rateCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configPath = flag.String("config", "", "Path to the configuration file. Defaults to $DTK_CONFIG or ~/.dtk/config.yaml.")

// loadConfig reads the app configuration from the -config flag location.
func loadConfig() (*config.Config, error) {
	p := *configPath
	if p == "" {
		p = config.DefaultPath()
	}
	return config.Load(p)
}

// openBook loads the configuration, opens the configured store and loads its
// snapshot into a Book. The caller owns the returned Book and must Close it.
func openBook(ctx context.Context) (*tracker.Book, *config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	s, err := store.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	book, err := tracker.Open(ctx, s)
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	return book, cfg, nil
}

// whenFormats are the timestamp layouts accepted on the command line, tried
// in order.
var whenFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseWhen parses a command-line timestamp. An empty value means now.
func parseWhen(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	for _, layout := range whenFormats {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date %q, use YYYY-MM-DD or YYYY-MM-DD HH:MM", s)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(content string) {
	out, err := glamour.Render(content, "auto")
	if err != nil {
		fmt.Println(content)
		return
	}
	fmt.Print(out)
}

// fail prints the error and maps it to an exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
