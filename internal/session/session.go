// Package session runs the interactive lookup loop: prompt for a city and a
// country, fetch the current weather, print the report, repeat.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"

	"github.com/FlameInTheDark/weatherstation/internal/config"
	"github.com/FlameInTheDark/weatherstation/internal/report"
	"github.com/FlameInTheDark/weatherstation/internal/weather"
)

const (
	cityPrompt     = "Enter city name (or 'quit' to exit)"
	countryPrompt  = "Enter country code (press Enter for default)"
	quitCommand    = "quit"
	historyCommand = ":history"
)

var (
	bannerColor = color.New(color.FgHiYellow)
	errorColor  = color.New(color.FgHiRed)
)

// Fetcher is the part of weather.Client the loop needs.
type Fetcher interface {
	Current(ctx context.Context, city, country string) (*weather.Report, error)
}

type Session struct {
	cfg       *config.Config
	fetcher   Fetcher
	formatter *report.Formatter
	prompt    Prompter

	out    io.Writer
	errOut io.Writer

	history []string
}

func New(cfg *config.Config, fetcher Fetcher, formatter *report.Formatter, prompt Prompter, out, errOut io.Writer) *Session {
	return &Session{
		cfg:       cfg,
		fetcher:   fetcher,
		formatter: formatter,
		prompt:    prompt,
		out:       out,
		errOut:    errOut,
	}
}

// Run loops until the user types quit, input ends or ctx is cancelled.
// Lookup failures are printed and the loop goes on; only prompter failures
// other than end of input are returned.
func (s *Session) Run(ctx context.Context) error {
	bannerColor.Fprintln(s.out, "⚡ Welcome to Weather Station! ⚡")
	defer bannerColor.Fprintln(s.out, "👋 Thank you for using Weather Station!")

	for {
		if ctx.Err() != nil {
			return nil
		}

		city, err := s.prompt.Prompt(cityPrompt)
		if err != nil {
			return endOfInput(err)
		}
		city = strings.TrimSpace(city)
		switch {
		case city == "":
			continue
		case strings.EqualFold(city, quitCommand):
			return nil
		case city == historyCommand:
			s.printHistory()
			continue
		}

		country, err := s.prompt.Prompt(countryPrompt)
		if err != nil {
			return endOfInput(err)
		}
		country = strings.TrimSpace(country)
		if country == "" {
			country = s.cfg.DefaultCountry
		}

		if err := s.lookup(ctx, city, country); err != nil {
			slog.Debug("lookup failed", slog.String("city", city), slog.String("country", country), slog.String("error", err.Error()))
			errorColor.Fprintf(s.errOut, "Error: %v\n", err)
		}
	}
}

func (s *Session) lookup(ctx context.Context, city, country string) error {
	r, err := s.fetcher.Current(ctx, city, country)
	if err != nil {
		return err
	}
	text, err := s.formatter.Format(r)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, text)
	s.remember(city + ", " + country)
	return nil
}

// remember appends entry and drops the oldest ones past the history limit.
func (s *Session) remember(entry string) {
	limit := s.cfg.HistoryLimit()
	if limit <= 0 {
		return
	}
	s.history = append(s.history, entry)
	if over := len(s.history) - limit; over > 0 {
		s.history = append([]string(nil), s.history[over:]...)
	}
}

// History returns the recorded lookups, oldest first.
func (s *Session) History() []string {
	return append([]string(nil), s.history...)
}

func (s *Session) printHistory() {
	if len(s.history) == 0 {
		fmt.Fprintln(s.out, "No lookups yet.")
		return
	}
	for i, h := range s.history {
		fmt.Fprintf(s.out, "  %d. %s\n", i+1, h)
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
