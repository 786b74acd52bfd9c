package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

// Prompter reads one line of user input. It returns io.EOF when input ends
// or the user interrupts.
type Prompter interface {
	Prompt(label string) (string, error)
	Close() error
}

// LinePrompter is a readline backed Prompter with in-session history.
type LinePrompter struct {
	rl          *readline.Instance
	saveHistory bool
}

// NewLinePrompter creates a terminal prompter. historyFile may be empty to
// keep history in memory only; limit bounds the number of entries.
func NewLinePrompter(historyFile string, limit int) (*LinePrompter, error) {
	save := limit > 0
	if !save {
		// readline treats zero as its own default size.
		limit = -1
		historyFile = ""
	}
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:            historyFile,
		HistoryLimit:           limit,
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
		EOFPrompt:              "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("init line editor: %w", err)
	}
	return &LinePrompter{rl: rl, saveHistory: save}, nil
}

func (p *LinePrompter) Prompt(label string) (string, error) {
	p.rl.SetPrompt(label + " > ")
	line, err := p.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", err
	}
	if p.saveHistory && line != "" {
		_ = p.rl.SaveHistory(line)
	}
	return line, nil
}

func (p *LinePrompter) Close() error {
	return p.rl.Close()
}

// ScanPrompter reads lines from a non-interactive stream such as a pipe.
type ScanPrompter struct {
	sc  *bufio.Scanner
	out io.Writer
}

func NewScanPrompter(in io.Reader, out io.Writer) *ScanPrompter {
	return &ScanPrompter{sc: bufio.NewScanner(in), out: out}
}

func (p *ScanPrompter) Prompt(label string) (string, error) {
	fmt.Fprintf(p.out, "%s > ", label)
	if !p.sc.Scan() {
		if err := p.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.sc.Text(), nil
}

func (p *ScanPrompter) Close() error {
	return nil
}
