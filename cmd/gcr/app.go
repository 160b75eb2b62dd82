package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Zuo-Peng/chat-recap/internal/archive"
	"github.com/Zuo-Peng/chat-recap/internal/chat"
	"github.com/Zuo-Peng/chat-recap/internal/config"
	"github.com/Zuo-Peng/chat-recap/internal/observability"
	"github.com/Zuo-Peng/chat-recap/internal/render"
	"github.com/Zuo-Peng/chat-recap/internal/report"
	"github.com/Zuo-Peng/chat-recap/internal/tui"
	"github.com/atotto/clipboard"
	"golang.org/x/term"
)

type globalFlags struct {
	configPath string
	archive    string
	userName   string
	userEmail  string
	noColor    bool
	copy       bool
}

var flags globalFlags

// app is everything a command needs: config, archive, controller and the
// user's terminal.
type app struct {
	cfg         *config.Config
	archive     *archive.Archive
	ctrl        *report.Controller
	render      render.Options
	in          *bufio.Reader
	out         io.Writer
	interactive bool
	copied      strings.Builder
}

func loadApp() (*app, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if flags.archive != "" {
		cfg.Archive = flags.archive
	}
	if flags.userName != "" {
		cfg.UserName = flags.userName
	}
	if flags.userEmail != "" {
		cfg.UserEmail = flags.userEmail
	}
	observability.Setup(os.Stderr, cfg.LogLevel)

	interactive := term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	a := newApp(cfg, os.Stdin, os.Stdout, interactive)
	a.render.Color = cfg.Color && !flags.noColor && term.IsTerminal(int(os.Stdout.Fd()))

	if err := a.openArchive(flags.archive == ""); err != nil {
		return nil, err
	}
	return a, nil
}

func newApp(cfg *config.Config, in io.Reader, out io.Writer, interactive bool) *app {
	return &app{
		cfg:         cfg,
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// openArchive opens the configured archive. When mayAsk is set and the
// session is interactive, a missing archive triggers one prompt for the path.
func (a *app) openArchive(mayAsk bool) error {
	arc, err := archive.Open(a.cfg.Archive)
	var notFound *chat.ArchiveNotFoundError
	if errors.As(err, &notFound) && mayAsk && a.interactive {
		fmt.Fprintf(a.out, "No archive at %s.\n", notFound.Path)
		path, askErr := a.ask("Enter the path to your Google Takeout directory: ")
		if askErr != nil {
			return askErr
		}
		if path != "" {
			a.cfg.Archive = path
			arc, err = archive.Open(path)
		}
	}
	if err != nil {
		return err
	}
	a.archive = arc
	return nil
}

// controller scans and classifies the archive on first use.
func (a *app) controller() (*report.Controller, error) {
	if a.ctrl != nil {
		return a.ctrl, nil
	}
	ctrl, err := report.NewController(a.archive)
	if err != nil {
		return nil, err
	}
	a.ctrl = ctrl
	return ctrl, nil
}

func (a *app) Close() error {
	if a.ctrl != nil {
		return a.ctrl.Close()
	}
	return nil
}

// ask prints question and returns the trimmed answer; EOF counts as an empty answer.
func (a *app) ask(question string) (string, error) {
	fmt.Fprint(a.out, question)
	line, err := a.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// emit writes rendered output and remembers it for --copy.
func (a *app) emit(s string) {
	fmt.Fprint(a.out, s)
	a.copied.WriteString(s)
}

// finish copies everything emitted to the clipboard when --copy is set.
func (a *app) finish() error {
	if !flags.copy || a.copied.Len() == 0 {
		return nil
	}
	if err := clipboard.WriteAll(a.copied.String()); err != nil {
		observability.Logger().Warn("clipboard unavailable", "err", err)
		return nil
	}
	fmt.Fprintln(os.Stderr, "Copied to clipboard.")
	return nil
}

// currentUser resolves the archive owner from flags/config, then from the
// archive's Users folder, then by asking.
func (a *app) currentUser() (chat.Participant, error) {
	if a.cfg.HasUser() {
		return chat.NewParticipant(a.cfg.UserName, a.cfg.UserEmail), nil
	}
	if user, ok := a.archive.ResolveCurrentUser(); ok {
		return user, nil
	}

	fmt.Fprintln(a.out, "User info not found. Please enter your name and email manually.")
	name, err := a.ask("\nWhat is your name in Google Chat? (Case sensitive) ")
	if err != nil {
		return chat.Participant{}, err
	}
	email, err := a.ask("What is your email in Google Chat? (Case sensitive) ")
	if err != nil {
		return chat.Participant{}, err
	}
	return chat.NewParticipant(name, email), nil
}

// selectIndex picks one of items: from an explicit --pick value, the TUI
// picker when interactive, or a numbered line prompt. It returns -1 when the
// user declines. allowEmpty makes an empty answer a decline instead of an
// invalid selection.
func (a *app) selectIndex(pick, title, question string, items []tui.Item, allowEmpty bool) (int, error) {
	if pick != "" {
		return report.ParseSelection(pick, len(items))
	}
	if a.interactive {
		return tui.Pick(title, items)
	}

	answer, err := a.ask(question)
	if err != nil {
		return -1, err
	}
	if answer == "" && allowEmpty {
		return -1, nil
	}
	return report.ParseSelection(answer, len(items))
}

// reportSelectionError turns an invalid selection into a user-facing message
// instead of a command failure.
func (a *app) reportSelectionError(err error) error {
	var sel *chat.InvalidSelectionError
	if errors.As(err, &sel) {
		fmt.Fprintf(a.out, "%v. Exiting.\n", sel)
		return nil
	}
	return err
}
