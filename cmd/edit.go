package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Karvyz/halfmoon/internal/config"
	"github.com/Karvyz/halfmoon/internal/log"
	"github.com/Karvyz/halfmoon/internal/ui/shared/vimtextarea"
	"github.com/Karvyz/halfmoon/internal/ui/styles"
)

var (
	// errCancelled is returned when the session ends with q.
	errCancelled = errors.New("edit cancelled")
	// errScriptEnded is returned when a key script runs out before the
	// session commits or cancels.
	errScriptEnded = errors.New("key script ended without <enter> or q")
)

// newEditCmd builds the edit command.
func newEditCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit text in a single vi-style session and print the result",
		Long: `Opens one editing session seeded from --text, a file, or piped stdin.
Enter in normal mode prints the text to stdout; q exits with status 1 and
prints nothing.

With --keys the session runs without a terminal, driven by a key script
such as "A world<esc><enter>".`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEdit,
	}
	c.Flags().StringP("text", "t", "", "initial text")
	c.Flags().StringP("keys", "k", "", "key script to run instead of an interactive session")
	return c
}

func init() {
	rootCmd.AddCommand(newEditCmd())
}

func runEdit(cmd *cobra.Command, args []string) error {
	seed, err := editSeed(cmd, args)
	if err != nil {
		return err
	}

	var text string
	if script, _ := cmd.Flags().GetString("keys"); cmd.Flags().Changed("keys") {
		text, err = runScript(seed, script, cfg.Editor)
	} else {
		text, err = runInteractive(seed, cfg)
	}
	if errors.Is(err, errCancelled) {
		cmd.SilenceErrors = true
		cmd.SilenceUsage = true
		return err
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}

// editSeed picks the initial text: --text, then a file argument, then
// stdin when it is not a terminal.
func editSeed(cmd *cobra.Command, args []string) (string, error) {
	if cmd.Flags().Changed("text") {
		return cmd.Flags().GetString("text")
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return strings.TrimSuffix(string(data), "\n"), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		info, err := f.Stat()
		if err != nil || info.Mode()&os.ModeCharDevice != 0 {
			return "", nil
		}
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimSuffix(string(data), "\n"), nil
}

func editorStartMode(cfg config.EditorConfig) vimtextarea.Mode {
	if cfg.StartMode == "insert" {
		return vimtextarea.ModeInsert
	}
	return vimtextarea.ModeNormal
}

// runScript feeds a key script to a fresh editor seeded with text and
// returns the committed text.
func runScript(seed, script string, cfg config.EditorConfig) (string, error) {
	e := vimtextarea.NewEditorWithText(seed)
	e.SetTabWidth(cfg.TabWidth)
	e.SetMode(editorStartMode(cfg))

	for _, tok := range vimtextarea.ParseKeys(script) {
		switch e.Input(tok) {
		case vimtextarea.Commit:
			log.Debug(log.CatEditor, "script committed", "lines", len(e.Lines()))
			return e.Text(), nil
		case vimtextarea.Cancel:
			log.Debug(log.CatEditor, "script cancelled")
			return "", errCancelled
		}
	}
	return "", errScriptEnded
}

// editSession is the Bubble Tea program behind an interactive edit.
type editSession struct {
	input     vimtextarea.Model
	maxHeight int
	width     int
	text      string
	committed bool
}

func newEditSession(seed string, cfg config.Config) editSession {
	input := vimtextarea.New(vimtextarea.Config{
		StartMode: editorStartMode(cfg.Editor),
		MaxHeight: cfg.Editor.MaxHeight,
		TabWidth:  cfg.Editor.TabWidth,
	})
	input.SetValue(seed)
	input.Focus()
	return editSession{input: input, maxHeight: cfg.Editor.MaxHeight}
}

func (s editSession) Init() tea.Cmd {
	return nil
}

func (s editSession) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.input.SetSize(max(msg.Width-2, 1), 0)
		return s, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return s, tea.Quit
		}

	case vimtextarea.SubmitMsg:
		s.text = msg.Content
		s.committed = true
		return s, tea.Quit

	case vimtextarea.CancelMsg:
		return s, tea.Quit
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s editSession) View() string {
	if s.width == 0 {
		return ""
	}
	rows := max(s.input.TotalDisplayLines(), 1)
	if s.maxHeight > 0 {
		rows = min(rows, s.maxHeight)
	}
	box := styles.RenderWithTitleBorder(s.input.View(), "Edit", s.width, rows+2, true)
	status := lipgloss.JoinHorizontal(lipgloss.Top,
		s.input.ModeIndicator(), " ",
		styles.HelpStyle.Render("enter commit · q cancel"))
	return box + "\n" + status
}

// runInteractive runs a session on the terminal. The UI is drawn on stderr
// so stdout carries only the committed text.
func runInteractive(seed string, cfg config.Config) (string, error) {
	p := tea.NewProgram(newEditSession(seed, cfg),
		tea.WithOutput(os.Stderr),
		tea.WithInputTTY(),
	)
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("running editor: %w", err)
	}
	s, ok := final.(editSession)
	if !ok || !s.committed {
		return "", errCancelled
	}
	return s.text, nil
}
