// Semibox decorates text with left-margin box annotations and edits
// such annotations inside documents.
//
// Filter commands read text to be boxed and write the boxed result:
//
//	semibox box [-title T]          box standard input
//	semibox file PATH               box a file's contents, titled with its path
//	semibox cmd [-pty] COMMAND      box a command's output, titled with the command
//	semibox paste                   box the clipboard
//
// Document commands read a whole document, operate on the box enclosing
// the -at offset, and write the edited document back:
//
//	semibox unbox -at N [-w] [FILE]
//	semibox kill -at N [-copy] [-w] [FILE]
//	semibox title -at N [-set T | -remove] [-w] [FILE]
//	semibox fill -at N [-width W] [-w] [FILE]
//	semibox where -at N [FILE]
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
	"golang.org/x/term"

	"github.com/rjkroege/semibox/box"
	"github.com/rjkroege/semibox/config"
	"github.com/rjkroege/semibox/content"
	"github.com/rjkroege/semibox/edit"
)

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	cmd, args := os.Args[1], os.Args[2:]

	switch cmd {
	case "box":
		runBox(args)
	case "file":
		runFile(args)
	case "cmd":
		runCmd(args)
	case "paste":
		runPaste(args)
	case "unbox", "kill", "title", "fill", "where":
		runDoc(cmd, args)
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: semibox box|file|cmd|paste|unbox|kill|title|fill|where [flags] [args]\n")
	os.Exit(2)
}

// common carries the flags every subcommand takes.
type common struct {
	fs     *flag.FlagSet
	config *string
	debug  *string
}

func newFlags(name string) *common {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	return &common{
		fs:     fs,
		config: fs.String("config", "", "style configuration file (default: the per-user one)"),
		debug:  fs.String("debug", "", "also write a debug log to this file"),
	}
}

// setup parses the remaining arguments, wires up logging and loads the
// style configuration.
func (c *common) setup(args []string) config.Config {
	c.fs.Parse(args)

	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}
	if *c.debug != "" {
		f, err := os.Create(*c.debug)
		if err != nil {
			fatal(err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))

	cfg, err := config.Load(*c.config)
	if err != nil {
		fatal(err)
	}
	slog.Debug("configured", "side", cfg.Side, "title-format", cfg.TitleFormat)
	return cfg
}

func fatal(err error) {
	slog.Error("semibox", "err", err)
	os.Exit(1)
}

func emit(boxed string, err error) {
	if err != nil {
		fatal(err)
	}
	if !strings.HasSuffix(boxed, "\n") {
		boxed += "\n"
	}
	os.Stdout.WriteString(boxed)
}

func runBox(args []string) {
	c := newFlags("box")
	title := c.fs.String("title", "", "title for the box")
	cfg := c.setup(args)

	if term.IsTerminal(int(os.Stdin.Fd())) {
		fatal(fmt.Errorf("box: standard input is a terminal; pipe the text to box"))
	}
	src, err := content.FromReader(os.Stdin, *title)
	if err != nil {
		fatal(err)
	}
	emit(cfg.Style().Text(src.Text, src.Title))
}

func runFile(args []string) {
	c := newFlags("file")
	cfg := c.setup(args)
	if c.fs.NArg() != 1 {
		fatal(fmt.Errorf("file: exactly one path wanted"))
	}
	src, err := content.FromFile(c.fs.Arg(0))
	if err != nil {
		fatal(err)
	}
	emit(cfg.Style().Text(src.Text, src.Title))
}

func runCmd(args []string) {
	c := newFlags("cmd")
	usePty := c.fs.Bool("pty", false, "run the command on a pseudo-terminal")
	cfg := c.setup(args)
	if c.fs.NArg() == 0 {
		fatal(fmt.Errorf("cmd: a command line is wanted"))
	}
	command := strings.Join(c.fs.Args(), " ")

	var src content.Source
	var err error
	if *usePty {
		src, err = content.FromCommandPty(context.Background(), command)
	} else {
		src, err = content.FromCommand(context.Background(), command)
	}
	if err != nil {
		fatal(err)
	}
	emit(cfg.Style().Text(src.Text, src.Title))
}

func runPaste(args []string) {
	c := newFlags("paste")
	cfg := c.setup(args)
	src, err := content.FromClipboard()
	if err != nil {
		fatal(err)
	}
	emit(cfg.Style().Text(src.Text, src.Title))
}

// runDoc handles the commands that edit a box in an existing document.
func runDoc(op string, args []string) {
	c := newFlags(op)
	at := c.fs.Int("at", 0, "rune offset addressing the box")
	inPlace := c.fs.Bool("w", false, "write the document back to FILE instead of standard output")
	doCopy := c.fs.Bool("copy", false, "kill: also put the box text on the clipboard")
	setTitle := c.fs.String("set", "", "title: set the title")
	remove := c.fs.Bool("remove", false, "title: remove the title")
	width := c.fs.Int("width", 0, "fill: fill column (default: terminal width, else 70)")
	cfg := c.setup(args)

	path := ""
	var src content.Source
	var err error
	switch c.fs.NArg() {
	case 0:
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fatal(fmt.Errorf("%s: standard input is a terminal; name a FILE or pipe the document", op))
		}
		src, err = content.FromReader(os.Stdin, "")
	case 1:
		path = c.fs.Arg(0)
		src, err = content.FromFile(path)
	default:
		fatal(fmt.Errorf("%s: at most one FILE wanted", op))
	}
	if err != nil {
		fatal(err)
	}

	t := edit.NewTextBuffer(src.Text)
	s := cfg.Style()
	edited := true

	switch op {
	case "unbox":
		err = s.Unbox(t, *at)
	case "kill":
		var text string
		text, err = s.Kill(t, *at)
		if err == nil && *doCopy {
			err = content.ToClipboard(text)
		}
	case "title":
		switch {
		case *remove:
			err = s.SetTitleAt(t, *at, "")
		case *setTitle != "":
			err = s.SetTitleAt(t, *at, *setTitle)
		default:
			var title string
			title, err = s.TitleAt(t, *at)
			if err == nil {
				fmt.Println(title)
			}
			edited = false
		}
	case "fill":
		err = s.Refill(t, *at, fillWidth(*width, cfg.FillWidth))
	case "where":
		var b box.Box
		b, err = s.LocateOrErr(t, *at)
		if err == nil {
			c0, c1 := s.Content(t, b)
			fmt.Printf("box %d,%d content %d,%d\n", b.Q0, b.Q1, c0, c1)
		}
		edited = false
	}
	if err != nil {
		fatal(err)
	}
	if !edited {
		return
	}

	if *inPlace {
		if path == "" {
			fatal(fmt.Errorf("%s: -w wants a FILE argument", op))
		}
		if err := os.WriteFile(path, []byte(t.String()), 0o644); err != nil {
			fatal(err)
		}
		return
	}
	os.Stdout.WriteString(t.String())
}

func fillWidth(flagWidth, cfgWidth int) int {
	if flagWidth > 0 {
		return flagWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	if cfgWidth > 0 {
		return cfgWidth
	}
	return box.DefaultFillWidth
}
