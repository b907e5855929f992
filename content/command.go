package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/creack/pty"
	"github.com/pkg/term/termios"
)

// FromCommand runs command through the user's shell and captures its
// combined output; the command line becomes the title. A non-zero exit
// is not an error: the output of a failing command is still worth
// quoting.
func FromCommand(ctx context.Context, command string) (Source, error) {
	cmd := shellCommand(ctx, command)
	out, err := cmd.CombinedOutput()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return Source{}, fmt.Errorf("content: run %q: %w", command, err)
	}
	return Source{Text: normalize(out), Title: command}, nil
}

// FromCommandPty is FromCommand on a pseudo-terminal, for programs that
// only produce their interesting output when talking to one.
func FromCommandPty(ctx context.Context, command string) (Source, error) {
	cmd := shellCommand(ctx, command)
	cmd.Env = append(os.Environ(), "TERM=dumb")

	f, err := pty.Start(cmd)
	if err != nil {
		// Some platforms want the pair allocated explicitly.
		p, t, err2 := termios.Pty()
		if err2 != nil {
			return Source{}, fmt.Errorf("content: pty for %q: %w", command, err)
		}
		cmd.Stdin, cmd.Stdout, cmd.Stderr = t, t, t
		if err := cmd.Start(); err != nil {
			p.Close()
			t.Close()
			return Source{}, fmt.Errorf("content: run %q: %w", command, err)
		}
		t.Close()
		f = p
	}
	defer f.Close()

	// The read side errors when the child closes the tty; whatever was
	// captured up to that point is the output.
	var buf bytes.Buffer
	buf.ReadFrom(f)
	cmd.Wait()
	return Source{Text: normalize(buf.Bytes()), Title: command}, nil
}

func shellCommand(ctx context.Context, command string) *exec.Cmd {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	return exec.CommandContext(ctx, shell, "-c", command)
}
