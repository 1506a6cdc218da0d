package Sint

import (
	"bufio"
	"fmt"
	"github.com/g-m-twostay/sortedcontainer/Sets"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"io"
)

const prompt = "> "

// Shell executes commands read line by line against a set of Person.
type Shell struct {
	set Sets.OrderedSet[Person]
	out io.Writer
	log zerolog.Logger
}

func NewShell(set Sets.OrderedSet[Person], out io.Writer, log zerolog.Logger) *Shell {
	return &Shell{set, out, log}
}

// Run reads commands from in until an exit command or the end of in. Invalid
// commands are reported to out and skipped. The returned error is from reading in or writing out.
func (s *Shell) Run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		if _, err := io.WriteString(s.out, prompt); err != nil {
			return errors.Wrap(err, "write prompt")
		}
		if !sc.Scan() {
			break
		}
		cmd, err := Parse(sc.Text())
		if err != nil {
			s.log.Debug().Str("line", sc.Text()).Err(err).Msg("rejected")
			if _, err = fmt.Fprintf(s.out, "Error: %v\n", err); err != nil {
				return errors.Wrap(err, "write error")
			}
			continue
		}
		if quit, err := s.Exec(cmd); err != nil {
			return err
		} else if quit {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "read command")
	}
	_, err := io.WriteString(s.out, "\nBye.\n")
	return err
}

// Exec runs a single command. Returns true if cmd is exit.
func (s *Shell) Exec(cmd Command) (quit bool, err error) {
	var applied bool
	switch cmd.Op {
	case OpInsert:
		applied = s.set.Insert(cmd.Key)
	case OpErase:
		applied = s.set.Erase(cmd.Key)
	case OpContains:
		applied = s.set.Contains(cmd.Key)
		answer := "n"
		if applied {
			answer = "y"
		}
		_, err = fmt.Fprintln(s.out, answer)
	case OpPrint:
		err = s.set.Dump(s.out)
	case OpExit:
		quit = true
	}
	s.log.Debug().Stringer("op", cmd.Op).Stringer("key", cmd.Key).Bool("applied", applied).Uint("size", s.set.Size()).Msg("command")
	return quit, errors.Wrapf(err, "%s", cmd.Op)
}
