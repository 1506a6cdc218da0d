package Sint

import (
	"strconv"
	"strings"
)

type Op byte

const (
	OpInsert   Op = 'i'
	OpErase    Op = 'e'
	OpContains Op = 'c'
	OpPrint    Op = 'p'
	OpExit     Op = 'x'
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpErase:
		return "erase"
	case OpContains:
		return "contains"
	case OpPrint:
		return "print"
	case OpExit:
		return "exit"
	}
	return "unknown"
}

// Command parsed from one line of input. Key is only meaningful for insert, erase and contains.
type Command struct {
	Op  Op
	Key Person
}

type ParseError struct {
	Line, Msg string
}

func (e *ParseError) Error() string {
	return e.Msg
}

// Parse a line: "p" and "x" take no argument, "i", "e" and "c" take an age and a name.
func Parse(line string) (Command, error) {
	items := strings.Fields(line)
	if len(items) == 0 {
		return Command{}, &ParseError{line, "please insert a command"}
	}
	switch op := Op(items[0][0]); {
	case len(items[0]) != 1:
	case (op == OpPrint || op == OpExit) && len(items) == 1:
		return Command{Op: op}, nil
	case (op == OpInsert || op == OpErase || op == OpContains) && len(items) == 3:
		age, err := strconv.ParseUint(items[1], 10, 32)
		if err != nil {
			return Command{}, &ParseError{line, "unable to parse int (age)."}
		}
		return Command{op, Person{uint32(age), items[2]}}, nil
	}
	return Command{}, &ParseError{line, "invalid command."}
}
