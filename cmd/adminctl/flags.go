package main

import (
	"flag"
	"strings"

	"github.com/pkg/errors"
)

// stringList is a repeatable string flag.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ", ")
}

func (l *stringList) Set(v string) error {
	*l = append(*l, v)

	return nil
}

// parseWithID parses fs and returns the leading positional ID. The ID may
// come before or after the flags.
func parseWithID(fs *flag.FlagSet, args []string) (string, error) {
	var id string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		id, args = args[0], args[1:]
	}

	if err := fs.Parse(args); err != nil {
		return "", errors.Wrapf(err, "failed to parse %s flags", fs.Name())
	}
	if id == "" && fs.NArg() > 0 {
		id = fs.Arg(0)
	}
	if id == "" {
		return "", errors.Errorf("%s needs an ID", fs.Name())
	}

	return id, nil
}

// setFlags reports which flags were given on the command line.
func setFlags(fs *flag.FlagSet) map[string]bool {
	given := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		given[f.Name] = true
	})

	return given
}

func subcommand(args []string) (string, []string) {
	if len(args) == 0 {
		return "", nil
	}

	return args[0], args[1:]
}
