package main

import (
	"strings"

	"github.com/pkg/errors"
)

// flagArity is the number of values each known flag consumes.
var flagArity = map[string]int{
	"names": 2,
	"v":     0,
	"h":     0,
	"help":  0,
}

type CommandArgs struct {
	input  string
	params map[string][]string
}

// NewCommandArgs scans args (without the program name). Flags may appear
// before or after the positional input and may use one or two dashes.
func NewCommandArgs(args []string) (*CommandArgs, error) {
	var result = &CommandArgs{
		params: make(map[string][]string),
	}
	for i := 0; i < len(args); i++ {
		var arg = args[i]
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			if result.input != "" {
				return nil, errors.Errorf("unexpected argument %v", arg)
			}
			result.input = arg
			continue
		}
		var name = strings.TrimLeft(arg, "-")
		var arity, ok = flagArity[name]
		if !ok {
			return nil, errors.Errorf("unknown flag %v", arg)
		}
		if i+arity >= len(args) {
			return nil, errors.Errorf("flag %v needs %v values", arg, arity)
		}
		result.params[name] = args[i+1 : i+1+arity]
		i += arity
	}
	return result, nil
}

func (ca *CommandArgs) Input() string {
	return ca.input
}

func (ca *CommandArgs) Has(name string) bool {
	var _, ok = ca.params[name]
	return ok
}

func (ca *CommandArgs) GetPair(name string, defaultA, defaultB string) (string, string) {
	var val, ok = ca.params[name]
	if !ok || len(val) != 2 {
		return defaultA, defaultB
	}
	return val[0], val[1]
}
