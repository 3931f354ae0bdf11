package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/ChizhovVadim/TennisScore/internal/batch"
	"github.com/ChizhovVadim/TennisScore/pkg/tennis"
)

/*
TennisScore Copyright (C) 2023 Vadim Chizhov
This program is free software: you can redistribute it and/or modify it under the terms of the GNU General Public License as published by the Free Software Foundation, either version 3 of the License, or (at your option) any later version.
This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU General Public License for more details.
You should have received a copy of the GNU General Public License along with this program. If not, see <http://www.gnu.org/licenses/>.
*/

const name = "TennisScore"

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
)

const usage = `Display the current score during a tennis game

usage: tennisscore INPUT [-names PLAYER1 PLAYER2] [-v]

  INPUT   current score in 'X-Y' format (e.g. '3-2'), a .txt file
          with one score per line, or '-' to read scores from stdin
  -names  optional player names (e.g. 'Djokovic Nadal')
  -v      print version information to stderr
`

var batchExtensions = []string{".txt"}

type Config struct {
	Input   string
	NameA   string
	NameB   string
	Verbose bool
}

func main() {
	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)
	var code, err = run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, logger)
	if err != nil {
		logger.Println(err)
	}
	os.Exit(code)
}

func run(
	ctx context.Context,
	args []string,
	stdin io.Reader,
	stdout io.Writer,
	logger *log.Logger,
) (int, error) {
	var cmdArgs, err = NewCommandArgs(args)
	if err != nil {
		fmt.Fprint(logger.Writer(), usage)
		return 2, err
	}
	if cmdArgs.Has("h") || cmdArgs.Has("help") {
		fmt.Fprint(stdout, usage)
		return 0, nil
	}

	var config Config
	config.Input = cmdArgs.Input()
	config.NameA, config.NameB = cmdArgs.GetPair("names", tennis.DefaultNameA, tennis.DefaultNameB)
	config.Verbose = cmdArgs.Has("v")

	var debug = log.New(io.Discard, "", 0)
	if config.Verbose {
		debug = logger
		debug.Println(name,
			"VersionName", versionName,
			"BuildDate", buildDate,
			"GitRevision", gitRevision,
			"RuntimeVersion", runtime.Version())
		debug.Printf("%+v", config)
	}

	if config.Input == "" {
		fmt.Fprint(logger.Writer(), usage)
		return 2, nil
	}

	var processor = &batch.Processor{
		NameA:  config.NameA,
		NameB:  config.NameB,
		Logger: debug,
	}

	if config.Input == "-" {
		_, err = processor.Run(ctx, stdin, stdout)
		return exitCode(err), err
	}
	if isBatchFile(config.Input) {
		_, err = processor.RunFile(ctx, config.Input, stdout)
		return exitCode(err), err
	}

	a, b, err := tennis.ParseScore(config.Input)
	if err != nil {
		debug.Println(err)
		fmt.Fprintln(stdout, "Invalid input. Please provide scores in the format 'X-Y' or a valid file path.")
		return 0, nil
	}
	fmt.Fprintf(stdout, "Current Score: %v\n", tennis.Evaluate(a, b, config.NameA, config.NameB))
	return 0, nil
}

func isBatchFile(input string) bool {
	for _, ext := range batchExtensions {
		if strings.HasSuffix(input, ext) {
			return true
		}
	}
	return false
}

func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
