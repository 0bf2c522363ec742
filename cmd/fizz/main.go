// fizz - delimited notation codec CLI tool
//
// Usage:
//
//	fizz encode [-format descriptor|-preset fizz] [-v] [file]  Convert JSON to notation
//	fizz decode [-format descriptor|-preset fizz] [-v] [file]  Convert notation to JSON
//	fizz check  [-format descriptor|-preset fizz] [-v] [file]  Validate notation
//
// If no file is given, reads from stdin.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/fizz"
	"github.com/viant/fizz/format"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "fizz: %v\n", err)
		os.Exit(1)
	}
}

const usage = "usage: fizz encode|decode|check [-format descriptor|-preset fizz] [-v] [file]"

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		return errors.New(usage)
	}
	cmd := args[0]
	flags := flag.NewFlagSet(cmd, flag.ContinueOnError)
	flags.SetOutput(stderr)
	descriptor := flags.String("format", "", "delimiters descriptor, e.g. value=;,key=_,string=``,array=<>,object=()")
	preset := flags.String("preset", "", "delimiters preset: default or fizz")
	verbose := flags.Bool("v", false, "debug logging")
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	options, err := codecOptions(*descriptor, *preset)
	if err != nil {
		return err
	}
	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	options = append(options, fizz.WithLogger(fizz.NewTextLogger(stderr, level)))
	codec, err := fizz.New(options...)
	if err != nil {
		return errors.Wrap(err, "failed to create codec")
	}

	input := stdin
	if file := flags.Arg(0); file != "" && file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return errors.Wrap(err, "open file")
		}
		defer f.Close()
		input = f
	}
	data, err := io.ReadAll(input)
	if err != nil {
		return errors.Wrap(err, "read input")
	}

	switch cmd {
	case "encode":
		text, err := codec.FromJSON(data)
		if err != nil {
			return errors.Wrap(err, "encode")
		}
		_, err = fmt.Fprintln(stdout, text)
		return err
	case "decode":
		out, err := codec.ToJSON(strings.TrimSpace(string(data)))
		if err != nil {
			return errors.Wrap(err, "decode")
		}
		_, err = fmt.Fprintln(stdout, string(out))
		return err
	case "check":
		if _, err := codec.Parse(strings.TrimSpace(string(data))); err != nil {
			return errors.Wrap(err, "check")
		}
		_, err = fmt.Fprintln(stdout, "ok")
		return err
	}
	return errors.Errorf("unknown command: %s\n%s", cmd, usage)
}

func codecOptions(descriptor, preset string) ([]fizz.Option, error) {
	if descriptor != "" && preset != "" {
		return nil, errors.New("-format and -preset are mutually exclusive")
	}
	switch strings.ToLower(preset) {
	case "":
	case "default":
		return []fizz.Option{fizz.WithConfig(format.Default())}, nil
	case "fizz":
		return []fizz.Option{fizz.WithConfig(format.Fizz())}, nil
	default:
		return nil, errors.Errorf("unknown preset: %s", preset)
	}
	if descriptor != "" {
		return []fizz.Option{fizz.WithDescriptor(descriptor)}, nil
	}
	return nil, nil
}
