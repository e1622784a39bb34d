// levelorder rebuilds a binary tree from a level order listing and prints it.
//
//	levelorder '[1,null,2,3,4,null,null,5,6]'
//	echo '[1,2,3]' | levelorder -dense
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-levelorder/bintree"
)

const (
	serviceName    = "levelorder"
	logLevelEnvVar = "LEVELORDER_LOG_LEVEL"
)

type config struct {
	dense    bool
	cbor     bool
	logLevel string
	sequence string // "" reads stdin
}

func main() {
	if err := run(os.Stdin, os.Stdout, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run is main without the process exit, so it can be tested.
func run(in io.Reader, out io.Writer, args []string) error {
	cfg, err := parseArgs(args, out)
	if err != nil {
		return err
	}

	logger.New(cfg.logLevel)
	defer logger.OnExit()
	log := logger.Sugar.WithServiceName(serviceName)

	var seq []*int
	if cfg.sequence != "" {
		seq, err = decodeJSON([]byte(cfg.sequence))
	} else {
		seq, err = decodeReader(in, cfg.cbor)
	}
	if err != nil {
		return err
	}
	log.Debugf("decoded %d entries: %s", len(seq), bintree.SequenceString(seq))

	build := bintree.Build
	if cfg.dense {
		build = bintree.BuildDense
	}
	root := build(seq, bintree.WithLogger(log))

	_, err = fmt.Fprint(out, bintree.Sprint(root))
	return err
}

func parseArgs(args []string, out io.Writer) (config, error) {
	fs := flag.NewFlagSet(serviceName, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, `
levelorder - rebuild a binary tree from its level order listing.

Usage:
  levelorder [options] [SEQUENCE]

Arguments:
  SEQUENCE
    A JSON array of integers and nulls, eg [1,null,2]. Read from stdin when
    omitted.

Options:
`)
		fs.PrintDefaults()
	}

	defaultLevel := os.Getenv(logLevelEnvVar)
	if defaultLevel == "" {
		defaultLevel = "NOOP"
	}

	cfg := config{}
	fs.BoolVar(&cfg.dense, "dense", false, "Read the heap style encoding, children of i at 2i+1 and 2i+2.")
	fs.BoolVar(&cfg.cbor, "cbor", false, "Read a CBOR array from stdin instead of JSON.")
	fs.StringVar(&cfg.logLevel, "log-level", defaultLevel, "Log level: NOOP, DEBUG, INFO. Defaults to $"+logLevelEnvVar+".")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 1 {
		return config{}, fmt.Errorf("%w: expected at most one sequence argument, got %d", ErrUsage, fs.NArg())
	}
	cfg.sequence = fs.Arg(0)
	if cfg.sequence != "" && cfg.cbor {
		return config{}, fmt.Errorf("%w: -cbor reads stdin and takes no sequence argument", ErrUsage)
	}
	return cfg, nil
}
