// Command intcode runs an Intcode program.
//
// Usage:
//
//	intcode [flags] PROGRAM_FILE
//
// By default the program runs interactively: whenever it needs input, a line
// is read from stdin, either as comma separated integers, or as text under
// -ascii. Output values are printed one per line, or as text under -ascii.
//
// Settings may also come from a TOML file given by -config, and from
// INTCODE_* environment variables; flags take precedence over both.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jcorbin/intcode"
	"github.com/jcorbin/intcode/internal/config"
	"github.com/jcorbin/intcode/internal/panicerr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		os.Exit(2)
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(2)
	}

	logger := setupLogger(zapcore.Lock(os.Stderr), cfg.Trace)
	defer logger.Sync()
	defer zap.RedirectStdLog(logger)()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if cfg.Timeout != 0 {
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	sess := newSession(cfg, logger.Sugar(), os.Stdin, os.Stdout, os.Stderr)
	if err := panicerr.Isolate("intcode session", func() error {
		return sess.Run(ctx)
	}); err != nil {
		logger.Sync()
		fmt.Fprintf(os.Stderr, "ERROR: %+v\n", err)
		os.Exit(1)
	}
}

func setupLogger(ws zapcore.WriteSyncer, trace bool) *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeDuration = zapcore.StringDurationEncoder
	level := zapcore.InfoLevel
	if trace {
		level = zapcore.DebugLevel
	}
	return zap.New(zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), ws, level))
}

// parseArgs builds configuration from defaults, any -config file, the
// environment, and finally any flags explicitly given.
func parseArgs(args []string, output io.Writer) (config.Config, error) {
	flags := flag.NewFlagSet("intcode", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "Usage: intcode [flags] PROGRAM_FILE\n")
		flags.PrintDefaults()
	}

	var (
		configPath string
		inputs     string
		sets       []string
		given      config.Config
	)
	flags.StringVar(&configPath, "config", "", "load settings from a TOML file")
	flags.StringVar(&inputs, "input", "", "comma separated values to queue as initial input")
	flags.Func("set", "set memory `ADDR=VALUE` before running; may be repeated", func(s string) error {
		sets = append(sets, s)
		return nil
	})
	flags.StringVar(&given.Mode, "mode", config.ModeInput, "run mode: run, output, or input")
	flags.BoolVar(&given.ASCII, "ascii", false, "read and write text rather than integers")
	flags.BoolVar(&given.Trace, "trace", false, "enable trace logging")
	flags.Uint64Var(&given.MemLimit, "mem-limit", 0, "enable memory limit")
	flags.Uint64Var(&given.PageSize, "page-size", 0, "memory page size")
	flags.DurationVar(&given.Timeout, "timeout", 0, "specify a time limit")
	flags.BoolVar(&given.Dump, "dump", false, "dump program state to stderr after running")
	flags.StringVar(&given.Save, "save", "", "save a snapshot to `FILE` whenever the program waits for input")
	flags.StringVar(&given.Resume, "resume", "", "resume from a snapshot `FILE` rather than a program file")
	flags.StringVar(&given.Tee, "tee", "", "also write output into `FILE`")
	if err := flags.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return cfg, err
		}
	}
	cfg = config.FromEnv(cfg)

	var err error
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			var values []int64
			if values, err = intcode.ParseInts(inputs); err == nil {
				cfg.Inputs = values
			}
		case "set":
			for _, s := range sets {
				if err == nil {
					err = cfg.AddSet(s)
				}
			}
		case "mode":
			cfg.Mode = given.Mode
		case "ascii":
			cfg.ASCII = given.ASCII
		case "trace":
			cfg.Trace = given.Trace
		case "mem-limit":
			cfg.MemLimit = given.MemLimit
		case "page-size":
			cfg.PageSize = given.PageSize
		case "timeout":
			cfg.Timeout = given.Timeout
		case "dump":
			cfg.Dump = given.Dump
		case "save":
			cfg.Save = given.Save
		case "resume":
			cfg.Resume = given.Resume
		case "tee":
			cfg.Tee = given.Tee
		}
	})
	if err != nil {
		return cfg, err
	}

	switch args := flags.Args(); len(args) {
	case 0:
	case 1:
		cfg.Program = args[0]
	default:
		return cfg, fmt.Errorf("unexpected extra arguments %q", args[1:])
	}
	return cfg, cfg.Validate()
}
