package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jcorbin/intcode"
	"github.com/jcorbin/intcode/internal/config"
	"github.com/jcorbin/intcode/internal/fileinput"
	"github.com/jcorbin/intcode/internal/flushio"
	"github.com/jcorbin/intcode/internal/runeio"
	"go.uber.org/zap"
)

// session runs one program under a configuration, reading interactive input
// from stdin and printing output values to stdout.
type session struct {
	config.Config
	log *zap.SugaredLogger

	in   fileinput.Input
	out  flushio.WriteFlusher
	diag io.Writer

	prog  *intcode.Program
	queue intcode.Queue

	closers []io.Closer
}

func newSession(cfg config.Config, log *zap.SugaredLogger, stdin io.Reader, stdout, stderr io.Writer) *session {
	s := &session{
		Config: cfg,
		log:    log,
		out:    flushio.NewWriteFlusher(stdout),
		diag:   stderr,
	}
	s.in.Queue = append(s.in.Queue, stdin)
	return s
}

func (s *session) Run(ctx context.Context) (rerr error) {
	defer func() {
		for i := len(s.closers) - 1; i >= 0; i-- {
			if cerr := s.closers[i].Close(); rerr == nil {
				rerr = cerr
			}
		}
	}()

	if err := s.setup(); err != nil {
		return err
	}

	if s.Dump {
		defer func() {
			if err := (intcode.Dumper{Program: s.prog, Out: s.diag}).Dump(); rerr == nil {
				rerr = err
			}
		}()
	}

	switch s.Mode {
	case config.ModeRun:
		out, err := s.prog.Run(ctx, &s.queue)
		if werr := s.emit(out); err == nil {
			err = werr
		}
		return err

	case config.ModeOutput:
		return s.runOutputs(ctx)

	default:
		return s.runInteractive(ctx)
	}
}

func (s *session) setup() error {
	if s.Tee != "" {
		f, err := os.Create(s.Tee)
		if err != nil {
			return err
		}
		s.closers = append(s.closers, f)
		s.out = flushio.Tee(s.out, flushio.NewWriteFlusher(f))
	}

	var opts []intcode.Option
	if s.Trace {
		opts = append(opts, intcode.WithLogf(s.log.Debugf))
	}
	if s.MemLimit != 0 {
		opts = append(opts, intcode.WithMemLimit(s.MemLimit))
	}
	if s.PageSize != 0 {
		opts = append(opts, intcode.WithPageSize(s.PageSize))
	}

	if s.Resume != "" {
		snap, err := intcode.ReadSnapshot(s.Resume)
		if err != nil {
			return err
		}
		if s.prog, err = intcode.Restore(snap, opts...); err != nil {
			return fmt.Errorf("%v: %w", s.Resume, err)
		}
		s.log.Infow("resumed program", "snapshot", s.Resume, "pc", s.prog.PC(), "steps", s.prog.Steps())
	} else {
		prog, err := intcode.Load(s.Program, opts...)
		if err != nil {
			return err
		}
		s.prog = prog
	}

	pokes, err := s.Pokes()
	if err != nil {
		return err
	}
	for _, poke := range pokes {
		if err := s.prog.SetMemoryValue(poke.Addr, poke.Value); err != nil {
			return fmt.Errorf("failed to set memory: %w", err)
		}
	}

	s.queue.Push(s.Inputs...)
	return nil
}

func (s *session) runOutputs(ctx context.Context) error {
	for {
		val, ok, err := s.prog.RunToNextOutput(ctx, &s.queue)
		if ok {
			if werr := s.emit([]int64{val}); err == nil {
				err = werr
			}
		}
		if err != nil || !ok {
			return err
		}
	}
}

func (s *session) runInteractive(ctx context.Context) error {
	for {
		out, err := s.prog.RunToNextInput(ctx, &s.queue)
		if werr := s.emit(out); err == nil {
			err = werr
		}
		if err != nil {
			return err
		}
		if s.prog.State() == intcode.Terminated {
			s.log.Debugw("program terminated", "steps", s.prog.Steps())
			return nil
		}

		if s.Save != "" {
			if err := s.prog.Snapshot().WriteFile(s.Save); err != nil {
				return err
			}
			s.log.Debugw("saved snapshot", "path", s.Save, "pc", s.prog.PC())
		}

		if err := s.readInput(); err == io.EOF {
			if s.Save != "" {
				s.log.Infow("program suspended", "snapshot", s.Save, "pc", s.prog.PC())
				return nil
			}
			return fmt.Errorf("program waiting for input @%v: %w", s.prog.PC(), intcode.ErrInputExhausted)
		} else if err != nil {
			return err
		}
	}
}

// readInput queues values read from the next non-empty line of input: its
// runes in ASCII mode, comma separated integers otherwise.
func (s *session) readInput() error {
	for s.queue.Len() == 0 {
		line, err := s.in.ReadLine()
		if err != nil {
			return err
		}
		if s.ASCII {
			s.queue.Push(runeio.ASCIIValues(line)...)
			continue
		}
		values, err := intcode.ParseInts(line)
		if err != nil {
			return fmt.Errorf("%v: %w", s.in.Last.Location, err)
		}
		s.queue.Push(values...)
	}
	return nil
}

func (s *session) emit(values []int64) error {
	var buf [24]byte
	for _, val := range values {
		var err error
		if s.ASCII {
			_, err = runeio.WriteASCIIValue(s.out, val)
		} else {
			_, err = s.out.Write(append(strconv.AppendInt(buf[:0], val, 10), '\n'))
		}
		if err != nil {
			return err
		}
	}
	return s.out.Flush()
}
