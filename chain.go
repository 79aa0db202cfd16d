package intcode

import (
	"context"
	"fmt"
	"strconv"
)

// Chain connects programs in series: each program's output feeds the next
// program's input. With Loop set, the last program's output also feeds back
// into the first program's input.
type Chain struct {
	Loop bool

	progs  []*Program
	queues []Queue
}

// NewChain creates a chain of the given programs, in order.
func NewChain(progs ...*Program) *Chain {
	return &Chain{
		progs:  progs,
		queues: make([]Queue, len(progs)),
	}
}

// Feed queues input values for the i-th program, e.g. an initial setting
// that each program reads before any chained value.
func (ch *Chain) Feed(i int, vals ...int64) {
	ch.queues[i].Push(vals...)
}

// Run executes the chain until every program has terminated, returning all
// values output by the last program.
//
// Programs are run in turn, each until it needs input that isn't queued yet,
// with any output passed downstream. If a full round makes no progress while
// some program is still running, ErrChainStalled is returned.
func (ch *Chain) Run(ctx context.Context) (final []int64, _ error) {
	last := len(ch.progs) - 1
	for {
		running, progress := 0, false
		for i, p := range ch.progs {
			if p.State() == Terminated {
				continue
			}

			steps := p.Steps()
			out, err := ch.runProgram(ctx, i)
			if err != nil {
				return final, fmt.Errorf("chain program #%v: %w", i, err)
			}
			if p.Steps() != steps {
				progress = true
			}
			if p.State() == Running {
				running++
			}

			if i < last {
				ch.queues[i+1].Push(out...)
				continue
			}
			final = append(final, out...)
			if ch.Loop {
				ch.queues[0].Push(out...)
			}
		}

		if running == 0 {
			return final, nil
		}
		if !progress {
			return final, ErrChainStalled
		}
	}
}

func (ch *Chain) runProgram(ctx context.Context, i int) ([]int64, error) {
	p := ch.progs[i]
	defer p.withLogPrefix("[" + strconv.Itoa(i) + "] ")()
	return p.RunToNextInput(ctx, &ch.queues[i])
}
