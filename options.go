package intcode

// Option customizes a Program when it's created.
type Option interface{ apply(p *Program) }

// Options combines any number of options into one; nil options are ignored.
func Options(opts ...Option) Option {
	var all options
	for _, opt := range opts {
		if many, ok := opt.(options); ok {
			all = append(all, many...)
		} else if opt != nil {
			all = append(all, opt)
		}
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	default:
		return all
	}
}

type options []Option

func (opts options) apply(p *Program) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(p)
		}
	}
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(p *Program) {
	p.logfn = logfn
}

type memLimitOption uint64

func (lim memLimitOption) apply(p *Program) {
	p.tape.cells.Limit = uint64(lim)
}

type pageSizeOption uint64

func (size pageSizeOption) apply(p *Program) {
	p.tape.cells.PageSize = uint64(size)
}
