package intcode

// @generated from program_test.go

//go:generate go run scripts/gen_expects.go program_test.go program_expects_test.go

import "time"

func withProgCode(code ...int64) func(programTestCase) programTestCase {
	return func(pt programTestCase) programTestCase {
		return pt.withCode(code...)
	}
}

func withProgOptions(opts ...Option) func(programTestCase) programTestCase {
	return func(pt programTestCase) programTestCase {
		return pt.withOptions(opts...)
	}
}

func withProgInputs(values ...int64) func(programTestCase) programTestCase {
	return func(pt programTestCase) programTestCase {
		return pt.withInputs(values...)
	}
}

func withProgMemAt(addr int64, values ...int64) func(programTestCase) programTestCase {
	return func(pt programTestCase) programTestCase {
		return pt.withMemAt(addr, values...)
	}
}

func withProgRelativeBase(base int64) func(programTestCase) programTestCase {
	return func(pt programTestCase) programTestCase {
		return pt.withRelativeBase(base)
	}
}

func withProgTimeout(timeout time.Duration) func(programTestCase) programTestCase {
	return func(pt programTestCase) programTestCase {
		return pt.withTimeout(timeout)
	}
}

func expectProgError(err error) func(programTestCase) programTestCase {
	return func(pt programTestCase) programTestCase {
		return pt.expectError(err)
	}
}

func expectProgOutputs(values ...int64) func(programTestCase) programTestCase {
	return func(pt programTestCase) programTestCase {
		return pt.expectOutputs(values...)
	}
}

func expectProgInputs(values ...int64) func(programTestCase) programTestCase {
	return func(pt programTestCase) programTestCase {
		return pt.expectInputs(values...)
	}
}

func expectProgMemAt(addr int64, values ...int64) func(programTestCase) programTestCase {
	return func(pt programTestCase) programTestCase {
		return pt.expectMemAt(addr, values...)
	}
}

func expectProgPC(pc int64) func(programTestCase) programTestCase {
	return func(pt programTestCase) programTestCase {
		return pt.expectPC(pc)
	}
}

func expectProgState(state State) func(programTestCase) programTestCase {
	return func(pt programTestCase) programTestCase {
		return pt.expectState(state)
	}
}

func expectProgRelativeBase(base int64) func(programTestCase) programTestCase {
	return func(pt programTestCase) programTestCase {
		return pt.expectRelativeBase(base)
	}
}

func expectProgSteps(steps uint64) func(programTestCase) programTestCase {
	return func(pt programTestCase) programTestCase {
		return pt.expectSteps(steps)
	}
}
