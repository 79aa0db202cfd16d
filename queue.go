package intcode

// Queue is a FIFO of machine values, used to feed input instructions.
// Queues are owned by callers and passed into each run call; a nil *Queue
// behaves as an empty queue.
type Queue struct {
	vals []int64
}

// NewQueue returns a queue holding vals.
func NewQueue(vals ...int64) *Queue {
	return &Queue{vals: append([]int64(nil), vals...)}
}

// Push appends values to the back of the queue.
func (q *Queue) Push(vals ...int64) {
	q.vals = append(q.vals, vals...)
}

// Pop removes and returns the front value, if any.
func (q *Queue) Pop() (int64, bool) {
	if q == nil || len(q.vals) == 0 {
		return 0, false
	}
	val := q.vals[0]
	q.vals = q.vals[1:]
	if len(q.vals) == 0 {
		q.vals = q.vals[:0:0]
	}
	return val, true
}

// Len returns the number of queued values.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.vals)
}

// Values returns a copy of the queued values, front first.
func (q *Queue) Values() []int64 {
	if q == nil {
		return nil
	}
	return append([]int64(nil), q.vals...)
}
