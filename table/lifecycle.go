package table

// Status is the fetch state of a table.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Epoch numbers fetches. Only the result of the latest epoch may be applied.
type Epoch uint64

// Lifecycle is the Idle -> Loading -> Ready|Failed state machine of a table's
// data fetch. Each Begin starts a new epoch and invalidates every earlier
// one, so a slow response can never overwrite a newer selection.
type Lifecycle struct {
	status  Status
	epoch   Epoch
	message string
}

// Begin enters Loading for a new epoch and returns it.
func (l *Lifecycle) Begin() Epoch {
	l.epoch++
	l.status = StatusLoading
	l.message = ""
	return l.epoch
}

// Pending reports whether a result for e would still be applied.
func (l *Lifecycle) Pending(e Epoch) bool {
	return l.status == StatusLoading && e == l.epoch
}

// Succeed moves to Ready if e is the pending epoch.
func (l *Lifecycle) Succeed(e Epoch) bool {
	if !l.Pending(e) {
		return false
	}
	l.status = StatusReady
	return true
}

// Fail moves to Failed with message if e is the pending epoch.
func (l *Lifecycle) Fail(e Epoch, message string) bool {
	if !l.Pending(e) {
		return false
	}
	l.status = StatusFailed
	l.message = message
	return true
}

func (l *Lifecycle) Status() Status  { return l.status }
func (l *Lifecycle) Epoch() Epoch    { return l.epoch }
func (l *Lifecycle) Message() string { return l.message }
