package viewstate

import (
	"errors"
	"sync"
	"time"
)

var ErrActionPending = errors.New("action already pending")

// Status 是模擬非同步動作的狀態
type Status string

const (
	StatusIdle    Status = "idle"
	StatusPending Status = "pending"
	StatusDone    Status = "done"
	StatusFailed  Status = "failed"
)

// Action 以固定延遲模擬一次網路請求。
// Start 立即進入 pending，延遲結束後執行 run 並停在唯一的終止狀態。
type Action[T any] struct {
	mu       sync.Mutex
	delay    time.Duration
	status   Status
	result   T
	err      error
	timer    *time.Timer
	gen      uint64
	onSettle func(Status)
}

func NewAction[T any](delay time.Duration) *Action[T] {
	return &Action[T]{delay: delay, status: StatusIdle}
}

// OnSettle 註冊在動作完成後呼叫的函式，在計時器的 goroutine 中執行
func (a *Action[T]) OnSettle(fn func(Status)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onSettle = fn
}

// Start 開始動作。等待中再次呼叫會回傳 ErrActionPending。
func (a *Action[T]) Start(run func() (T, error)) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.status == StatusPending {
		return ErrActionPending
	}

	var zero T
	a.status = StatusPending
	a.result = zero
	a.err = nil
	a.gen++
	gen := a.gen
	a.timer = time.AfterFunc(a.delay, func() { a.settle(gen, run) })
	return nil
}

func (a *Action[T]) settle(gen uint64, run func() (T, error)) {
	result, err := run()

	a.mu.Lock()
	if gen != a.gen || a.status != StatusPending {
		a.mu.Unlock()
		return
	}
	a.timer = nil
	if err != nil {
		a.status = StatusFailed
		a.err = err
	} else {
		a.status = StatusDone
		a.result = result
	}
	status := a.status
	cb := a.onSettle
	a.mu.Unlock()

	if cb != nil {
		cb(status)
	}
}

// Cancel 停止計時器並丟棄尚未送達的結果，狀態回到 idle
func (a *Action[T]) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.gen++
	if a.status == StatusPending {
		a.status = StatusIdle
	}
}

func (a *Action[T]) Status() Status {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

func (a *Action[T]) Pending() bool {
	return a.Status() == StatusPending
}

// Result 回傳結果與錯誤，只有在 done 或 failed 時才有意義
func (a *Action[T]) Result() (T, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.result, a.err
}

// ActionState 是動作狀態的快照
type ActionState[T any] struct {
	Status Status `json:"status"`
	Result T      `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

func (a *Action[T]) Snapshot() ActionState[T] {
	a.mu.Lock()
	defer a.mu.Unlock()
	state := ActionState[T]{Status: a.status, Result: a.result}
	if a.err != nil {
		state.Error = a.err.Error()
	}
	return state
}
