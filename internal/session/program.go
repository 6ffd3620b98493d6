package session

import (
	"context"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/yt-mov/internal/model"
)

// DefaultQueueSize is the message buffer of a Program
const DefaultQueueSize = 64

// Program owns the session and is its only writer. UI callbacks and finished
// commands hand it messages through Send; Run applies them one at a time in
// arrival order.
type Program struct {
	env    Env
	logger *zap.Logger

	msgs chan Message
	done chan struct{}

	stateMutex sync.RWMutex
	state      model.Session

	listenersMutex sync.Mutex
	listeners      []func(View)

	cmds sync.WaitGroup
}

// NewProgram creates a program with an empty session
func NewProgram(env Env, logger *zap.Logger) *Program {
	if logger == nil {
		logger = zap.NewNop()
	}
	if env.MaxLogLines <= 0 {
		env.MaxLogLines = model.DefaultMaxLogLines
	}
	return &Program{
		env:    env,
		logger: logger.Named("session"),
		msgs:   make(chan Message, DefaultQueueSize),
		done:   make(chan struct{}),
		state:  model.NewSession(),
	}
}

// OnChange registers fn to receive a View after every applied message. fn runs
// on the event loop goroutine and must not block.
func (p *Program) OnChange(fn func(View)) {
	p.listenersMutex.Lock()
	defer p.listenersMutex.Unlock()
	p.listeners = append(p.listeners, fn)
}

// Send queues msg for the event loop. It returns false once Run has exited.
func (p *Program) Send(msg Message) bool {
	select {
	case <-p.done:
		return false
	default:
	}

	select {
	case p.msgs <- msg:
		return true
	case <-p.done:
		return false
	}
}

// State returns a copy of the current session
func (p *Program) State() model.Session {
	p.stateMutex.RLock()
	defer p.stateMutex.RUnlock()
	s := p.state
	s.Logs = append([]string(nil), p.state.Logs...)
	return s
}

// Run processes messages until ctx is cancelled. Commands still running when
// ctx ends see the same cancellation; Run waits for them before returning.
func (p *Program) Run(ctx context.Context) error {
	defer func() {
		close(p.done)
		p.cmds.Wait()
	}()

	p.notify(Render(p.State()))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-p.msgs:
			p.apply(ctx, msg)
		}
	}
}

// apply runs one transition on the loop goroutine
func (p *Program) apply(ctx context.Context, msg Message) {
	p.stateMutex.RLock()
	prev := p.state
	p.stateMutex.RUnlock()

	next, cmd := Update(prev, msg, p.env)

	p.stateMutex.Lock()
	p.state = next
	p.stateMutex.Unlock()

	for _, line := range next.NewLogs(prev.LogTotal) {
		p.logDiagnostic(next, line)
	}
	if prev.Downloading != next.Downloading || prev.Stage != next.Stage {
		p.logger.Debug("session transition",
			zap.String("run_id", next.RunID),
			zap.String("from", prev.Stage.String()),
			zap.String("to", next.Stage.String()),
			zap.Bool("downloading", next.Downloading),
		)
	}

	p.notify(Render(next))

	if cmd != nil {
		p.start(ctx, cmd)
	}
}

// start runs cmd on its own goroutine and feeds its result back
func (p *Program) start(ctx context.Context, cmd Cmd) {
	p.cmds.Add(1)
	go func() {
		defer p.cmds.Done()
		if msg := cmd(ctx); msg != nil {
			p.Send(msg)
		}
	}()
}

func (p *Program) notify(v View) {
	p.listenersMutex.Lock()
	listeners := slices.Clone(p.listeners)
	p.listenersMutex.Unlock()

	for _, fn := range listeners {
		fn(v)
	}
}

// logDiagnostic mirrors a session diagnostic into the structured log
func (p *Program) logDiagnostic(s model.Session, line string) {
	fields := []zap.Field{zap.String("run_id", s.RunID), zap.String("stage", s.Stage.String())}
	if s.Stage.IsFailure() {
		p.logger.Warn(line, fields...)
		return
	}
	p.logger.Info(line, fields...)
}
