package celebrate

import (
	"context"
	"io"
)

// Task is an animation running in the background
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}
	err    error
}

// Start runs the animation in its own goroutine
func Start(ctx context.Context, w io.Writer, opts Options) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{cancel: cancel, done: make(chan struct{})}
	go func() {
		defer close(t.done)
		t.err = Run(ctx, w, opts)
	}()
	return t
}

// Done is closed once the animation has stopped writing
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Stop cancels the animation and waits for it to finish. It is safe to call
// on a nil or already stopped task.
func (t *Task) Stop() error {
	if t == nil {
		return nil
	}
	t.cancel()
	<-t.done
	return t.err
}
