package runmode

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/livp123/dpdkintel/pkg/sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedReceiver struct {
	packets []*sdk.Packet
	err     error
}

func (r *scriptedReceiver) Next(ctx context.Context) (*sdk.Packet, error) {
	if len(r.packets) == 0 {
		return nil, r.err
	}
	p := r.packets[0]
	r.packets = r.packets[1:]
	return p, nil
}

func (r *scriptedReceiver) Process(ctx context.Context, p *sdk.Packet) error { return nil }

func runWorker(t *testing.T, w *Worker) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.started = true
	go w.run(ctx)
	select {
	case <-w.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestWorkerDropsOnStageError(t *testing.T) {
	var reached int
	rx := &scriptedReceiver{
		packets: []*sdk.Packet{{InPort: 0}, {InPort: 1}, {InPort: 0}},
		err:     io.EOF,
	}
	decode := sdk.StageFunc(func(ctx context.Context, p *sdk.Packet) error {
		if p.InPort == 1 {
			return errors.New("truncated header")
		}
		return nil
	})
	respond := sdk.StageFunc(func(ctx context.Context, p *sdk.Packet) error {
		reached++
		return nil
	})
	wc := sdk.WorkerContext{Name: "W0", Chain: []sdk.ModuleID{sdk.ModuleReceive, sdk.ModuleDecode, sdk.ModuleRespondReject}}
	w := newWorker(wc, &sdk.Binding{OutPort: sdk.NoPort}, rx, []sdk.Stage{decode, respond})

	runWorker(t, w)
	assert.NoError(t, w.Err())
	assert.Equal(t, uint64(3), w.Packets())
	assert.Equal(t, uint64(1), w.Errors())
	assert.Equal(t, 2, reached)
}

func TestWorkerReceiveError(t *testing.T) {
	rx := &scriptedReceiver{err: errors.New("mbuf pool exhausted")}
	wc := sdk.WorkerContext{Name: "W0", Chain: []sdk.ModuleID{sdk.ModuleReceive}}
	w := newWorker(wc, &sdk.Binding{OutPort: sdk.NoPort}, rx, nil)

	runWorker(t, w)
	require.Error(t, w.Err())
	assert.Contains(t, w.Err().Error(), "mbuf pool exhausted")
}

func TestWorkerStopWithoutStart(t *testing.T) {
	w := newWorker(sdk.WorkerContext{Name: "W0"}, &sdk.Binding{}, &scriptedReceiver{err: io.EOF}, nil)
	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked on a worker that never started")
	}
}
