// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-task-tamer/internal/config"
	"github.com/MKhiriev/go-task-tamer/internal/logger"
	"github.com/MKhiriev/go-task-tamer/internal/service"
	"github.com/MKhiriev/go-task-tamer/internal/store"
)

// blockingWorker counts its runs and waits for cancellation, or fails at
// once when err is set.
type blockingWorker struct {
	runs atomic.Int32
	err  error
}

func (b *blockingWorker) Run(ctx context.Context) error {
	b.runs.Add(1)
	if b.err != nil {
		return b.err
	}
	<-ctx.Done()
	return nil
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2 := &blockingWorker{}, &blockingWorker{}
	ws := &Workers{workers: []Worker{w1, w2}, logger: logger.Nop()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ws.Run(ctx) }()

	require.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestWorkers_Run_FirstErrorStopsOthers(t *testing.T) {
	boom := errors.New("boom")
	ws := &Workers{workers: []Worker{&blockingWorker{}, &blockingWorker{err: boom}}, logger: logger.Nop()}

	assert.ErrorIs(t, ws.Run(context.Background()), boom)
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{logger: logger.Nop()}

	assert.NoError(t, ws.Run(context.Background()))
}

func TestNewWorkers(t *testing.T) {
	storages := store.NewMemoryStorages(store.NewMemoryStorage())
	services := &service.Services{}

	disabled := NewWorkers(services, storages, config.Workers{}, logger.Nop())
	assert.Empty(t, disabled.workers)

	enabled := NewWorkers(services, storages, config.Workers{DigestInterval: time.Minute}, logger.Nop())
	require.Len(t, enabled.workers, 1)
	assert.IsType(t, &MetricsDigestWorker{}, enabled.workers[0])
}
