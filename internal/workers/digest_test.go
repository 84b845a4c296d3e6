package workers

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-task-tamer/internal/logger"
	"github.com/MKhiriev/go-task-tamer/internal/mock"
	"github.com/MKhiriev/go-task-tamer/models"
)

func TestMetricsDigestWorker_Digest(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	analytics := mock.NewMockAnalyticsService(ctrl)

	var buf bytes.Buffer
	w := NewMetricsDigestWorker(users, analytics, time.Minute, &logger.Logger{Logger: zerolog.New(&buf)})
	ctx := context.Background()

	users.EXPECT().ListUserIDs(ctx).Return([]string{"u1", "u2", "u3"}, nil)
	analytics.EXPECT().ComputeMetrics(ctx, "u1").Return(models.Metrics{WorkStreak: 4, MonthlyEarnings: models.FromUnits(10)}, nil)
	analytics.EXPECT().ComputeMetrics(ctx, "u2").Return(models.Metrics{}, errors.New("db down"))
	analytics.EXPECT().ComputeMetrics(ctx, "u3").Return(models.Metrics{}, nil)

	require.NoError(t, w.digest(ctx))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, `"message":"metrics digest"`))
	assert.Contains(t, out, `"work_streak":4`)
	assert.Contains(t, out, `"monthly_earnings":"10.00"`)
	assert.Contains(t, out, `"user_id":"u2"`)
}

func TestMetricsDigestWorker_ListFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	w := NewMetricsDigestWorker(users, mock.NewMockAnalyticsService(ctrl), time.Minute, logger.Nop())

	users.EXPECT().ListUserIDs(gomock.Any()).Return(nil, errors.New("db down"))

	assert.Error(t, w.digest(context.Background()))
}

func TestMetricsDigestWorker_RunTicksUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	w := NewMetricsDigestWorker(users, mock.NewMockAnalyticsService(ctrl), 5*time.Millisecond, logger.Nop())

	ticked := make(chan struct{}, 1)
	users.EXPECT().ListUserIDs(gomock.Any()).DoAndReturn(func(context.Context) ([]string, error) {
		select {
		case ticked <- struct{}{}:
		default:
		}
		return nil, nil
	}).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("digest never ran")
	}

	cancel()
	assert.NoError(t, <-done)
}
