package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/internal/mock"
	"github.com/MKhiriev/go-social-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMailWorker_DeliversQueuedMail(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mock.NewMockMailSender(ctrl)

	mail := models.Mail{To: "a@b.com", Subject: "Confirm", Text: "link"}
	delivered := make(chan struct{})
	sender.EXPECT().Send(gomock.Any(), mail).DoAndReturn(func(context.Context, models.Mail) error {
		close(delivered)
		return nil
	})

	w := NewMailWorker(sender, 4, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	require.NoError(t, w.Enqueue(mail))
	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("mail was not delivered")
	}
}

func TestMailWorker_SendFailureDoesNotStopWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mock.NewMockMailSender(ctrl)

	first := models.Mail{To: "first@b.com"}
	second := models.Mail{To: "second@b.com"}
	delivered := make(chan struct{})
	gomock.InOrder(
		sender.EXPECT().Send(gomock.Any(), first).Return(errors.New("mail api down")),
		sender.EXPECT().Send(gomock.Any(), second).DoAndReturn(func(context.Context, models.Mail) error {
			close(delivered)
			return nil
		}),
	)

	w := NewMailWorker(sender, 4, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	require.NoError(t, w.Enqueue(first))
	require.NoError(t, w.Enqueue(second))
	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("second mail was not delivered")
	}
}

func TestMailWorker_QueueFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := NewMailWorker(mock.NewMockMailSender(ctrl), 1, logger.Nop())

	require.NoError(t, w.Enqueue(models.Mail{To: "a@b.com"}))
	assert.ErrorIs(t, w.Enqueue(models.Mail{To: "b@b.com"}), ErrQueueFull)
}

func TestMailWorker_DrainsOnStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mock.NewMockMailSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	w := NewMailWorker(sender, 2, logger.Nop())
	require.NoError(t, w.Enqueue(models.Mail{To: "a@b.com"}))
	require.NoError(t, w.Enqueue(models.Mail{To: "b@b.com"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, w.Run(ctx))

	assert.ErrorIs(t, w.Enqueue(models.Mail{To: "c@b.com"}), ErrWorkerStopped)
}

func TestMailWorker_EnqueueDuringStopIsNeverLost(t *testing.T) {
	ctrl := gomock.NewController(t)
	sender := mock.NewMockMailSender(ctrl)

	var delivered atomic.Int64
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, models.Mail) error {
		delivered.Add(1)
		return nil
	}).AnyTimes()

	w := NewMailWorker(sender, 1024, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	runDone := make(chan struct{})
	go func() {
		_ = w.Run(ctx)
		close(runDone)
	}()

	var (
		accepted atomic.Int64
		wg       sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				err := w.Enqueue(models.Mail{To: "a@b.com"})
				if err == nil {
					accepted.Add(1)
					continue
				}
				if errors.Is(err, ErrWorkerStopped) {
					return
				}
			}
		}()
	}

	time.Sleep(time.Millisecond)
	cancel()
	wg.Wait()

	select {
	case <-runDone:
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not stop")
	}

	assert.Equal(t, accepted.Load(), delivered.Load())
	assert.ErrorIs(t, w.Enqueue(models.Mail{To: "late@b.com"}), ErrWorkerStopped)
}
