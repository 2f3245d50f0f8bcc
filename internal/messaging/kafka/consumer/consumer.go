package consumer

import (
	"context"
	"errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers use.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type permanentError struct {
	err error
}

func (e permanentError) Error() string { return e.err.Error() }
func (e permanentError) Unwrap() error { return e.err }

// skip marks a message that will never succeed. It is committed so the group
// moves past it.
func skip(err error) error {
	return permanentError{err: err}
}

type handleFunc func(ctx context.Context, msg kafkago.Message) error

// run fetches until ctx is done. Messages are committed after handle
// succeeds or returns a skip error. Other failures are logged and not
// committed, but commits are offsets: the next committed message moves the
// group past the failed one. Salary drift left behind is repaired by the
// next full synchronization, which every payroll refresh runs.
func run(ctx context.Context, reader MessageReader, log *zap.Logger, handle handleFunc) {
	log.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("consumer stopped")
				return
			}
			log.Error("fetch message failed", zap.Error(err))
			continue
		}

		err = handle(ctx, msg)
		var perm permanentError
		switch {
		case err == nil:
		case errors.As(err, &perm):
			log.Warn("skipping message",
				zap.Int64("offset", msg.Offset),
				zap.String("key", string(msg.Key)),
				zap.Error(err),
			)
		default:
			log.Error("handle message failed",
				zap.Int64("offset", msg.Offset),
				zap.String("key", string(msg.Key)),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit message failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		}
	}
}
