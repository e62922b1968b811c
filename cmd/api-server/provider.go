package main

import (
	"context"

	"DevHub/pkg/server"
	"DevHub/socket"
	"DevHub/worker"
)

type jobFunc func(ctx context.Context) error

func (f jobFunc) Start(ctx context.Context) error {
	return f(ctx)
}

// newJobs collects the background loops tied to the server lifetime.
func newJobs(sub *socket.Subscriber, consumer *worker.NotifyConsumer, sweeper *worker.ProSweeper, hub *socket.Hub) []server.Job {
	return []server.Job{
		sub,
		consumer,
		sweeper,
		jobFunc(hub.SweepStale),
	}
}
