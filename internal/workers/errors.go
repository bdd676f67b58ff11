// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "errors"

var (
	// ErrQueueFull is returned by Enqueue when the mail queue has no free slot.
	ErrQueueFull = errors.New("mail queue is full")

	// ErrWorkerStopped is returned by Enqueue after the mail worker has stopped.
	ErrWorkerStopped = errors.New("mail worker is stopped")
)
