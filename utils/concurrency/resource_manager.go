// Package concurrency implements a simple channel-based resource manager
// for concurrent operations.
package concurrency

import (
	"sync"
)

// ResourceManager stores a channel of resources (e.g. scratch buffers)
// meant to be used concurrently, and a channel collecting task errors.
type ResourceManager[T any] struct {
	sync.WaitGroup
	Resources chan T
	Errors    chan error
}

// NewResourceManager instantiates a new [ResourceManager] handing out the
// given resources. Each resource is held by at most one running [Task] at a
// time.
func NewResourceManager[T any](resources []T) *ResourceManager[T] {
	ch := make(chan T, len(resources))
	for i := range resources {
		ch <- resources[i]
	}
	return &ResourceManager[T]{
		Resources: ch,
		Errors:    make(chan error, len(resources)),
	}
}

// Task is a function taking as input a resource that it may use exclusively
// until it returns.
type Task[T any] func(resource T) (err error)

// Run runs a [Task] concurrently. If an error has already been recorded,
// the task is dropped. Any error returned by the task is recorded, up to
// the capacity of the error channel.
func (r *ResourceManager[T]) Run(f Task[T]) {
	r.Add(1)
	go func() {
		defer r.Done()
		if len(r.Errors) != 0 {
			return
		}
		resource := <-r.Resources
		if err := f(resource); err != nil {
			select {
			case r.Errors <- err:
			default:
			}
		}
		r.Resources <- resource
	}()
}

// Wait waits until all concurrent [Task] have finished and returns the
// first recorded error, if any.
func (r *ResourceManager[T]) Wait() (err error) {
	r.WaitGroup.Wait()
	select {
	case err = <-r.Errors:
	default:
	}
	return
}
