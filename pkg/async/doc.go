// Package async provides a minimal future abstraction for awaiting the
// result of a computation that runs in its own goroutine.
//
// Run starts the supplied function and immediately returns a *Future.
// Callers wait with Await, bound the wait with AwaitTimeout or
// AwaitContext, or poll with IsComplete. If the context is already
// cancelled when Run is called, the function is never invoked and the
// future completes with the context error.
//
// Completed wraps an existing result in an already-resolved future, which
// is useful for returning errors from synchronous fast paths with the
// same signature as asynchronous ones.
//
//	future := async.Run(ctx, func(ctx context.Context) (string, error) {
//	    return slowLookup(ctx)
//	})
//	res, err := future.Await()
package async
