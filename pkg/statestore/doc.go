// Package statestore provides a generic observable value holder.
//
// A Store owns a single value of type T and notifies subscribers with an
// immutable snapshot every time the value is replaced. It is the
// subject/store half of an observer pattern: writers call Set, observers
// call Subscribe and range over the returned channel.
//
// Subscribers receive the current value immediately on subscription, so a
// late observer always knows what the screen shows right now, followed by
// every subsequent change. Delivery is non-blocking: a subscriber that
// falls behind its buffer drops the connection rather than stalling the
// writer. Cancelling the subscription context unsubscribes automatically.
//
// Basic usage:
//
//	store := statestore.New("initial")
//	defer store.Close()
//
//	sub := store.Subscribe(ctx)
//	defer sub.Close()
//
//	_ = store.Set(ctx, "updated")
//
//	for v := range sub.Updates() {
//		fmt.Println(v) // "initial", then "updated"
//	}
package statestore
