// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that allows
// running multiple workers in a unified way, and a bounded Pool that
// executes CPU-heavy jobs such as password hashing.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and must not block; Stop releases its goroutines
// and blocks until they have exited.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run()  { go w.loop() }
//	func (w *MyWorker) Stop() { w.cancel(); w.wg.Wait() }
type Worker interface {
	Run()
	Stop()
}
