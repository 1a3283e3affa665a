package tool

import "sync"

// InvokeObservation captures one adapter invocation outcome.
type InvokeObservation struct {
	Tool       string
	Success    bool
	ErrorCode  string
	DurationMS int64
}

// Observer receives adapter-level observability events.
type Observer interface {
	ObserveInvoke(observation InvokeObservation)
}

type noopObserver struct{}

func (noopObserver) ObserveInvoke(InvokeObservation) {}

var (
	observerMu     sync.RWMutex
	activeObserver Observer = noopObserver{}
)

// SetObserver sets the process-wide invocation observer. Passing nil
// restores the no-op observer.
func SetObserver(observer Observer) {
	observerMu.Lock()
	defer observerMu.Unlock()
	if observer == nil {
		activeObserver = noopObserver{}
		return
	}
	activeObserver = observer
}

// Fanout returns an observer that forwards each observation to every child.
func Fanout(observers ...Observer) Observer {
	return fanoutObserver(observers)
}

type fanoutObserver []Observer

func (f fanoutObserver) ObserveInvoke(observation InvokeObservation) {
	for _, observer := range f {
		if observer != nil {
			observer.ObserveInvoke(observation)
		}
	}
}

func emitInvokeObservation(observation InvokeObservation) {
	observerMu.RLock()
	observer := activeObserver
	observerMu.RUnlock()
	observer.ObserveInvoke(observation)
}
