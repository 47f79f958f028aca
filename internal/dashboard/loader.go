package dashboard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/2beens/fitcoach/internal/nutrition"
	"github.com/2beens/fitcoach/pkg"

	log "github.com/sirupsen/logrus"
)

type dayViewFetcher interface {
	FetchDayView(ctx context.Context, clientID string, date time.Time) (*nutrition.DayView, error)
}

// Loader owns a screen State and runs its fetches. Starting a fetch cancels the
// one in flight, and only the last issued fetch is applied to the state.
type Loader struct {
	fetcher  dayViewFetcher
	onChange func(State)

	mutex  sync.Mutex
	state  State
	cancel context.CancelFunc
	closed bool
	wg     sync.WaitGroup
}

// NewLoader creates a loader. onChange, if set, is called with every new state
// while the loader lock is held, so it must not call back into the loader.
func NewLoader(fetcher dayViewFetcher, initial State, onChange func(State)) *Loader {
	return &Loader{
		fetcher:  fetcher,
		onChange: onChange,
		state:    initial,
	}
}

func (l *Loader) State() State {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.state
}

// Dispatch applies a non-fetching event, like a tab or filter change.
func (l *Loader) Dispatch(ev Event) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.apply(ev)
}

func (l *Loader) SelectDate(ctx context.Context, date time.Time) {
	l.startFetch(ctx, DateChanged{Date: date})
}

func (l *Loader) Refresh(ctx context.Context) {
	l.startFetch(ctx, FetchStarted{})
}

// Wait blocks until all issued fetches returned.
func (l *Loader) Wait() {
	l.wg.Wait()
}

// Close cancels the fetch in flight and waits for it.
func (l *Loader) Close() {
	l.mutex.Lock()
	l.closed = true
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.mutex.Unlock()

	l.wg.Wait()
}

func (l *Loader) startFetch(ctx context.Context, ev Event) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.closed {
		log.Debugf("dashboard loader closed, dropping %T", ev)
		return
	}
	if l.cancel != nil {
		l.cancel()
	}
	l.apply(ev)

	fetchCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	seq, clientID, date := l.state.Seq, l.state.ClientID, l.state.Date

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer cancel()

		view, err := l.fetcher.FetchDayView(fetchCtx, clientID, date)

		l.mutex.Lock()
		defer l.mutex.Unlock()
		if err != nil {
			if l.closed && errors.Is(err, context.Canceled) {
				return
			}
			if seq == l.state.Seq {
				log.Errorf("fetch day view %s for client %s: %s", date.Format(pkg.DateLayout), clientID, err)
			}
			l.apply(FetchFailed{Seq: seq, Err: err})
			return
		}
		l.apply(FetchSucceeded{Seq: seq, View: view})
	}()
}

// apply must be called with the lock held.
func (l *Loader) apply(ev Event) {
	if isStale(l.state, ev) {
		return
	}
	next := Reduce(l.state, ev)
	l.state = next
	if l.onChange != nil {
		l.onChange(next)
	}
}
