// Package panel implements the list/form/delete workflow shared by every
// admin resource page.
package panel

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"interact-club.backend/pkg/apiclient"
)

var (
	ErrSubmitPending   = errors.New("another submission is still in progress")
	ErrNotEditable     = errors.New("records of this kind cannot be edited")
	ErrUnknownRecord   = errors.New("record is not in the current list")
	ErrNoFormOpen      = errors.New("no form is open")
	ErrNoPendingDelete = errors.New("no delete is awaiting confirmation")
)

type State int

const (
	Loading State = iota
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "error"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Form is a typed set of user-entered values.
type Form interface {
	Validate() error
	Fields() []Field
}

// Resource adapts one API collection to the panel workflow.
type Resource[T any, F Form] interface {
	Name() string
	List(ctx context.Context) ([]T, error)
	Key(item T) string
	NewForm() F
	EditForm(item T) F
	Create(ctx context.Context, form F) error
	Delete(ctx context.Context, key string) error
}

// Updater is implemented by resources whose records can be edited.
type Updater[F Form] interface {
	Update(ctx context.Context, key string, form F) error
}

type Mode int

const (
	Creating Mode = iota
	Editing
)

// OpenForm is the form currently shown. Err holds the last failed
// submission, Values the values the user entered.
type OpenForm[F Form] struct {
	Mode   Mode
	Key    string
	Values F
	Err    error
}

// Panel drives one resource page. A Panel is safe for concurrent use but
// permits a single submission or delete at a time.
type Panel[T any, F Form] struct {
	res            Resource[T, F]
	onUnauthorized func()

	mu       sync.Mutex
	state    State
	items    []T
	err      error
	form     *OpenForm[F]
	pending  string
	inflight bool
}

// New creates a panel in the Loading state. onUnauthorized, if set, runs
// whenever the API rejects the session.
func New[T any, F Form](res Resource[T, F], onUnauthorized func()) *Panel[T, F] {
	return &Panel[T, F]{res: res, onUnauthorized: onUnauthorized}
}

func (p *Panel[T, F]) Name() string { return p.res.Name() }

// Editable reports whether records can be updated.
func (p *Panel[T, F]) Editable() bool {
	_, ok := p.res.(Updater[F])
	return ok
}

// Load fetches the full list. On failure the panel enters Failed and keeps
// no items; there is no automatic retry.
func (p *Panel[T, F]) Load(ctx context.Context) error {
	p.mu.Lock()
	p.state = Loading
	p.mu.Unlock()

	items, err := p.res.List(ctx)

	p.mu.Lock()
	if err != nil {
		p.state, p.items, p.err = Failed, nil, err
	} else {
		p.state, p.items, p.err = Ready, items, nil
	}
	p.mu.Unlock()

	if err != nil {
		p.checkAuth(err)
	}
	return err
}

func (p *Panel[T, F]) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Panel[T, F]) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

// Items returns a copy of the loaded list.
func (p *Panel[T, F]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]T(nil), p.items...)
}

func (p *Panel[T, F]) Key(item T) string { return p.res.Key(item) }

// Find returns the loaded record with key.
func (p *Panel[T, F]) Find(key string) (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, it := range p.items {
		if p.res.Key(it) == key {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// OpenCreate opens an empty form with default values.
func (p *Panel[T, F]) OpenCreate() F {
	f := p.res.NewForm()
	p.mu.Lock()
	p.form = &OpenForm[F]{Mode: Creating, Values: f}
	p.mu.Unlock()
	return f
}

// OpenEdit opens a form filled from the record's current values.
func (p *Panel[T, F]) OpenEdit(key string) (F, error) {
	var zero F
	if !p.Editable() {
		return zero, ErrNotEditable
	}
	item, ok := p.Find(key)
	if !ok {
		return zero, ErrUnknownRecord
	}
	f := p.res.EditForm(item)
	p.mu.Lock()
	p.form = &OpenForm[F]{Mode: Editing, Key: key, Values: f}
	p.mu.Unlock()
	return f, nil
}

// Form returns the open form, or nil.
func (p *Panel[T, F]) Form() *OpenForm[F] {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.form == nil {
		return nil
	}
	cp := *p.form
	return &cp
}

func (p *Panel[T, F]) CloseForm() {
	p.mu.Lock()
	p.form = nil
	p.mu.Unlock()
}

// Submit creates or updates from the open form. On success the form is
// closed and the list reloaded; on failure the form stays open with values
// and the error.
func (p *Panel[T, F]) Submit(ctx context.Context, values F) error {
	p.mu.Lock()
	if p.form == nil {
		p.mu.Unlock()
		return ErrNoFormOpen
	}
	if p.inflight {
		p.mu.Unlock()
		return ErrSubmitPending
	}
	form := *p.form
	form.Values = values
	form.Err = nil
	p.inflight = true
	p.mu.Unlock()

	err := values.Validate()
	if err == nil {
		err = p.write(ctx, form)
	}

	p.mu.Lock()
	p.inflight = false
	if err != nil {
		form.Err = err
		p.form = &form
	} else {
		p.form = nil
	}
	p.mu.Unlock()

	if err != nil {
		p.checkAuth(err)
		return err
	}
	_ = p.Load(ctx)
	return nil
}

func (p *Panel[T, F]) write(ctx context.Context, form OpenForm[F]) error {
	if form.Mode == Creating {
		return p.res.Create(ctx, form.Values)
	}
	u, ok := p.res.(Updater[F])
	if !ok {
		return ErrNotEditable
	}
	return u.Update(ctx, form.Key, form.Values)
}

// RequestDelete marks key for deletion pending confirmation.
func (p *Panel[T, F]) RequestDelete(key string) error {
	if _, ok := p.Find(key); !ok {
		return ErrUnknownRecord
	}
	p.mu.Lock()
	p.pending = key
	p.mu.Unlock()
	return nil
}

func (p *Panel[T, F]) PendingDelete() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pending
}

func (p *Panel[T, F]) CancelDelete() {
	p.mu.Lock()
	p.pending = ""
	p.mu.Unlock()
}

// ConfirmDelete deletes the pending record and reloads the list. On failure
// the list is left as it was.
func (p *Panel[T, F]) ConfirmDelete(ctx context.Context) error {
	p.mu.Lock()
	if p.pending == "" {
		p.mu.Unlock()
		return ErrNoPendingDelete
	}
	if p.inflight {
		p.mu.Unlock()
		return ErrSubmitPending
	}
	key := p.pending
	p.inflight = true
	p.mu.Unlock()

	err := p.res.Delete(ctx, key)

	p.mu.Lock()
	p.inflight = false
	p.pending = ""
	p.mu.Unlock()

	if err != nil {
		p.checkAuth(err)
		return err
	}
	_ = p.Load(ctx)
	return nil
}

func (p *Panel[T, F]) checkAuth(err error) {
	if p.onUnauthorized != nil && errors.Is(err, apiclient.ErrUnauthorized) {
		p.onUnauthorized()
	}
}
