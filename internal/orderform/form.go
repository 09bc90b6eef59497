package orderform

import (
	"context"
	"time"

	pkgerrors "github.com/angelmondragon/arbuz-storefront/pkg/errors"
)

// Submitter receives a confirmed draft. What happens to it is up to the
// implementation; the storefront itself does nothing beyond closing the form.
type Submitter interface {
	Submit(ctx context.Context, draft Draft) error
}

// SubmitterFunc adapts a plain function to Submitter.
type SubmitterFunc func(ctx context.Context, draft Draft) error

func (f SubmitterFunc) Submit(ctx context.Context, draft Draft) error { return f(ctx, draft) }

// DiscardSubmitter drops confirmed drafts.
type DiscardSubmitter struct{}

func (DiscardSubmitter) Submit(context.Context, Draft) error { return nil }

func errFormClosed() error {
	return pkgerrors.New(pkgerrors.CodeStateConflict, "order form is not open")
}

// Form owns the draft for as long as the order form is presented.
type Form struct {
	open      bool
	draft     Draft
	now       func() time.Time
	submitter Submitter
}

type Option func(*Form)

func WithClock(now func() time.Time) Option {
	return func(f *Form) { f.now = now }
}

func WithSubmitter(s Submitter) Option {
	return func(f *Form) { f.submitter = s }
}

func NewForm(opts ...Option) *Form {
	f := &Form{now: time.Now, submitter: DiscardSubmitter{}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Open presents the form with a fresh draft. Reopening an open form resets it.
func (f *Form) Open() Draft {
	f.draft.Reset(f.now())
	f.open = true
	return f.draft
}

// Close dismisses the form and discards the draft.
func (f *Form) Close() {
	f.draft = Draft{}
	f.open = false
}

func (f *Form) IsOpen() bool {
	return f.open
}

// Draft returns a copy of the current draft.
func (f *Form) Draft() (Draft, error) {
	if !f.open {
		return Draft{}, errFormClosed()
	}
	return f.draft, nil
}

// Update applies fn to the draft. No validation is performed on the result.
func (f *Form) Update(fn func(*Draft)) (Draft, error) {
	if !f.open {
		return Draft{}, errFormClosed()
	}
	fn(&f.draft)
	return f.draft, nil
}

// Confirm hands the draft to the submitter and closes the form. The form stays
// open if the submitter fails.
func (f *Form) Confirm(ctx context.Context) (Draft, error) {
	if !f.open {
		return Draft{}, errFormClosed()
	}
	confirmed := f.draft
	if err := f.submitter.Submit(ctx, confirmed); err != nil {
		return Draft{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "submit order")
	}
	f.Close()
	return confirmed, nil
}
