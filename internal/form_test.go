package internal_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchpadhq/contactform/internal"
	"github.com/launchpadhq/contactform/pkg/validator"
)

// fakePresenter records every presentation call in order.
type fakePresenter struct {
	mu    sync.Mutex
	calls []string

	fieldErrors   map[internal.Field]string
	summaryErrors []string
	buttonStates  []internal.ButtonState
	successMsg    string
	successHide   time.Duration
	successShown  int
	resets        int
}

func newFakePresenter() *fakePresenter {
	return &fakePresenter{fieldErrors: make(map[internal.Field]string)}
}

func (p *fakePresenter) record(call string) {
	p.calls = append(p.calls, call)
}

func (p *fakePresenter) ClearErrors() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("ClearErrors")
	p.summaryErrors = nil
	clear(p.fieldErrors)
}

func (p *fakePresenter) SetFieldInvalid(f internal.Field, msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("SetFieldInvalid:" + string(f))
	p.fieldErrors[f] = msg
}

func (p *fakePresenter) ClearFieldInvalid(f internal.Field) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("ClearFieldInvalid:" + string(f))
	delete(p.fieldErrors, f)
}

func (p *fakePresenter) ShowSummaryErrors(messages []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("ShowSummaryErrors")
	p.summaryErrors = messages
}

func (p *fakePresenter) SetButtonState(s internal.ButtonState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("SetButtonState:" + s.String())
	p.buttonStates = append(p.buttonStates, s)
}

func (p *fakePresenter) ResetFields() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("ResetFields")
	p.resets++
}

func (p *fakePresenter) ShowSuccess(msg string, hideAfter time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.record("ShowSuccess")
	p.successMsg = msg
	p.successHide = hideAfter
	p.successShown++
}

// fakeSubmitter counts calls and returns a canned result or error.
type fakeSubmitter struct {
	mu     sync.Mutex
	calls  int
	lastIn internal.Record
	result *internal.Result
	err    error
}

func (s *fakeSubmitter) Submit(_ context.Context, rec internal.Record) (*internal.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.lastIn = rec
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func validValues() internal.FormValues {
	return internal.FormValues{
		Name:    "Al",
		Email:   "a@b.co",
		Subject: "Hi there",
		Message: "1234567890",
	}
}

func TestFormSubmit_Valid(t *testing.T) {
	t.Parallel()

	p := newFakePresenter()
	sub := &fakeSubmitter{result: &internal.Result{ID: "sub-1", Message: "all good"}}
	form := internal.NewForm(
		internal.WithPresenter(p),
		internal.WithSubmitter(sub),
	)

	res, errs, err := form.Submit(context.Background(), validValues())
	require.NoError(t, err)
	require.True(t, errs.IsEmpty())
	require.NotNil(t, res)
	assert.Equal(t, "sub-1", res.ID)

	// Idle → Loading → Idle, success shown exactly once.
	assert.Equal(t, []internal.ButtonState{internal.ButtonLoading, internal.ButtonIdle}, p.buttonStates)
	assert.Equal(t, internal.ButtonIdle, form.State())
	assert.Equal(t, 1, p.successShown)
	assert.Equal(t, "all good", p.successMsg)
	assert.Equal(t, internal.DefaultSuccessHideAfter, p.successHide)
	assert.Equal(t, 1, sub.calls)

	// Success sequence order: fields reset before the success message,
	// button back to Idle last.
	assert.Equal(t, []string{
		"ClearErrors",
		"SetButtonState:loading",
		"ResetFields",
		"ShowSuccess",
		"SetButtonState:idle",
	}, p.calls)
}

func TestFormSubmit_TrimsAndStripsInput(t *testing.T) {
	t.Parallel()

	p := newFakePresenter()
	sub := &fakeSubmitter{result: &internal.Result{ID: "sub-2", Message: "ok"}}
	form := internal.NewForm(internal.WithPresenter(p), internal.WithSubmitter(sub))

	_, errs, err := form.Submit(context.Background(), internal.FormValues{
		Name:    "  Al  ",
		Email:   " a@b.co ",
		Subject: "<b>Hi there</b>",
		Message: " 1234567890 ",
	})
	require.NoError(t, err)
	require.True(t, errs.IsEmpty())

	assert.Equal(t, "Al", sub.lastIn.Name)
	assert.Equal(t, "a@b.co", sub.lastIn.Email)
	assert.Equal(t, "Hi there", sub.lastIn.Subject)
	assert.Equal(t, "1234567890", sub.lastIn.Message)
}

func TestFormSubmit_Invalid(t *testing.T) {
	t.Parallel()

	p := newFakePresenter()
	sub := &fakeSubmitter{result: &internal.Result{ID: "nope"}}
	form := internal.NewForm(internal.WithPresenter(p), internal.WithSubmitter(sub))

	res, errs, err := form.Submit(context.Background(), internal.FormValues{})
	require.NoError(t, err)
	require.Nil(t, res)

	// One error per field, declared order.
	require.Len(t, errs, 4)
	assert.Equal(t, []validator.Field{
		validator.FieldName,
		validator.FieldEmail,
		validator.FieldSubject,
		validator.FieldMessage,
	}, errs.Fields())

	// Loading is never entered and the submitter is never called.
	assert.Empty(t, p.buttonStates)
	assert.Equal(t, internal.ButtonIdle, form.State())
	assert.Zero(t, sub.calls)
	assert.Zero(t, p.successShown)

	// Summary and per-field display both populated.
	assert.Len(t, p.summaryErrors, 4)
	assert.Len(t, p.fieldErrors, 4)
	assert.True(t, form.IsFieldInvalid(validator.FieldEmail))
}

func TestFormSubmit_TransportFailure(t *testing.T) {
	t.Parallel()

	p := newFakePresenter()
	sub := &fakeSubmitter{err: errors.Join(internal.ErrSubmitFailed, errors.New("boom"))}
	form := internal.NewForm(internal.WithPresenter(p), internal.WithSubmitter(sub))

	res, errs, err := form.Submit(context.Background(), validValues())
	require.Nil(t, res)
	require.True(t, errs.IsEmpty())
	require.ErrorIs(t, err, internal.ErrSubmitFailed)

	// The failure travels through the same summary-error path and the
	// button returns to Idle.
	require.Len(t, p.summaryErrors, 1)
	assert.Equal(t, internal.TransportErrorMessage, p.summaryErrors[0])
	assert.Equal(t, []internal.ButtonState{internal.ButtonLoading, internal.ButtonIdle}, p.buttonStates)
	assert.Zero(t, p.successShown)
	assert.Zero(t, p.resets)
}

func TestFormSubmit_TimeoutFailure(t *testing.T) {
	t.Parallel()

	p := newFakePresenter()
	sub := &fakeSubmitter{err: errors.Join(internal.ErrSubmitTimeout, internal.ErrSubmitFailed)}
	form := internal.NewForm(internal.WithPresenter(p), internal.WithSubmitter(sub))

	_, _, err := form.Submit(context.Background(), validValues())
	require.ErrorIs(t, err, internal.ErrSubmitTimeout)

	require.Len(t, p.summaryErrors, 1)
	assert.Equal(t, internal.TimeoutErrorMessage, p.summaryErrors[0])
}

func TestFormSubmit_ClearsPriorErrors(t *testing.T) {
	t.Parallel()

	p := newFakePresenter()
	sub := &fakeSubmitter{result: &internal.Result{ID: "sub-3", Message: "ok"}}
	form := internal.NewForm(internal.WithPresenter(p), internal.WithSubmitter(sub))

	_, errs, _ := form.Submit(context.Background(), internal.FormValues{})
	require.False(t, errs.IsEmpty())
	require.True(t, form.IsFieldInvalid(validator.FieldName))

	_, errs, err := form.Submit(context.Background(), validValues())
	require.NoError(t, err)
	require.True(t, errs.IsEmpty())

	assert.False(t, form.IsFieldInvalid(validator.FieldName))
	assert.Empty(t, p.fieldErrors)
	assert.Empty(t, p.summaryErrors)
}

func TestFieldBlur(t *testing.T) {
	t.Parallel()

	t.Run("invalid value marks the field", func(t *testing.T) {
		t.Parallel()
		p := newFakePresenter()
		form := internal.NewForm(internal.WithPresenter(p))

		err := form.FieldBlur(validator.FieldEmail, "not-an-email")
		require.NotNil(t, err)
		assert.Equal(t, "Please enter a valid email address", err.Message)
		assert.True(t, form.IsFieldInvalid(validator.FieldEmail))
		assert.Equal(t, "Please enter a valid email address", p.fieldErrors[validator.FieldEmail])
	})

	t.Run("valid value clears the field", func(t *testing.T) {
		t.Parallel()
		p := newFakePresenter()
		form := internal.NewForm(internal.WithPresenter(p))

		require.NotNil(t, form.FieldBlur(validator.FieldEmail, "bad"))
		require.Nil(t, form.FieldBlur(validator.FieldEmail, "a@b.co"))
		assert.False(t, form.IsFieldInvalid(validator.FieldEmail))
		assert.Empty(t, p.fieldErrors)
	})

	t.Run("unknown field is ignored", func(t *testing.T) {
		t.Parallel()
		p := newFakePresenter()
		form := internal.NewForm(internal.WithPresenter(p))

		assert.Nil(t, form.FieldBlur(internal.Field("phone"), ""))
		assert.Empty(t, p.calls)
	})
}

func TestFieldInput_LazyClear(t *testing.T) {
	t.Parallel()

	p := newFakePresenter()
	form := internal.NewForm(internal.WithPresenter(p))

	require.NotNil(t, form.FieldBlur(validator.FieldName, ""))
	require.True(t, form.IsFieldInvalid(validator.FieldName))

	// Editing a field marked invalid clears the state immediately, without
	// re-validating: the cleared state sticks even though the value is
	// still empty.
	assert.True(t, form.FieldInput(validator.FieldName))
	assert.False(t, form.IsFieldInvalid(validator.FieldName))
	assert.Empty(t, p.fieldErrors)

	// A second input event on a clean field is a no-op.
	assert.False(t, form.FieldInput(validator.FieldName))
}

func TestButtonState(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Launch Message", internal.ButtonIdle.Label())
	assert.Equal(t, "Sending…", internal.ButtonLoading.Label())
	assert.False(t, internal.ButtonIdle.Disabled())
	assert.True(t, internal.ButtonLoading.Disabled())
}

func TestStubSubmitter(t *testing.T) {
	t.Parallel()

	t.Run("waits the delay and succeeds", func(t *testing.T) {
		t.Parallel()
		sub := internal.NewStubSubmitter(10*time.Millisecond, nil)

		start := time.Now()
		res, err := sub.Submit(context.Background(), internal.Record{Name: "Al"})
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, internal.DefaultSuccessMessage, res.Message)
		assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		t.Parallel()
		sub := internal.NewStubSubmitter(time.Minute, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		res, err := sub.Submit(ctx, internal.Record{})
		require.Nil(t, res)
		require.ErrorIs(t, err, internal.ErrSubmitCancelled)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("zero delay falls back to default", func(t *testing.T) {
		t.Parallel()
		// Construction only; waiting 1.5s in tests is pointless.
		require.NotNil(t, internal.NewStubSubmitter(0, nil))
	})
}
