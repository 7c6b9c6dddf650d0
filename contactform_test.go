package contactform_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchpadhq/contactform"
	"github.com/launchpadhq/contactform/web"
)

type acceptAll struct{}

func (acceptAll) Submit(ctx context.Context, rec contactform.Record) (*contactform.Result, error) {
	return &contactform.Result{ID: "ok", Message: contactform.DefaultSuccessMessage}, nil
}

func TestPublicAPI_Submit(t *testing.T) {
	t.Parallel()

	form := contactform.New(contactform.WithSubmitter(acceptAll{}))

	res, verrs, err := form.Submit(context.Background(), contactform.FormValues{
		Name:    "Alice",
		Email:   "alice@example.com",
		Subject: "Hello",
		Message: "This is long enough.",
	})

	require.NoError(t, err)
	require.Empty(t, verrs)
	require.NotNil(t, res)
	assert.Equal(t, contactform.DefaultSuccessMessage, res.Message)
}

func TestPublicAPI_ValidationErrors(t *testing.T) {
	t.Parallel()

	form := contactform.New(contactform.WithSubmitter(acceptAll{}))

	res, verrs, err := form.Submit(context.Background(), contactform.FormValues{})

	require.NoError(t, err)
	require.Nil(t, res)
	require.Len(t, verrs, 4)
	assert.Equal(t, contactform.FieldName, verrs[0].Field)
	assert.Equal(t, "Name is required", verrs[0].Message)
}

func TestPublicAPI_CustomRules(t *testing.T) {
	t.Parallel()

	rules := contactform.DefaultRules()
	nameRule := rules[contactform.FieldName]
	nameRule.MinLength = 5
	nameRule.InvalidMessage = "Name must be at least 5 characters"
	rules[contactform.FieldName] = nameRule

	form := contactform.New(
		contactform.WithSubmitter(acceptAll{}),
		contactform.WithRules(rules),
	)

	_, verrs, err := form.Submit(context.Background(), contactform.FormValues{
		Name:    "Bob",
		Email:   "bob@example.com",
		Subject: "Hey",
		Message: "This is long enough.",
	})

	require.NoError(t, err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "Name must be at least 5 characters", verrs[0].Message)
}

func TestRun_GracefulShutdown(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	handler := web.NewHandler()
	done := make(chan error, 1)
	go func() {
		done <- contactform.Run(handler.Router(),
			contactform.Address("127.0.0.1:0"),
			contactform.WithContext(ctx),
			contactform.ShutdownTimeout(time.Second),
		)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
