package formclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"helpdesk/internal/modules/submission"
	"helpdesk/pkg/apperrors"

	"github.com/stretchr/testify/require"
)

func fillValidStudent(form *Form) {
	form.SelectCategory(submission.CategoryStudent)
	form.SetField("fullName", "Jane Doe")
	form.SetField("email", "jane@example.com")
	form.SetField("contactNumber", "0821234567")
	form.SetField("idNumber", "9001015800089")
	form.SetField("institution", "UCT")
	form.SetField("campus", "Main")
	form.SetField("accommodation", "Res A")
	form.SetField("query", "Payments")
	form.SetField("describeQuery", "Fee query")
}

func TestStepNavigation(t *testing.T) {
	form := New("http://localhost/api/submit")
	require.Equal(t, 1, form.Step())

	form.PrevStep()
	require.Equal(t, 1, form.Step())

	form.NextStep()
	form.NextStep()
	require.Equal(t, 3, form.Step())

	form.PrevStep()
	require.Equal(t, 2, form.Step())
}

func TestSetFieldTargetsActiveGroup(t *testing.T) {
	form := New("http://localhost/api/submit")

	form.SelectCategory(submission.CategoryProvider)
	form.SetField("fullName", "Piet Botha")
	form.SetField("propertyName", "Sunnyside Lodge")
	form.SetField("query", "Listings")

	form.mu.Lock()
	defer form.mu.Unlock()
	require.Equal(t, "Piet Botha", form.draft.AP.FullName)
	require.Equal(t, "Sunnyside Lodge", form.draft.AP.PropertyName)
	require.Equal(t, "Listings", form.draft.Query.Query)
	require.Empty(t, form.draft.Student.FullName)
}

func TestSubmitInvalidMakesNoNetworkCall(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	form := New(server.URL)
	form.SetField("fullName", "Jane Doe") // everything else left blank

	err := form.Submit(context.Background())
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Violations)
	require.Zero(t, atomic.LoadInt32(&calls))
	require.False(t, form.Submitted())
}

func TestSubmitSendsAllGroupsOnce(t *testing.T) {
	var calls int32
	var contentType string
	var received map[string]json.RawMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		contentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"Email sent successfully"}`))
	}))
	defer server.Close()

	form := New(server.URL)
	fillValidStudent(form)

	require.NoError(t, form.Submit(context.Background()))
	require.True(t, form.Submitted())
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
	require.Equal(t, "application/json", contentType)

	// The wire format carries all four groups plus the discriminator.
	for _, key := range []string{"typeOfUser", "AP", "Student", "other", "Query"} {
		require.Contains(t, received, key)
	}
}

func TestSubmitTransportFailureKeepsState(t *testing.T) {
	var status int32 = http.StatusInternalServerError
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(int(atomic.LoadInt32(&status)))
	}))
	defer server.Close()

	form := New(server.URL)
	fillValidStudent(form)

	err := form.Submit(context.Background())
	require.True(t, apperrors.IsTransport(err))
	require.False(t, form.Submitted())

	// Form state survives the failure, so a resubmit just works.
	atomic.StoreInt32(&status, http.StatusOK)
	require.NoError(t, form.Submit(context.Background()))
	require.True(t, form.Submitted())
}

func TestSubmitRejectsConcurrentSubmit(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	form := New(server.URL)
	fillValidStudent(form)

	done := make(chan error, 1)
	go func() {
		done <- form.Submit(context.Background())
	}()

	require.Eventually(t, form.Busy, time.Second, 5*time.Millisecond)
	require.ErrorIs(t, form.Submit(context.Background()), ErrInFlight)

	close(release)
	require.NoError(t, <-done)
	require.False(t, form.Busy())
}
