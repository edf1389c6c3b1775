package notify

import (
	"errors"
	"testing"
)

type sent struct {
	title, message, icon string
}

func stubSend(t *testing.T, err error) *[]sent {
	t.Helper()
	var calls []sent
	orig := sendNotification
	sendNotification = func(title, message, icon string) error {
		calls = append(calls, sent{title: title, message: message, icon: icon})
		return err
	}
	t.Cleanup(func() { sendNotification = orig })
	return &calls
}

func TestDesktopFailureSendsLabelAndError(t *testing.T) {
	calls := stubSend(t, nil)
	Desktop{}.Failure("chrome", errors.New("spawn failed"))
	if len(*calls) != 1 {
		t.Fatalf("expected one notification, got %d", len(*calls))
	}
	got := (*calls)[0]
	if got.title != title {
		t.Fatalf("unexpected title %q", got.title)
	}
	if got.message != "chrome: spawn failed" {
		t.Fatalf("unexpected message %q", got.message)
	}
}

func TestDesktopFailureIgnoresNilError(t *testing.T) {
	calls := stubSend(t, nil)
	Desktop{}.Failure("chrome", nil)
	if len(*calls) != 0 {
		t.Fatalf("expected no notification, got %d", len(*calls))
	}
}

func TestDesktopFailureSwallowsDeliveryError(t *testing.T) {
	calls := stubSend(t, errors.New("no dbus"))
	Desktop{}.Failure("", errors.New("boom"))
	if len(*calls) != 1 || (*calls)[0].message != "boom" {
		t.Fatalf("unexpected calls %+v", *calls)
	}
}

func TestNewSelectsImplementation(t *testing.T) {
	if _, ok := New(true).(Desktop); !ok {
		t.Fatalf("expected Desktop when enabled")
	}
	if _, ok := New(false).(Discard); !ok {
		t.Fatalf("expected Discard when disabled")
	}
}
