package authn

import (
	"context"
	"errors"

	"github.com/clinicflow/seckit/pkg/clientip"
)

// AttemptTracker is the subset of the lockout tracker the recorder needs.
type AttemptTracker interface {
	RegisterFailure(ctx context.Context, key string)
	RegisterSuccess(ctx context.Context, key string)
}

// Recorder decorates an Authenticator with lockout bookkeeping. The
// update happens at the single point where the credential check
// concludes, which guarantees exactly-once counting per attempt: a
// success resets the username and source-IP counters, an
// invalid-credentials failure increments both. Service outages and
// unclassified errors leave the counters untouched.
type Recorder struct {
	next    Authenticator
	tracker AttemptTracker
}

// NewRecorder wraps next with attempt recording against tracker.
func NewRecorder(next Authenticator, tracker AttemptTracker) *Recorder {
	return &Recorder{next: next, tracker: tracker}
}

// Authenticate runs the wrapped check and records its outcome.
func (r *Recorder) Authenticate(ctx context.Context, creds Credentials) (*Identity, error) {
	identity, err := r.next.Authenticate(ctx, creds)
	ip := clientip.GetIPFromContext(ctx)

	switch {
	case err == nil:
		r.tracker.RegisterSuccess(ctx, creds.Username)
		if ip != "" {
			r.tracker.RegisterSuccess(ctx, ip)
		}
		return identity, nil
	case errors.Is(err, ErrInvalidCredentials):
		r.tracker.RegisterFailure(ctx, creds.Username)
		if ip != "" {
			r.tracker.RegisterFailure(ctx, ip)
		}
	}

	return nil, err
}
