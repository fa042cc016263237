// Package connect models the third-party bank-link widget as an
// external collaborator. A Connector's successful enrollment is the
// only entry point that produces a new credential.
package connect

import (
	"context"
	"fmt"
	"time"

	"github.com/brickbooks-dev/brickbooks/internal/model"
)

// Params configures a bank-link attempt.
type Params struct {
	ApplicationID string
	Environment   string
	ConnectToken  string
	SelectAccount string
}

// Enrollment is the result of a completed bank link.
type Enrollment struct {
	Credential model.Credential
	Accounts   []model.Account
}

// Connector runs the bank-link flow and returns the enrollment, or an
// error when the user fails or abandons it.
type Connector interface {
	Connect(ctx context.Context, params Params) (Enrollment, error)
}

// Simulated is the development-mode connector used when the real link
// widget is unavailable. It fabricates a successful enrollment with a
// checking and a savings account, mirroring what the widget would hand
// back.
type Simulated struct {
	Now func() time.Time // defaults to time.Now
}

// Connect returns a fabricated enrollment.
func (s *Simulated) Connect(_ context.Context, _ Params) (Enrollment, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	stamp := now().UnixMilli()

	return Enrollment{
		Credential: model.Credential{
			AccessToken: fmt.Sprintf("test_token_%d", stamp),
			User:        model.User{ID: fmt.Sprintf("test_user_%d", stamp)},
		},
		Accounts: []model.Account{
			{
				ID:      fmt.Sprintf("acc_checking_%d", stamp),
				Name:    "LLC Checking",
				Type:    "depository",
				Subtype: "checking",
			},
			{
				ID:      fmt.Sprintf("acc_savings_%d", stamp),
				Name:    "LLC Savings",
				Type:    "depository",
				Subtype: "savings",
			},
		},
	}, nil
}

// Static is a connector that returns a fixed enrollment. It backs the
// --token flow where the user supplies a pre-obtained access token.
type Static struct {
	Enrollment Enrollment
}

// Connect returns the fixed enrollment.
func (s *Static) Connect(context.Context, Params) (Enrollment, error) {
	return s.Enrollment, nil
}
