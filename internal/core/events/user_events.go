package events

import (
	"time"

	"github.com/google/uuid"
)

const UserInvitedEventType = "user.invited"

// NewUserInvitedEvent is published after an invitation record is stored; the
// email side effect is handled asynchronously by a subscriber.
func NewUserInvitedEvent(email, firstName, subdomain, signinLink, inviteToken string) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      UserInvitedEventType,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"email":       email,
			"firstName":   firstName,
			"subdomain":   subdomain,
			"signinLink":  signinLink,
			"inviteToken": inviteToken,
		},
	}
}
