package auth

import "fmt"

// Action names a guarded mutation.
type Action string

const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// ForbiddenError reports a denied mutation on a resource the requester does not own.
type ForbiddenError struct {
	Action   Action
	Resource string
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("you can only %s your own %ss", e.Action, e.Resource)
}

// AuthorizeOwner allows the action iff the requesting identity owns the
// resource. Identifier equality only; usernames play no part here.
func AuthorizeOwner(identity Identity, authorID string, action Action, resource string) error {
	if identity.UserID == authorID {
		return nil
	}
	return &ForbiddenError{Action: action, Resource: resource}
}
