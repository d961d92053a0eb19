package submission

import "errors"

var (
	// ErrInvalidUserType means the discriminator is not one of the three
	// recognized categories.
	ErrInvalidUserType = errors.New("invalid user type")
	// ErrDetailsMissing means the detail group selected by the
	// discriminator was entirely absent from the payload.
	ErrDetailsMissing = errors.New("user details missing")
)
