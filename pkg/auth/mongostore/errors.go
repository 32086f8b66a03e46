package mongostore

import "errors"

var ErrIndexes = errors.New("mongostore: failed to create indexes")
