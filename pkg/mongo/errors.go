package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrInvalidConfig          = errors.New("invalid mongo configuration")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")
)
