package app

import "errors"

var ErrInvalidEnv = errors.New("app: APP_ENV must be development, staging or production")
