package api

import (
	"github.com/samber/mo"
	"github.com/sirupsen/logrus"
)

// Classify maps an envelope's error flag, code and message to an error.
// It returns nil when flag is 0. A missing code classifies as code 0.
func Classify(flag int, code mo.Option[int], message string) error {
	if flag == 0 {
		return nil
	}

	c := code.OrElse(0)
	return &APIError{
		Code:        c,
		Message:     message,
		Description: Describe(c),
	}
}

// Require unwraps a payload that must be present after a successful classification.
func Require[T any](data *T) (T, error) {
	if data == nil {
		var zero T
		return zero, ErrEmptyData
	}
	return *data, nil
}

// classify runs Classify and records API failures on the session logger.
func (s *Session) classify(flag int, code mo.Option[int], message string) error {
	err := Classify(flag, code, message)
	if apiErr, ok := err.(*APIError); ok {
		s.logger.WithFields(logrus.Fields{
			"code":        apiErr.Code,
			"description": apiErr.Description,
		}).Error(apiErr.Message)
	}
	return err
}
