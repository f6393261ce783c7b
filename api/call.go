package api

import (
	"context"
	"fmt"
)

// Call sends a request, decodes the envelope, classifies it and returns the required payload.
func Call[T any](ctx context.Context, s *Session, class, function string, params Params) (T, error) {
	var zero T

	raw, err := s.Send(ctx, class, function, params)
	if err != nil {
		return zero, err
	}

	envelope, err := Decode[T](raw)
	if err != nil {
		return zero, fmt.Errorf("%s/%s: %w", class, function, err)
	}

	if err := s.classify(envelope.Error, envelope.Code, envelope.Message); err != nil {
		return zero, err
	}

	data, err := Require(envelope.Data)
	if err != nil {
		s.logger.WithField("endpoint", class+"/"+function).Error("the received data was empty")
		return zero, fmt.Errorf("%s/%s: %w", class, function, err)
	}

	return data, nil
}

// Exec sends a request to a mutation endpoint that carries no payload.
func Exec(ctx context.Context, s *Session, class, function string, params Params) error {
	raw, err := s.Send(ctx, class, function, params)
	if err != nil {
		return err
	}

	envelope, err := DecodeEmpty(raw)
	if err != nil {
		return fmt.Errorf("%s/%s: %w", class, function, err)
	}

	return s.classify(envelope.Error, envelope.Code, envelope.Message)
}

// Raw sends a request and returns the undecoded envelope bytes.
func Raw(ctx context.Context, s *Session, class, function string, params Params) ([]byte, error) {
	return s.Send(ctx, class, function, params)
}
