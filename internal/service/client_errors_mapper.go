// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ledes-client/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The adapter error stays in the chain so that
// [adapter.Message] still finds the server text.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	}

	return fmt.Errorf("%w: %w", ErrRequestFailed, err)
}

// UserMessage renders err as the text shown to the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSessionExpired):
		return ErrSessionExpired.Error()
	case errors.Is(err, ErrAuthExhausted):
		return ErrAuthExhausted.Error()
	case errors.Is(err, ErrMissingCredentials):
		return ErrMissingCredentials.Error()
	}

	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) {
		return respErr.Message
	}

	return err.Error()
}
