// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-ledes-client/internal/service"
)

var ErrUserQuit = errors.New("user quit the program")

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network connection or the server is unavailable"
	}

	return service.UserMessage(err)
}

// requiresLogin reports whether err ends the authenticated part of the
// session, and the notice to show on the login screen (empty when the
// return to login should be silent).
func requiresLogin(err error) (notice string, ok bool) {
	switch {
	case errors.Is(err, service.ErrMissingCredentials):
		return "", true
	case errors.Is(err, service.ErrSessionExpired):
		return service.ErrSessionExpired.Error(), true
	case errors.Is(err, service.ErrAuthExhausted):
		return service.ErrAuthExhausted.Error(), true
	default:
		return "", false
	}
}
