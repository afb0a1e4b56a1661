// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows, the client services and the background
// session refresh job into a single process lifecycle: restore or obtain a
// session, run the main loop, and return to login after a logout.
package client
