// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires terminal UI flows and client services into a single process
// lifecycle: login, todo management, logout, repeat.
package client
