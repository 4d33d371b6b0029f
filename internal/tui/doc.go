// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface of the todo client.
//
// The UI is built on Bubble Tea: a login/registration flow runs first, then
// the main loop shows the todo list with detail, create, edit and delete
// screens on top of it.
package tui
