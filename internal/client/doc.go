// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It restores any persisted session and hands control to the terminal UI
// for the rest of the process lifecycle.
package client
