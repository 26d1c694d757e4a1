// Package repository defines the storage contracts for the rental system
// together with the sentinel errors shared by both store implementations.
// Every GetBy* call returns ErrNotFound when the key is absent; list calls
// return empty slices; deletes are no-ops on missing keys. Updates that
// match zero rows return ErrConflict, meaning the target vanished between
// the caller's read and its write.
package repository

import "errors"

// ErrNotFound is returned when a requested id or natural key is absent.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when an update matched no row or document,
// i.e. the target was deleted by a concurrent caller.
var ErrConflict = errors.New("conflict")
