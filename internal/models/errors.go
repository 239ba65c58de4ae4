package models

import (
	"errors"
)

// Validation errors, rejected before any state change or persistence call
var (
	// ErrNoProjectSelected is returned when starting a timer with no project selected
	ErrNoProjectSelected = errors.New("no project selected")

	// ErrInvalidProjectName is returned when a project name is not 2-50 characters after trimming
	ErrInvalidProjectName = errors.New("project name must be 2-50 characters")

	// ErrInvalidDescription is returned when a description exceeds 200 characters
	ErrInvalidDescription = errors.New("description must be at most 200 characters")

	// ErrInvalidRate is returned when an hourly rate is outside 0-100000
	ErrInvalidRate = errors.New("rate must be between 0 and 100000")

	// ErrEmptyNote is returned when a session note is empty after trimming
	ErrEmptyNote = errors.New("note must not be empty")
)

// Entity errors
var (
	// ErrProjectNotFound is returned when a project is not found
	ErrProjectNotFound = errors.New("project not found")

	// ErrSessionNotFound is returned when a session is not found
	ErrSessionNotFound = errors.New("session not found")
)
