package store

import "github.com/UzielLH/PSP/internal/apperr"

var (
	errWriteProject = &apperr.Error{
		Kind:    apperr.Persistence,
		Message: "writing project file %s failed",
	}

	errEncodeProject = &apperr.Error{
		Kind:    apperr.Persistence,
		Message: "encoding project document failed",
	}

	errSessionActive = &apperr.Error{
		Kind:    apperr.InvalidTransition,
		Message: "cannot change projects while a session is in progress",
	}

	errOpenRegistry = &apperr.Error{
		Kind:    apperr.Persistence,
		Message: "is another psp instance running? The project registry is locked",
	}
)
