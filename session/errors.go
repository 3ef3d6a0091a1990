package session

import "github.com/UzielLH/PSP/internal/apperr"

var (
	errAlreadyRunning = &apperr.Error{
		Kind:    apperr.InvalidTransition,
		Message: "cannot start: a session is already in progress",
	}

	errNotRunning = &apperr.Error{
		Kind:    apperr.InvalidTransition,
		Message: "cannot pause: no session is running",
	}

	errNotPaused = &apperr.Error{
		Kind:    apperr.InvalidTransition,
		Message: "cannot resume: the session is not paused",
	}

	errNotActive = &apperr.Error{
		Kind:    apperr.InvalidTransition,
		Message: "cannot stop: no session is in progress",
	}

	errUnknownActivity = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "unknown activity: %s",
	}

	errSaveFailed = &apperr.Error{
		Kind:    apperr.Persistence,
		Message: "saving the project file failed",
	}
)
