package defect

import "github.com/UzielLH/PSP/internal/apperr"

var (
	errNoSession = &apperr.Error{
		Kind:    apperr.InvalidTransition,
		Message: "cannot register a defect: no session is in progress",
	}

	errAlreadyOpen = &apperr.Error{
		Kind:    apperr.InvalidTransition,
		Message: "a defect entry is already being timed",
	}

	errNoOpenEntry = &apperr.Error{
		Kind:    apperr.InvalidTransition,
		Message: "no defect entry is open",
	}

	errUnknownType = &apperr.Error{
		Kind:    apperr.Validation,
		Message: "unknown defect type code: %d",
	}

	errSaveFailed = &apperr.Error{
		Kind:    apperr.Persistence,
		Message: "saving the project file failed",
	}
)
