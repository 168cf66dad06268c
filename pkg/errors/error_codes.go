package errors

const errorPrefix = "AGC-"

var (
	// Server error codes

	ErrWhileConnectingDatabase = ErrorMessage{
		Code:        errorPrefix + "15001",
		Message:     "Error while connecting to the document store.",
		Description: "Error while establishing the connection to the remote document store.",
	}

	ErrWhileCreatingRule = ErrorMessage{
		Code:        errorPrefix + "15002",
		Message:     "Error while adding governance rule.",
		Description: "Error while adding the governance rule to the user's collection.",
	}

	ErrWhileFetchingRules = ErrorMessage{
		Code:        errorPrefix + "15003",
		Message:     "Error while fetching governance rules.",
		Description: "Error while fetching governance rules of the user.",
	}

	ErrWhileFetchingRule = ErrorMessage{
		Code:        errorPrefix + "15004",
		Message:     "Error while fetching governance rule.",
		Description: "Error while fetching the governance rule by rule id.",
	}

	ErrWhileUpdatingRule = ErrorMessage{
		Code:        errorPrefix + "15005",
		Message:     "Error while updating governance rule.",
		Description: "Error while updating the governance rule of the user.",
	}

	ErrWhileDeletingRule = ErrorMessage{
		Code:        errorPrefix + "15006",
		Message:     "Error while deleting governance rule.",
		Description: "Error while deleting the governance rule of the user.",
	}

	ErrWhileCreatingViolation = ErrorMessage{
		Code:        errorPrefix + "15007",
		Message:     "Error while recording violation.",
		Description: "Error while adding the violation record to the user's collection.",
	}

	ErrWhileFetchingViolations = ErrorMessage{
		Code:        errorPrefix + "15008",
		Message:     "Error while fetching violations.",
		Description: "Error while fetching violation records of the user.",
	}

	ErrWhileWatchingCollection = ErrorMessage{
		Code:        errorPrefix + "15009",
		Message:     "Error while subscribing to collection changes.",
		Description: "Error while establishing the change notification stream for the collection.",
	}

	ErrWhileFetchingSnapshot = ErrorMessage{
		Code:        errorPrefix + "15015",
		Message:     "Error while fetching collection snapshot.",
		Description: "Error while reading the full contents of the subscribed collection.",
	}

	ErrSubscriptionClosed = ErrorMessage{
		Code:        errorPrefix + "15010",
		Message:     "Collection subscription closed.",
		Description: "The change notification stream for the collection ended unexpectedly.",
	}

	ErrWhileSigningIn = ErrorMessage{
		Code:        errorPrefix + "15011",
		Message:     "Sign in failed.",
		Description: "Error while signing in against the identity service.",
	}

	ErrWhileIntrospectingToken = ErrorMessage{
		Code:        errorPrefix + "15012",
		Message:     "Token introspection failed.",
		Description: "Error while introspecting the supplied token.",
	}

	ErrWhileRequestingSuggestion = ErrorMessage{
		Code:        errorPrefix + "15013",
		Message:     "Error while requesting rule suggestions.",
		Description: "Error while calling the text generation endpoint for rule suggestions.",
	}

	ErrMalformedSuggestion = ErrorMessage{
		Code:        errorPrefix + "15014",
		Message:     "Could not get suggestions.",
		Description: "The text generation endpoint returned an empty or malformed response.",
	}

	// Client error codes

	ErrBadRequest = ErrorMessage{
		Code:        errorPrefix + "11001",
		Message:     "Invalid request body.",
		Description: "The request body could not be parsed.",
	}

	ErrUnAuthorizedRequest = ErrorMessage{
		Code:        errorPrefix + "11002",
		Message:     "Unauthorized request.",
		Description: "The supplied token is missing, inactive or invalid.",
	}

	ErrIdentityUnresolved = ErrorMessage{
		Code:        errorPrefix + "11003",
		Message:     "Identity not resolved.",
		Description: "The session identity has not been resolved yet; remote operations are suspended.",
	}

	ErrRuleNotFound = ErrorMessage{
		Code:        errorPrefix + "11004",
		Message:     "Governance rule not found.",
		Description: "No governance rule exists for the given rule id.",
	}

	ErrMissingRuleFields = ErrorMessage{
		Code:        errorPrefix + "11005",
		Message:     "Required rule fields missing.",
		Description: "A governance rule requires a non-empty name and condition.",
	}

	ErrMissingSuggestionInput = ErrorMessage{
		Code:        errorPrefix + "11006",
		Message:     "Please provide a Rule Name and Type to get suggestions.",
		Description: "Rule suggestions require both a rule name and a rule type.",
	}

	ErrSuggestionInProgress = ErrorMessage{
		Code:        errorPrefix + "11007",
		Message:     "A suggestion request is already in progress.",
		Description: "Wait for the outstanding suggestion request to complete before retrying.",
	}

	ErrNoEditInProgress = ErrorMessage{
		Code:        errorPrefix + "11008",
		Message:     "No edit in progress.",
		Description: "The editor has no draft to submit.",
	}

	ErrDeleteNotConfirmed = ErrorMessage{
		Code:        errorPrefix + "11009",
		Message:     "Delete not confirmed.",
		Description: "Deleting a governance rule requires explicit confirmation.",
	}
)
