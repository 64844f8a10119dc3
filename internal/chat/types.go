package chat

// --- UseCase Inputs ---

type SendInput struct {
	// SessionID selects the conversation. Empty means "start a new
	// session"; the generated id comes back in SendOutput.
	SessionID string
	Message   string
}

// --- UseCase Outputs ---

type SendOutput struct {
	SessionID string
	Reply     string
}
