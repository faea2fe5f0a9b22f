package errors

var (
	// Domain errors used in usecase/repository
	ErrSelfConversation = InvalidArg("cannot start a conversation with yourself")
	ErrEmptyMessage     = InvalidArg("message text cannot be empty")
	ErrNotParticipant   = Forbidden("user is not a participant of this conversation")
	ErrNotMessageSender = Forbidden("only the sender can delete this message")
	ErrInboxNotFound    = NotFound("conversation not found")
	ErrMessageNotFound  = NotFound("message not found")
)

func ErrStoreTimeout(cause error) error {
	return Deadline("store operation timed out", cause)
}

func ErrStoreFailure(cause error) error {
	return Wrap(CodeInternal, "store operation failed", cause)
}
