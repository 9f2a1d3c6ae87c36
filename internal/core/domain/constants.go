package domain

import "errors"

var (
	ErrMalformedArguments = errors.New("malformed arguments")
	ErrMissingChannel     = errors.New("channel not found in message")
	ErrMissingBotUser     = errors.New("bot user id is empty")
	ErrSendingReplyFailed = errors.New("failed to send reply")
	ErrHandlerPanicked    = errors.New("handler panicked")
	ErrMessageNotFound    = errors.New("message not found")
)

const (
	HelpCommand     = "help"
	HelpDescription = "Prints this help message"

	InvalidQuotingReply = "Fail to parse arguments: Invalid quoting"
	HandlerErrorReply   = "Error occurred during handling. Check logs for details."
)
