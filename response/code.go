package response

type ErrorCode int

const (
	OK ErrorCode = 0

	InvalidRequest     ErrorCode = 40001
	ValidationFailed   ErrorCode = 40002
	Unauthorized       ErrorCode = 40101
	InvalidCredentials ErrorCode = 40102
	NotFound           ErrorCode = 40401

	// Indicates laziness of the developer
	// Frontend will directly print the message without any translation
	NotSpecified ErrorCode = 99999
)
