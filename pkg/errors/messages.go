package errors

// Human-readable descriptions per code
const (
	MsgConfiguration     = "Kindly ensure the API key and secret key are configured."
	MsgUnsupportedMethod = "Unsupported HTTP method. Supported methods are GET, POST, PUT, DELETE."
	MsgAuthentication    = "Unable to obtain an access token from Monnify."
	MsgTransport         = "Unable to reach Monnify right now. Please try again in a few minutes."
	MsgDecode            = "Monnify returned a response that could not be decoded."
	MsgValidation        = "The provided parameters are invalid. Please check your input and try again."
	MsgInternal          = "Something went wrong. Please try again later."
)

// UserMessage returns the description for a code.
func UserMessage(code string) string {
	switch code {
	case CodeConfiguration:
		return MsgConfiguration
	case CodeUnsupportedMethod:
		return MsgUnsupportedMethod
	case CodeAuthentication:
		return MsgAuthentication
	case CodeTransport:
		return MsgTransport
	case CodeDecode:
		return MsgDecode
	case CodeValidation:
		return MsgValidation
	default:
		return MsgInternal
	}
}
