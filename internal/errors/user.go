package errors

import "errors"

// ErrorInfo holds a user-facing message and suggested action for an error.
type ErrorInfo struct {
	// Message is the user-friendly error description.
	Message string
	// Action is a suggested action to resolve the issue (empty if none).
	Action string
}

type errorEntry struct {
	err  error
	info ErrorInfo
}

// errorInfoEntries maps sentinels to user-facing messages.
// A slice rather than a map because wrapped errors need errors.Is traversal.
//
//nolint:gochecknoglobals // Pre-built mapping
var errorInfoEntries = []errorEntry{
	{
		err: ErrMissingKey,
		info: ErrorInfo{
			Message: "No signing key is stored.",
			Action:  "Run 'reqsign keygen' and register the printed public key with the server.",
		},
	},
	{
		err: ErrKeyMismatch,
		info: ErrorInfo{
			Message: "The stored public key does not belong to the stored private key.",
			Action:  "Run 'reqsign keygen' to replace the key pair.",
		},
	},
	{
		err: ErrWeakPassphrase,
		info: ErrorInfo{
			Message: "The passphrase is too weak to seal a new private key.",
			Action:  "Use at least 12 characters with upper and lower case letters, a digit and a symbol.",
		},
	},
	{
		err: ErrMissingIdempotencyKey,
		info: ErrorInfo{
			Message: "The signature needs an idempotency key but none was generated.",
			Action:  "Run 'reqsign ik new' or sign with --idempotency=false.",
		},
	},
	{
		err: ErrIndexOutOfRange,
		info: ErrorInfo{
			Message: "A $N field token does not select an existing URL segment.",
			Action:  "Segments are counted on the full URL split by '/', starting at 0 ('https:').",
		},
	},
	{
		err: ErrUnsupportedBodyFormat,
		info: ErrorInfo{
			Message: "Body fields can only be read from application/json or multipart/form-data requests.",
			Action:  "Store the value with 'reqsign store set' or change the request body type.",
		},
	},
	{
		err: ErrMalformedBody,
		info: ErrorInfo{
			Message: "The body is not a JSON object.",
		},
	},
	{
		err: ErrForbiddenField,
		info: ErrorInfo{
			Message: "The private key cannot be used as a signed field.",
			Action:  "Remove 'privkey' from the --fields list.",
		},
	},
	{
		err: ErrMissingField,
		info: ErrorInfo{
			Message: "A field is present in neither the store nor the request body.",
			Action:  "Check the --fields list or seed the value with 'reqsign store set'.",
		},
	},
	{
		err: ErrStoreWrite,
		info: ErrorInfo{
			Message: "The store did not confirm a write; nothing was signed.",
			Action:  "Check permissions on the reqsign home directory or the Redis connection.",
		},
	},
	{
		err: ErrStoreRead,
		info: ErrorInfo{
			Message: "The store could not be read.",
			Action:  "Check the store backend configuration and the passphrase, if one is set.",
		},
	},
	{
		err: ErrInvalidEncoding,
		info: ErrorInfo{
			Message: "A key or signature is not valid base64/hex.",
		},
	},
	{
		err: ErrUnexpectedStatus,
		info: ErrorInfo{
			Message: "The server rejected the signed request.",
			Action:  "Make sure the server knows the current public key ('reqsign pubkey').",
		},
	},
}

func getErrorInfo(err error) ErrorInfo {
	for _, entry := range errorInfoEntries {
		if errors.Is(err, entry.err) {
			return entry.info
		}
	}
	return ErrorInfo{Message: err.Error()}
}

// UserMessage returns a user-friendly message for err.
// For unrecognized errors it returns the error's own message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return getErrorInfo(err).Message
}

// Actionable returns a user-friendly message along with a suggested action.
// The action is empty when there is nothing useful to suggest.
func Actionable(err error) (message, action string) {
	if err == nil {
		return "", ""
	}
	info := getErrorInfo(err)
	return info.Message, info.Action
}
