/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to standardize
HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the detailed CustomError struct corresponding to every application error code.
// The key is the error code (int), and the value contains the user message and HTTP status code.
var errorMap = map[int]CustomError{
	// 1xxx: Validation Errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Message: "Invalid request parameters", Status: http.StatusBadRequest},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Message: "Unsupported request format", Status: http.StatusBadRequest},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Message: "Invalid request body", Status: http.StatusBadRequest},
	ErrMethodNotAllowed:     {Code: ErrMethodNotAllowed, Message: "Method not allowed", Status: http.StatusMethodNotAllowed},
	ErrEmptyMessage:         {Code: ErrEmptyMessage, Message: "Message cannot be empty", Status: http.StatusBadRequest},
	ErrMissingSessionToken:  {Code: ErrMissingSessionToken, Message: "Session token not found", Status: http.StatusBadRequest},
	ErrUnknownCatalogType:   {Code: ErrUnknownCatalogType, Message: "Unknown data type. Use: servers or channels", Status: http.StatusBadRequest},

	// 2xxx: Not Found Errors
	ErrUserNotFound: {Code: ErrUserNotFound, Message: "User not found", Status: http.StatusNotFound},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
	ErrStorage: {Code: ErrStorage, Message: "Server error: %s", Status: http.StatusInternalServerError},
}
