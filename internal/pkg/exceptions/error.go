package exceptions

import (
	"errors"
	"fmt"
	"runtime"

	"medcare-client/internal/pkg/constvars"
)

type CustomError struct {
	StatusCode    int      `json:"status_code"`
	ErrorCode     string   `json:"error_code"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func BuildNewCustomError(err error, statusCode int, errorCode, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ErrorCode:     errorCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
	}
}

// Code returns the taxonomy code of err, or empty when err is not a
// CustomError.
func Code(err error) string {
	var customError *CustomError
	if errors.As(err, &customError) {
		return customError.ErrorCode
	}
	return ""
}

func IsCode(err error, code string) bool {
	return Code(err) == code
}

// ClientMessage returns the user-facing message of err, falling back
// to a generic description for unclassified errors.
func ClientMessage(err error) string {
	var customError *CustomError
	if errors.As(err, &customError) {
		return customError.ClientMessage
	}
	return constvars.ErrClientSomethingWrong
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
