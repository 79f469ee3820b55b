package errors

type Code string

const (
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL_ERROR"
	CodeConfigValidation Code = "CONFIG_VALIDATION_ERROR"
	CodeConfigReadError  Code = "CONFIG_READ_ERROR"
	CodeConfigParseError Code = "CONFIG_PARSE_ERROR"

	// Log file codes
	CodeInvalidLevel          Code = "INVALID_LEVEL"
	CodeDirectoryCreateFailed Code = "DIRECTORY_CREATE_FAILED"
	CodeFileWriteError        Code = "FILE_WRITE_ERROR"
	CodeFileReadError         Code = "FILE_READ_ERROR"
	CodeEntryParseError       Code = "ENTRY_PARSE_ERROR"
)

func (c Code) String() string {
	return string(c)
}
