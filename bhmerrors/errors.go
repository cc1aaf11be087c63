package bhmerrors

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// Is - Makes errors.Is match any NoRecordFound regardless of message
func (E NoRecordFound) Is(target error) bool {
	_, ok := target.(NoRecordFound)
	return ok
}

// ConstructionError - Custom error to inform that a bid hash map could not be created with the given parameters
type ConstructionError struct {
	msg string
}

// NewConstructionError - Returns a ConstructionError carrying the given message
func NewConstructionError(msg string) ConstructionError {
	return ConstructionError{msg: msg}
}

// Error - Used to notify that creation failed
func (C ConstructionError) Error() string {
	if C.msg == "" {
		return "invalid hash map construction parameters"
	}
	return C.msg
}

// Is - Makes errors.Is match any ConstructionError regardless of message
func (C ConstructionError) Is(target error) bool {
	_, ok := target.(ConstructionError)
	return ok
}

// ParseError - Custom error to inform that a bid id is not a valid non-negative integer
type ParseError struct {
	msg string
}

// NewParseError - Returns a ParseError carrying the given message
func NewParseError(msg string) ParseError {
	return ParseError{msg: msg}
}

// Error - Used to notify that a bid id could not be parsed
func (P ParseError) Error() string {
	if P.msg == "" {
		return "bid id is not a valid non-negative integer"
	}
	return P.msg
}

// Is - Makes errors.Is match any ParseError regardless of message
func (P ParseError) Is(target error) bool {
	_, ok := target.(ParseError)
	return ok
}
