package services

// InvalidRequestError is returned when the caller sent a request the mentor
// cannot answer at all.
type InvalidRequestError struct{ Message string }

func (e *InvalidRequestError) Error() string { return e.Message }
