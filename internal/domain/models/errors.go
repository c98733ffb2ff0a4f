package models

// FetchError is the single error kind raised by the quote source's simulated
// failure path.
type FetchError struct {
	Message string
}

func (e *FetchError) Error() string { return e.Message }
