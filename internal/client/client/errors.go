package client

import "errors"

var (
	// ErrFetchFailed wraps every failure of Source.FetchAll: transport
	// errors, non-2xx statuses and undecodable bodies.
	ErrFetchFailed = errors.New("failed to fetch patients")
)
