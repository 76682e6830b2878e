// Package client contains the client side of the remote patient collection.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Source interface) for loading
//     the patient collection once at startup.
//  2. A concrete HTTP implementation (see HTTPClient) that issues a single
//     GET against a fixed URL, decodes a JSON array of loosely typed
//     objects and maps them onto models.Patient, filling in the default
//     description and website when they are missing.
//
// # Error Handling
//
// Every failure is reported as an error wrapping ErrFetchFailed, so callers
// can match it with errors.Is without depending on the transport.
//
// There is no write-back: the collection is read-only from this side.
package client
