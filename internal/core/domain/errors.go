package domain

import "errors"

// Authentication errors. Lookup misses and password mismatches are
// deliberately collapsed into ErrInvalidCredentials so the login endpoint
// cannot be used to enumerate usernames. ErrInvalidToken likewise covers
// every verification failure (bad signature, wrong issuer, expired,
// malformed) without revealing which check failed.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

var (
	ErrPersonExists   = errors.New("person already exists")
	ErrPersonNotFound = errors.New("person not found")
	ErrInvalidPerson  = errors.New("invalid person data")

	ErrFarmNotFound       = errors.New("farm not found")
	ErrCropNotFound       = errors.New("crop not found")
	ErrFertilizerNotFound = errors.New("fertilizer not found")
)
