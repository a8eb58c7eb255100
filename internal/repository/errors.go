// Package repository holds the in-memory entity store and the sentinel
// errors it reports.  Handlers use these values to tell the different
// failure cases apart.
package repository

import "errors"

// ErrEmailExists is returned by CreateUser when another account already
// uses the address.  Handlers should translate this into an HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrFilmNotFound is returned by PurchaseTicket when the referenced film
// does not exist.
var ErrFilmNotFound = errors.New("film not found")

// ErrFilmNotApproved is returned by PurchaseTicket when the film has not
// been approved for screening.  Handlers should translate this into an
// HTTP 400.
var ErrFilmNotApproved = errors.New("film not approved")
