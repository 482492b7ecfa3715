// Package clock lets usecases stamp CreatedAt/UpdatedAt through an interface
// so tests can pin time.
package clock
