package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g. postgres) inside this directory.

// ListQuery holds the filtering parameters shared by the contact and
// application listings: an optional equality filter on status and a cap on the
// number of returned rows. There is no offset; callers cannot page past Limit.
type ListQuery struct {
	Status string
	Limit  int
}
