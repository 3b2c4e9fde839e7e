// Package repository contains compile-time interface checks.
package repository

// Compile-time interface checks
var (
	_ UsersRepo      = (*usersRepo)(nil)
	_ UsersRepo      = (*MemoryUsersRepo)(nil)
	_ StatementsRepo = (*statementsRepo)(nil)
	_ StatementsRepo = (*MemoryStatementsRepo)(nil)
)
