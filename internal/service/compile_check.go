// Package service contains compile-time interface checks.
package service

// Compile-time checks to ensure all service implementations satisfy their interfaces.
var (
	_ AuthService      = (*authService)(nil)
	_ UserService      = (*UserServiceImpl)(nil)
	_ StatementService = (*StatementServiceImpl)(nil)
	_ BalanceService   = (*BalanceServiceImpl)(nil)
	_ CacheService     = (*cacheServiceImpl)(nil)
)
