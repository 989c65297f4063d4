package auth

// Package auth holds the two pure predicates of the login form: the
// non-blank field validator and the credentials check. Neither has side
// effects or error cases.
