package login

// Package login implements the submit workflow of the login form. It runs the
// field validators and the authenticator in a fixed order and reports every
// outcome to the host through a small set of callbacks: field error flags,
// focus requests, the success hook, and one notification per submit.
