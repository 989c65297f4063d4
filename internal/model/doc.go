package model

// Package model defines the data structures shared by the login workflow and
// its hosts: credentials, validation and authentication outcomes, focus
// targets, notification requests, and the per-submit state record.
