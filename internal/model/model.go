// Package model holds the domain types shared by the repository, service
// and handler layers. Each resource lives in its own sub-package.
package model
