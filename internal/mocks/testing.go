// Package mocks holds testify mocks of the collaborator interfaces.
package mocks

import "github.com/stretchr/testify/mock"

// TestingT is what the mock constructors need from *testing.T.
type TestingT interface {
	mock.TestingT
	Cleanup(func())
}
