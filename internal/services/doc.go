// Package services holds helpers shared by the external tool integrations.
//
// Failures are tagged with one of the exported markers through Wrap so
// callers can classify them with errors.Is without parsing messages.
package services
