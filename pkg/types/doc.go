// Package types defines the Label and Entity types, the OperationContext,
// the LabelService interface, and standard errors for the labelstate
// storage system.
package types
