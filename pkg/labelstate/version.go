// Package labelstate carries module-level metadata.
package labelstate

// Version is the labelstate release version.
const Version = "0.2.0"
