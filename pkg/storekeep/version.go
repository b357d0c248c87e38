// Package storekeep carries module-level metadata.
package storekeep

// Version is the storekeep release version.
const Version = "0.1.0"
