// Package ir defines the typed in-memory document model for OpenAPI 3.2
// documents and standalone JSON Schema (2020-12 / OpenAPI base dialect)
// documents.
//
// The IR is produced once by the parser package and is read-only
// thereafter (see the Lifecycle note in the package's governing spec).
// Every "A or B" the specification admits is represented as a small
// tagged struct with an explicit discriminant rather than an interface
// hierarchy, and every field that distinguishes "absent" from
// "present-but-empty" carries either an adjacent boolean flag (for
// fields that are almost always non-empty, e.g. ContentPresent) or is
// itself a pointer (nil means absent).
package ir
