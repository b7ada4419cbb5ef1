// Package fileutil collects the file permission modes shared by every
// code path that writes a document to disk.
package fileutil

import "os"

// OwnerReadWrite is the permission mode for a written OpenAPI document:
// owner read/write only, since the source document may carry
// credentials-adjacent data (security scheme metadata, server URLs).
const OwnerReadWrite os.FileMode = 0o600
