// Package spec provides the embedded ESTree input schema.
package spec

import "embed"

// SchemaFS contains the embedded ESTree JSON schema used to validate
// syntax tree documents before transformation.
//
//go:embed estree-schema.json
var SchemaFS embed.FS

// SchemaPath is the path of the schema inside SchemaFS.
const SchemaPath = "estree-schema.json"
