// Package tree: see value.go for the Value/OrderedMap types, format.go
// for format sniffing, json.go/yaml.go for decoding, and encode.go for
// the writer's JSON/YAML emission.
package tree
