// Package host provides a reference host runtime for quill components: a
// store of named string/boolean fields with synchronous re-render
// subscriptions, and a registry of named commands the component may expose.
//
// The bridge package depends only on the Fields and CommandRegistrar
// interfaces; embedders with their own state store implement those instead.
package host
