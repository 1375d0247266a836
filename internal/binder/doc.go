// Package binder binds values under dotted paths in a shared namespace.
//
// Binding is graceful in that it never overwrites: a path can be bound once,
// intermediate namespaces are created on demand, and a bound value cannot be
// used as a namespace. Paths look like "transforms.double".
package binder
