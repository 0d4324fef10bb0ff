// Package cache provides a small generic LRU cache.
//
// The tess package uses it to memoize vertex attribute layouts per vertex
// type, so repeated tessellation construction for the same vertex type does
// not re-validate and re-derive the layout.
//
//	c := cache.New[reflect.Type, []tess.Attribute](64)
//	attrs := c.GetOrCreate(reflect.TypeFor[V](), compute)
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
