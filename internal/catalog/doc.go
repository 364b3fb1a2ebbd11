// Package catalog loads the static lookup tables consulted before any
// provider call is made.
//
// Two catalogs are read at startup and are immutable afterwards:
//   - company catalog: trading symbol → numeric filer identifier
//   - industry catalog: industry name → member symbols
//
// Both are plain JSON files on local disk. A missing or malformed file is
// a startup failure; an absent key at lookup time is ErrNotFound.
package catalog
