// Package password holds the composition policy every customer credential
// must satisfy before it is hashed and stored.
package password
