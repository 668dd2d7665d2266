// Package domain defines the flat proxy profile record shared by every
// decoder and renderer, the ProxyType discriminant with its display names
// and default groups, and the Tribool used for optional capability flags.
package domain
