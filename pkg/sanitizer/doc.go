// Package sanitizer holds the small string transforms applied to form input
// before validation, plus masking helpers for values that end up in logs.
//
// Transforms have the shape func(string) string and can be chained:
//
//	clean := sanitizer.Compose(sanitizer.Trim)
//	name := clean("  Jane Doe ") // "Jane Doe"
//
// MaskEmail and MaskPhone keep just enough of a value to be recognisable:
//
//	sanitizer.MaskEmail("jane@clinic.org") // "j***@clinic.org"
//	sanitizer.MaskPhone("555-123-4567")    // "******4567"
package sanitizer
