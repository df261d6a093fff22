// Package acl is the anti-corruption layer between the gift card editor and
// the commerce store admin API.
//
// Store DTOs stay unexported in this package. Everything that leaves it is a
// domain type or a domain error:
//
//   - 404 or type "not_found" -> [domain.ErrNotFound]
//   - 409, "conflict" or "duplicate_error" -> [domain.ErrConflict]
//   - 400/422 or "invalid_data" -> [domain.ErrValidation]
//   - 401/403 or "not_allowed" -> [domain.ErrForbidden]
//   - 429, 5xx and transport failures -> [domain.ErrUnavailable]
//
// Patches are encoded sparsely by [EncodePatch]: absent keys mean no change,
// "type": null clears the product type.
package acl
