// Package authn implements credential verification and access-token
// issuance. Tokens are signed HS256 JWTs carrying the subject and role;
// validity is purely a function of signature and expiry, so there is no
// server-side session state to revoke.
package authn
