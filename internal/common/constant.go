// Package common contains shared constants and sentinel errors used across
// Messagely components.
package common

// TokenField is the JSON body field / query parameter used to carry the
// bearer token on inbound requests.
const TokenField = "_token"
