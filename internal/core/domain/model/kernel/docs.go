// Package kernel contains the shared value objects of the domain model:
// principal identities (UUID), sequential entity identifiers (EntityID) and
// monetary amounts (Money). All of them are immutable, validate themselves
// and must be created through their constructor functions.
package kernel
