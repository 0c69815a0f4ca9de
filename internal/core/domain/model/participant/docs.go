// Package participant contains the Participant aggregate: a registered user of
// the marketplace acting as a client, a traveler, or an administrator.
package participant
