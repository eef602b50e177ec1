// Package domain contains the core entities of the happiness rankings
// API: user accounts, their profiles, and the read-only ranking data.
// Entities validate themselves; persistence lives elsewhere.
package domain
