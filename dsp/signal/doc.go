// Package signal synthesizes deterministic test signals: sums of stationary
// or gliding partials and seeded white noise.
package signal
