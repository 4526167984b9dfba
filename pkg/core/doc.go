// Package core defines the shared language of the arcana system.
//
// This package contains:
//   - Position keys and the computed position mapping (PositionKey, Positions)
//   - Spread types (SpreadType)
//   - The immutable calculation request (Request)
//   - Rendered output (Slot, Portrait)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
