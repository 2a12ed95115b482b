// Package manifest contains the manifest aggregate: a batch of waybills
// moving together on one vehicle leg. A manifest is assembled in Draft,
// dispatched exactly once, and then repeatedly verified at the receiving
// hub by scanning boxes. The verification status (Received / Short
// Received) is a projection recomputed on every save, never a lock.
package manifest
