// Package waybill contains the shipment aggregate and its lifecycle state
// machine. A waybill is booked Pending, leaves on a dispatched manifest as
// In Transit, is handed over Out for Delivery, and terminates as Delivered,
// Returned, or Cancelled. The package also derives the scannable box set
// used by manifest verification; boxes have no identity of their own.
package waybill
