package waybill

import "fmt"

// Box identifies one physical parcel among a waybill's numberOfBoxes.
// Boxes are derived, never stored: the full box set of a shipment is always
// recomputed from the waybill record, and only scanned box ids are ever
// persisted (on the manifest's verification snapshot).
type Box struct {
	// BoxID is waybillNumber + "-" + boxNumber, e.g. "SW-1001-2".
	BoxID string

	// WaybillNumber is the parent shipment's number.
	WaybillNumber string

	// BoxNumber runs from 1 to the waybill's numberOfBoxes.
	BoxNumber int

	// Destination is the receiver city, carried for pallet assignment.
	Destination string
}

// BoxID builds the scannable identifier for one box of a waybill.
func BoxID(waybillNumber string, boxNumber int) string {
	return fmt.Sprintf("%s-%d", waybillNumber, boxNumber)
}

// Boxes derives the full box set for the waybill, numbered 1..numberOfBoxes.
func (w *Waybill) Boxes() []Box {
	boxes := make([]Box, 0, w.numberOfBoxes)
	for n := 1; n <= w.numberOfBoxes; n++ {
		boxes = append(boxes, Box{
			BoxID:         BoxID(w.waybillNumber, n),
			WaybillNumber: w.waybillNumber,
			BoxNumber:     n,
			Destination:   w.receiverCity,
		})
	}
	return boxes
}
