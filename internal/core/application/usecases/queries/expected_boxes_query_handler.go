package queries

import (
	"context"
	"database/sql"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/waybill"
	"freight/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ExpectedBoxesQueryHandler recomputes a manifest's expected box set from
// its member waybills, numbering each waybill's boxes 1..numberOfBoxes in
// membership order.
type ExpectedBoxesQueryHandler struct {
	db *gorm.DB
}

// NewExpectedBoxesQueryHandler creates a handler for box-set derivation.
// Requires a GORM database connection for query execution.
func NewExpectedBoxesQueryHandler(db *gorm.DB) ExpectedBoxesQueryHandler {
	return ExpectedBoxesQueryHandler{db: db}
}

// Handle executes the derivation.
// Returns errs.ErrObjectNotFound when the manifest is unknown.
func (h ExpectedBoxesQueryHandler) Handle(
	ctx context.Context,
	query ExpectedBoxesQuery,
) ([]BoxResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return loadExpectedBoxes(ctx, h.db, query.ManifestID())
}

// loadExpectedBoxes derives the box set of one manifest, flagging each box
// with whether it already sits in the verified snapshot.
func loadExpectedBoxes(ctx context.Context, db *gorm.DB, manifestID kernel.UUID) ([]BoxResponse, error) {
	var memberIDs, verifiedBoxIDs pq.StringArray

	row := db.WithContext(ctx).Raw(`
		SELECT waybill_ids, verified_box_ids FROM manifests WHERE id = ?
	`, manifestID.Bytes()).Row()

	err := row.Scan(&memberIDs, &verifiedBoxIDs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("manifestId", manifestID)
	}
	if err != nil {
		return nil, err
	}

	verified := make(map[string]struct{}, len(verifiedBoxIDs))
	for _, boxID := range verifiedBoxIDs {
		verified[boxID] = struct{}{}
	}

	if len(memberIDs) == 0 {
		return []BoxResponse{}, nil
	}

	type memberRow struct {
		waybillNumber string
		numberOfBoxes int
		receiverCity  string
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT id::text, waybill_number, number_of_boxes, receiver_city
		FROM waybills
		WHERE id::text = ANY(?)
	`, pq.Array(memberIDs)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]memberRow, len(memberIDs))
	for rows.Next() {
		var id string
		var member memberRow

		if err = rows.Scan(&id, &member.waybillNumber, &member.numberOfBoxes, &member.receiverCity); err != nil {
			return nil, err
		}
		byID[id] = member
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	boxes := make([]BoxResponse, 0, len(memberIDs))
	for _, memberID := range memberIDs {
		member, ok := byID[memberID]
		if !ok {
			continue
		}
		for n := 1; n <= member.numberOfBoxes; n++ {
			boxID := waybill.BoxID(member.waybillNumber, n)
			_, isVerified := verified[boxID]
			boxes = append(boxes, BoxResponse{
				BoxID:         boxID,
				WaybillNumber: member.waybillNumber,
				BoxNumber:     n,
				Destination:   member.receiverCity,
				Verified:      isVerified,
			})
		}
	}

	return boxes, nil
}
