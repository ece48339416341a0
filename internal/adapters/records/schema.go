package records

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"shipment-report-service/internal/domain"
)

// Header names every input file must carry.
const (
	FieldShipmentID         = "ShipmentID"
	FieldOrigin             = "Origin"
	FieldOriginCountry      = "OriginCountry"
	FieldOriginRegion       = "OriginRegion"
	FieldDestination        = "Destination"
	FieldDestinationCountry = "DestinationCountry"
	FieldDestinationRegion  = "DestinationRegion"
	FieldPackageID          = "PackageID"
	FieldWeight             = "Weight"
	FieldCost               = "Cost"
	FieldEventTime          = "EventTime"
)

// EventTimeLayout is the timestamp format of the EventTime column, read as UTC.
const EventTimeLayout = "2006-01-02 15:04:05"

var requiredFields = []string{
	FieldShipmentID,
	FieldOrigin,
	FieldOriginCountry,
	FieldOriginRegion,
	FieldDestination,
	FieldDestinationCountry,
	FieldDestinationRegion,
	FieldPackageID,
	FieldWeight,
	FieldCost,
	FieldEventTime,
}

// Schema maps the required fields to column indexes of one file.
// It is resolved once from the header row so each data row is decoded with
// direct index access.
type Schema struct {
	shipmentID, origin, originCountry, originRegion    int
	destination, destinationCountry, destinationRegion int
	packageID, weight, cost, eventTime                 int
	width                                              int
}

// ResolveSchema builds a Schema from a header row. Header names are matched
// exactly after trimming whitespace and a leading byte order mark.
func ResolveSchema(header []string) (*Schema, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}

	var missing []string
	for _, f := range requiredFields {
		if _, ok := idx[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("resolve schema: missing fields %s", strings.Join(missing, ", "))
	}

	s := &Schema{
		shipmentID:         idx[FieldShipmentID],
		origin:             idx[FieldOrigin],
		originCountry:      idx[FieldOriginCountry],
		originRegion:       idx[FieldOriginRegion],
		destination:        idx[FieldDestination],
		destinationCountry: idx[FieldDestinationCountry],
		destinationRegion:  idx[FieldDestinationRegion],
		packageID:          idx[FieldPackageID],
		weight:             idx[FieldWeight],
		cost:               idx[FieldCost],
		eventTime:          idx[FieldEventTime],
	}
	for _, f := range requiredFields {
		if idx[f]+1 > s.width {
			s.width = idx[f] + 1
		}
	}

	return s, nil
}

// Decode turns one data row into a Record.
func (s *Schema) Decode(row []string) (domain.Record, error) {
	if len(row) < s.width {
		return domain.Record{}, fmt.Errorf("decode row: got %d columns, need %d", len(row), s.width)
	}

	weight, err := parseAmount(FieldWeight, row[s.weight])
	if err != nil {
		return domain.Record{}, err
	}
	cost, err := parseAmount(FieldCost, row[s.cost])
	if err != nil {
		return domain.Record{}, err
	}

	eventTime, err := time.ParseInLocation(EventTimeLayout, strings.TrimSpace(row[s.eventTime]), time.UTC)
	if err != nil {
		return domain.Record{}, fmt.Errorf("decode row: %s: %w", FieldEventTime, err)
	}

	return domain.Record{
		ShipmentID:         row[s.shipmentID],
		Origin:             row[s.origin],
		OriginCountry:      row[s.originCountry],
		OriginRegion:       row[s.originRegion],
		Destination:        row[s.destination],
		DestinationCountry: row[s.destinationCountry],
		DestinationRegion:  row[s.destinationRegion],
		PackageID:          row[s.packageID],
		Weight:             weight,
		Cost:               cost,
		EventTime:          eventTime,
	}, nil
}

func parseAmount(field, v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("decode row: %s: %w", field, err)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("decode row: %s must not be negative, got %s", field, v)
	}
	return d, nil
}
