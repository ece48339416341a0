package services

import (
	"time"

	"github.com/shopspring/decimal"

	"shipment-report-service/internal/domain"
)

func rec(id, pkg, origin, originCountry, dest, destCountry string, weight, cost int64, at string) domain.Record {
	t, err := time.ParseInLocation("2006-01-02 15:04:05", at, time.UTC)
	if err != nil {
		panic(err)
	}
	return domain.Record{
		ShipmentID:         id,
		Origin:             origin,
		OriginCountry:      originCountry,
		Destination:        dest,
		DestinationCountry: destCountry,
		PackageID:          pkg,
		Weight:             decimal.NewFromInt(weight),
		Cost:               decimal.NewFromInt(cost),
		EventTime:          t,
	}
}
