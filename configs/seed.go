package configs

import (
	"booking/entity"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DemoHotelID is the identifier of the hotel created by SeedDemo.
const DemoHotelID = "507f1f77bcf86cd799439011"

// SeedDemo inserts a demo hotel once.
func SeedDemo(db *gorm.DB, log *zap.Logger) error {
	hotel := entity.Hotel{
		ID:          DemoHotelID,
		Name:        "Demo Riverside Hotel",
		Address:     "1 Riverside Road",
		City:        "Da Nang",
		Description: "Seeded for local development",
		Stars:       4,
	}
	res := db.Where(entity.Hotel{ID: DemoHotelID}).FirstOrCreate(&hotel)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		log.Info("demo hotel seeded", zap.String("hotel_id", DemoHotelID))
	} else {
		log.Info("demo hotel already exists", zap.String("hotel_id", DemoHotelID))
	}
	return nil
}
