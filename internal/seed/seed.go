package seed

import (
	"time"

	"github.com/smallbiznis/partnerportal/internal/pricing/domain"
	pkgdb "github.com/smallbiznis/partnerportal/pkg/db"
	"gorm.io/gorm"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

// EnsureDefaultCatalog seeds the pricing tables when they are empty. Fixed IDs
// keep the seed idempotent across restarts; operators edit rows afterwards.
func EnsureDefaultCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.ProductLine{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()

	productLines := []domain.ProductLine{
		{
			ID:                 1,
			Code:               "safety",
			Name:               "Safety Scenarios",
			MinCameras:         5,
			MaxCameras:         10000,
			MaxDiscountPercent: 30,
			ScenarioLimit:      3,
			CreatedAt:          now,
			UpdatedAt:          now,
		},
		{
			ID:                 2,
			Code:               "pallet",
			Name:               "Pallet Tracking",
			MinCameras:         5,
			MaxCameras:         10000,
			MaxDiscountPercent: 25,
			ScenarioLimit:      3,
			CreatedAt:          now,
			UpdatedAt:          now,
		},
	}

	tiers := []domain.PriceTier{
		// safety / core
		{ID: 101, ProductLineID: 1, Variant: domain.VariantCore, Position: 1, UpToCameras: intPtr(20), UnitCents: 5000, Label: "Cameras 1-20"},
		{ID: 102, ProductLineID: 1, Variant: domain.VariantCore, Position: 2, UpToCameras: intPtr(100), UnitCents: 4000, Label: "Cameras 21-100"},
		{ID: 103, ProductLineID: 1, Variant: domain.VariantCore, Position: 3, UnitCents: 3500, Label: "Cameras 101+"},
		// safety / everything
		{ID: 111, ProductLineID: 1, Variant: domain.VariantEverything, Position: 1, UpToCameras: intPtr(20), UnitCents: 6500, Label: "Cameras 1-20"},
		{ID: 112, ProductLineID: 1, Variant: domain.VariantEverything, Position: 2, UpToCameras: intPtr(100), UnitCents: 5500, Label: "Cameras 21-100"},
		{ID: 113, ProductLineID: 1, Variant: domain.VariantEverything, Position: 3, UnitCents: 5000, Label: "Cameras 101+"},
		// pallet / core
		{ID: 201, ProductLineID: 2, Variant: domain.VariantCore, Position: 1, UpToCameras: intPtr(20), UnitCents: 5500, Label: "Cameras 1-20"},
		{ID: 202, ProductLineID: 2, Variant: domain.VariantCore, Position: 2, UpToCameras: intPtr(100), UnitCents: 4500, Label: "Cameras 21-100"},
		{ID: 203, ProductLineID: 2, Variant: domain.VariantCore, Position: 3, UnitCents: 4000, Label: "Cameras 101+"},
		// pallet / everything
		{ID: 211, ProductLineID: 2, Variant: domain.VariantEverything, Position: 1, UpToCameras: intPtr(20), UnitCents: 7000, Label: "Cameras 1-20"},
		{ID: 212, ProductLineID: 2, Variant: domain.VariantEverything, Position: 2, UpToCameras: intPtr(100), UnitCents: 6000, Label: "Cameras 21-100"},
		{ID: 213, ProductLineID: 2, Variant: domain.VariantEverything, Position: 3, UnitCents: 5500, Label: "Cameras 101+"},
	}
	for i := range tiers {
		tiers[i].CreatedAt = now
		tiers[i].UpdatedAt = now
	}

	subscriptionTypes := []domain.SubscriptionType{
		{ID: 301, Code: domain.SubscriptionMonthly, Name: "Monthly", DiscountFraction: 0, ContractMonths: 1, SortOrder: 1},
		{ID: 302, Code: domain.SubscriptionYearly, Name: "Yearly", DiscountFraction: 0.20, ContractMonths: 12, SortOrder: 2},
		{ID: 303, Code: domain.SubscriptionThreeYear, Name: "Three Year", DiscountFraction: 0.30, ContractMonths: 36, SortOrder: 3},
		{ID: 304, Code: domain.SubscriptionThreeMonth, Name: "Three Month Pilot", DiscountFraction: 0.20, ContractMonths: 3, FixedTotalCents: int64Ptr(600000), SortOrder: 4},
		{ID: 305, Code: domain.SubscriptionPerpetual, Name: "Perpetual License", DiscountFraction: 0, ContractMonths: 0, SortOrder: 5},
	}
	for i := range subscriptionTypes {
		subscriptionTypes[i].CreatedAt = now
		subscriptionTypes[i].UpdatedAt = now
	}

	starterPackages := []domain.StarterPackage{
		{ID: 401, Code: "starter", Name: "Starter Package", BaseMonthlyCents: 50000, IncludedCameras: 5, CreatedAt: now, UpdatedAt: now},
	}

	additionalCosts := domain.AdditionalCosts{
		ID:                     501,
		ServerUnitCents:        250000,
		ImplementationFeeCents: 150000,
		SpeakerUnitCents:       15000,
		TravelDefaultCents:     50000,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&productLines).Error; err != nil {
			return err
		}
		if err := tx.Create(&tiers).Error; err != nil {
			return err
		}
		if err := tx.Create(&subscriptionTypes).Error; err != nil {
			return err
		}
		if err := tx.Create(&starterPackages).Error; err != nil {
			return err
		}
		return tx.Create(&additionalCosts).Error
	})
	// Another instance racing the same seed loses on the fixed IDs; the
	// catalog is already in place, so treat it as done.
	if pkgdb.IsDuplicateKeyErr(err) {
		return nil
	}
	return err
}
