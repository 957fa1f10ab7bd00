package domain

import (
	"fmt"
	"sort"
)

// Catalog is the full pricing table, loaded once and treated as immutable.
type Catalog struct {
	ProductLines      []ProductLine      `json:"product_lines"`
	Tiers             []PriceTier        `json:"tiers"`
	SubscriptionTypes []SubscriptionType `json:"subscription_types"`
	StarterPackages   []StarterPackage   `json:"starter_packages"`
	AdditionalCosts   AdditionalCosts    `json:"additional_costs"`
}

// ProductLineByCode returns the product line with the given code.
func (c *Catalog) ProductLineByCode(code string) (*ProductLine, bool) {
	for i := range c.ProductLines {
		if c.ProductLines[i].Code == code {
			return &c.ProductLines[i], true
		}
	}
	return nil, false
}

// TiersFor returns the ordered tier table for a product line and variant.
func (c *Catalog) TiersFor(productLineID int64, variant Variant) []PriceTier {
	var tiers []PriceTier
	for _, t := range c.Tiers {
		if int64(t.ProductLineID) == productLineID && t.Variant == variant {
			tiers = append(tiers, t)
		}
	}
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].Position < tiers[j].Position })
	return tiers
}

// SubscriptionByCode returns the subscription type with the given code.
func (c *Catalog) SubscriptionByCode(code SubscriptionCode) (*SubscriptionType, bool) {
	for i := range c.SubscriptionTypes {
		if c.SubscriptionTypes[i].Code == code {
			return &c.SubscriptionTypes[i], true
		}
	}
	return nil, false
}

// StarterPackageByCode returns the starter package with the given code.
func (c *Catalog) StarterPackageByCode(code string) (*StarterPackage, bool) {
	for i := range c.StarterPackages {
		if c.StarterPackages[i].Code == code {
			return &c.StarterPackages[i], true
		}
	}
	return nil, false
}

// Validate checks the catalog invariants: every (line, variant) tier table must
// partition camera counts with no gaps and end in an unbounded tier, discount
// fractions must stay inside [0, 1), and line limits must be sane.
func (c *Catalog) Validate() error {
	if len(c.ProductLines) == 0 {
		return fmt.Errorf("catalog has no product lines")
	}

	for _, line := range c.ProductLines {
		if line.MinCameras < 1 {
			return fmt.Errorf("product line %s: min cameras %d < 1", line.Code, line.MinCameras)
		}
		if line.MaxCameras < line.MinCameras {
			return fmt.Errorf("product line %s: max cameras %d < min %d", line.Code, line.MaxCameras, line.MinCameras)
		}
		if line.MaxDiscountPercent < 0 || line.MaxDiscountPercent >= 100 {
			return fmt.Errorf("product line %s: max discount %d%% out of range", line.Code, line.MaxDiscountPercent)
		}

		for _, variant := range []Variant{VariantCore, VariantEverything} {
			tiers := c.TiersFor(int64(line.ID), variant)
			if len(tiers) == 0 {
				continue
			}
			if err := validateTierTable(line.Code, variant, tiers); err != nil {
				return err
			}
		}
	}

	for _, sub := range c.SubscriptionTypes {
		if sub.DiscountFraction < 0 || sub.DiscountFraction >= 1 {
			return fmt.Errorf("subscription %s: discount fraction %v out of range", sub.Code, sub.DiscountFraction)
		}
		if sub.ContractMonths < 0 {
			return fmt.Errorf("subscription %s: contract months %d < 0", sub.Code, sub.ContractMonths)
		}
		if sub.Code == SubscriptionThreeMonth && (sub.FixedTotalCents == nil || *sub.FixedTotalCents <= 0) {
			return fmt.Errorf("subscription %s: pilot requires a fixed total", sub.Code)
		}
	}

	return nil
}

func validateTierTable(lineCode string, variant Variant, tiers []PriceTier) error {
	prevUpTo := 0
	for i, tier := range tiers {
		if tier.UnitCents < 0 {
			return fmt.Errorf("tier table %s/%s: tier %d has negative unit price", lineCode, variant, i)
		}
		last := i == len(tiers)-1
		if last {
			if tier.UpToCameras != nil {
				return fmt.Errorf("tier table %s/%s: last tier must be unbounded", lineCode, variant)
			}
			continue
		}
		if tier.UpToCameras == nil {
			return fmt.Errorf("tier table %s/%s: only the last tier may be unbounded", lineCode, variant)
		}
		if *tier.UpToCameras <= prevUpTo {
			return fmt.Errorf("tier table %s/%s: tier %d upper bound %d does not extend %d", lineCode, variant, i, *tier.UpToCameras, prevUpTo)
		}
		prevUpTo = *tier.UpToCameras
	}
	return nil
}
