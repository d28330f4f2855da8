package indodax

import (
	"github.com/samber/lo"

	"github.com/dresoeta/indoshim/core"
)

// PairDRXIDR is the pair Indodax lists with broken metadata: discovery
// sometimes omits it, its reported minimums reject legitimate orders and
// its ticker volumes come back empty.
const PairDRXIDR = "DRX/IDR"

// Constants observed on Indodax for DRX/IDR.
const (
	drxIDRMarketID  = "drxidr"
	drxIDRAmountMin = 66.53613917
	drxIDRPriceMin  = 10_000.0

	// Daily volumes used when every backfill tier fails. Larger than the
	// global defaults so volume-gated strategies stay active on this
	// illiquid pair.
	drxIDRBaseVolume  = 20_816_997.0
	drxIDRQuoteVolume = 2_964_099_478.0
)

// DRXIDRFix returns the standard correction for DRX/IDR under the given
// policy: the synthetic market record Indodax fails to list, the relaxed
// limit set and the pair's volume defaults.
func DRXIDRFix(policy OverridePolicy) PairFix {
	fix := PairFix{
		Synthetic: core.Market{
			Symbol:  PairDRXIDR,
			ID:      drxIDRMarketID,
			Base:    "DRX",
			Quote:   "IDR",
			BaseID:  "drx",
			QuoteID: "idr",
			Active:  true,
			Limits: core.LimitSet{
				Amount: core.Limit{Min: lo.ToPtr(drxIDRAmountMin)},
				Price:  core.Limit{Min: lo.ToPtr(drxIDRPriceMin)},
			},
			Precision: core.Precision{Amount: 8, Price: 8},
		},
		ScaleFactor:        1,
		BaseVolumeDefault:  drxIDRBaseVolume,
		QuoteVolumeDefault: drxIDRQuoteVolume,
	}

	switch policy {
	case PolicyScaleCompensated:
		// Prices go on the wire multiplied by the scale factor, so the
		// price minimum is dropped and the exchange's real rule, a
		// 10,000 IDR cost minimum, is kept.
		fix.ScaleFactor = DefaultScaleFactor
		fix.Limits = core.LimitSet{
			Amount: core.Limit{Min: lo.ToPtr(1.0)},
			Cost:   core.Limit{Min: lo.ToPtr(drxIDRPriceMin)},
		}
	default:
		// Near-zero relaxation: the engine submits true prices.
		fix.Limits = core.LimitSet{
			Amount: core.Limit{Min: lo.ToPtr(0.1)},
			Price:  core.Limit{Min: lo.ToPtr(0.0)},
			Cost:   core.Limit{Min: lo.ToPtr(0.0)},
		}
	}

	return fix
}
