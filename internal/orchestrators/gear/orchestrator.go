// Package gear implements the gear orchestrator tying the catalogue,
// the snapshot store and the optimization engine together
package gear

//go:generate mockgen -destination=mock/mock_service.go -package=gearmock github.com/scapelab/gear-api/internal/orchestrators/gear Service

import (
	"context"
	"log/slog"

	"github.com/scapelab/gear-api/internal/catalogue"
	"github.com/scapelab/gear-api/internal/clients/external"
	"github.com/scapelab/gear-api/internal/engine"
	"github.com/scapelab/gear-api/internal/errors"
	"github.com/scapelab/gear-api/internal/pkg/clock"
	"github.com/scapelab/gear-api/internal/pkg/idgen"
	"github.com/scapelab/gear-api/internal/repositories/snapshot"
)

// Service defines the interface for gear operations
type Service interface {
	// BestLoadout solves the highest scoring loadout under a budget
	BestLoadout(ctx context.Context, input *BestLoadoutInput) (*BestLoadoutOutput, error)

	// UpgradePath ranks per-slot upgrades by GP efficiency
	UpgradePath(ctx context.Context, input *UpgradePathInput) (*UpgradePathOutput, error)

	// CalculateDPS computes combat output for a loadout
	CalculateDPS(ctx context.Context, input *CalculateDPSInput) (*CalculateDPSOutput, error)

	// Progression merges upgrade suggestions across all combat styles
	Progression(ctx context.Context, input *ProgressionInput) (*ProgressionOutput, error)

	// RefreshSnapshot pulls the item feed and persists a new catalogue
	// snapshot, advancing the latest pointer
	RefreshSnapshot(ctx context.Context, input *RefreshSnapshotInput) (*RefreshSnapshotOutput, error)
}

// Config holds the dependencies for the gear orchestrator
type Config struct {
	Engine          engine.Engine
	SnapshotRepo    snapshot.Repository
	CatalogueClient external.Client
	IDGenerator     idgen.Generator
	Clock           clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.SnapshotRepo == nil {
		vb.RequiredField("SnapshotRepo")
	}
	if c.CatalogueClient == nil {
		vb.RequiredField("CatalogueClient")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	engine          engine.Engine
	snapshotRepo    snapshot.Repository
	catalogueClient external.Client
	idGen           idgen.Generator
	clock           clock.Clock
}

// NewOrchestrator creates a new gear orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		engine:          cfg.Engine,
		snapshotRepo:    cfg.SnapshotRepo,
		catalogueClient: cfg.CatalogueClient,
		idGen:           cfg.IDGenerator,
		clock:           cfg.Clock,
	}, nil
}

func (o *orchestrator) BestLoadout(ctx context.Context, input *BestLoadoutInput) (*BestLoadoutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	snap, err := o.resolveSnapshot(ctx, input.SnapshotVersion)
	if err != nil {
		return nil, err
	}

	out, err := o.engine.BestLoadout(ctx, &engine.BestLoadoutInput{
		Snapshot: snap,
		Player:   input.Player,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("solved best loadout",
		"snapshot", snap.Version(),
		"slots", len(out.Loadout.FilledSlots()),
		"total_cost", out.TotalCost,
	)

	return &BestLoadoutOutput{
		SnapshotVersion: snap.Version(),
		Loadout:         out.Loadout,
		TotalCost:       out.TotalCost,
		TotalScore:      out.TotalScore,
	}, nil
}

func (o *orchestrator) UpgradePath(ctx context.Context, input *UpgradePathInput) (*UpgradePathOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	snap, err := o.resolveSnapshot(ctx, input.SnapshotVersion)
	if err != nil {
		return nil, err
	}

	out, err := o.engine.UpgradePath(ctx, &engine.UpgradePathInput{
		Snapshot: snap,
		Current:  input.Current,
		Player:   input.Player,
	})
	if err != nil {
		return nil, err
	}

	return &UpgradePathOutput{
		SnapshotVersion: snap.Version(),
		Suggestions:     out.Suggestions,
	}, nil
}

func (o *orchestrator) CalculateDPS(ctx context.Context, input *CalculateDPSInput) (*CalculateDPSOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	snap, err := o.resolveSnapshot(ctx, input.SnapshotVersion)
	if err != nil {
		return nil, err
	}

	out, err := o.engine.CalculateDPS(ctx, &engine.CalculateDPSInput{
		Snapshot:           snap,
		Loadout:            input.Loadout,
		Style:              input.Style,
		AttackType:         input.AttackType,
		Stance:             input.Stance,
		Stats:              input.Stats,
		PrayerMultiplier:   input.PrayerMultiplier,
		BaseSpellMaxHit:    input.BaseSpellMaxHit,
		TargetDefenceLevel: input.TargetDefenceLevel,
		TargetDefenceBonus: input.TargetDefenceBonus,
	})
	if err != nil {
		return nil, err
	}

	return &CalculateDPSOutput{
		SnapshotVersion: snap.Version(),
		Result:          out.Result,
	}, nil
}

func (o *orchestrator) Progression(ctx context.Context, input *ProgressionInput) (*ProgressionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input cannot be nil")
	}

	snap, err := o.resolveSnapshot(ctx, input.SnapshotVersion)
	if err != nil {
		return nil, err
	}

	out, err := o.engine.Progression(ctx, &engine.ProgressionInput{
		Snapshot:              snap,
		Loadouts:              input.Loadouts,
		BankValue:             input.BankValue,
		Stats:                 input.Stats,
		QuestsCompleted:       input.QuestsCompleted,
		AchievementsCompleted: input.AchievementsCompleted,
		Ironman:               input.Ironman,
		MeleeAttackType:       input.MeleeAttackType,
		ExcludedItems:         input.ExcludedItems,
		MaxTickManipulation:   input.MaxTickManipulation,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("computed progression",
		"snapshot", snap.Version(),
		"suggestions", len(out.Suggestions),
		"total_cost", out.TotalCost,
	)

	return &ProgressionOutput{
		SnapshotVersion: snap.Version(),
		Suggestions:     out.Suggestions,
		TotalCost:       out.TotalCost,
	}, nil
}

func (o *orchestrator) RefreshSnapshot(ctx context.Context, input *RefreshSnapshotInput) (*RefreshSnapshotOutput, error) {
	if input == nil {
		input = &RefreshSnapshotInput{}
	}

	items, err := o.catalogueClient.ListItems(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list catalogue items")
	}

	if !input.SkipPrices {
		prices, err := o.catalogueClient.GetLatestPrices(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch latest prices")
		}
		for i := range items {
			if price, ok := prices[items[i].ID]; ok && items[i].Tradeable {
				items[i].Price = price
			}
		}
	}

	version := o.idGen.Generate()
	snap := catalogue.New(version, o.clock.Now(), items)

	if _, err := o.snapshotRepo.Save(ctx, snapshot.SaveInput{Snapshot: snap}); err != nil {
		return nil, err
	}

	slog.Info("refreshed catalogue snapshot",
		"version", version,
		"items", len(items),
	)

	return &RefreshSnapshotOutput{
		Version:   version,
		ItemCount: len(items),
	}, nil
}

func (o *orchestrator) resolveSnapshot(ctx context.Context, version string) (*catalogue.Snapshot, error) {
	out, err := o.snapshotRepo.Get(ctx, snapshot.GetInput{Version: version})
	if err != nil {
		return nil, err
	}
	return out.Snapshot, nil
}
