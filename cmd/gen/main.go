package main

import (
	"patrol/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.LocationSampleModel{},
		model.PatrolLocationModel{},
		model.CheckpointModel{},
		model.CheckpointVerificationModel{},
		model.PhotoModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
