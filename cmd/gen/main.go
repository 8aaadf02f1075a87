package main

import (
	"aurelise/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(model.All()...)

	gen.Execute()
}
