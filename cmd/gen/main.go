package main

import (
	"taskboard/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.BoardModel{},
		model.CardModel{},
		model.TokenModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
