package seeds

import (
	masters "acampamentos_backend/internals/seeds/masters"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {
	//* Cadastros base (congregações, categorias, pacotes, formas de pagamento, tesoureiros)
	masters.SeedMastersFromJSON(db, "internals/seeds/masters/data_masters.json")
}
