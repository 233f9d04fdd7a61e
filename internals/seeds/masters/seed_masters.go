package masters

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"
)

// MastersSeed is the shape of data_masters.json: one name list per lookup
// table.
type MastersSeed struct {
	Congregations        []string `json:"congregations"`
	ParticipantTiers     []string `json:"participant_tiers"`
	RegistrationPackages []string `json:"registration_packages"`
	PaymentMethods       []string `json:"payment_methods"`
	Treasurers           []string `json:"treasurers"`
}

func SeedMastersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Lendo arquivo de cadastros base:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Falha ao ler o arquivo JSON: %v", err)
	}

	var seed MastersSeed
	if err := json.Unmarshal(file, &seed); err != nil {
		log.Fatalf("❌ Falha ao decodificar o JSON: %v", err)
	}

	seedTable(db, "congregations", seed.Congregations)
	seedTable(db, "participant_tiers", seed.ParticipantTiers)
	seedTable(db, "registration_packages", seed.RegistrationPackages)
	seedTable(db, "payment_methods", seed.PaymentMethods)
	seedTable(db, "treasurers", seed.Treasurers)
}

func seedTable(db *gorm.DB, table string, names []string) {
	for _, name := range names {
		var count int64
		if err := db.Table(table).Where("name = ?", name).Count(&count).Error; err != nil {
			log.Printf("❌ Falha ao consultar %s: %v", table, err)
			continue
		}
		if count > 0 {
			log.Printf("ℹ️ %s '%s' já existe, pulando.", table, name)
			continue
		}

		if err := db.Exec("INSERT INTO "+table+" (name) VALUES (?)", name).Error; err != nil {
			log.Printf("❌ Falha ao inserir '%s' em %s: %v", name, table, err)
		} else {
			log.Printf("✅ Inserido '%s' em %s", name, table)
		}
	}
}
