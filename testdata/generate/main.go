// Command generate writes a demo model artifact so the shells can run end
// to end without the real training pipeline. The weights are hand-tuned to
// behave plausibly (large night-time mobile purchases from new accounts
// score high); they are NOT the production coefficients.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hamida-paiman/fraudscore/internal/domain"
	"github.com/hamida-paiman/fraudscore/internal/model"
)

func main() {
	path := os.Getenv("MODEL_DB_PATH")
	if path == "" {
		path = "models/fraud_model.db"
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("create %s: %v", dir, err)
		}
	}

	db, err := model.InitDB(path)
	if err != nil {
		log.Fatalf("init db: %v", err)
	}
	defer db.Close()

	m := demoModel()
	if err := model.NewStore(db).Save(m); err != nil {
		log.Fatalf("save model: %v", err)
	}

	fmt.Printf("Wrote model %q (test accuracy %.2f) to %s\n", m.Name, m.TestAccuracy, path)
}

func demoModel() *model.Logistic {
	return &model.Logistic{
		Name:         "fraud-logreg-demo",
		Intercept:    -4.1,
		TestAccuracy: 0.80,
		TrainedAt:    time.Date(2025, 11, 30, 0, 0, 0, 0, time.UTC),

		Numeric: map[string]float64{
			domain.ColLogAmount:    0.45,
			domain.ColQuantity:     0.05,
			domain.ColCustomerAge:  -0.005,
			domain.ColAccountAge:   -0.0008,
			domain.ColIsNewAccount: 0.9,
			domain.ColIsWeekend:    0.35,
			domain.ColDayOfWeek:    0.01,
		},

		Categorical: map[string]map[string]float64{
			domain.ColPartOfDay: {
				string(domain.PartNight):     0.8,
				string(domain.PartMorning):   -0.1,
				string(domain.PartAfternoon): 0.0,
				string(domain.PartEvening):   0.2,
			},
			domain.ColDevice: {
				"Mobile":  0.5,
				"Desktop": -0.1,
				"Tablet":  0.1,
			},
			domain.ColAgeBucket: {
				string(domain.AgeUnder20): 0.4,
				string(domain.Age20to29):  0.2,
				string(domain.Age30to44):  0.0,
				string(domain.Age45to59):  -0.1,
				string(domain.Age60Plus):  0.1,
			},
			domain.ColLocationShort: {
				"New York":    0.0,
				"Los Angeles": 0.05,
				"Chicago":     0.0,
				"New Jersey":  0.05,
				"Other":       0.15,
			},
			domain.ColPaymentMethod: {
				"Credit Card":   0.1,
				"Debit Card":    -0.05,
				"PayPal":        0.0,
				"Bank Transfer": 0.2,
			},
			domain.ColCategory: {
				"Electronics":     0.3,
				"Clothing":        0.0,
				"Home & Garden":   -0.05,
				"Toys & Games":    0.0,
				"Health & Beauty": 0.05,
			},
		},
	}
}
