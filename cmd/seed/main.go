// Package main seeds a Tenure Registry deployment: baseline vocabulary
// files and, on request, a small demo production baseline for exercising
// duplicate detection.
//
// The command is idempotent; existing vocabulary files and demo rows are
// left alone unless -force is given.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"uhc-registry.io/registry/ent"
	"uhc-registry.io/registry/ent/person"
	"uhc-registry.io/registry/internal/config"
	"uhc-registry.io/registry/internal/infrastructure"
	"uhc-registry.io/registry/internal/matching"
	"uhc-registry.io/registry/internal/pkg/logger"
	"uhc-registry.io/registry/internal/vocabulary"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		force = flag.Bool("force", false, "overwrite existing vocabulary files")
		demo  = flag.Bool("demo", false, "seed demo production rows for duplicate-detection trials")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("Starting data seeding...")

	if err := seedVocabularies(cfg.Intake.VocabularyDir, *force); err != nil {
		return fmt.Errorf("seed vocabularies: %w", err)
	}

	if *demo {
		ctx := context.Background()
		db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("init database: %w", err)
		}
		defer db.Close()

		if cfg.Database.AutoMigrate {
			if err := db.AutoMigrate(ctx); err != nil {
				return fmt.Errorf("auto-migrate: %w", err)
			}
		}
		if err := seedDemoBaseline(ctx, db.EntClient); err != nil {
			return fmt.Errorf("seed demo baseline: %w", err)
		}
	}

	logger.Info("Data seeding completed successfully")
	return nil
}

// baselineVocabularies are the server's reference vocabulary versions.
// Exporter devices embed a copy; the receiver compares manifests against
// these at intake.
func baselineVocabularies() []vocabulary.Domain {
	return []vocabulary.Domain{
		{
			Domain: "building_type", Version: "1.2.0",
			Codes: []vocabulary.Code{
				{Code: "RESIDENTIAL", LabelEN: "Residential", LabelAR: "سكني"},
				{Code: "COMMERCIAL", LabelEN: "Commercial", LabelAR: "تجاري"},
				{Code: "MIXED_USE", LabelEN: "Mixed use", LabelAR: "مختلط"},
				{Code: "PUBLIC", LabelEN: "Public", LabelAR: "عام"},
				{Code: "DESTROYED", LabelEN: "Destroyed", LabelAR: "مدمر"},
			},
		},
		{
			Domain: "occupancy_status", Version: "1.1.0",
			Codes: []vocabulary.Code{
				{Code: "OCCUPIED_BY_OWNER", LabelEN: "Occupied by owner", LabelAR: "مشغول من المالك"},
				{Code: "OCCUPIED_BY_TENANT", LabelEN: "Occupied by tenant", LabelAR: "مشغول من مستأجر"},
				{Code: "VACANT", LabelEN: "Vacant", LabelAR: "شاغر"},
				{Code: "OCCUPIED_BY_DISPLACED", LabelEN: "Occupied by displaced persons", LabelAR: "مشغول من نازحين"},
			},
		},
		{
			Domain: "unit_type", Version: "1.0.1",
			Codes: []vocabulary.Code{
				{Code: "APARTMENT", LabelEN: "Apartment", LabelAR: "شقة"},
				{Code: "SHOP", LabelEN: "Shop", LabelAR: "محل"},
				{Code: "OFFICE", LabelEN: "Office", LabelAR: "مكتب"},
				{Code: "STORAGE", LabelEN: "Storage", LabelAR: "مستودع"},
			},
		},
		{
			Domain: "gender", Version: "1.0.0",
			Codes: []vocabulary.Code{
				{Code: "M", LabelEN: "Male", LabelAR: "ذكر"},
				{Code: "F", LabelEN: "Female", LabelAR: "أنثى"},
			},
		},
		{
			Domain: "nationality", Version: "1.3.0",
			Codes: []vocabulary.Code{
				{Code: "SY", LabelEN: "Syrian", LabelAR: "سوري"},
				{Code: "PS", LabelEN: "Palestinian", LabelAR: "فلسطيني"},
				{Code: "IQ", LabelEN: "Iraqi", LabelAR: "عراقي"},
				{Code: "OTHER", LabelEN: "Other", LabelAR: "أخرى"},
			},
		},
		{
			Domain: "residency_status", Version: "1.1.0",
			Codes: []vocabulary.Code{
				{Code: "RESIDENT", LabelEN: "Resident", LabelAR: "مقيم"},
				{Code: "DISPLACED", LabelEN: "Internally displaced", LabelAR: "نازح"},
				{Code: "RETURNEE", LabelEN: "Returnee", LabelAR: "عائد"},
				{Code: "ABROAD", LabelEN: "Abroad", LabelAR: "مغترب"},
			},
		},
		{
			Domain: "relation_type", Version: "1.4.0",
			Codes: []vocabulary.Code{
				{Code: "OWNER", LabelEN: "Owner", LabelAR: "مالك"},
				{Code: "CO_OWNER", LabelEN: "Co-owner", LabelAR: "شريك في الملك"},
				{Code: "TENANT", LabelEN: "Tenant", LabelAR: "مستأجر"},
				{Code: "HEIR", LabelEN: "Heir", LabelAR: "وريث"},
				{Code: "OCCUPANT", LabelEN: "Occupant", LabelAR: "شاغل"},
			},
		},
		{
			Domain: "evidence_type", Version: "1.2.0",
			Codes: []vocabulary.Code{
				{Code: "TITLE_DEED", LabelEN: "Title deed", LabelAR: "سند ملكية"},
				{Code: "COURT_RULING", LabelEN: "Court ruling", LabelAR: "حكم قضائي"},
				{Code: "UTILITY_BILL", LabelEN: "Utility bill", LabelAR: "فاتورة خدمات"},
				{Code: "WITNESS_STATEMENT", LabelEN: "Witness statement", LabelAR: "إفادة شهود"},
				{Code: "TAX_RECORD", LabelEN: "Tax record", LabelAR: "سجل ضريبي"},
			},
		},
		{
			Domain: "survey_type", Version: "1.0.0",
			Codes: []vocabulary.Code{
				{Code: "FIELD_VISIT", LabelEN: "Field visit", LabelAR: "زيارة ميدانية"},
				{Code: "REMOTE", LabelEN: "Remote assessment", LabelAR: "تقييم عن بعد"},
			},
		},
		{
			Domain: "claim_type", Version: "1.1.0",
			Codes: []vocabulary.Code{
				{Code: "OWNERSHIP", LabelEN: "Ownership claim", LabelAR: "دعوى ملكية"},
				{Code: "TENANCY", LabelEN: "Tenancy claim", LabelAR: "دعوى إيجار"},
				{Code: "INHERITANCE", LabelEN: "Inheritance claim", LabelAR: "دعوى إرث"},
			},
		},
	}
}

func seedVocabularies(dir string, force bool) error {
	if dir == "" {
		return fmt.Errorf("intake.vocabulary_dir is not configured")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	written := 0
	for _, d := range baselineVocabularies() {
		path := filepath.Join(dir, d.Domain+".yaml")
		if !force {
			if _, err := os.Stat(path); err == nil {
				continue
			}
		}
		raw, err := yaml.Marshal(d)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", d.Domain, err)
		}
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		written++
	}

	// Parse back what is on disk so a bad hand-edit fails here, not at boot.
	if _, err := vocabulary.Load(dir); err != nil {
		return err
	}

	logger.Info("Vocabulary seeding done",
		zap.String("dir", dir), zap.Int("files_written", written))
	return nil
}

type demoPerson struct {
	first, father, family string
	nationalID            string
	yearOfBirth           int
	gender                string
}

// seedDemoBaseline inserts a handful of production persons so a freshly
// imported package has something to collide with.
func seedDemoBaseline(ctx context.Context, client *ent.Client) error {
	persons := []demoPerson{
		{first: "محمد", father: "أحمد", family: "الحسن", nationalID: "02010123456", yearOfBirth: 1975, gender: "M"},
		{first: "فاطمة", father: "خالد", family: "العلي", nationalID: "02010765432", yearOfBirth: 1982, gender: "F"},
		{first: "عبد الرحمن", father: "محمود", family: "النجار", nationalID: "02011234567", yearOfBirth: 1968, gender: "M"},
		{first: "سارة", father: "يوسف", family: "الخطيب", nationalID: "", yearOfBirth: 1990, gender: "F"},
	}

	created := 0
	for _, p := range persons {
		if p.nationalID != "" {
			exists, err := client.Person.Query().
				Where(person.NationalID(p.nationalID)).
				Exist(ctx)
			if err != nil {
				return err
			}
			if exists {
				continue
			}
		}
		_, err := client.Person.Create().
			SetID(uuid.New()).
			SetFirstName(p.first).
			SetFatherName(p.father).
			SetFamilyName(p.family).
			SetFirstNameNormalized(matching.NormalizeArabic(p.first)).
			SetFatherNameNormalized(matching.NormalizeArabic(p.father)).
			SetFamilyNameNormalized(matching.NormalizeArabic(p.family)).
			SetNationalID(p.nationalID).
			SetYearOfBirth(p.yearOfBirth).
			SetGenderCode(p.gender).
			SetGovernorateCode("02").
			SetNationalityCode("SY").
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create demo person: %w", err)
		}
		created++
	}

	logger.Info("Demo baseline seeding done", zap.Int("persons_created", created))
	return nil
}
